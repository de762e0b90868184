package dto

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

type UpdateProfileInput struct {
	Email           string
	Username        string
	CurrentPassword string
	NewPassword     string
}

type SessionOutput struct {
	Authenticated bool
	Email         string
	Username      string
}
