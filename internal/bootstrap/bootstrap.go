package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	authinadapter "fintrack/internal/modules/auth/adapter/in"
	authoutadapter "fintrack/internal/modules/auth/adapter/out"
	authdomain "fintrack/internal/modules/auth/domain"
	authin "fintrack/internal/modules/auth/port/in"
	authservice "fintrack/internal/modules/auth/service"
	authusecase "fintrack/internal/modules/auth/usecase"
	goalsinadapter "fintrack/internal/modules/goals/adapter/in"
	goalsoutadapter "fintrack/internal/modules/goals/adapter/out"
	goalsin "fintrack/internal/modules/goals/port/in"
	goalsservice "fintrack/internal/modules/goals/service"
	goalsusecase "fintrack/internal/modules/goals/usecase"
	insightsinadapter "fintrack/internal/modules/insights/adapter/in"
	insightsoutadapter "fintrack/internal/modules/insights/adapter/out"
	insightsin "fintrack/internal/modules/insights/port/in"
	insightsservice "fintrack/internal/modules/insights/service"
	insightsusecase "fintrack/internal/modules/insights/usecase"
	recordsinadapter "fintrack/internal/modules/records/adapter/in"
	recordsoutadapter "fintrack/internal/modules/records/adapter/out"
	recordsin "fintrack/internal/modules/records/port/in"
	recordsservice "fintrack/internal/modules/records/service"
	recordsusecase "fintrack/internal/modules/records/usecase"
	"fintrack/internal/platform/clock"
	"fintrack/internal/platform/config"
	"fintrack/internal/platform/httpapi"
	"fintrack/internal/platform/log"
	uiapp "fintrack/internal/ui/app"
)

// App wires every module stack once and exposes the inbound handlers. The
// CLI handlers speak flag strings; the TUI consumes the usecases directly.
type App struct {
	AuthCLI     authinadapter.CLIHandler
	RecordsCLI  recordsinadapter.CLIHandler
	GoalsCLI    goalsinadapter.CLIHandler
	InsightsCLI insightsinadapter.CLIHandler

	authUC     authin.Usecase
	recordsUC  recordsin.Usecase
	goalsUC    goalsin.Usecase
	insightsUC insightsin.Usecase
	logger     *log.Logger
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	logger, err := log.NewFile(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	api, err := httpapi.New(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("new api client: %w", err)
	}

	session := authdomain.NewSession()
	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(authoutadapter.NewAPIClient(api), logger),
		session,
	)

	recordsUC := recordsusecase.NewInteractor(
		recordsservice.NewRecordService(clk, recordsoutadapter.NewAPIClient(api)),
	)

	goalsUC := goalsusecase.NewInteractor(
		goalsservice.NewGoalService(clk, goalsoutadapter.NewAPIClient(api), logger),
	)

	insightsUC := insightsusecase.NewInteractor(
		insightsservice.NewInsightService(clk, insightsoutadapter.NewAPIClient(api)),
	)

	return &App{
		AuthCLI:     authinadapter.NewCLIHandler(authUC),
		RecordsCLI:  recordsinadapter.NewCLIHandler(recordsUC),
		GoalsCLI:    goalsinadapter.NewCLIHandler(goalsUC),
		InsightsCLI: insightsinadapter.NewCLIHandler(insightsUC),

		authUC:     authUC,
		recordsUC:  recordsUC,
		goalsUC:    goalsUC,
		insightsUC: insightsUC,
		logger:     logger,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.authUC, app.recordsUC, app.goalsUC, app.insightsUC, app.logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
