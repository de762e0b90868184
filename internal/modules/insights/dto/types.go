package dto

type KPIOutput struct {
	Kind    string
	Title   string
	Amount  float64
	Goal    float64
	Current float64
	Status  string
	Bar     float64
}

type SliceOutput struct {
	Name       string
	Amount     float64
	Percentage int
}

type DistributionOutput struct {
	Title   string
	Slices  []SliceOutput
	HasData bool
}

type OverviewOutput struct {
	Income        float64
	KPIs          []KPIOutput
	Distributions []DistributionOutput
}

type HistoryInput struct {
	DataType string
	Period   string
}

type DatasetOutput struct {
	Label  string
	Values []float64
}

type SeriesOutput struct {
	Title    string
	IsGoal   bool
	Labels   []string
	Datasets []DatasetOutput
}
