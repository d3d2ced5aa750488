package dto

type ComputeInput struct {
	Answers map[string]string
	Target  int
}

type MetricsOutput struct {
	Score           int
	Target          int
	ProgressPercent float64
	GaugeFraction   float64
	GoalReached     bool
}

type DashboardInput struct {
	Answers map[string]string
	Target  int
}

type TipOutput struct {
	ID          int
	Category    string
	Title       string
	Description string
	Impact      string
}

type RankOutput struct {
	Position    int
	Name        string
	Score       int
	Avatar      string
	Medal       string
	CurrentUser bool
}

type DayOutput struct {
	Label   string
	Percent float64
	IsToday bool
}

type DashboardOutput struct {
	Metrics MetricsOutput
	Tips    []TipOutput
	Ranking []RankOutput
	Week    []DayOutput
}

type ReportInput struct {
	Answers map[string]string
	Target  int
	Render  bool
	Width   int
}

type ReportOutput struct {
	Content string
	Metrics MetricsOutput
}
