package domain

// Tip is a static suggestion shown on the dashboard.
type Tip struct {
	ID          int      `yaml:"id"`
	Category    Category `yaml:"category"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Impact      string   `yaml:"impact"`
}

// RankEntry is one row of the decorative leaderboard.
type RankEntry struct {
	Name        string `yaml:"name"`
	Score       int    `yaml:"score"`
	Avatar      string `yaml:"avatar"`
	Medal       string `yaml:"medal"`
	CurrentUser bool   `yaml:"current_user"`
}

// DayBar is one bar of the weekly history chart.
type DayBar struct {
	Label   string
	Percent float64
	IsToday bool
}

// WeekLabels are the weekday labels, Monday first.
var WeekLabels = [7]string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

// Report bundles everything rendered into a footprint report.
type Report struct {
	Answers Answers
	Metrics Metrics
	Tips    []Tip
}

// Dashboard is the full home screen content for one answer set.
type Dashboard struct {
	Metrics Metrics
	Tips    []Tip
	Ranking []RankEntry
	Week    []DayBar
}
