package domain

const DefaultTarget = 50

// Metrics are the values the dashboard renders for one answer set.
type Metrics struct {
	Score           int
	Target          int
	ProgressPercent float64
	GaugeFraction   float64
	GoalReached     bool
}

// Derive computes dashboard metrics against target (kg CO2/month). Progress
// is target/score capped at 100; a zero score has trivially reached the goal.
// A non-positive target falls back to DefaultTarget.
func Derive(answers Answers, target int) Metrics {
	if target <= 0 {
		target = DefaultTarget
	}
	score := Score(answers)
	progress := 100.0
	if score > 0 {
		progress = min(100, float64(target)/float64(score)*100)
	}
	return Metrics{
		Score:           score,
		Target:          target,
		ProgressPercent: progress,
		GaugeFraction:   min(1, float64(score)/100),
		GoalReached:     progress >= 100,
	}
}
