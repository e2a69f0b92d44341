// Package metrics serves the dashboard numbers. Nothing computes them
// yet: the Provider seam exists so real aggregation can replace the
// static fixture later without touching the API surface.
package metrics

// Trend is a delta against the previous period.
type Trend struct {
	Value     int    `json:"value"`
	Direction string `json:"direction"` // "up" or "down"
}

// Metric is one headline card on a dashboard.
type Metric struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle,omitempty"`
	Trend    *Trend `json:"trend,omitempty"`
}

// Objective is a tracked goal with its progress reading.
type Objective struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"` // on-track, at-risk, off-track
	DueDate     string `json:"dueDate"`
}

// Insight is an actionable observation surfaced to a leader.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // high, medium, low
	ActionLabel string `json:"actionLabel"`
}

// LeaderDashboard is the leader's landing view.
type LeaderDashboard struct {
	Metrics    []Metric    `json:"metrics"`
	Objectives []Objective `json:"objectives"`
	Insights   []Insight   `json:"insights"`
}

// Task is one item of a collaborator's day.
type Task struct {
	Title           string `json:"title"`
	Completed       bool   `json:"completed"`
	LinkedObjective string `json:"linkedObjective"`
}

// TeamGoal is a team objective with the collaborator's share in it.
type TeamGoal struct {
	Title            string `json:"title"`
	Progress         int    `json:"progress"`
	YourContribution string `json:"yourContribution"`
}

// CollaboratorWeek is the collaborator's landing view.
type CollaboratorWeek struct {
	Metrics    []Metric    `json:"metrics"`
	Objectives []Objective `json:"objectives"`
	Tasks      []Task      `json:"tasks"`
	TeamGoals  []TeamGoal  `json:"teamGoals"`
}

// Provider supplies dashboard data for both roles.
type Provider interface {
	LeaderDashboard() LeaderDashboard
	CollaboratorWeek() CollaboratorWeek
}

// StaticProvider serves compiled-in sample numbers.
type StaticProvider struct{}

func NewStaticProvider() StaticProvider { return StaticProvider{} }

func (StaticProvider) LeaderDashboard() LeaderDashboard {
	return LeaderDashboard{
		Metrics: []Metric{
			{Title: "Team Size", Value: "12", Subtitle: "Active members"},
			{Title: "Objectives", Value: "8", Subtitle: "3 on track, 3 at risk, 2 off track"},
			{Title: "Team Health", Value: "76%", Subtitle: "vs last month", Trend: &Trend{Value: 4, Direction: "up"}},
			{Title: "Performance", Value: "82%", Subtitle: "vs target", Trend: &Trend{Value: 2, Direction: "down"}},
		},
		Objectives: []Objective{
			{Title: "Reduce order processing time by 20%", Description: "Optimize warehouse workflows and automate key handoff points", Progress: 72, Status: "on-track", DueDate: "Mar 31, 2026"},
			{Title: "Achieve 98% on-time delivery rate", Description: "Improve route optimization and carrier coordination", Progress: 45, Status: "at-risk", DueDate: "Q1 2026"},
			{Title: "Reduce team overtime by 30%", Description: "Better workload distribution and hiring plan", Progress: 28, Status: "off-track", DueDate: "Feb 28, 2026"},
		},
		Insights: []Insight{
			{Title: "Elena needs clarity on priorities", Description: "Her clarity signal dropped 40% this week. Schedule a 1:1 to realign on Q1 objectives.", Priority: "high", ActionLabel: "Schedule 1:1"},
			{Title: "Overtime trending up in night shift", Description: "3 team members averaging 12+ hours. Consider temporary staffing support.", Priority: "medium", ActionLabel: "Review schedule"},
			{Title: "Strong execution in warehouse team", Description: "Processing time improved 15% this month. Consider sharing best practices.", Priority: "low", ActionLabel: "Share insights"},
		},
	}
}

func (StaticProvider) CollaboratorWeek() CollaboratorWeek {
	return CollaboratorWeek{
		Metrics: []Metric{
			{Title: "My Objectives", Value: "3", Subtitle: "2 on track, 1 at risk"},
			{Title: "Tasks Today", Value: "5", Subtitle: "2 completed"},
			{Title: "Focus Time", Value: "4.5h", Subtitle: "Logged this week"},
		},
		Objectives: []Objective{
			{Title: "Complete inventory reconciliation", Description: "Align physical counts with system records across all zones", Progress: 85, Status: "on-track", DueDate: "Jan 20, 2026"},
			{Title: "Train 3 new team members", Description: "Onboard and mentor new warehouse associates", Progress: 66, Status: "on-track", DueDate: "Feb 15, 2026"},
			{Title: "Reduce picking errors to <1%", Description: "Implement double-check process for high-value items", Progress: 40, Status: "at-risk", DueDate: "Jan 31, 2026"},
		},
		Tasks: []Task{
			{Title: "Morning zone inspection", Completed: true, LinkedObjective: "Inventory reconciliation"},
			{Title: "New hire shadowing session", Completed: true, LinkedObjective: "Train new team members"},
			{Title: "Quality check review meeting", Completed: false, LinkedObjective: "Reduce picking errors"},
			{Title: "Update picking SOP document", Completed: false, LinkedObjective: "Reduce picking errors"},
			{Title: "End-of-day count verification", Completed: false, LinkedObjective: "Inventory reconciliation"},
		},
		TeamGoals: []TeamGoal{
			{Title: "Reduce order processing time by 20%", Progress: 72, YourContribution: "Zone efficiency improvements"},
			{Title: "Achieve 98% on-time delivery rate", Progress: 45, YourContribution: "Accurate picking & packing"},
		},
	}
}
