// Package models holds the shared record types persisted by the store
// and exchanged with the API.
package models

import (
	"time"
)

// ActionStatus is the lifecycle state of a recommended action.
type ActionStatus string

const (
	ActionPending   ActionStatus = "pending"
	ActionAccepted  ActionStatus = "accepted"
	ActionSnoozed   ActionStatus = "snoozed"
	ActionCompleted ActionStatus = "completed"
)

// ChecklistItem is one step of an action's completion checklist.
type ChecklistItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// Action is a recommended follow-up a leader works through after the
// diagnostic. Stored whole; an update overwrites the prior record.
type Action struct {
	ActionID        string          `json:"actionId"`
	Title           string          `json:"title"`
	Status          ActionStatus    `json:"status"`
	AcceptedAt      *time.Time      `json:"acceptedAt,omitempty"`
	SnoozeUntil     *time.Time      `json:"snoozeUntil,omitempty"`
	CompletedAt     *time.Time      `json:"completedAt,omitempty"`
	Checklist       []ChecklistItem `json:"checklist"`
	EvidenceNote    string          `json:"evidenceNote"`
	UpdatedPlanLink string          `json:"updatedPlanLink"`
}

// PulseAnswer is a collaborator's anonymous confirmation value.
type PulseAnswer string

const (
	PulseYes PulseAnswer = "yes"
	PulseNo  PulseAnswer = "no"
	PulseNA  PulseAnswer = "na"
)

// Valid reports whether the answer is one of yes/no/na.
func (a PulseAnswer) Valid() bool {
	switch a {
	case PulseYes, PulseNo, PulseNA:
		return true
	}
	return false
}

// Pulse is one anonymous confirmation. No identity is retained; the ID
// exists only so the append-only log has a primary key.
type Pulse struct {
	ID          string      `json:"id"`
	ActionID    string      `json:"actionId"`
	Answer      PulseAnswer `json:"answer"`
	SubmittedAt time.Time   `json:"submittedAt"`
}

// PulseAggregate is the only pulse view a leader ever sees.
type PulseAggregate struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
	NA  int `json:"na"`
}

// CheckIn is a collaborator's weekly clarity/blockage check-in.
type CheckIn struct {
	ID       string    `json:"id"`
	WeekID   string    `json:"weekId"` // ISO date of the submission day
	Clarity  string    `json:"clarityResponse"`
	Blockage string    `json:"blockageResponse"`
	Created  time.Time `json:"createdAt"`
}

// BlockageReport is a free-text report of something blocking the week.
type BlockageReport struct {
	ID      string    `json:"id"`
	WeekID  string    `json:"weekId"`
	Text    string    `json:"text"`
	Created time.Time `json:"createdAt"`
}

// Objective is one goal of a generated work plan.
type Objective struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RoadmapItem is one phase of the plan's roadmap.
type RoadmapItem struct {
	Phase  string `json:"phase"`
	Action string `json:"action"`
}

// RoleTasks groups plan tasks by role.
type RoleTasks struct {
	Role  string   `json:"role"`
	Tasks []string `json:"tasks"`
}

// KPI is one plan indicator with its target and current reading.
type KPI struct {
	Name    string `json:"name"`
	Target  string `json:"target"`
	Current string `json:"current"`
}

// Plan is a generated (or fallback) work plan.
type Plan struct {
	Objectives []Objective   `json:"objectives"`
	Roadmap    []RoadmapItem `json:"roadmap"`
	Tasks      []RoleTasks   `json:"tasks"`
	KPIs       []KPI         `json:"kpis"`
}
