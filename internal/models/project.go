package models

import "time"

// ProjectType classifies the kind of construction work.
type ProjectType string

const (
	ProjectTypeResidential    ProjectType = "Residential"
	ProjectTypeCommercial     ProjectType = "Commercial"
	ProjectTypeIndustrial     ProjectType = "Industrial"
	ProjectTypeInfrastructure ProjectType = "Infrastructure"
)

// ProjectStatus tracks where a project is in its lifecycle.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

// ProjectPriority ranks a project's urgency.
type ProjectPriority string

const (
	PriorityLow      ProjectPriority = "Low"
	PriorityMedium   ProjectPriority = "Medium"
	PriorityHigh     ProjectPriority = "High"
	PriorityCritical ProjectPriority = "Critical"
)

// Project is a construction project tracked by the business.
type Project struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	ProjectType     ProjectType     `json:"project_type"`
	Status          ProjectStatus   `json:"status"`
	Priority        ProjectPriority `json:"priority"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	ClientCompany   string          `json:"client_company,omitempty"`
	ProjectManager  string          `json:"project_manager,omitempty"`
	Location        string          `json:"location,omitempty"`
	EstimatedBudget float64         `json:"estimated_budget,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
