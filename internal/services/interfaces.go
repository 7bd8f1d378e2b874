package services

import (
	"context"
	"time"

	"siteledger/internal/models"
	"siteledger/internal/pagination"
)

// RecordDraft carries the form fields for a new or edited finance record.
type RecordDraft struct {
	Type        models.RecordType `json:"type"`
	Category    string            `json:"category"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
}

// RecordPatch holds optional field overrides for an existing record.
// ID and date are never patched.
type RecordPatch struct {
	Type        *models.RecordType
	Category    *string
	Amount      *float64
	Description *string
}

// LedgerTotals is the summary recomputed from the full record list on every
// query: income, expense, and their difference.
type LedgerTotals struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// LedgerServicer defines the contract for the income/expense record store.
type LedgerServicer interface {
	Load(ctx context.Context) error
	Records() []models.FinanceRecord
	GetRecordByID(id int64) (*models.FinanceRecord, error)
	CreateRecord(ctx context.Context, draft RecordDraft) (*models.FinanceRecord, error)
	UpdateRecord(ctx context.Context, id int64, patch RecordPatch) (*models.FinanceRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
	Totals() LedgerTotals
}

// ProgressDraft carries the form fields for a new progress-payment item.
type ProgressDraft struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// ProgressSummary aggregates a progress-payment schedule: the grand total,
// the paid portion, and the remainder.
type ProgressSummary struct {
	Total       float64 `json:"total"`
	TotalPaid   float64 `json:"total_paid"`
	TotalUnpaid float64 `json:"total_unpaid"`
}

// ProgressServicer defines the contract for the progress-payment schedule.
// Items live in memory for the session; there is no persistence path.
type ProgressServicer interface {
	Items() []models.ProgressItem
	AddItem(draft ProgressDraft) (*models.ProgressItem, error)
	TogglePaid(id int64) (*models.ProgressItem, error)
	DeleteItem(id int64) error
	Summary() ProgressSummary
}

// ProjectDraft carries the form fields for a new project.
type ProjectDraft struct {
	Name            string
	Description     string
	ProjectType     models.ProjectType
	Status          models.ProjectStatus
	Priority        models.ProjectPriority
	StartDate       time.Time
	EndDate         *time.Time
	ClientCompany   string
	ProjectManager  string
	Location        string
	EstimatedBudget float64
}

// ProjectPatch holds optional field overrides for an existing project.
type ProjectPatch struct {
	Name            *string
	Description     *string
	ProjectType     *models.ProjectType
	Status          *models.ProjectStatus
	Priority        *models.ProjectPriority
	StartDate       *time.Time
	EndDate         *time.Time
	ClientCompany   *string
	ProjectManager  *string
	Location        *string
	EstimatedBudget *float64
}

// ProjectServicer defines the contract for project tracking.
type ProjectServicer interface {
	CreateProject(ctx context.Context, draft ProjectDraft) (*models.Project, error)
	GetProjects(ctx context.Context, search string, page pagination.PageRequest) (*pagination.PageResponse[models.Project], error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, patch ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// SubcontractorDraft carries the form fields for a new subcontractor.
type SubcontractorDraft struct {
	Name      string
	Specialty string
	Contact   string
}

// SubcontractorPatch holds optional field overrides for a subcontractor.
type SubcontractorPatch struct {
	Name      *string
	Specialty *string
	Contact   *string
}

// SubcontractorServicer defines the contract for subcontractor tracking.
type SubcontractorServicer interface {
	CreateSubcontractor(ctx context.Context, draft SubcontractorDraft) (*models.Subcontractor, error)
	GetSubcontractors(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Subcontractor], error)
	GetSubcontractorByID(ctx context.Context, id int64) (*models.Subcontractor, error)
	UpdateSubcontractor(ctx context.Context, id int64, patch SubcontractorPatch) (*models.Subcontractor, error)
	DeleteSubcontractor(ctx context.Context, id int64) error
}

// ExportServicer renders ledger records into downloadable documents.
type ExportServicer interface {
	LedgerCSV(records []models.FinanceRecord) ([]byte, error)
	LedgerXLSX(records []models.FinanceRecord) ([]byte, error)
}
