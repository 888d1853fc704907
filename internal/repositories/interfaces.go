package repositories

import (
	"context"

	"github.com/Ideal-Pranav/Career-finder/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type CareerFilters struct {
	Category  *string `json:"category"`
	Stream    *string `json:"stream"`
	Search    string  `json:"search"`
	MinSalary *int    `json:"min_salary"`
	MaxSalary *int    `json:"max_salary"`
	Limit     int     `json:"limit"`
	Offset    int     `json:"offset"`
}

type ScholarshipFilters struct {
	Provider  *string `json:"provider"`
	Search    string  `json:"search"`
	MaxAmount *int    `json:"max_amount"`
	Limit     int     `json:"limit"`
	Offset    int     `json:"offset"`
}

// ===== REPOSITORY INTERFACES =====

type CareerRepository interface {
	Create(ctx context.Context, career *models.Career) error
	BulkUpsert(ctx context.Context, careers []*models.Career) error
	GetByID(ctx context.Context, id string) (*models.Career, error)
	List(ctx context.Context, filters CareerFilters) ([]*models.Career, int64, error)
	ListIDs(ctx context.Context) ([]string, error)
	DisplayNames(ctx context.Context, ids []string) (map[string]string, error)
	IncrementViews(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ScholarshipRepository interface {
	Create(ctx context.Context, scholarship *models.Scholarship) error
	BulkUpsert(ctx context.Context, scholarships []*models.Scholarship) error
	GetByID(ctx context.Context, id string) (*models.Scholarship, error)
	List(ctx context.Context, filters ScholarshipFilters) ([]*models.Scholarship, int64, error)
}

// Repository aggregates the catalog repositories behind one injection point.
type Repository interface {
	Careers() CareerRepository
	Scholarships() ScholarshipRepository
}
