package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ideal-Pranav/Career-finder/internal/models"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScholarshipSQLite struct {
	db *gorm.DB
}

func NewScholarshipSQLite(db *gorm.DB) repositories.ScholarshipRepository {
	return &ScholarshipSQLite{db: db}
}

func (r *ScholarshipSQLite) Create(ctx context.Context, scholarship *models.Scholarship) error {
	if err := r.db.WithContext(ctx).Create(scholarship).Error; err != nil {
		return fmt.Errorf("failed to create scholarship %q: %w", scholarship.ID, err)
	}
	return nil
}

func (r *ScholarshipSQLite) BulkUpsert(ctx context.Context, scholarships []*models.Scholarship) error {
	if len(scholarships) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(scholarships).Error; err != nil {
			return fmt.Errorf("failed to upsert scholarships: %w", err)
		}
		return nil
	})
}

func (r *ScholarshipSQLite) GetByID(ctx context.Context, id string) (*models.Scholarship, error) {
	var scholarship models.Scholarship
	err := r.db.WithContext(ctx).First(&scholarship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get scholarship %q: %w", id, err)
	}
	return &scholarship, nil
}

func (r *ScholarshipSQLite) List(ctx context.Context, filters repositories.ScholarshipFilters) ([]*models.Scholarship, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Scholarship{})

	if filters.Provider != nil {
		query = query.Where("provider = ?", *filters.Provider)
	}
	if filters.Search != "" {
		term := "%" + filters.Search + "%"
		query = query.Where("name LIKE ? OR eligibility LIKE ?", term, term)
	}
	if filters.MaxAmount != nil {
		query = query.Where("max_amount <= ?", *filters.MaxAmount)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count scholarships: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var scholarships []*models.Scholarship
	if err := query.Order("name ASC").Find(&scholarships).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list scholarships: %w", err)
	}
	return scholarships, total, nil
}
