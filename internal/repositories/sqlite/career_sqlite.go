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

type CareerSQLite struct {
	db *gorm.DB
}

func NewCareerSQLite(db *gorm.DB) repositories.CareerRepository {
	return &CareerSQLite{db: db}
}

func (r *CareerSQLite) Create(ctx context.Context, career *models.Career) error {
	if err := r.db.WithContext(ctx).Create(career).Error; err != nil {
		return fmt.Errorf("failed to create career %q: %w", career.ID, err)
	}
	return nil
}

// BulkUpsert inserts or replaces careers by primary key, in one transaction.
// Used by the catalog import path.
func (r *CareerSQLite) BulkUpsert(ctx context.Context, careers []*models.Career) error {
	if len(careers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(careers).Error; err != nil {
			return fmt.Errorf("failed to upsert careers: %w", err)
		}
		return nil
	})
}

func (r *CareerSQLite) GetByID(ctx context.Context, id string) (*models.Career, error) {
	var career models.Career
	err := r.db.WithContext(ctx).First(&career, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get career %q: %w", id, err)
	}
	return &career, nil
}

func (r *CareerSQLite) List(ctx context.Context, filters repositories.CareerFilters) ([]*models.Career, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Career{})

	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Stream != nil {
		query = query.Where("stream = ?", *filters.Stream)
	}
	if filters.Search != "" {
		term := "%" + filters.Search + "%"
		query = query.Where("career_option LIKE ? OR description LIKE ?", term, term)
	}
	if filters.MinSalary != nil {
		query = query.Where("salary_entry >= ?", *filters.MinSalary)
	}
	if filters.MaxSalary != nil {
		query = query.Where("salary_entry <= ?", *filters.MaxSalary)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count careers: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var careers []*models.Career
	if err := query.Order("career_option ASC").Find(&careers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list careers: %w", err)
	}
	return careers, total, nil
}

func (r *CareerSQLite) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.Career{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list career ids: %w", err)
	}
	return ids, nil
}

// DisplayNames resolves career identifiers to display names. Identifiers with
// no catalog entry are simply absent from the result; callers decide the
// fallback.
func (r *CareerSQLite) DisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	type row struct {
		ID           string
		CareerOption string
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Career{}).
		Select("id", "career_option").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve career names: %w", err)
	}

	for _, rec := range rows {
		names[rec.ID] = rec.CareerOption
	}
	return names, nil
}

func (r *CareerSQLite) IncrementViews(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&models.Career{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment views for career %q: %w", id, err)
	}
	return nil
}

func (r *CareerSQLite) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Career{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count careers: %w", err)
	}
	return count, nil
}
