package sqlite

import (
	"fmt"

	"github.com/Ideal-Pranav/Career-finder/internal/models"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	careers      repositories.CareerRepository
	scholarships repositories.ScholarshipRepository
}

// NewRepository wires the sqlite-backed catalog repositories.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		careers:      NewCareerSQLite(db),
		scholarships: NewScholarshipSQLite(db),
	}
}

func (r *repository) Careers() repositories.CareerRepository {
	return r.careers
}

func (r *repository) Scholarships() repositories.ScholarshipRepository {
	return r.scholarships
}

// AutoMigrate creates or updates the catalog tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Career{}, &models.Scholarship{}); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}
