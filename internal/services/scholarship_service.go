package services

import (
	"context"
	"errors"

	"github.com/Ideal-Pranav/Career-finder/internal/models"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"gorm.io/gorm"
)

type ScholarshipListResponse struct {
	Scholarships []*models.Scholarship `json:"scholarships"`
	Total        int64                 `json:"total"`
}

type ScholarshipService interface {
	List(ctx context.Context, filters repositories.ScholarshipFilters) (*ScholarshipListResponse, error)
	Get(ctx context.Context, id string) (*models.Scholarship, error)
}

type scholarshipService struct {
	repo   repositories.ScholarshipRepository
	logger utils.Logger
}

func NewScholarshipService(repo repositories.ScholarshipRepository, logger utils.Logger) ScholarshipService {
	return &scholarshipService{repo: repo, logger: logger}
}

func (s *scholarshipService) List(ctx context.Context, filters repositories.ScholarshipFilters) (*ScholarshipListResponse, error) {
	scholarships, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &ScholarshipListResponse{Scholarships: scholarships, Total: total}, nil
}

func (s *scholarshipService) Get(ctx context.Context, id string) (*models.Scholarship, error) {
	scholarship, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScholarshipNotFound
		}
		return nil, err
	}
	return scholarship, nil
}
