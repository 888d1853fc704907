package services

import (
	"context"

	"github.com/Ideal-Pranav/Career-finder/internal/models"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type MockCareerRepository struct {
	mock.Mock
}

func (m *MockCareerRepository) Create(ctx context.Context, career *models.Career) error {
	args := m.Called(ctx, career)
	return args.Error(0)
}

func (m *MockCareerRepository) BulkUpsert(ctx context.Context, careers []*models.Career) error {
	args := m.Called(ctx, careers)
	return args.Error(0)
}

func (m *MockCareerRepository) GetByID(ctx context.Context, id string) (*models.Career, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Career), args.Error(1)
}

func (m *MockCareerRepository) List(ctx context.Context, filters repositories.CareerFilters) ([]*models.Career, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Career), args.Get(1).(int64), args.Error(2)
}

func (m *MockCareerRepository) ListIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCareerRepository) DisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCareerRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCareerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockScholarshipRepository struct {
	mock.Mock
}

func (m *MockScholarshipRepository) Create(ctx context.Context, scholarship *models.Scholarship) error {
	args := m.Called(ctx, scholarship)
	return args.Error(0)
}

func (m *MockScholarshipRepository) BulkUpsert(ctx context.Context, scholarships []*models.Scholarship) error {
	args := m.Called(ctx, scholarships)
	return args.Error(0)
}

func (m *MockScholarshipRepository) GetByID(ctx context.Context, id string) (*models.Scholarship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Scholarship), args.Error(1)
}

func (m *MockScholarshipRepository) List(ctx context.Context, filters repositories.ScholarshipFilters) ([]*models.Scholarship, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Scholarship), args.Get(1).(int64), args.Error(2)
}
