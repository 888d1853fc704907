package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Ideal-Pranav/Career-finder/internal/models"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCareerServiceList(t *testing.T) {
	repo := new(MockCareerRepository)
	expected := []*models.Career{
		{ID: "eng-software", CareerOption: "Software Engineer"},
		{ID: "med-mbbs", CareerOption: "Doctor (MBBS)"},
	}
	repo.On("List", mock.Anything, mock.Anything).Return(expected, int64(2), nil)

	svc := NewCareerService(repo, nil, utils.NewDevelopmentLogger(), 0)

	resp, err := svc.List(context.Background(), repositories.CareerFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, expected, resp.Careers)
	repo.AssertExpectations(t)
}

func TestCareerServiceListRepoError(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("db down"))

	svc := NewCareerService(repo, nil, utils.NewDevelopmentLogger(), 0)

	_, err := svc.List(context.Background(), repositories.CareerFilters{})
	assert.Error(t, err)
}

func TestCareerServiceGet(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("GetByID", mock.Anything, "eng-software").Return(&models.Career{
		ID:           "eng-software",
		CareerOption: "Software Engineer",
	}, nil)
	repo.On("IncrementViews", mock.Anything, "eng-software").Return(nil)

	svc := NewCareerService(repo, nil, utils.NewDevelopmentLogger(), 0)

	career, err := svc.Get(context.Background(), "eng-software")
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", career.CareerOption)
	repo.AssertExpectations(t)
}

func TestCareerServiceGetNotFound(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewCareerService(repo, nil, utils.NewDevelopmentLogger(), 0)

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCareerNotFound)
	assert.True(t, IsNotFound(err))
}

func TestCareerServiceGetViewBumpFailureIsNonFatal(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("GetByID", mock.Anything, "eng-software").Return(&models.Career{ID: "eng-software"}, nil)
	repo.On("IncrementViews", mock.Anything, "eng-software").Return(errors.New("db down"))

	svc := NewCareerService(repo, nil, utils.NewDevelopmentLogger(), 0)

	career, err := svc.Get(context.Background(), "eng-software")
	require.NoError(t, err)
	assert.Equal(t, "eng-software", career.ID)
}

func TestCareerListCacheKeyDistinguishesFilters(t *testing.T) {
	category := "Engineering"
	minSalary := 50000

	base := careerListCacheKey(repositories.CareerFilters{})
	withCategory := careerListCacheKey(repositories.CareerFilters{Category: &category})
	withSalary := careerListCacheKey(repositories.CareerFilters{MinSalary: &minSalary})
	paged := careerListCacheKey(repositories.CareerFilters{Limit: 10, Offset: 20})

	keys := []string{base, withCategory, withSalary, paged}
	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate cache key %q", k)
		seen[k] = true
	}
}
