package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ideal-Pranav/Career-finder/internal/cache"
	"github.com/Ideal-Pranav/Career-finder/internal/models"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"gorm.io/gorm"
)

// CareerListResponse is one page of the catalog.
type CareerListResponse struct {
	Careers []*models.Career `json:"careers"`
	Total   int64            `json:"total"`
}

type CareerService interface {
	List(ctx context.Context, filters repositories.CareerFilters) (*CareerListResponse, error)
	Get(ctx context.Context, id string) (*models.Career, error)
}

type careerService struct {
	repo     repositories.CareerRepository
	cache    cache.CacheService
	logger   utils.Logger
	cacheTTL time.Duration
}

func NewCareerService(repo repositories.CareerRepository, cacheSvc cache.CacheService, logger utils.Logger, cacheTTL time.Duration) CareerService {
	return &careerService{
		repo:     repo,
		cache:    cacheSvc,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// List returns the filtered catalog page, cache-aside when a cache is wired.
func (s *careerService) List(ctx context.Context, filters repositories.CareerFilters) (*CareerListResponse, error) {
	key := careerListCacheKey(filters)

	if s.cache != nil {
		var cached CareerListResponse
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("career list cache read failed", "key", key, "error", err)
		}
	}

	careers, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	resp := &CareerListResponse{Careers: careers, Total: total}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
			s.logger.Warn("career list cache write failed", "key", key, "error", err)
		}
	}
	return resp, nil
}

// Get returns one career and bumps its view counter.
func (s *careerService) Get(ctx context.Context, id string) (*models.Career, error) {
	career, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerNotFound
		}
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		s.logger.Warn("failed to increment career views", "career_id", id, "error", err)
	}
	return career, nil
}

func careerListCacheKey(f repositories.CareerFilters) string {
	category, stream := "", ""
	if f.Category != nil {
		category = *f.Category
	}
	if f.Stream != nil {
		stream = *f.Stream
	}
	minSalary, maxSalary := -1, -1
	if f.MinSalary != nil {
		minSalary = *f.MinSalary
	}
	if f.MaxSalary != nil {
		maxSalary = *f.MaxSalary
	}
	return fmt.Sprintf("careers:list:%s:%s:%s:%d:%d:%d:%d",
		category, stream, f.Search, minSalary, maxSalary, f.Limit, f.Offset)
}
