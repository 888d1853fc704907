package services

import (
	"time"

	"github.com/Ideal-Pranav/Career-finder/internal/cache"
	"github.com/Ideal-Pranav/Career-finder/internal/events"
	"github.com/Ideal-Pranav/Career-finder/internal/quiz"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
)

// ServiceManager bundles the service layer behind one injection point for the
// handlers.
type ServiceManager interface {
	Career() CareerService
	Scholarship() ScholarshipService
	Quiz() QuizService
	ImportExport() ImportExportService
}

type serviceManager struct {
	career       CareerService
	scholarship  ScholarshipService
	quiz         QuizService
	importExport ImportExportService
}

type ManagerConfig struct {
	Repo       repositories.Repository
	Engine     *quiz.Engine
	Cache      cache.CacheService
	Publisher  events.EventPublisher
	Validator  *utils.Validator
	Logger     utils.Logger
	MatchLimit int
	CacheTTL   time.Duration
}

func NewServiceManager(cfg ManagerConfig) ServiceManager {
	return &serviceManager{
		career:       NewCareerService(cfg.Repo.Careers(), cfg.Cache, cfg.Logger, cfg.CacheTTL),
		scholarship:  NewScholarshipService(cfg.Repo.Scholarships(), cfg.Logger),
		quiz:         NewQuizService(cfg.Engine, cfg.Repo.Careers(), cfg.Publisher, cfg.Logger, cfg.MatchLimit),
		importExport: NewImportExportService(cfg.Repo.Careers(), cfg.Publisher, cfg.Validator, cfg.Logger),
	}
}

func (m *serviceManager) Career() CareerService             { return m.career }
func (m *serviceManager) Scholarship() ScholarshipService   { return m.scholarship }
func (m *serviceManager) Quiz() QuizService                 { return m.quiz }
func (m *serviceManager) ImportExport() ImportExportService { return m.importExport }
