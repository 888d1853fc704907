package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Ideal-Pranav/Career-finder/internal/events"
	"github.com/Ideal-Pranav/Career-finder/internal/models"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

// ImportExportService loads the career catalog from CSV/XLSX files and
// exports it back to XLSX.
type ImportExportService interface {
	ImportCareersFromFile(ctx context.Context, file multipart.File, filename string) (*ImportResult, error)
	ImportCareersFromCSV(ctx context.Context, reader io.Reader) (*ImportResult, error)
	ImportCareersFromExcel(ctx context.Context, reader io.Reader) (*ImportResult, error)
	ExportCareersToExcel(ctx context.Context) ([]byte, error)
}

// RowError is one rejected import row.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

// ImportResult summarizes one import job.
type ImportResult struct {
	JobID        string     `json:"job_id"`
	TotalRows    int        `json:"total_rows"`
	SuccessCount int        `json:"success_count"`
	ErrorCount   int        `json:"error_count"`
	Errors       []RowError `json:"errors,omitempty"`
}

type importExportService struct {
	repo      repositories.CareerRepository
	publisher events.EventPublisher
	validator *utils.Validator
	logger    utils.Logger
}

func NewImportExportService(
	repo repositories.CareerRepository,
	publisher events.EventPublisher,
	validator *utils.Validator,
	logger utils.Logger,
) ImportExportService {
	return &importExportService{
		repo:      repo,
		publisher: publisher,
		validator: validator,
		logger:    logger,
	}
}

// careerColumns is the canonical import/export column order. Multi-value
// columns hold ";"-separated lists.
var careerColumns = []string{
	"id", "category", "career_option", "stream", "description",
	"skills_required", "entry_level_roles", "mid_level_roles", "senior_level_roles",
	"salary_entry", "salary_senior", "min_age", "max_age",
	"passing_criteria_12th", "top_colleges", "popular_exams",
	"growth_rate", "demand_level", "trending_skills", "roadmap",
}

func (s *importExportService) ImportCareersFromFile(ctx context.Context, file multipart.File, filename string) (*ImportResult, error) {
	s.logger.Info("starting catalog import", "filename", filename)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return s.ImportCareersFromCSV(ctx, file)
	case ".xlsx", ".xls":
		return s.ImportCareersFromExcel(ctx, file)
	default:
		return nil, fmt.Errorf("%w: unsupported file format %q", ErrValidationFailed, ext)
	}
}

func (s *importExportService) ImportCareersFromCSV(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return s.importRows(ctx, records)
}

func (s *importExportService) ImportCareersFromExcel(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrValidationFailed)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return s.importRows(ctx, rows)
}

func (s *importExportService) importRows(ctx context.Context, records [][]string) (*ImportResult, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: file must have a header row and at least one data row", ErrValidationFailed)
	}

	headerMap := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, col := range []string{"id", "category", "career_option", "stream"} {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrValidationFailed, col)
		}
	}

	result := &ImportResult{
		JobID:     uuid.NewString(),
		TotalRows: len(records) - 1,
	}

	var careers []*models.Career
	for i, record := range records[1:] {
		rowNum := i + 2 // 1-based, after the header
		career, rowErrs := s.parseRow(record, headerMap, rowNum)
		if len(rowErrs) > 0 {
			result.Errors = append(result.Errors, rowErrs...)
			result.ErrorCount++
			continue
		}
		careers = append(careers, career)
	}

	if err := s.repo.BulkUpsert(ctx, careers); err != nil {
		return nil, err
	}
	result.SuccessCount = len(careers)

	event := &events.CareersImportedEvent{
		JobID:        result.JobID,
		TotalRows:    result.TotalRows,
		SuccessCount: result.SuccessCount,
		ErrorCount:   result.ErrorCount,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.publisher.PublishCareersImported(ctx, event); err != nil {
		s.logger.Warn("failed to publish import event", "job_id", result.JobID, "error", err)
	}

	s.logger.Info("catalog import finished",
		"job_id", result.JobID,
		"total", result.TotalRows,
		"imported", result.SuccessCount,
		"errors", result.ErrorCount)
	return result, nil
}

func (s *importExportService) parseRow(record []string, headerMap map[string]int, rowNum int) (*models.Career, []RowError) {
	field := func(name string) string {
		idx, ok := headerMap[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}
	list := func(name string) datatypes.JSONSlice[string] {
		raw := field(name)
		if raw == "" {
			return nil
		}
		var out []string
		for _, item := range strings.Split(raw, ";") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	var errs []RowError

	career := &models.Career{
		ID:                  field("id"),
		Category:            field("category"),
		CareerOption:        field("career_option"),
		Stream:              field("stream"),
		Description:         field("description"),
		SkillsRequired:      list("skills_required"),
		EntryLevelRoles:     field("entry_level_roles"),
		MidLevelRoles:       field("mid_level_roles"),
		SeniorLevelRoles:    field("senior_level_roles"),
		SalarySenior:        field("salary_senior"),
		MinAge:              field("min_age"),
		MaxAge:              field("max_age"),
		PassingCriteria12th: field("passing_criteria_12th"),
		TopColleges:         list("top_colleges"),
		PopularExams:        list("popular_exams"),
		GrowthRate:          field("growth_rate"),
		DemandLevel:         models.DemandLevel(field("demand_level")),
		TrendingSkills:      list("trending_skills"),
		Roadmap:             field("roadmap"),
	}

	if raw := field("salary_entry"); raw != "" {
		salary, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, RowError{Row: rowNum, Column: "salary_entry", Message: "not a number"})
		} else {
			career.SalaryEntry = salary
		}
	}

	if err := s.validator.ValidateStruct(career); err != nil {
		errs = append(errs, RowError{Row: rowNum, Message: err.Error()})
	}
	return career, errs
}

// ExportCareersToExcel writes the whole catalog to a single-sheet workbook.
func (s *importExportService) ExportCareersToExcel(ctx context.Context) ([]byte, error) {
	careers, _, err := s.repo.List(ctx, repositories.CareerFilters{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Careers"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, name := range careerColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, career := range careers {
		values := []interface{}{
			career.ID, career.Category, career.CareerOption, career.Stream, career.Description,
			strings.Join([]string(career.SkillsRequired), ";"),
			career.EntryLevelRoles, career.MidLevelRoles, career.SeniorLevelRoles,
			career.SalaryEntry, career.SalarySenior, career.MinAge, career.MaxAge,
			career.PassingCriteria12th,
			strings.Join([]string(career.TopColleges), ";"),
			strings.Join([]string(career.PopularExams), ";"),
			career.GrowthRate, string(career.DemandLevel),
			strings.Join([]string(career.TrendingSkills), ";"),
			career.Roadmap,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
