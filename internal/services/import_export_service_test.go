package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Ideal-Pranav/Career-finder/internal/events"
	"github.com/Ideal-Pranav/Career-finder/internal/models"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newImportService(repo repositories.CareerRepository, publisher events.EventPublisher) ImportExportService {
	return NewImportExportService(repo, publisher, utils.NewValidator(), utils.NewDevelopmentLogger())
}

func TestImportCareersFromCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"id,category,career_option,stream,description,skills_required,salary_entry",
		"eng-software,Engineering,Software Engineer,Science,Builds software,Coding;Problem Solving,600000",
		"med-mbbs,Medical,Doctor (MBBS),Biology,Treats patients,Biology;Empathy,800000",
	}, "\n")

	var upserted []*models.Career
	repo := new(MockCareerRepository)
	repo.On("BulkUpsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		upserted = args.Get(1).([]*models.Career)
	}).Return(nil)
	publisher := &events.MockEventPublisher{}

	svc := newImportService(repo, publisher)

	result, err := svc.ImportCareersFromCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.NotEmpty(t, result.JobID)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Zero(t, result.ErrorCount)

	require.Len(t, upserted, 2)
	assert.Equal(t, "eng-software", upserted[0].ID)
	assert.Equal(t, "Software Engineer", upserted[0].CareerOption)
	assert.Equal(t, 600000, upserted[0].SalaryEntry)
	assert.Equal(t, []string{"Coding", "Problem Solving"}, []string(upserted[0].SkillsRequired))

	require.Len(t, publisher.CareersImported, 1)
	event := publisher.CareersImported[0]
	assert.Equal(t, result.JobID, event.JobID)
	assert.Equal(t, 2, event.SuccessCount)
}

func TestImportCareersCollectsRowErrors(t *testing.T) {
	csvData := strings.Join([]string{
		"id,category,career_option,stream,salary_entry",
		"eng-software,Engineering,Software Engineer,Science,600000",
		"bad-salary,Engineering,Data Engineer,Science,not-a-number",
		",Engineering,Missing ID Row,Science,100000",
	}, "\n")

	repo := new(MockCareerRepository)
	repo.On("BulkUpsert", mock.Anything, mock.Anything).Return(nil)

	svc := newImportService(repo, &events.MockEventPublisher{})

	result, err := svc.ImportCareersFromCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.ErrorCount)
	assert.NotEmpty(t, result.Errors)
}

func TestImportCareersRejectsMissingColumns(t *testing.T) {
	csvData := "id,category\neng-software,Engineering"

	svc := newImportService(new(MockCareerRepository), &events.MockEventPublisher{})

	_, err := svc.ImportCareersFromCSV(context.Background(), strings.NewReader(csvData))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestImportCareersRejectsHeaderOnlyFile(t *testing.T) {
	svc := newImportService(new(MockCareerRepository), &events.MockEventPublisher{})

	_, err := svc.ImportCareersFromCSV(context.Background(),
		strings.NewReader("id,category,career_option,stream"))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestImportCareersFromExcelRoundTrip(t *testing.T) {
	// Build a workbook in memory, then feed it back through the importer.
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"id", "category", "career_option", "stream", "salary_entry"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	values := []interface{}{"eng-software", "Engineering", "Software Engineer", "Science", 600000}
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, 2)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	repo := new(MockCareerRepository)
	repo.On("BulkUpsert", mock.Anything, mock.Anything).Return(nil)

	svc := newImportService(repo, &events.MockEventPublisher{})

	result, err := svc.ImportCareersFromExcel(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Zero(t, result.ErrorCount)
}

func TestExportCareersToExcel(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("List", mock.Anything, mock.Anything).Return([]*models.Career{
		{
			ID:             "eng-software",
			Category:       "Engineering",
			CareerOption:   "Software Engineer",
			Stream:         "Science",
			SkillsRequired: []string{"Coding", "Problem Solving"},
			SalaryEntry:    600000,
			DemandLevel:    models.DemandVeryHigh,
		},
	}, int64(1), nil)

	svc := newImportService(repo, &events.MockEventPublisher{})

	data, err := svc.ExportCareersToExcel(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Careers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "eng-software", rows[1][0])
	assert.Equal(t, "Software Engineer", rows[1][2])
	assert.Equal(t, "Coding;Problem Solving", rows[1][5])
}
