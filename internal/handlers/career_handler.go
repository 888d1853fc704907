package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/services"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/gin-gonic/gin"
)

type CareerHandler struct {
	BaseHandler
	careerService services.CareerService
	importService services.ImportExportService
}

func NewCareerHandler(
	careerService services.CareerService,
	importService services.ImportExportService,
	logger utils.Logger,
) *CareerHandler {
	return &CareerHandler{
		BaseHandler:   NewBaseHandler(logger),
		careerService: careerService,
		importService: importService,
	}
}

// ListCareers lists catalog entries with optional filters.
// @Summary List careers
// @Tags careers
// @Produce json
// @Param category query string false "Career category"
// @Param stream query string false "Academic stream"
// @Param search query string false "Search in name and description"
// @Param min_salary query int false "Minimum entry salary"
// @Param max_salary query int false "Maximum entry salary"
// @Success 200 {object} SuccessResponse{data=services.CareerListResponse}
// @Router /careers [get]
func (h *CareerHandler) ListCareers(c *gin.Context) {
	filters, ok := h.parseCareerFilters(c)
	if !ok {
		return
	}

	resp, err := h.careerService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "careers retrieved",
		Data:    resp,
	})
}

// GetCareer returns a single catalog entry and bumps its view counter.
// @Summary Get career
// @Tags careers
// @Produce json
// @Param id path string true "Career ID"
// @Success 200 {object} SuccessResponse{data=models.Career}
// @Failure 404 {object} ErrorResponse
// @Router /careers/{id} [get]
func (h *CareerHandler) GetCareer(c *gin.Context) {
	id := c.Param("id")

	career, err := h.careerService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "career retrieved",
		Data:    career,
	})
}

// ImportCareers loads catalog entries from an uploaded CSV or XLSX file.
// @Summary Import careers
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX catalog file"
// @Success 200 {object} SuccessResponse{data=services.ImportResult}
// @Failure 400 {object} ErrorResponse
// @Router /admin/careers/import [post]
func (h *CareerHandler) ImportCareers(c *gin.Context) {
	h.LogRequest(c, "catalog import requested")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "missing file upload",
			Details: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "failed to open upload",
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportCareersFromFile(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "import finished",
		Data:    result,
	})
}

// ExportCareers downloads the whole catalog as an XLSX workbook.
// @Summary Export careers
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /admin/careers/export [get]
func (h *CareerHandler) ExportCareers(c *gin.Context) {
	data, err := h.importService.ExportCareersToExcel(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="careers.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *CareerHandler) parseCareerFilters(c *gin.Context) (repositories.CareerFilters, bool) {
	filters := repositories.CareerFilters{
		Search: c.Query("search"),
	}

	if v := c.Query("category"); v != "" {
		filters.Category = &v
	}
	if v := c.Query("stream"); v != "" {
		filters.Stream = &v
	}

	intParam := func(name string) (*int, bool) {
		raw := c.Query(name)
		if raw == "" {
			return nil, true
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: name + " must be a non-negative integer",
			})
			return nil, false
		}
		return &n, true
	}

	var ok bool
	if filters.MinSalary, ok = intParam("min_salary"); !ok {
		return filters, false
	}
	if filters.MaxSalary, ok = intParam("max_salary"); !ok {
		return filters, false
	}

	limit, ok := intParam("limit")
	if !ok {
		return filters, false
	}
	if limit != nil {
		filters.Limit = *limit
	}
	offset, ok := intParam("offset")
	if !ok {
		return filters, false
	}
	if offset != nil {
		filters.Offset = *offset
	}

	return filters, true
}
