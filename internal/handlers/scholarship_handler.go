package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/services"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/gin-gonic/gin"
)

type ScholarshipHandler struct {
	BaseHandler
	scholarshipService services.ScholarshipService
}

func NewScholarshipHandler(scholarshipService services.ScholarshipService, logger utils.Logger) *ScholarshipHandler {
	return &ScholarshipHandler{
		BaseHandler:        NewBaseHandler(logger),
		scholarshipService: scholarshipService,
	}
}

// ListScholarships lists scholarships with optional filters.
// @Summary List scholarships
// @Tags scholarships
// @Produce json
// @Param provider query string false "Provider name"
// @Param search query string false "Search in name and eligibility"
// @Param max_amount query int false "Maximum amount ceiling"
// @Success 200 {object} SuccessResponse{data=services.ScholarshipListResponse}
// @Router /scholarships [get]
func (h *ScholarshipHandler) ListScholarships(c *gin.Context) {
	filters := repositories.ScholarshipFilters{
		Search: c.Query("search"),
	}
	if v := c.Query("provider"); v != "" {
		filters.Provider = &v
	}
	if raw := c.Query("max_amount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "max_amount must be a non-negative integer",
			})
			return
		}
		filters.MaxAmount = &n
	}

	resp, err := h.scholarshipService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "scholarships retrieved",
		Data:    resp,
	})
}

// GetScholarship returns a single scholarship.
// @Summary Get scholarship
// @Tags scholarships
// @Produce json
// @Param id path string true "Scholarship ID"
// @Success 200 {object} SuccessResponse{data=models.Scholarship}
// @Failure 404 {object} ErrorResponse
// @Router /scholarships/{id} [get]
func (h *ScholarshipHandler) GetScholarship(c *gin.Context) {
	scholarship, err := h.scholarshipService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "scholarship retrieved",
		Data:    scholarship,
	})
}
