package handlers

import (
	"net/http"

	"team-capacity-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnnualLeaveHandler handles HTTP requests for annual leave
type AnnualLeaveHandler struct {
	leaveService service.AnnualLeaveServiceInterface
}

// NewAnnualLeaveHandler creates a new annual leave handler
func NewAnnualLeaveHandler(leaveService service.AnnualLeaveServiceInterface) *AnnualLeaveHandler {
	return &AnnualLeaveHandler{
		leaveService: leaveService,
	}
}

// CreateAnnualLeave handles POST /annual-leave
// @Summary Book annual leave
// @Description days_count defaults to the inclusive number of days in the range
// @Tags annual-leave
// @Accept json
// @Produce json
// @Param leave body service.CreateAnnualLeaveRequest true "Leave data"
// @Success 201 {object} service.AnnualLeaveWriteResponse "Stored leave with overlapping allocations as warnings"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /annual-leave [post]
func (h *AnnualLeaveHandler) CreateAnnualLeave(c *gin.Context) {
	var req service.CreateAnnualLeaveRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.leaveService.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAnnualLeave handles GET /annual-leave/:id
// @Summary Get annual leave by ID
// @Tags annual-leave
// @Produce json
// @Param id path string true "Annual leave ID (UUID)"
// @Success 200 {object} service.AnnualLeaveResponse
// @Failure 404 {object} ErrorResponse "Annual leave not found"
// @Security BearerAuth
// @Router /annual-leave/{id} [get]
func (h *AnnualLeaveHandler) GetAnnualLeave(c *gin.Context) {
	id, ok := parseID(c, "annual leave")
	if !ok {
		return
	}

	leave, err := h.leaveService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leave)
}

// ListAnnualLeave handles GET /annual-leave
// @Summary List annual leave
// @Tags annual-leave
// @Produce json
// @Param employee_id query string false "Only this employee's leave"
// @Success 200 {array} service.AnnualLeaveResponse
// @Security BearerAuth
// @Router /annual-leave [get]
func (h *AnnualLeaveHandler) ListAnnualLeave(c *gin.Context) {
	employeeID, ok := parseOptionalID(c, "employee_id")
	if !ok {
		return
	}

	leave, err := h.leaveService.GetAll(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leave)
}

// UpdateAnnualLeave handles PUT /annual-leave/:id
// @Summary Update annual leave
// @Description days_count is only changed when given
// @Tags annual-leave
// @Accept json
// @Produce json
// @Param id path string true "Annual leave ID (UUID)"
// @Param leave body service.UpdateAnnualLeaveRequest true "Changed fields"
// @Success 200 {object} service.AnnualLeaveWriteResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Annual leave not found"
// @Security BearerAuth
// @Router /annual-leave/{id} [put]
func (h *AnnualLeaveHandler) UpdateAnnualLeave(c *gin.Context) {
	id, ok := parseID(c, "annual leave")
	if !ok {
		return
	}

	var req service.UpdateAnnualLeaveRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.leaveService.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAnnualLeave handles DELETE /annual-leave/:id
// @Summary Delete annual leave
// @Tags annual-leave
// @Param id path string true "Annual leave ID (UUID)"
// @Success 204 "Successfully deleted annual leave"
// @Failure 404 {object} ErrorResponse "Annual leave not found"
// @Security BearerAuth
// @Router /annual-leave/{id} [delete]
func (h *AnnualLeaveHandler) DeleteAnnualLeave(c *gin.Context) {
	id, ok := parseID(c, "annual leave")
	if !ok {
		return
	}

	if err := h.leaveService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
