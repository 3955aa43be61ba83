package handlers

import (
	"net/http"

	"team-capacity-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AllocationHandler handles HTTP requests for allocation operations.
// Writes always succeed when the input is valid; conflicts come back as warnings.
type AllocationHandler struct {
	allocationService service.AllocationServiceInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationService service.AllocationServiceInterface) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
	}
}

// CreateAllocation handles POST /allocations
// @Summary Create an allocation
// @Description Store an allocation and report conflicts with the employee's other allocations and leave as warnings
// @Tags allocations
// @Accept json
// @Produce json
// @Param allocation body service.AllocationRequest true "Allocation data"
// @Success 201 {object} service.AllocationWriteResponse "Stored allocation with warnings"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Employee or project not found"
// @Security BearerAuth
// @Router /allocations [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	var req service.AllocationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.allocationService.Create(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ValidateAllocation handles POST /allocations/validate
// @Summary Dry-run an allocation
// @Description Compute the warnings a write would produce without storing anything
// @Tags allocations
// @Accept json
// @Produce json
// @Param allocation body service.AllocationRequest true "Candidate allocation"
// @Param exclude_id query string false "Allocation being edited, excluded from comparison"
// @Success 200 {object} service.ValidationResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Employee or project not found"
// @Security BearerAuth
// @Router /allocations/validate [post]
func (h *AllocationHandler) ValidateAllocation(c *gin.Context) {
	excludeID, ok := parseOptionalID(c, "exclude_id")
	if !ok {
		return
	}

	var req service.AllocationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.allocationService.Validate(c, &req, excludeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllocation handles GET /allocations/:id
// @Summary Get allocation by ID
// @Tags allocations
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 200 {object} service.AllocationResponse
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Security BearerAuth
// @Router /allocations/{id} [get]
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	id, ok := parseID(c, "allocation")
	if !ok {
		return
	}

	allocation, err := h.allocationService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocation)
}

// ListAllocations handles GET /allocations
// @Summary List allocations
// @Tags allocations
// @Produce json
// @Param employee_id query string false "Only this employee's allocations"
// @Success 200 {array} service.AllocationResponse
// @Failure 400 {object} ErrorResponse "Invalid employee_id"
// @Security BearerAuth
// @Router /allocations [get]
func (h *AllocationHandler) ListAllocations(c *gin.Context) {
	employeeID, ok := parseOptionalID(c, "employee_id")
	if !ok {
		return
	}

	allocations, err := h.allocationService.GetAll(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocations)
}

// UpdateAllocation handles PUT /allocations/:id
// @Summary Update an allocation
// @Description Replace an allocation. Its stored version is excluded from the conflict check.
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Param allocation body service.AllocationRequest true "Allocation data"
// @Success 200 {object} service.AllocationWriteResponse "Stored allocation with warnings"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Allocation, employee or project not found"
// @Security BearerAuth
// @Router /allocations/{id} [put]
func (h *AllocationHandler) UpdateAllocation(c *gin.Context) {
	id, ok := parseID(c, "allocation")
	if !ok {
		return
	}

	var req service.AllocationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.allocationService.Update(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAllocation handles DELETE /allocations/:id
// @Summary Delete an allocation
// @Tags allocations
// @Param id path string true "Allocation ID (UUID)"
// @Success 204 "Successfully deleted allocation"
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Security BearerAuth
// @Router /allocations/{id} [delete]
func (h *AllocationHandler) DeleteAllocation(c *gin.Context) {
	id, ok := parseID(c, "allocation")
	if !ok {
		return
	}

	if err := h.allocationService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
