package handlers

import (
	"net/http"
	"strconv"
	"time"

	"team-capacity-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// CreateEmployee handles POST /employees
// @Summary Create a new employee
// @Description Create an employee. work_days defaults to Monday to Friday.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully created employee"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /employees/:id
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} service.EmployeeResponse "Successfully retrieved employee"
// @Failure 400 {object} ErrorResponse "Invalid employee ID"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseID(c, "employee")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} service.EmployeeResponse "Employees ordered by name"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// UpdateEmployee handles PUT /employees/:id
// @Summary Update employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.UpdateEmployeeRequest true "Updated employee data"
// @Success 200 {object} service.EmployeeResponse "Successfully updated employee"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "employee")
	if !ok {
		return
	}

	var req service.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/:id
// @Summary Delete employee
// @Description Soft-deletes the employee. Their allocations and leave stay attributable.
// @Tags employees
// @Param id path string true "Employee ID (UUID)"
// @Success 204 "Successfully deleted employee"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, "employee")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetLeaveSummary handles GET /employees/:id/leave-summary
// @Summary Annual leave summary
// @Description Days taken against the employee's entitlement for a year (defaults to the current year)
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param year query int false "Calendar year"
// @Success 200 {object} service.LeaveSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid year"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/leave-summary [get]
func (h *EmployeeHandler) GetLeaveSummary(c *gin.Context) {
	id, ok := parseID(c, "employee")
	if !ok {
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year", Fields: map[string]string{"year": "must be an integer"}})
			return
		}
		year = parsed
	}

	summary, err := h.employeeService.GetLeaveSummary(id, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
