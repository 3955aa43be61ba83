package handlers

import (
	"net/http"

	"team-capacity-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the calendar view and capacity reports
type CalendarHandler struct {
	calendarService service.CalendarServiceInterface
	capacityService service.CapacityServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService service.CalendarServiceInterface, capacityService service.CapacityServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		capacityService: capacityService,
	}
}

// GetCalendar handles GET /calendar
// @Summary Calendar view
// @Description Visible employees and projects, every allocation and leave record, and markers inside the window.
// @Description Without start and end the current month padded to whole weeks is used.
// @Tags calendar
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} service.CalendarViewResponse
// @Failure 400 {object} ErrorResponse "Invalid window"
// @Security BearerAuth
// @Router /calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	view, err := h.calendarService.GetCalendarView(c, c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetEmployeeCapacity handles GET /employees/:id/capacity
// @Summary Weekly capacity of one employee
// @Tags capacity
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} service.EmployeeCapacityResponse
// @Failure 400 {object} ErrorResponse "Invalid window"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/capacity [get]
func (h *CalendarHandler) GetEmployeeCapacity(c *gin.Context) {
	id, ok := parseID(c, "employee")
	if !ok {
		return
	}

	report, err := h.capacityService.GetEmployeeCapacity(c, id, c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetTeamCapacity handles GET /capacity
// @Summary Weekly capacity of every visible employee
// @Tags capacity
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} service.TeamCapacityResponse
// @Failure 400 {object} ErrorResponse "Invalid window"
// @Security BearerAuth
// @Router /capacity [get]
func (h *CalendarHandler) GetTeamCapacity(c *gin.Context) {
	report, err := h.capacityService.GetTeamCapacity(c, c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
