package handlers

import (
	"net/http"

	"team-capacity-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarMarkerHandler handles HTTP requests for calendar markers
type CalendarMarkerHandler struct {
	markerService service.CalendarMarkerServiceInterface
}

// NewCalendarMarkerHandler creates a new calendar marker handler
func NewCalendarMarkerHandler(markerService service.CalendarMarkerServiceInterface) *CalendarMarkerHandler {
	return &CalendarMarkerHandler{
		markerService: markerService,
	}
}

// CreateMarker handles POST /markers
// @Summary Create a calendar marker
// @Tags markers
// @Accept json
// @Produce json
// @Param marker body service.CreateCalendarMarkerRequest true "Marker data"
// @Success 201 {object} service.CalendarMarkerResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Creator not found"
// @Security BearerAuth
// @Router /markers [post]
func (h *CalendarMarkerHandler) CreateMarker(c *gin.Context) {
	var req service.CreateCalendarMarkerRequest
	if !bindJSON(c, &req) {
		return
	}

	marker, err := h.markerService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, marker)
}

// GetMarker handles GET /markers/:id
// @Summary Get calendar marker by ID
// @Tags markers
// @Produce json
// @Param id path string true "Marker ID (UUID)"
// @Success 200 {object} service.CalendarMarkerResponse
// @Failure 404 {object} ErrorResponse "Marker not found"
// @Security BearerAuth
// @Router /markers/{id} [get]
func (h *CalendarMarkerHandler) GetMarker(c *gin.Context) {
	id, ok := parseID(c, "marker")
	if !ok {
		return
	}

	marker, err := h.markerService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, marker)
}

// ListMarkers handles GET /markers
// @Summary List calendar markers in a window
// @Description Without start and end the current month padded to whole weeks is used
// @Tags markers
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} service.CalendarMarkerResponse
// @Failure 400 {object} ErrorResponse "Invalid window"
// @Security BearerAuth
// @Router /markers [get]
func (h *CalendarMarkerHandler) ListMarkers(c *gin.Context) {
	markers, err := h.markerService.GetInRange(c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, markers)
}

// UpdateMarker handles PUT /markers/:id
// @Summary Update a calendar marker
// @Tags markers
// @Accept json
// @Produce json
// @Param id path string true "Marker ID (UUID)"
// @Param marker body service.UpdateCalendarMarkerRequest true "Changed fields"
// @Success 200 {object} service.CalendarMarkerResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Marker not found"
// @Security BearerAuth
// @Router /markers/{id} [put]
func (h *CalendarMarkerHandler) UpdateMarker(c *gin.Context) {
	id, ok := parseID(c, "marker")
	if !ok {
		return
	}

	var req service.UpdateCalendarMarkerRequest
	if !bindJSON(c, &req) {
		return
	}

	marker, err := h.markerService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, marker)
}

// DeleteMarker handles DELETE /markers/:id
// @Summary Delete a calendar marker
// @Tags markers
// @Param id path string true "Marker ID (UUID)"
// @Success 204 "Successfully deleted marker"
// @Failure 404 {object} ErrorResponse "Marker not found"
// @Security BearerAuth
// @Router /markers/{id} [delete]
func (h *CalendarMarkerHandler) DeleteMarker(c *gin.Context) {
	id, ok := parseID(c, "marker")
	if !ok {
		return
	}

	if err := h.markerService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
