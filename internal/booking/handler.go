package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nourishcoach/internal/api"
	"nourishcoach/internal/timegrid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// DayGrid godoc
// @Summary      Day slot grid
// @Description  Returns every slot for the date annotated as available, booked or selected.
// @Tags         booking
// @Produce      json
// @Param        date      query     string  true   "Calendar date (YYYY-MM-DD)"
// @Param        selected  query     string  false  "Pending selection (HH:MM)"
// @Success      200       {object}  DayGridResponse
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /api/slots [get]
func (h *Handler) DayGrid(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date parameter required"})
		return
	}

	var selected *timegrid.TimeOfDay
	if raw := c.Query("selected"); raw != "" {
		t, err := timegrid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid selected time"})
			return
		}
		selected = &t
	}

	grid, err := h.service.DayGrid(c.Request.Context(), date, selected)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, use YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, grid)
}

// Book godoc
// @Summary      Request an appointment
// @Description  Validates the form and commits the selected slot. Committing a slot another client already holds returns 409.
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        request  body      BookRequest  true  "Appointment request"
// @Success      201      {object}  Appointment
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/appointments [post]
func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := api.FieldErrors(err); len(fields) > 0 {
			c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Error: "validation failed", Fields: fields})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	appt, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
				Error:  "validation failed",
				Fields: vErr.Fields,
			})
		case errors.Is(err, ErrSlotTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "slot is already booked, pick another time"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, appt)
}
