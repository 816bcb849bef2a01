package plan

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nourishcoach/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type generateResponse struct {
	Source string `json:"source"`
	Plan   *Plan  `json:"plan"`
}

// Generate godoc
// @Summary      Generate a meal plan
// @Description  Asks the plan API for a daily, weekly or monthly plan. Falls back to a local mock on any upstream failure, so this always answers.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "Prompt and plan period"
// @Success      200      {object}  generateResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /api/assistant/plan [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	period, err := ParsePeriod(req.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	plan, source, err := h.service.Generate(c.Request.Context(), req.Prompt, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate plan"})
		return
	}

	c.JSON(http.StatusOK, generateResponse{Source: source, Plan: plan})
}

// LastPlan godoc
// @Summary      Most recently generated plan
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  Plan
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/assistant/plan/last [get]
func (h *Handler) LastPlan(c *gin.Context) {
	plan, err := h.service.LastPlan(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoLastPlan) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ExportCSV godoc
// @Summary      Export the last plan as CSV
// @Tags         assistant
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/assistant/plan/export.csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	plan, err := h.service.LastPlan(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoLastPlan) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load plan"})
		return
	}

	out, err := ToCSV(plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to export plan"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=diet-%s.csv", plan.Period))
	c.Data(http.StatusOK, "text/csv", []byte(out))
}

// Share godoc
// @Summary      Plain-text summary of the last plan
// @Tags         assistant
// @Produce      plain
// @Success      200  {string}  string
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/assistant/plan/share [get]
func (h *Handler) Share(c *gin.Context) {
	plan, err := h.service.LastPlan(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoLastPlan) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load plan"})
		return
	}

	c.String(http.StatusOK, ShareText(plan))
}
