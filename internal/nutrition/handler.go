package nutrition

import (
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

type BMIRequest struct {
	HeightCm float64  `json:"height" binding:"required"`
	WeightKg float64  `json:"weight" binding:"required"`
	Table    BMITable `json:"table,omitempty"`
}

// Macros godoc
// @Summary      Compute calorie and macro targets
// @Description  Derives BMR, TDEE, goal-adjusted calories and the meal split. Missing numeric inputs default.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        profile  body      BiometricProfile  true  "Biometric inputs"
// @Success      200      {object}  MacroTargets
// @Failure      400      {object}  api.ErrorResponse
// @Router       /api/calculator/macros [post]
func (h *Handler) Macros(c *gin.Context) {
	var profile BiometricProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	targets, err := h.service.Targets(c.Request.Context(), profile)
	if err != nil {
		// The computation itself cannot fail; only persisting the inputs
		// can. Still return the numbers.
		c.JSON(http.StatusOK, targets)
		return
	}

	c.JSON(http.StatusOK, targets)
}

// LastProfile godoc
// @Summary      Last calculator inputs
// @Tags         calculator
// @Produce      json
// @Success      200  {object}  BiometricProfile
// @Router       /api/calculator/macros/last [get]
func (h *Handler) LastProfile(c *gin.Context) {
	profile, err := h.service.LastProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// BMI godoc
// @Summary      Compute BMI
// @Description  Classifies BMI under the Asian or Western cutoff table. Incomplete inputs yield 422, not an error payload.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        request  body      BMIRequest  true  "Height (cm), weight (kg), table"
// @Success      200      {object}  BMIResult
// @Failure      400      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /api/calculator/bmi [post]
func (h *Handler) BMI(c *gin.Context) {
	var req BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	result := h.service.BMI(c.Request.Context(), req.HeightCm, req.WeightKg, req.Table)
	if result == nil {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "height and weight must be positive"})
		return
	}

	c.JSON(http.StatusOK, result)
}
