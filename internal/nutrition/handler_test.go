package nutrition

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nourishcoach/internal/kvstore"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(kvstore.NewMemory()))

	r := gin.New()
	r.POST("/api/calculator/macros", handler.Macros)
	r.GET("/api/calculator/macros/last", handler.LastProfile)
	r.POST("/api/calculator/bmi", handler.BMI)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMacrosEndpoint(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/calculator/macros", referenceProfile())
	require.Equal(t, http.StatusOK, w.Code)

	var got MacroTargets
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1648, got.BMR)
	assert.Equal(t, 112, got.ProteinG)
	assert.Len(t, got.Meals, 4)
}

func TestMacrosEndpointBadBody(t *testing.T) {
	r := setupRouter()

	req, _ := http.NewRequest(http.MethodPost, "/api/calculator/macros", bytes.NewBufferString(`{"age": "young"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLastProfileEndpoint(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/calculator/macros", BiometricProfile{WeightKg: 82})
	require.Equal(t, http.StatusOK, w.Code)

	req, _ := http.NewRequest(http.MethodGet, "/api/calculator/macros/last", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got BiometricProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 82.0, got.WeightKg)
	assert.Equal(t, 24, got.Age)
}

func TestBMIEndpoint(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/calculator/bmi", BMIRequest{HeightCm: 170, WeightKg: 70, Table: TableAsian})
	require.Equal(t, http.StatusOK, w.Code)

	var got BMIResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 24.2, got.BMI)
	assert.Equal(t, "Overweight", got.Band)
}

func TestBMIEndpointIncomplete(t *testing.T) {
	r := setupRouter()

	// binding:"required" rejects zero values before classification runs.
	w := postJSON(t, r, "/api/calculator/bmi", map[string]interface{}{"height": 170})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/calculator/bmi", map[string]interface{}{"height": -170, "weight": 70})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
