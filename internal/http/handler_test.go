package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swifthaul/rate-service/config"
	"github.com/swifthaul/rate-service/internal/domain/dto"
	"github.com/swifthaul/rate-service/internal/extract"
	"github.com/swifthaul/rate-service/internal/service"
)

func newQuoteHandler(t *testing.T) *Handler {
	t.Helper()
	pricing := config.Load().Pricing
	estimator := service.NewEstimator(extract.NewRegexExtractor(), nil, service.NewCalculator(pricing))
	return NewHandler(estimator)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	return NewRouter(newQuoteHandler(t), NewHealthHandler(), cfg)
}

func postQuote(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeQuoteResponse(t *testing.T, w *httptest.ResponseRecorder) dto.QuoteResponse {
	t.Helper()
	var envelope struct {
		Data dto.QuoteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestEstimateQuote_FreeTextAir(t *testing.T) {
	router := newTestRouter(t)

	w := postQuote(t, router, `{"free_text": "10kg from China to Lagos by air"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeQuoteResponse(t, w)
	assert.Equal(t, dto.StatusOK, resp.Status)
	require.NotNil(t, resp.Quote)
	assert.Equal(t, "air", string(resp.Quote.Mode))
	require.NotNil(t, resp.Quote.ChargeableWeightKg)
	assert.GreaterOrEqual(t, *resp.Quote.ChargeableWeightKg, 45.0)
	assert.Equal(t, "NGN", resp.Quote.Breakdown.Currency)
}

func TestEstimateQuote_FreeTextOceanNeedsClarification(t *testing.T) {
	router := newTestRouter(t)

	w := postQuote(t, router, `{"free_text": "Ocean shipment from China to Lagos"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeQuoteResponse(t, w)
	assert.Equal(t, dto.StatusNeedsClarification, resp.Status)
	assert.Contains(t, resp.MissingFields, "containerType")
}

func TestEstimateQuote_StructuredGround(t *testing.T) {
	router := newTestRouter(t)

	w := postQuote(t, router, `{"mode": "ground", "origin": "Lagos", "destination": "Kano", "distance_km": 1000}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeQuoteResponse(t, w)
	assert.Equal(t, dto.StatusOK, resp.Status)
	require.NotNil(t, resp.Quote)
	assert.Equal(t, "ground", string(resp.Quote.Mode))
	assert.Positive(t, resp.Quote.Breakdown.TotalAmount)
}

func TestEstimateQuote_SameLocationIs422(t *testing.T) {
	router := newTestRouter(t)

	w := postQuote(t, router, `{"origin": "Lagos", "destination": "Lagos", "mode": "parcel", "weight_kg": 1}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var errorResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResp))
	assert.Equal(t, dto.ErrCodeUnprocessable, errorResp.Error)
	assert.Equal(t, service.MsgSameLocation, errorResp.Message)
}

func TestEstimateQuote_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	w := postQuote(t, router, `{"mode": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, errorResp.Error)
}

func TestEstimateQuote_ValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"negative weight", `{"mode": "air", "weight_kg": -5}`},
		{"unknown mode", `{"mode": "teleport"}`},
		{"unknown container", `{"mode": "ocean", "container_type": "45ft"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postQuote(t, router, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestEstimateQuote_EmptyRequestAsksForEverything(t *testing.T) {
	router := newTestRouter(t)

	w := postQuote(t, router, `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeQuoteResponse(t, w)
	assert.Equal(t, dto.StatusNeedsClarification, resp.Status)
	assert.Equal(t, []string{"mode", "origin", "destination"}, resp.MissingFields)
}

func TestEstimateQuote_ResponseCarriesRequestID(t *testing.T) {
	router := newTestRouter(t)

	w := postQuote(t, router, `{"free_text": "10kg from China to Lagos by air"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var envelope dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.RequestID)
}
