package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swifthaul/rate-service/internal/domain/dto"
	"github.com/swifthaul/rate-service/internal/i18n"
	"github.com/swifthaul/rate-service/internal/service"
)

// Handler provides HTTP handlers for quote estimation routes.
type Handler struct {
	estimator service.Estimator
}

// NewHandler creates a new Handler instance.
func NewHandler(estimator service.Estimator) *Handler {
	return &Handler{estimator: estimator}
}

// EstimateQuote handles POST /api/quote requests.
//
// @Summary      Estimate a freight quote
// @Description  Produces a priced freight quote from partial, possibly free-text shipment parameters. Structured fields take priority; anything missing is recovered from free_text where possible. If required fields are still absent the response lists them instead of a price.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Shipment parameters"
// @Success      200 {object} dto.SuccessResponse "Quote or clarification request"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - origin equals destination"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *Handler) EstimateQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	resp := h.estimator.Estimate(c.Request.Context(), req)

	if resp.Status == dto.StatusError {
		if resp.Message == service.MsgSameLocation {
			builder.ErrorWithMessage(http.StatusUnprocessableEntity, resp.Message, nil)
		} else {
			builder.ErrorWithMessage(http.StatusInternalServerError, resp.Message, nil)
		}
		return
	}

	builder.SuccessOK(resp)
}
