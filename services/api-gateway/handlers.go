package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fndetector/common/models"
)

// gateway serves the prediction relay
type gateway struct {
	cfg       Config
	predictor predictor
}

func newGateway(cfg Config, p predictor) *gateway {
	return &gateway{cfg: cfg, predictor: p}
}

// handlePredict godoc
// @Summary      Classify news text
// @Description  Validates the text and relays it to the prediction service
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request body     models.PredictionRequest true "Text to classify"
// @Success      200     {object} models.PredictionResult
// @Failure      400     {object} models.ErrorResponse
// @Failure      413     {object} models.ErrorResponse
// @Failure      500     {object} models.ErrorResponse
// @Failure      503     {object} models.ErrorResponse
// @Failure      504     {object} models.ErrorResponse
// @Router       /predict [post]
func (g *gateway) handlePredict(c *gin.Context) {
	body, apiErr, cause := g.readBody(c)
	if apiErr != nil {
		g.fail(c, apiErr, cause)
		return
	}

	text, apiErr := validatePredictRequest(body, g.cfg.MaxTextLength)
	if apiErr != nil {
		g.fail(c, apiErr, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), g.cfg.UpstreamTimeout)
	defer cancel()

	payload, err := g.predictor.Predict(ctx, text)
	if err != nil {
		g.fail(c, classifyUpstreamError(err), err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// readBody returns the JSON body, or nothing when the request is not JSON.
// Transport failures come back with their cause for logging.
func (g *gateway) readBody(c *gin.Context) ([]byte, *apiError, error) {
	if !isJSONContentType(c.GetHeader("Content-Type")) {
		return nil, nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, g.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &apiError{
				Status:  http.StatusRequestEntityTooLarge,
				Code:    models.CodePayloadTooLarge,
				Message: "Request body too large",
			}, nil
		}
		return nil, &apiError{
			Status:  http.StatusInternalServerError,
			Code:    models.CodeInternalError,
			Message: "Request body could not be read",
		}, err
	}
	return body, nil, nil
}

// fail logs the reason and writes the error envelope. The submitted text is never logged.
func (g *gateway) fail(c *gin.Context, apiErr *apiError, cause error) {
	attrs := []any{
		"code", apiErr.Code,
		"status", apiErr.Status,
		requestIDKey, c.GetString(requestIDKey),
	}
	if cause != nil {
		attrs = append(attrs, "reason", logReason(cause))
		slog.Error("prediction request failed", attrs...)
	} else {
		attrs = append(attrs, "reason", apiErr.Message)
		slog.Warn("prediction request rejected", attrs...)
	}

	c.AbortWithStatusJSON(apiErr.Status, apiErr.response())
}

// logReason describes a failure for the log. Upstream error messages are left out
// since the prediction service may echo the submitted text in them.
func logReason(err error) string {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return fmt.Sprintf("upstream returned status %d", upErr.StatusCode)
	}
	return err.Error()
}

// handleHealth godoc
// @Summary      Health probe
// @Tags         health
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Router       /health [get]
func (g *gateway) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Service:   g.cfg.ServiceName,
	})
}

func handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Endpoint not found", Code: models.CodeNotFound})
}

// handlePanic renders any recovered panic as the generic error envelope
func handlePanic(c *gin.Context, recovered any) {
	slog.Error("unhandled error", "panic", recovered, requestIDKey, c.GetString(requestIDKey))
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "An unexpected error occurred",
		Code:  models.CodeUnexpectedError,
	})
}

func isJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
