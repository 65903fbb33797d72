package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jftravel/flight-offer-service/internal/app/dto"
	"github.com/jftravel/flight-offer-service/internal/pkg/exception"
)

// EncodeResponseFunc writes an endpoint response to the client.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ErrorResponse encodes the error response to the client. Errors carrying
// their own payload (route hints, live error details) are written as-is;
// application errors map to their status code; anything else is a 500.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		payloader exception.Payloader
		appErr    exception.ApplicationError

		statusCode int
		body       any
	)

	switch {
	case errors.As(err, &payloader):
		statusCode = payloader.ErrorCode()
		body = payloader.ErrorPayload()
	case errors.As(err, &appErr):
		statusCode = appErr.StatusCode
		body = dto.ErrorResponse{Error: appErr.Message}
	default:
		statusCode = http.StatusInternalServerError
		body = dto.ErrorResponse{Error: err.Error()}

		slog.ErrorContext(ctx, err.Error(), slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(statusCode)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(body)
}
