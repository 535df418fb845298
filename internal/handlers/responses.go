package handlers

import (
	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// TraceIDContextKey is the context key for trace IDs set by the request ID middleware
const TraceIDContextKey = "trace_id"

// SuccessResponse represents a successful API response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias to the errors package response for convenience
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the echo context
func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return "unknown"
}

// SendError sends a standardized error response with the given error code
// Optional details can be added using functional options
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError sends a generic system error response and logs the internal error
// The internal error details are never exposed to the client
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)

	// Log the internal error via echo's logger for server-side debugging
	c.Logger().Errorf("system error (trace: %s): %v", traceID, internalErr)

	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
