package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/NVIDIA/version-buddy/pkg/errors"
	"github.com/NVIDIA/version-buddy/pkg/serializer"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// HTTPStatusFromCode maps an application error code to an HTTP status.
func HTTPStatusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeInvalidVersion:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether clients should retry requests that
// failed with the given code.
func retryableFromCode(code apperrors.ErrorCode) bool {
	switch code {
	case apperrors.ErrCodeRateLimitExceeded,
		apperrors.ErrCodeUnavailable,
		apperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps with the second overwriting the
// first. Returns nil when both are empty so Details stays omitted.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apperrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr derives the response from the error itself. Structured
// errors supply their own code, message, and context. Anything else becomes
// an internal error carrying fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extra map[string]any) {

	var serr *apperrors.StructuredError
	if errors.As(err, &serr) {
		details := mergeDetails(serr.Context, extra)
		if serr.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": serr.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(serr.Code), serr.Code, serr.Message,
			retryableFromCode(serr.Code), details)
		return
	}

	details := extra
	if err != nil {
		details = mergeDetails(extra, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternal,
		fallbackMessage, true, details)
}
