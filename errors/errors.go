package errors

import (
	"fmt"
	"net/http"
)

// AppError is the application-wide error type carrying an HTTP status, a
// stable error code, and a user-safe message. Raw holds the underlying cause
// for server-side logging only.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

// ErrValidation flags missing or empty request input. Raw is nil because no
// provider was reached.
func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION,
		Message:  message,
	}
}

// Transcription Errors

// ErrProvider covers transport, auth, and provider-side processing failures at
// the transcription backend. The raw error is logged, never exposed.
func ErrProvider(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROVIDER,
		Message:  "Transcription failed",
	}.WithDetail("provider", provider)
}

// ErrLanguageDetection means auto-detect produced no usable text. The message
// surfaces the detected language and confidence so the caller can retry with an
// explicit language selection.
func ErrLanguageDetection(language string, confidencePercent float64) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_LANGUAGE_DETECTION,
		Message: fmt.Sprintf(
			"Language detection produced no usable transcript (detected %q at %.0f%% confidence). Please retry with an explicit language selection.",
			language, confidencePercent,
		),
	}.WithDetail("detected_language", language).
		WithDetail("confidence", fmt.Sprintf("%.0f%%", confidencePercent))
}

// ErrNoSpeechDetected means the audio contains no recognizable speech at all,
// regardless of language.
func ErrNoSpeechDetected() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_NO_SPEECH,
		Message:  "No speech detected in the audio",
	}
}

// Summarization Errors
func ErrSummarization(err error) AppError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SUMMARIZATION,
		Message:  "Summarization failed",
	}.WithDetail("provider_details", details)
}
