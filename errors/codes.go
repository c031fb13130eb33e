package errors

// ErrorCode identifies the failure class of an AppError. Codes are stable and
// safe to expose to API clients.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	ErrorCode_INTERNAL           ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT   ErrorCode = 1001
	ErrorCode_VALIDATION         ErrorCode = 1002
	ErrorCode_PROVIDER           ErrorCode = 2000
	ErrorCode_LANGUAGE_DETECTION ErrorCode = 2001
	ErrorCode_NO_SPEECH          ErrorCode = 2002
	ErrorCode_SUMMARIZATION      ErrorCode = 3000
)

// String returns the symbolic name for the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_VALIDATION:
		return "VALIDATION"
	case ErrorCode_PROVIDER:
		return "PROVIDER"
	case ErrorCode_LANGUAGE_DETECTION:
		return "LANGUAGE_DETECTION"
	case ErrorCode_NO_SPEECH:
		return "NO_SPEECH"
	case ErrorCode_SUMMARIZATION:
		return "SUMMARIZATION"
	default:
		return "UNSPECIFIED"
	}
}
