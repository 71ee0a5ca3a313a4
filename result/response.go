package result

import (
	"strings"
	"time"
)

const (
	OriginTag      = "Smart CRUD Engine"
	UnknownCode    = "Unknown Error Code"
	UnknownMessage = "Unknown Error Message"
	TimestampFmt   = "2006-01-02 15:04:05.000"
)

// ErrorResponse is the canonical failure shape returned to callers.
type ErrorResponse struct {
	Origin    string `json:"origin"`
	Status    string `json:"status"`
	Code      string `json:"ecode"`
	Message   string `json:"emsg"`
	Timestamp string `json:"TimeStamp"`
}

// NewErrorResponse builds a fresh response, substituting sentinels for blank
// code or message.
func NewErrorResponse(code, message string) *ErrorResponse {
	if strings.TrimSpace(code) == "" {
		code = UnknownCode
	}
	if strings.TrimSpace(message) == "" {
		message = UnknownMessage
	}
	return &ErrorResponse{
		Origin:    OriginTag,
		Status:    string(StatusFail),
		Code:      code,
		Message:   message,
		Timestamp: time.Now().Format(TimestampFmt),
	}
}

// FromError converts any error into an ErrorResponse.
func FromError(err error) *ErrorResponse {
	e := AsError(err)
	if e == nil {
		return NewErrorResponse("", "")
	}
	msg := e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return NewErrorResponse(string(e.Code), msg)
}
