package dto

import "errors"

// Response is the envelope every API operation returns. Exactly one of
// Data and Error is set: a success carries data and no error, a failure
// carries an error and no data. There is no third state.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// Envelope construction errors
var (
	ErrEnvelopeConflict = errors.New("response cannot carry both data and error")
	ErrEnvelopeEmpty    = errors.New("response must carry either data or error")
)

// NewResponse builds an envelope from at most one of data and errInfo,
// rejecting ill-formed combinations instead of emitting them.
func NewResponse(data interface{}, errInfo *ErrorInfo) (Response, error) {
	if data != nil && errInfo != nil {
		return Response{}, ErrEnvelopeConflict
	}
	if data == nil && errInfo == nil {
		return Response{}, ErrEnvelopeEmpty
	}
	if errInfo != nil {
		return Response{Success: false, Error: errInfo}, nil
	}
	return Response{Success: true, Data: data}, nil
}

// NewSuccessResponse creates a success response. It panics on nil data;
// an empty success envelope is a programming error, not a runtime
// condition to paper over.
func NewSuccessResponse(data interface{}) Response {
	resp, err := NewResponse(data, nil)
	if err != nil {
		panic(err)
	}
	return resp
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response tagged with the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// NewErrorResponseWithDetails creates an error response carrying structured details
func NewErrorResponseWithDetails(code, message string, details map[string]any, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: requestID,
		},
	}
}
