package googleads

import (
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/code"
)

// FieldPathElement is one step of the path to the field that caused an error
type FieldPathElement struct {
	FieldName string `json:"fieldName"`
	Index     *int   `json:"index,omitempty"`
}

// ErrorLocation points at the request field an error refers to
type ErrorLocation struct {
	FieldPathElements []FieldPathElement `json:"fieldPathElements,omitempty"`
}

// GoogleAdsError is a single error entry of a GoogleAdsFailure
type GoogleAdsError struct {
	ErrorCode map[string]string `json:"errorCode,omitempty"`
	Message   string            `json:"message"`
	Location  *ErrorLocation    `json:"location,omitempty"`
}

// FieldPath returns the field names of the error location in order
func (e GoogleAdsError) FieldPath() []string {
	if e.Location == nil {
		return nil
	}
	names := make([]string, 0, len(e.Location.FieldPathElements))
	for _, el := range e.Location.FieldPathElements {
		names = append(names, el.FieldName)
	}
	return names
}

// GoogleAdsFailure is the error detail attached to failed Google Ads requests
type GoogleAdsFailure struct {
	Type      string           `json:"@type,omitempty"`
	Errors    []GoogleAdsError `json:"errors,omitempty"`
	RequestID string           `json:"requestId,omitempty"`
}

// Status is a google.rpc.Status as returned in error envelopes and
// partialFailureError fields.
type Status struct {
	Code    int                `json:"code"`
	Message string             `json:"message,omitempty"`
	Status  string             `json:"status,omitempty"`
	Details []GoogleAdsFailure `json:"details,omitempty"`
}

// APIError is returned for every request the Google Ads API rejected,
// and for partial failures reported inside successful responses.
type APIError struct {
	RequestID  string
	HTTPStatus int
	Status     string
	Message    string
	Errors     []GoogleAdsError
}

// NewAPIError builds an APIError from a decoded status. requestID is used
// when the failure details carry none.
func NewAPIError(httpStatus int, requestID string, st *Status) *APIError {
	e := &APIError{
		RequestID:  requestID,
		HTTPStatus: httpStatus,
	}
	if st == nil {
		e.Status = code.Code_UNKNOWN.String()
		return e
	}

	e.Message = st.Message
	e.Status = st.Status
	if e.Status == "" {
		if name, ok := code.Code_name[int32(st.Code)]; ok {
			e.Status = name
		} else {
			e.Status = code.Code_UNKNOWN.String()
		}
	}

	for _, d := range st.Details {
		if d.RequestID != "" {
			e.RequestID = d.RequestID
		}
		e.Errors = append(e.Errors, d.Errors...)
	}
	return e
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "request %q failed with status %s", e.RequestID, e.Status)
	if len(e.Errors) > 0 {
		b.WriteString(": ")
		msgs := make([]string, 0, len(e.Errors))
		for _, ge := range e.Errors {
			msgs = append(msgs, ge.Message)
		}
		b.WriteString(strings.Join(msgs, "; "))
	} else if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}
