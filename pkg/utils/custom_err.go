package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidBody       = errors.New("invalid request body")
	ErrEmptyModelReply   = errors.New("model reply contained no text")
	ErrUnsupportedLLM    = errors.New("unsupported llm provider")
	ErrMissingCredential = errors.New("missing api credential")
)

type UpstreamErrorKind string

const (
	UpstreamUnknown          UpstreamErrorKind = "unknown"
	UpstreamQuotaExceeded    UpstreamErrorKind = "quota_exceeded"
	UpstreamModelUnavailable UpstreamErrorKind = "model_unavailable"
)

// Substrings of upstream failure messages that mean the live model cannot serve
// this deployment right now (billing or unknown model), as opposed to a bad request.
var degradedSignatures = []string{"credit balance", "not_found_error"}

// UpstreamError is a failed call to a hosted model provider.
type UpstreamError struct {
	Provider   string
	Kind       UpstreamErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %d %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsDegradedUpstream reports whether err should be answered with fallback data
// instead of an error. Typed kinds win; otherwise the message is matched
// against the known billing and model-availability signatures.
func IsDegradedUpstream(err error) bool {
	if err == nil {
		return false
	}
	var upErr *UpstreamError
	if errors.As(err, &upErr) && upErr.Kind != UpstreamUnknown && upErr.Kind != "" {
		return true
	}
	return HasDegradedSignature(err.Error())
}

func HasDegradedSignature(msg string) bool {
	for _, sig := range degradedSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// ClassifyUpstreamMessage picks a kind from a raw provider message.
func ClassifyUpstreamMessage(msg string) UpstreamErrorKind {
	switch {
	case strings.Contains(msg, "credit balance"):
		return UpstreamQuotaExceeded
	case strings.Contains(msg, "not_found_error"):
		return UpstreamModelUnavailable
	default:
		return UpstreamUnknown
	}
}
