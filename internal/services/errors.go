package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/desertthunder/musicplayer/internal/shared"
)

var (
	// ErrLyricsNotConfigured is returned before any network I/O when no lyrics access token is set.
	ErrLyricsNotConfigured = fmt.Errorf("%w: genius access token", shared.ErrMissingCredentials)

	// ErrMalformedTrack marks a catalog record that cannot be normalized (no artist).
	ErrMalformedTrack = errors.New("malformed catalog track")

	// ErrUnexpectedResponse marks provider JSON that decoded but lacks required fields.
	ErrUnexpectedResponse = errors.New("unexpected provider response")
)

// CatalogError wraps any failure of the catalog search call.
type CatalogError struct {
	Err error
}

func (e *CatalogError) Error() string { return e.Err.Error() }
func (e *CatalogError) Unwrap() error { return e.Err }

// ProviderError is a non-2xx response from the lyrics provider.
type ProviderError struct {
	Provider string
	Status   int
	URL      string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error: %d %s for url: %s", e.Provider, e.Status, http.StatusText(e.Status), e.URL)
}

func (e *ProviderError) Unwrap() error { return shared.ErrAPIRequest }

// TransportError is a failure to get any response at all (DNS, refused connection, timeout).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("request failed: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// Kind classifies the terminal state of an aggregation operation.
type Kind int

const (
	KindInternal      Kind = iota // unclassified failure
	KindBadRequest                // client input invalid
	KindMisconfigured             // required credential missing
	KindNotFound                  // provider had no match
	KindUpstream                  // catalog call failed
	KindUnavailable               // lyrics provider call failed
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindMisconfigured:
		return "misconfigured"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Status maps the kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is the error returned by every [Aggregator] operation.
//
// Message is the short, user visible reason; Detail is optional human readable context.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the [Kind] of err, or [KindInternal] if err is not an [*Error].
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// AsError returns err as an [*Error], wrapping unclassified errors as [KindInternal].
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return internalError(err)
}

func badRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg, Err: shared.ErrInvalidInput}
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: "An unexpected error occurred", Detail: err.Error(), Err: err}
}
