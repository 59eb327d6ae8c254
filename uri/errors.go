package uri

import "github.com/ghettovoice/gouri/internal/errorutil"

// Error represents a URI error.
// See [errorutil.Error].
type Error = errorutil.Error

// ErrInvalidURI is returned by [Parse] when the input string cannot be
// decomposed into URI components. The error message carries the offending
// input for diagnostics.
const ErrInvalidURI Error = "invalid URI"

const (
	errEmptyInput   Error = "empty input"
	errNoComponents Error = "no URI components"
)

func newInvalidURIError(input string, cause error) error {
	return errorutil.NewWrapperError(ErrInvalidURI, "%q: %s", input, cause) //errtrace:skip
}
