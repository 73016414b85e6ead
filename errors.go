package ed25519

import "github.com/pkg/errors"

// Kind classifies the failure modes an operation in this package can
// produce. Verify never surfaces a Kind to its caller — it swallows
// every decode/arithmetic failure and reports VerifyFalse via its
// boolean return instead; Sign and key derivation propagate Kind-typed
// errors directly.
type Kind int

const (
	// InvalidEncoding marks a malformed byte encoding: wrong length,
	// bad hex, a non-canonical field element, or the negative-zero
	// point encoding in StrictMode.
	InvalidEncoding Kind = iota
	// InvalidPoint marks a 32-byte string that decodes to a y
	// coordinate with no corresponding curve point.
	InvalidPoint
	// InvalidScalar marks a scalar that is zero, or not reduced mod
	// ℓ where reduction is required.
	InvalidScalar
	// InvalidInverse marks a field inversion of zero.
	InvalidInverse
	// ConfigMissing marks an operation invoked before a required
	// collaborator (sync hash, CSPRNG) was installed.
	ConfigMissing
	// VerifyFalse is never wrapped into an error value; it exists so
	// callers can name the outcome of a failed Verify in prose and in
	// tests without conflating it with the Kinds above.
	VerifyFalse
)

func (k Kind) String() string {
	switch k {
	case InvalidEncoding:
		return "invalid encoding"
	case InvalidPoint:
		return "invalid point"
	case InvalidScalar:
		return "invalid scalar"
	case InvalidInverse:
		return "invalid inverse"
	case ConfigMissing:
		return "config missing"
	case VerifyFalse:
		return "verify false"
	default:
		return "unknown error kind"
	}
}

// kindError pairs a Kind with the message wrapping that produced it,
// so callers can recover the Kind with errors.Cause without string
// matching.
type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Cause() error  { return e.err }
func (e *kindError) Kind() Kind    { return e.kind }

// newErr builds a Kind-tagged error from a format string, in the
// manner of errors.Errorf.
func newErr(kind Kind, format string, args ...interface{}) error {
	return &kindError{kind: kind, err: errors.Errorf(format, args...)}
}

// wrapErr tags an existing error with a Kind while preserving it as
// the wrapped cause.
func wrapErr(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: errors.Wrap(err, msg)}
}

// CauseKind extracts the Kind from an error produced by this package,
// returning ok=false for errors of foreign origin.
func CauseKind(err error) (Kind, bool) {
	for err != nil {
		if ke, isKind := err.(*kindError); isKind {
			return ke.kind, true
		}
		cause := errors.Cause(err)
		if cause == err {
			return 0, false
		}
		err = cause
	}
	return 0, false
}
