package walleterr

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"sync/atomic"

	"github.com/MicrohexHQ/wallet-errors-go/symcipher"
)

// populateStacktrace controls whether stacktraces are captured on error creation per default or not. This is
// (obviously) a runtime setting - use the "errnostack" build tag to disable stacktrace captures at compile time.
var populateStacktrace = atomic.Bool{}

func init() {
	SetPopulateStacktrace(true)
}

func SetPopulateStacktrace(b bool) {
	populateStacktrace.Store(b)
}

func PopulateStacktrace() bool {
	return populateStacktrace.Load()
}

// PrintStacktrace controls whether Error() appends the captured stacktrace to the rendered message. It is disabled per
// default so that Error() honors the deterministic message contract of this package; diagnostic boundaries that want
// the trace either flip this setting or call FormatError(true).
var PrintStacktrace = false

// PrintStacktracePretty enables additional formatting of stacktraces by aligning functions to the longest source filename.
var PrintStacktracePretty = true

// MarshalStacktrace controls whether stacktraces are marshaled to JSON or not. If enabled, an extra "stacktrace" field
// is added to the error's JSON struct.
var MarshalStacktrace = true

// Error is the unified error type returned by all wallet operations. An Error is immutable after construction and may
// be freely shared across goroutines.
type Error struct {
	// the failure domain - always one of the kinds in K
	kind Kind
	// the variant payload: the caller-supplied text for Unsupported and InvalidMnemonic errors, the folded cipher
	// detail for Cipher errors, empty otherwise
	msg string
	// the wrapped foreign error for IO, KeyDerivation and Secp256k1 errors
	cause error
	// stack information; not used if the 'errnostack' build tag is set
	stack
}

func newError(kind Kind, msg string, cause error) *Error {
	e := &Error{kind: kind, msg: msg, cause: cause}
	if PopulateStacktrace() {
		e.populateStack()
	}
	// remove the exported constructor's frame
	return e.dropStackFrames(1)
}

// Unsupported reports that the requested operation or feature is not supported by this wallet.
func Unsupported(msg string) *Error {
	return newError(K.Unsupported, msg, nil)
}

// InvalidMnemonic reports a mnemonic sentence that is malformed or fails its checksum.
func InvalidMnemonic(msg string) *Error {
	return newError(K.Mnemonic, msg, nil)
}

// WrongPassphrase reports that the supplied passphrase does not unlock the wallet. The check fails locally, so there
// is no foreign cause.
func WrongPassphrase() *Error {
	return newError(K.Passphrase, "", nil)
}

// WrongNetwork reports key material that belongs to a different network.
func WrongNetwork() *Error {
	return newError(K.Network, "", nil)
}

// IOError wraps a generic I/O failure. The given error is retained as the cause and can be recovered exactly through
// ToIOError or Unwrap. Returns nil if err is nil.
func IOError(err error) *Error {
	if err == nil {
		return nil
	}
	return newError(K.IO, "", err)
}

// KeyDerivationError wraps a failure of hierarchical key derivation, such as one of the hdkeychain sentinel errors.
// The given error is retained as the cause. Returns nil if err is nil.
func KeyDerivationError(err error) *Error {
	if err == nil {
		return nil
	}
	return newError(K.KeyDerivation, "", err)
}

// SecpError wraps a failure reported by the secp256k1 library. The given error is retained as the cause. Returns nil
// if err is nil.
func SecpError(err error) *Error {
	if err == nil {
		return nil
	}
	return newError(K.Secp256k1, "", err)
}

// CipherError wraps a symmetric cipher failure. The cipher error's kind is folded into the rendered message and not
// retained as a cause: symcipher.Error carries no cause of its own to chain.
func CipherError(cerr symcipher.Error) *Error {
	return newError(K.Cipher, cerr.Error(), nil)
}

// Kind returns the failure domain of this error.
func (e *Error) Kind() Kind {
	if e == nil {
		return ""
	}
	return e.kind
}

// Cause returns the wrapped foreign error for errors of kind K.IO, K.KeyDerivation and K.Secp256k1, and nil for all
// other kinds, K.Cipher included.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// message renders the deterministic, human-readable message for this error.
func (e *Error) message() string {
	switch e.kind {
	case K.Passphrase:
		return "wrong passphrase"
	case K.Network:
		return "wrong network"
	case K.Unsupported:
		return "Unsupported: " + e.msg
	case K.Mnemonic:
		return "Mnemonic: " + e.msg
	case K.IO:
		return "IO error: " + e.cause.Error()
	case K.KeyDerivation:
		return "BIP32 error: " + e.cause.Error()
	case K.Secp256k1:
		return "Secp256k1 error: " + e.cause.Error()
	case K.Cipher:
		return "Cipher error: " + e.msg
	}
	return string(e.kind)
}

// Error returns the rendered message of this error. The stacktrace is appended if PrintStacktrace is enabled.
func (e *Error) Error() string {
	return e.toString(PrintStacktrace)
}

// ErrorNoTrace returns the rendered message without the stacktrace, regardless of the PrintStacktrace setting.
func (e *Error) ErrorNoTrace() string {
	return e.toString(false)
}

// FormatError converts this error to a string like Error(), but appends the stacktrace (if available) iff printStack
// is true.
func (e *Error) FormatError(printStack bool) string {
	return e.toString(printStack)
}

func (e *Error) toString(printStacktrace bool) string {
	if e == nil {
		return ""
	}
	if !printStacktrace || !e.hasStack() {
		return e.message()
	}
	b := new(bytes.Buffer)
	b.WriteString(e.message())
	b.WriteString("\n")
	e.printStack(b)
	return b.String()
}

// MarshalJSON marshals this error as a JSON object with its kind, message and cause. The stacktrace is included if
// MarshalStacktrace is enabled and a stacktrace was captured.
func (e *Error) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	obj := struct {
		Kind       Kind        `json:"kind"`
		Message    string      `json:"message"`
		Cause      interface{} `json:"cause,omitempty"`
		Stacktrace []string    `json:"stacktrace,omitempty"`
	}{
		Kind:    e.kind,
		Message: e.message(),
	}
	if e.cause != nil {
		obj.Cause, _ = convertForJSONMarshalling(e.cause)
	}
	if MarshalStacktrace && e.hasStack() {
		b := new(bytes.Buffer)
		e.printStack(b)
		obj.Stacktrace = stacktraceToArray(b.String())
	}
	return json.Marshal(obj)
}

// ClearStacktrace creates a copy of this error with the stacktrace removed.
func (e *Error) ClearStacktrace() *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.clearStack()
	return &clone
}

// ToIOError degrades err for a boundary that only understands generic errors. A wallet error of kind K.IO converts
// back to exactly the error it wraps. Every other kind yields a newly constructed opaque error carrying only the
// rendered message, so the conversion is lossy by design and must not be treated as an inverse of the wrapping
// constructors. Errors that are not of type *Error pass through unchanged.
func ToIOError(err error) error {
	if err == nil {
		return nil
	}
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	if e == nil {
		return nil
	}
	if e.kind == K.IO {
		return e.cause
	}
	return Str(e.message())
}

// IsKind reports whether err is an *Error of the given Kind. Returns false if err is nil.
func IsKind(expected Kind, err error) bool {
	e, ok := err.(*Error)
	return ok && e != nil && e.kind == expected
}

// Str is an alias for the standard errors.New() function.
func Str(text string) error {
	return stderrors.New(text)
}
