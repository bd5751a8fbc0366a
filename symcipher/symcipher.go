// Package symcipher defines the error surface of the symmetric cipher that
// protects the wallet's secret material. The cipher itself lives behind this
// surface; callers only ever see one of the two Error values defined here.
package symcipher

// Error identifies a symmetric cipher failure. The set of values is closed:
// ErrInvalidLength and ErrInvalidPadding are the only failures the cipher
// reports. Error carries no nested cause.
type Error int

const (
	// ErrInvalidLength indicates key or ciphertext material whose length does
	// not match what the cipher requires.
	ErrInvalidLength Error = iota

	// ErrInvalidPadding indicates malformed plaintext padding, typically the
	// result of decrypting with the wrong key.
	ErrInvalidPadding
)

// Error satisfies the error interface. Values outside the closed set are not
// constructible through this package and render as unknown.
func (e Error) Error() string {
	switch e {
	case ErrInvalidLength:
		return "invalid length"
	case ErrInvalidPadding:
		return "invalid padding"
	default:
		return "unknown cipher error"
	}
}
