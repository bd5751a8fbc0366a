package walleterr

import (
	stderrors "errors"

	"github.com/btcsuite/btcutil/hdkeychain"
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"

	"github.com/MicrohexHQ/wallet-errors-go/symcipher"
)

// hdErrors lists the sentinel errors of the hdkeychain package. The list must cover every error the package can
// return from key derivation.
var hdErrors = []error{
	hdkeychain.ErrDeriveHardFromPublic,
	hdkeychain.ErrDeriveBeyondMaxDepth,
	hdkeychain.ErrNotPrivExtKey,
	hdkeychain.ErrInvalidChild,
	hdkeychain.ErrUnusableSeed,
	hdkeychain.ErrInvalidSeedLen,
	hdkeychain.ErrBadChecksum,
	hdkeychain.ErrInvalidKeyLen,
}

// Wrap converts an arbitrary subsystem error into the matching wallet error:
//
//   - a symcipher.Error becomes a Cipher error
//   - a secp256k1.Error, ecdsa.Error or schnorr.Error from the secp256k1 library becomes a Secp256k1 error
//   - an hdkeychain sentinel error becomes a KeyDerivation error
//   - everything else becomes an I/O error, the catch-all bucket through which all remaining failures reach the
//     wallet
//
// Returns err unchanged if it is already an *Error, and nil if err is nil.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}

	var cerr symcipher.Error
	if stderrors.As(err, &cerr) {
		return CipherError(cerr)
	}

	var secpErr secp256k1.Error
	if stderrors.As(err, &secpErr) {
		return SecpError(err)
	}
	var ecdsaErr ecdsa.Error
	if stderrors.As(err, &ecdsaErr) {
		return SecpError(err)
	}
	var schnorrErr schnorr.Error
	if stderrors.As(err, &schnorrErr) {
		return SecpError(err)
	}

	for _, hd := range hdErrors {
		if stderrors.Is(err, hd) {
			return KeyDerivationError(err)
		}
	}

	return IOError(err)
}
