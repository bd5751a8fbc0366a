/*
Package walleterr provides the unified error type returned by the operations
of the wallet library. Filesystem and network I/O, hierarchical (BIP32) key
derivation, secp256k1 signature operations and the symmetric cipher guarding
secret material each fail with their own error type; walleterr folds all of
them into a single closed set of kinds so that callers can propagate failures
without depending on every subsystem directly.

Errors of kind K.IO, K.KeyDerivation and K.Secp256k1 retain the foreign error
as their cause, available through Cause or the standard Unwrap. The cipher
variant folds its two possible kinds into the rendered message and carries no
cause, since the cipher error type does not expose one itself.

ToIOError degrades a wallet error for boundaries that only understand generic
errors. Only the I/O variant round-trips exactly; every other kind degrades to
a fresh error carrying nothing but the rendered message. The conversion is not
an inverse of the wrapping constructors.
*/
package walleterr
