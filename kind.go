package walleterr

// Kind identifies the failure domain of an Error. The set of kinds is closed:
// every failure a wallet operation can produce maps to exactly one of the
// kinds in K, and there is no registration mechanism for additional kinds.
type Kind string

// K defines the kinds of wallet errors.
var K = struct {
	Unsupported   Kind // The requested operation or feature is not supported.
	Mnemonic      Kind // The mnemonic sentence is malformed or fails its checksum.
	Passphrase    Kind // The supplied passphrase does not unlock the wallet.
	Network       Kind // Key material belongs to a different network.
	IO            Kind // External I/O error such as a storage or network failure.
	KeyDerivation Kind // Hierarchical (BIP32) key derivation failed.
	Secp256k1     Kind // A secp256k1 key or signature operation failed.
	Cipher        Kind // The symmetric cipher rejected secret material.
}{
	Unsupported:   "unsupported",
	Mnemonic:      "invalid mnemonic",
	Passphrase:    "wrong passphrase",
	Network:       "wrong network",
	IO:            "I/O error",
	KeyDerivation: "key derivation error",
	Secp256k1:     "secp256k1 error",
	Cipher:        "cipher error",
}

// Kinds returns the closed set of kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		K.Unsupported,
		K.Mnemonic,
		K.Passphrase,
		K.Network,
		K.IO,
		K.KeyDerivation,
		K.Secp256k1,
		K.Cipher,
	}
}
