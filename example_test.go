package walleterr_test

import (
	"fmt"

	walleterr "github.com/MicrohexHQ/wallet-errors-go"
	"github.com/MicrohexHQ/wallet-errors-go/symcipher"
)

func ExampleUnsupported() {
	err := walleterr.Unsupported("watch-only accounts")
	fmt.Println(err)

	// Output:
	// Unsupported: watch-only accounts
}

func ExampleWrap() {
	fmt.Println(walleterr.Wrap(symcipher.ErrInvalidPadding))
	fmt.Println(walleterr.Wrap(walleterr.Str("connection reset")))

	// Output:
	// Cipher error: invalid padding
	// IO error: connection reset
}

func ExampleToIOError() {
	// only the I/O variant converts back to the error it wraps - every
	// other kind degrades to an opaque error carrying the rendered message
	err := walleterr.ToIOError(walleterr.WrongPassphrase())
	fmt.Println(err)

	// Output:
	// wrong passphrase
}
