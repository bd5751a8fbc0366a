//go:build errnostack

package walleterr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	walleterr "github.com/MicrohexHQ/wallet-errors-go"
)

// With the errnostack build tag, no stack information is ever captured and
// the rendered message is all there is.
func TestNoStackBuild(t *testing.T) {
	err := walleterr.WrongNetwork()
	assert.Equal(t, "wrong network", err.Error())
	assert.Equal(t, "wrong network", err.FormatError(true))
	assert.Equal(t, "wrong network", err.ClearStacktrace().Error())
}
