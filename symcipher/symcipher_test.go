package symcipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MicrohexHQ/wallet-errors-go/symcipher"
)

func TestError(t *testing.T) {
	assert.Equal(t, "invalid length", symcipher.ErrInvalidLength.Error())
	assert.Equal(t, "invalid padding", symcipher.ErrInvalidPadding.Error())
	assert.NotEqual(t, symcipher.ErrInvalidLength, symcipher.ErrInvalidPadding)

	var err error = symcipher.ErrInvalidLength
	assert.EqualError(t, err, "invalid length")
}

func TestErrorUnknownValue(t *testing.T) {
	// not constructible through the package API, but must render distinctly
	assert.Equal(t, "unknown cipher error", symcipher.Error(42).Error())
}
