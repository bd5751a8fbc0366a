//go:build !errnostack

package walleterr_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	walleterr "github.com/MicrohexHQ/wallet-errors-go"
)

func createStackTestError() *walleterr.Error {
	return walleterr.WrongNetwork()
}

func TestStacktraceCapture(t *testing.T) {
	err := createStackTestError()

	// Error() stays deterministic: no stacktrace unless explicitly requested
	assert.Equal(t, "wrong network", err.Error())

	s := err.FormatError(true)
	assert.True(t, strings.HasPrefix(s, "wrong network\n"))
	assert.Contains(t, s, "createStackTestError")
	assert.Contains(t, s, "TestStacktraceCapture")
}

func TestPrintStacktrace(t *testing.T) {
	defer func() { walleterr.PrintStacktrace = false }()
	walleterr.PrintStacktrace = true

	err := createStackTestError()
	assert.Contains(t, err.Error(), "createStackTestError")
}

func TestClearStacktrace(t *testing.T) {
	err := createStackTestError()
	cleared := err.ClearStacktrace()
	assert.Equal(t, "wrong network", cleared.FormatError(true))
	// the original is untouched
	assert.Contains(t, err.FormatError(true), "createStackTestError")
}

func TestNoStacktraceCapture(t *testing.T) {
	defer walleterr.SetPopulateStacktrace(true)
	walleterr.SetPopulateStacktrace(false)

	err := createStackTestError()
	assert.Equal(t, "wrong network", err.FormatError(true))
}

func TestMarshalStacktrace(t *testing.T) {
	defer func() { walleterr.MarshalStacktrace = false }()
	walleterr.MarshalStacktrace = true

	bts, err := json.Marshal(createStackTestError())
	require.NoError(t, err)

	obj := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(bts, &obj))
	assert.Equal(t, "wrong network", obj["message"])
	require.Contains(t, obj, "stacktrace")
	lines, ok := obj["stacktrace"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, lines)
}
