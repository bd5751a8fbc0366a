package walleterr

import (
	"encoding"
	"encoding/json"
	"strings"
)

// convertForJSONMarshalling replaces the given obj if it's a builtin "error" interface with its string representation
// (obj.Error()), because "error" is marshaled as nil by the standard json library.
//
// If the obj implements custom JSON marshalling or is not an error, the obj is returned unchanged.
//
// The boolean return value is true if the obj was converted, false otherwise.
func convertForJSONMarshalling(obj interface{}) (interface{}, bool) {
	switch t := obj.(type) {
	case json.Marshaler,
		encoding.TextMarshaler,
		*Error:
		// no conversion needed - they marshal correctly
	case error:
		return t.Error(), true
	}
	return obj, false
}

func stacktraceToArray(s string) []string {
	// trim empty lines or lines containing only whitespace
	s = strings.Trim(s, "\n\t ")
	if s == "" {
		return []string{}
	}

	res := strings.Split(s, "\n")
	for i, line := range res {
		res[i] = strings.Trim(line, "\t\n ")
	}
	return res
}
