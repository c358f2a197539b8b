package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// prettyAPI não escapa <, > e &, que aparecem nas queries SQL
var prettyAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// PrettyJson serializa qualquer valor como JSON indentado.
// []byte é tratado como JSON já serializado.
func PrettyJson(in any) (string, error) {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := prettyAPI.Unmarshal(raw, &decoded); err != nil {
			return "", err
		}
		in = decoded
	}

	out, err := prettyAPI.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
