package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    string
		wantErr bool
	}{
		{
			name: "struct com operadores sql não é escapado",
			in: struct {
				SQL string `json:"sql"`
			}{SQL: "age >= ? AND age <= ?"},
			want: "{\n  \"sql\": \"age >= ? AND age <= ?\"\n}",
		},
		{
			name: "bytes são reindentados",
			in:   []byte(`{"b":1,"a":[2]}`),
			want: "{\n  \"a\": [\n    2\n  ],\n  \"b\": 1\n}",
		},
		{
			name:    "bytes inválidos",
			in:      []byte(`{"a":`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrettyJson(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
