package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValid(t *testing.T) {
	tests := []struct {
		format Format
		valid  bool
	}{
		{FormatYAML, true},
		{FormatJSON, true},
		{FormatTable, true},
		{Format("dir"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "table", FormatTable.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		ok    bool
	}{
		{"", FormatTable, true},
		{"table", FormatTable, true},
		{"JSON", FormatJSON, true},
		{"yml", FormatYAML, true},
		{" yaml ", FormatYAML, true},
		{"xml", FormatTable, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestValidFormats(t *testing.T) {
	for _, f := range ValidFormats() {
		assert.True(t, Format(f).Valid(), f)
	}
}
