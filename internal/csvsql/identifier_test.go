package csvsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "age", want: `"age"`},
		{name: "with_space", input: "first name", want: `"first name"`},
		{name: "with_double_quote", input: `my"col`, want: `"my""col"`},
		{name: "empty", input: "", want: `""`},
		{name: "unicode", input: "größe", want: `"größe"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteIdentifier(tt.input))
		})
	}
}

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "data.csv", want: "'data.csv'"},
		{name: "with_single_quote", input: "it's.csv", want: "'it''s.csv'"},
		{name: "empty", input: "", want: "''"},
		{name: "windows_path", input: `C:\data\in.csv`, want: `'C:\data\in.csv'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteLiteral(tt.input))
		})
	}
}

func TestValidateDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "auto", input: ""},
		{name: "comma", input: ","},
		{name: "tab", input: "\t"},
		{name: "multi_byte", input: "||"},
		{name: "too_long", input: "|||||", wantErr: "at most 4 bytes"},
		{name: "newline", input: "\n", wantErr: "line breaks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDelimiter(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
