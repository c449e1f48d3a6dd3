package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name   string
		column string
		index  int
		want   string
	}{
		{name: "plain", column: "age", want: "age"},
		{name: "keeps_spaces_and_case", column: "Home City", want: "Home City"},
		{name: "path_separators", column: "in/out\\x", want: "in_out_x"},
		{name: "reserved_chars", column: `a:b*c?"<>|`, want: "a_b_c_____"},
		{name: "control_chars", column: "a\tb", want: "a_b"},
		{name: "empty", column: "", index: 2, want: "column_3"},
		{name: "blank", column: "   ", index: 0, want: "column_1"},
		{name: "dot", column: ".", want: "_"},
		{name: "dotdot", column: "..", want: "__"},
		{name: "unicode", column: "größe", want: "größe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.column, tt.index))
		})
	}
}
