package register

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		cells [][]string
	}{
		{"scalar", "hello", KindScalar, [][]string{{"hello"}}},
		{"row", "1\t2\t3", KindRow, [][]string{{"1", "2", "3"}}},
		{"block", "1\t2\n3\t4", KindBlock, [][]string{{"1", "2"}, {"3", "4"}}},
		{"ragged block", "a\nb\tc", KindBlock, [][]string{{"a"}, {"b", "c"}}},
		{"trailing newline is dropped", "abc\n", KindScalar, [][]string{{"abc"}}},
		{"crlf", "a\r\nb\r\n", KindBlock, [][]string{{"a"}, {"b"}}},
		{"leading empty cell kept", "\tx", KindRow, [][]string{{"", "x"}}},
		{"binary junk is a scalar", "\x00\x01junk", KindScalar, [][]string{{"\x00\x01junk"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.input)
			require.Equal(t, tt.kind, p.Kind)
			require.Equal(t, tt.cells, p.Cells)
		})
	}
}

func TestParse_BlankIsEmpty(t *testing.T) {
	require.True(t, Parse("").IsEmpty())
	require.True(t, Parse("  \n\n").IsEmpty())
}
