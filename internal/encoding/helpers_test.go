package encoding_test

import (
	"strings"
	"testing"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestHexDump(t *testing.T) {
	require.Equal(t, "", encoding.HexDump(nil))

	got := encoding.HexDump([]byte("AB\x00"))
	require.Equal(t, "0000: 4142 00"+strings.Repeat(" ", 34)+"AB.", got)

	long := make([]byte, 17)
	for i := range long {
		long[i] = 'a'
	}
	lines := encoding.HexDump(long)
	require.Contains(t, lines, "\n0010: 61")
	require.Contains(t, lines, "0000: 6161 6161 6161 6161 6161 6161 6161 6161  aaaaaaaaaaaaaaaa\n")
}

func TestHexDumpLargeOffset(t *testing.T) {
	b := make([]byte, 0x10011)
	lines := strings.Split(encoding.HexDump(b), "\n")
	require.Len(t, lines, 0x1002)
	require.True(t, strings.HasPrefix(lines[0xfff], "fff0: "))
	require.True(t, strings.HasPrefix(lines[0x1000], "10000: "))
	require.True(t, strings.HasPrefix(lines[0x1001], "10010: 00 "))
}
