package rwf_test

import (
	"testing"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/testutil"
	"github.com/chaisql/rwf/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferBinding(t *testing.T) {
	var b rwf.Buffer
	require.False(t, b.Bound())
	assert.ErrorIs(t, b.SetData(nil), rwf.ErrInvalidArgument)

	data := []byte("hello world")
	assert.NoError(t, b.SetDataRange(data, 6, 5))
	require.Equal(t, "world", b.String())
	require.Equal(t, 6, b.Position())
	require.Equal(t, 5, b.Capacity())

	assert.ErrorIs(t, b.SetDataRange(data, 6, 6), rwf.ErrInvalidArgument)
	assert.ErrorIs(t, b.SetDataRange(data, -1, 2), rwf.ErrInvalidArgument)

	assert.NoError(t, b.SetLength(2))
	require.Equal(t, "wo", b.String())
	assert.ErrorIs(t, b.SetLength(6), rwf.ErrInvalidArgument)

	// views alias the caller's bytes
	data[6] = 'W'
	require.Equal(t, "Wo", b.String())

	b.Clear()
	require.False(t, b.Bound())
	require.True(t, b.IsBlank())
}

func TestBufferEqual(t *testing.T) {
	abc := rwf.NewStringBuffer("abc")

	tests := []struct {
		name  string
		other *rwf.Buffer
		want  bool
	}{
		{"same bytes", rwf.NewBuffer([]byte("abc")), true},
		{"same string", rwf.NewStringBuffer("abc"), true},
		{"trailing nul", rwf.NewStringBuffer("abc\x00"), false},
		{"prefix", rwf.NewStringBuffer("ab"), false},
		{"other bytes", rwf.NewStringBuffer("abd"), false},
		{"nil", nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, abc.Equal(test.other))
			require.Equal(t, test.want, test.other.Equal(abc))
		})
	}

	require.True(t, abc.Equal(abc))

	var nilBuf *rwf.Buffer
	require.True(t, nilBuf.Equal(nil))
	require.False(t, nilBuf.Equal(rwf.NewBuffer([]byte("a"))))
}

func TestBufferCopy(t *testing.T) {
	src := rwf.NewStringBuffer("abcd")

	t.Run("into bytes", func(t *testing.T) {
		dst := rwf.NewBuffer(make([]byte, 8))
		assert.NoError(t, src.Copy(dst))
		require.Equal(t, 4, dst.Length())
		require.Equal(t, "abcd", dst.String())
	})

	t.Run("too small", func(t *testing.T) {
		dst := rwf.NewBuffer(make([]byte, 3))
		assert.ErrorIs(t, src.Copy(dst), rwf.ErrBufferTooSmall)
	})

	t.Run("into text", func(t *testing.T) {
		assert.ErrorIs(t, src.Copy(rwf.NewStringBuffer("12345")), rwf.ErrInvalidArgument)
	})

	t.Run("unbound", func(t *testing.T) {
		assert.ErrorIs(t, src.Copy(&rwf.Buffer{}), rwf.ErrInvalidArgument)
		var empty rwf.Buffer
		assert.ErrorIs(t, empty.Copy(rwf.NewBuffer(make([]byte, 4))), rwf.ErrInvalidArgument)
	})

	t.Run("at offset", func(t *testing.T) {
		dst := []byte("........")
		assert.NoError(t, src.CopyBytesAt(dst, 2))
		require.Equal(t, "..abcd..", string(dst))
		assert.ErrorIs(t, src.CopyBytesAt(dst, 5), rwf.ErrBufferTooSmall)
	})

	t.Run("clone", func(t *testing.T) {
		data := []byte("xyz")
		b := rwf.NewBuffer(data)
		c := b.Clone()
		data[0] = 'X'
		require.Equal(t, "xyz", c.String())
		require.Equal(t, []byte("--xyz"), c.AppendTo([]byte("--")))
	})
}

func TestBufferCodec(t *testing.T) {
	got := testutil.Encode(t, 8, rwf.NewStringBuffer("abc").Encode)
	require.Equal(t, []byte("abc"), got)

	it := testutil.NewEncodeIterator(t, 2)
	assert.ErrorIs(t, rwf.NewStringBuffer("abc").Encode(it), rwf.ErrBufferTooSmall)

	var b rwf.Buffer
	data := []byte("abc")
	assert.NoError(t, b.Decode(testutil.NewDecodeIterator(t, data)))
	data[1] = 'B'
	require.Equal(t, "aBc", b.String())

	assert.ErrorIs(t, b.Decode(testutil.NewDecodeIterator(t, nil)), rwf.ErrBlankData)
	require.True(t, b.IsBlank())
}

func TestBufferHexDump(t *testing.T) {
	require.Equal(t, "0000: 6869                                     hi", rwf.NewStringBuffer("hi").HexDump())
}
