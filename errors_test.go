package rwf_test

import (
	"testing"

	"github.com/chaisql/rwf"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want rwf.Code
	}{
		{"nil", nil, rwf.CodeSuccess},
		{"sentinel", rwf.ErrIncompleteData, rwf.CodeIncompleteData},
		{"wrapped", errors.Wrap(rwf.ErrBlankData, "decoding"), rwf.CodeBlankData},
		{"twice wrapped", errors.Wrapf(errors.Wrap(rwf.ErrInvalidData, "a"), "b %d", 1), rwf.CodeInvalidData},
		{"foreign", errors.New("boom"), rwf.CodeFailure},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, rwf.CodeOf(test.err))
		})
	}
}

func TestIsBlank(t *testing.T) {
	require.True(t, rwf.IsBlank(rwf.ErrBlankData))
	require.True(t, rwf.IsBlank(errors.Wrap(rwf.ErrBlankData, "x")))
	require.False(t, rwf.IsBlank(rwf.ErrIncompleteData))
	require.False(t, rwf.IsBlank(nil))
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "BUFFER_TOO_SMALL", rwf.CodeBufferTooSmall.String())
	require.Equal(t, "invalid data", rwf.ErrInvalidData.Error())
	require.Equal(t, "Code(42)", rwf.Code(42).String())
	require.Equal(t, "Code(42)", rwf.Code(42).Error())
}
