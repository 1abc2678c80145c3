package testutil

import (
	"testing"

	"github.com/chaisql/rwf/internal/store"
	"github.com/chaisql/rwf/internal/testutil/assert"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/rs/zerolog"
)

// NewMemStore opens a sample store on an in-memory filesystem. It is
// closed when the test ends.
func NewMemStore(t testing.TB) *store.Store {
	t.Helper()

	st, err := store.Open("", store.Options{
		FS:     vfs.NewMem(),
		Logger: zerolog.New(zerolog.NewTestWriter(t)),
	})
	assert.NoError(t, err)

	t.Cleanup(func() {
		st.Close()
	})

	return st
}
