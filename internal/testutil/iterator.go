// Package testutil provides helpers to build iterators and fixtures in tests.
package testutil

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/testutil/assert"
)

// NewEncodeIterator returns an iterator writing into a new buffer of size
// bytes.
func NewEncodeIterator(t testing.TB, size int) *rwf.EncodeIterator {
	t.Helper()

	it := rwf.NewEncodeIterator()
	err := it.SetBufferAndRWFVersion(rwf.NewBuffer(make([]byte, size)), rwf.MajorVersion, rwf.MinorVersion)
	assert.NoError(t, err)
	return it
}

// NewDecodeIterator returns an iterator reading b.
func NewDecodeIterator(t testing.TB, b []byte) *rwf.DecodeIterator {
	t.Helper()

	if b == nil {
		b = []byte{}
	}
	it := rwf.NewDecodeIterator()
	err := it.SetBufferAndRWFVersion(rwf.NewBuffer(b), rwf.MajorVersion, rwf.MinorVersion)
	assert.NoError(t, err)
	return it
}

// Encode runs fn on an iterator of size bytes and returns what it wrote.
func Encode(t testing.TB, size int, fn func(it *rwf.EncodeIterator) error) []byte {
	t.Helper()

	it := NewEncodeIterator(t, size)
	assert.NoError(t, fn(it))
	return it.Bytes()
}

// Hex decodes a hexadecimal fixture. Spaces are ignored.
func Hex(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	assert.NoError(t, err)
	if b == nil {
		b = []byte{}
	}
	return b
}
