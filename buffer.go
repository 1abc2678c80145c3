package rwf

import (
	"bytes"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Buffer is a view over a byte region: the Length bytes starting at
// Position. The region is either a byte slice owned by the caller or
// the bytes of a text string. Binding a buffer never copies.
//
// A Buffer is also the Buffer primitive, an opaque run of bytes whose
// length is given by the enclosing level.
type Buffer struct {
	data     []byte
	position int
	length   int
	text     bool
}

// NewBuffer returns a buffer bound to p.
func NewBuffer(p []byte) *Buffer {
	var b Buffer
	_ = b.SetData(p)
	return &b
}

// NewStringBuffer returns a buffer bound to the bytes of s.
func NewStringBuffer(s string) *Buffer {
	var b Buffer
	b.SetString(s)
	return &b
}

// SetData binds the buffer to the whole of p.
func (b *Buffer) SetData(p []byte) error {
	if p == nil {
		return errors.Wrap(ErrInvalidArgument, "nil buffer data")
	}

	b.data = p
	b.position = 0
	b.length = len(p)
	b.text = false
	return nil
}

// SetDataRange binds the buffer to length bytes of p starting at position.
func (b *Buffer) SetDataRange(p []byte, position, length int) error {
	if p == nil {
		return errors.Wrap(ErrInvalidArgument, "nil buffer data")
	}
	if position < 0 || length < 0 || position+length > len(p) {
		return invalidArgf("range [%d:%d] outside of %d bytes", position, position+length, len(p))
	}

	b.data = p
	b.position = position
	b.length = length
	b.text = false
	return nil
}

// SetString binds the buffer to the bytes of s. Text buffers can be
// read and copied from, but not copied into.
func (b *Buffer) SetString(s string) {
	b.data = []byte(s)
	b.position = 0
	b.length = len(s)
	b.text = true
}

// Clear unbinds the buffer.
func (b *Buffer) Clear() {
	*b = Buffer{}
}

func (b *Buffer) Position() int {
	return b.position
}

func (b *Buffer) Length() int {
	return b.length
}

// SetLength changes the number of bytes the view covers.
func (b *Buffer) SetLength(n int) error {
	if n < 0 || n > b.Capacity() {
		return invalidArgf("length %d exceeds capacity %d", n, b.Capacity())
	}

	b.length = n
	return nil
}

// Capacity is the number of bytes available from Position to the end of
// the backing region.
func (b *Buffer) Capacity() int {
	return len(b.data) - b.position
}

// Data returns the bytes covered by the view. The slice aliases the
// backing region.
func (b *Buffer) Data() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[b.position : b.position+b.length]
}

// Bound reports whether the buffer has a backing region.
func (b *Buffer) Bound() bool {
	return b.data != nil
}

// IsBlank reports whether the buffer is empty.
func (b *Buffer) IsBlank() bool {
	return b.length == 0
}

// Equal reports whether both buffers cover the same bytes. Buffers of
// different lengths are never equal, and a nil buffer only equals nil.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil || b.length != other.length {
		return false
	}

	return bytes.Equal(b.Data(), other.Data())
}

// Copy copies the buffer contents into the backing region of dst,
// starting at its position, and sets the length of dst.
func (b *Buffer) Copy(dst *Buffer) error {
	if dst == nil || dst.data == nil {
		return errors.Wrap(ErrInvalidArgument, "unbound destination")
	}
	if dst.text {
		return errors.Wrap(ErrInvalidArgument, "cannot copy into a text buffer")
	}
	if b.data == nil {
		return errors.Wrap(ErrInvalidArgument, "unbound source")
	}
	if dst.Capacity() < b.length {
		return ErrBufferTooSmall
	}

	copy(dst.data[dst.position:], b.Data())
	dst.length = b.length
	return nil
}

// CopyBytes copies the buffer contents at the start of dst.
func (b *Buffer) CopyBytes(dst []byte) error {
	return b.CopyBytesAt(dst, 0)
}

// CopyBytesAt copies the buffer contents into dst starting at offset.
func (b *Buffer) CopyBytesAt(dst []byte, offset int) error {
	if dst == nil || offset < 0 {
		return errors.Wrap(ErrInvalidArgument, "invalid destination")
	}
	if b.data == nil {
		return errors.Wrap(ErrInvalidArgument, "unbound source")
	}
	if len(dst)-offset < b.length {
		return ErrBufferTooSmall
	}

	copy(dst[offset:], b.Data())
	return nil
}

// AppendTo appends the buffer contents to dst.
func (b *Buffer) AppendTo(dst []byte) []byte {
	return append(dst, b.Data()...)
}

// Clone returns a buffer with its own copy of the contents.
func (b *Buffer) Clone() Buffer {
	if b.data == nil {
		return Buffer{}
	}

	cp := make([]byte, b.length)
	copy(cp, b.Data())
	return Buffer{data: cp, length: b.length, text: b.text}
}

// String returns the contents as text.
func (b *Buffer) String() string {
	return string(b.Data())
}

// HexDump renders the contents 16 bytes per line.
func (b *Buffer) HexDump() string {
	return encoding.HexDump(b.Data())
}

// Parse binds the buffer to a copy of s. Parsing never fails, it only
// exists so that every primitive can be built from text.
func (b *Buffer) Parse(s string) error {
	b.SetString(s)
	b.text = false
	return nil
}

// Encode writes the contents at the current position of the iterator.
func (b *Buffer) Encode(it *EncodeIterator) error {
	dst, err := it.reserve(b.length)
	if err != nil {
		return err
	}

	copy(dst, b.Data())
	return nil
}

// Decode binds the buffer to the bytes remaining at the current level of
// the iterator. The buffer aliases the iterator's data.
func (b *Buffer) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	b.text = false
	b.data = src
	b.position = 0
	b.length = len(src)
	if len(src) == 0 {
		return ErrBlankData
	}
	return nil
}
