package rwf

import (
	"github.com/cockroachdb/errors"
)

// Protocol version written and understood by this package.
const (
	MajorVersion = 14
	MinorVersion = 1
)

// MaxLevels is the deepest container nesting an iterator can track.
const MaxLevels = 16

// level is one container being encoded or decoded.
type level struct {
	start int
	end   int
	// bounded is false when the level extends to the end of the
	// buffer, in which case end follows the buffer on realignment.
	bounded bool
}

// EncodeIterator tracks the write position in a buffer and the stack of
// containers being encoded. It must not be shared between goroutines.
type EncodeIterator struct {
	buf    *Buffer
	data   []byte
	start  int
	cur    int
	major  int
	minor  int
	depth  int
	levels [MaxLevels + 1]level
	nonRWF bool
}

// NewEncodeIterator returns a cleared iterator.
func NewEncodeIterator() *EncodeIterator {
	var it EncodeIterator
	it.Clear()
	return &it
}

// Clear resets the iterator. The buffer must be set again before encoding.
func (it *EncodeIterator) Clear() {
	*it = EncodeIterator{}
}

// SetBufferAndRWFVersion binds the iterator to b. Encoded data is written
// starting at b.Position and may use up to b.Length bytes.
func (it *EncodeIterator) SetBufferAndRWFVersion(b *Buffer, major, minor int) error {
	if b == nil || !b.Bound() {
		return errors.Wrap(ErrFailure, "buffer has no backing data")
	}
	if major != MajorVersion {
		return errors.Wrapf(ErrVersionNotSupported, "RWF version %d.%d", major, minor)
	}

	it.Clear()
	it.buf = b
	it.data = b.data
	it.start = b.position
	it.cur = b.position
	it.major = major
	it.minor = minor
	it.levels[0] = level{start: b.position, end: b.position + b.length}
	return nil
}

func (it *EncodeIterator) MajorVersion() int {
	return it.major
}

func (it *EncodeIterator) MinorVersion() int {
	return it.minor
}

// Buffer returns the buffer the iterator is bound to.
func (it *EncodeIterator) Buffer() *Buffer {
	return it.buf
}

// Depth returns the number of levels pushed on top of the root.
func (it *EncodeIterator) Depth() int {
	return it.depth
}

// Remaining returns the number of bytes that can still be written at the
// current level.
func (it *EncodeIterator) Remaining() int {
	return it.levels[it.depth].end - it.cur
}

// EncodedLength returns the number of bytes written since the buffer
// was set.
func (it *EncodeIterator) EncodedLength() int {
	return it.cur - it.start
}

// Bytes returns the encoded bytes. The slice aliases the buffer.
func (it *EncodeIterator) Bytes() []byte {
	if it.data == nil {
		return nil
	}
	return it.data[it.start:it.cur]
}

// PushLevel starts a nested container at the current position. A negative
// maxLength lets the container use all the space of its parent.
func (it *EncodeIterator) PushLevel(maxLength int) error {
	if it.data == nil {
		return ErrFailure
	}
	if it.depth == MaxLevels {
		return ErrIteratorOverrun
	}

	parent := it.levels[it.depth]
	l := level{start: it.cur, end: parent.end, bounded: parent.bounded}
	if maxLength >= 0 && it.cur+maxLength < parent.end {
		l.end = it.cur + maxLength
		l.bounded = true
	}

	it.depth++
	it.levels[it.depth] = l
	return nil
}

// PopLevel ends the current container and returns the number of bytes
// written inside it.
func (it *EncodeIterator) PopLevel() (int, error) {
	if it.depth == 0 {
		return 0, errors.Wrap(ErrFailure, "no level to pop")
	}

	n := it.cur - it.levels[it.depth].start
	it.depth--
	return n, nil
}

// reserve returns the next n bytes of the buffer and moves past them.
func (it *EncodeIterator) reserve(n int) ([]byte, error) {
	if it.data == nil {
		return nil, errors.Wrap(ErrFailure, "iterator has no buffer")
	}
	if it.nonRWF {
		return nil, errors.Wrap(ErrFailure, "non-RWF encoding in progress")
	}
	if it.cur+n > it.levels[it.depth].end {
		return nil, ErrBufferTooSmall
	}

	p := it.data[it.cur : it.cur+n]
	it.cur += n
	return p, nil
}

// EncodeNonRWFInit points sub at the free space of the current level so
// that data in another format, or produced by another iterator, can be
// written in place. The iterator can't be used until
// EncodeNonRWFComplete is called.
func (it *EncodeIterator) EncodeNonRWFInit(sub *Buffer) error {
	if sub == nil {
		return errors.Wrap(ErrInvalidArgument, "nil buffer")
	}
	if it.data == nil {
		return errors.Wrap(ErrFailure, "iterator has no buffer")
	}
	if it.nonRWF {
		return errors.Wrap(ErrFailure, "non-RWF encoding already in progress")
	}

	sub.data = it.data
	sub.position = it.cur
	sub.length = it.levels[it.depth].end - it.cur
	sub.text = false
	it.nonRWF = true
	return nil
}

// EncodeNonRWFComplete ends a non-RWF encoding started with
// EncodeNonRWFInit. If commit is true, sub.Length bytes become part of
// the encoding, otherwise they are discarded.
func (it *EncodeIterator) EncodeNonRWFComplete(sub *Buffer, commit bool) error {
	if sub == nil {
		return errors.Wrap(ErrInvalidArgument, "nil buffer")
	}
	if !it.nonRWF {
		return errors.Wrap(ErrFailure, "no non-RWF encoding in progress")
	}
	it.nonRWF = false

	if !commit {
		return nil
	}
	if sub.position != it.cur || len(sub.data) != len(it.data) {
		return errors.Wrap(ErrInvalidArgument, "buffer was not initialized by this iterator")
	}
	if it.cur+sub.length > it.levels[it.depth].end {
		return ErrBufferTooSmall
	}

	it.cur += sub.length
	return nil
}

// RealignBuffer moves the data encoded so far into b, which must be at
// least as large as the current buffer, and continues encoding there.
func (it *EncodeIterator) RealignBuffer(b *Buffer) error {
	if b == nil || !b.Bound() {
		return errors.Wrap(ErrInvalidArgument, "buffer has no backing data")
	}
	if it.data == nil {
		return errors.Wrap(ErrFailure, "iterator has no buffer")
	}
	if b.length < it.levels[0].end-it.start {
		return ErrBufferTooSmall
	}

	copy(b.data[b.position:], it.data[it.start:it.cur])

	offset := b.position - it.start
	end := b.position + b.length
	for i := 0; i <= it.depth; i++ {
		l := &it.levels[i]
		l.start += offset
		if l.bounded {
			l.end += offset
		} else {
			l.end = end
		}
	}

	it.buf = b
	it.data = b.data
	it.start = b.position
	it.cur += offset
	return nil
}

// DecodeIterator tracks the read position in a buffer and the stack of
// containers being decoded. It must not be shared between goroutines.
type DecodeIterator struct {
	buf    *Buffer
	data   []byte
	cur    int
	major  int
	minor  int
	depth  int
	levels [MaxLevels + 1]level
}

// NewDecodeIterator returns a cleared iterator.
func NewDecodeIterator() *DecodeIterator {
	var it DecodeIterator
	it.Clear()
	return &it
}

// Clear resets the iterator.
func (it *DecodeIterator) Clear() {
	*it = DecodeIterator{}
}

// SetBufferAndRWFVersion binds the iterator to the contents of b. The
// version is the one declared by the encoder and is recorded as is.
func (it *DecodeIterator) SetBufferAndRWFVersion(b *Buffer, major, minor int) error {
	if b == nil || !b.Bound() {
		return errors.Wrap(ErrFailure, "buffer has no backing data")
	}

	it.Clear()
	it.buf = b
	it.data = b.data
	it.cur = b.position
	it.major = major
	it.minor = minor
	it.levels[0] = level{start: b.position, end: b.position + b.length, bounded: true}
	return nil
}

func (it *DecodeIterator) MajorVersion() int {
	return it.major
}

func (it *DecodeIterator) MinorVersion() int {
	return it.minor
}

// Buffer returns the buffer the iterator is bound to.
func (it *DecodeIterator) Buffer() *Buffer {
	return it.buf
}

// Depth returns the number of levels pushed on top of the root.
func (it *DecodeIterator) Depth() int {
	return it.depth
}

// Position returns the offset of the cursor in the buffer data.
func (it *DecodeIterator) Position() int {
	return it.cur
}

// Remaining returns the number of bytes between the cursor and the end of
// the current level.
func (it *DecodeIterator) Remaining() int {
	return it.levels[it.depth].end - it.cur
}

// PushLevel marks the next length bytes as a nested container.
func (it *DecodeIterator) PushLevel(length int) error {
	if it.data == nil {
		return ErrFailure
	}
	if it.depth == MaxLevels {
		return ErrIteratorOverrun
	}
	if length < 0 || it.cur+length > it.levels[it.depth].end {
		return ErrIncompleteData
	}

	it.depth++
	it.levels[it.depth] = level{start: it.cur, end: it.cur + length, bounded: true}
	return nil
}

// PopLevel leaves the current container and moves the cursor past it.
func (it *DecodeIterator) PopLevel() error {
	if it.depth == 0 {
		return errors.Wrap(ErrFailure, "no level to pop")
	}

	it.cur = it.levels[it.depth].end
	it.depth--
	return nil
}

// Skip moves the cursor n bytes forward within the current level.
func (it *DecodeIterator) Skip(n int) error {
	if n < 0 || n > it.Remaining() {
		return ErrIncompleteData
	}

	it.cur += n
	return nil
}

// span returns the bytes between the cursor and the end of the current
// level, which is what a primitive decoder works on.
func (it *DecodeIterator) span() ([]byte, error) {
	if it.data == nil {
		return nil, errors.Wrap(ErrFailure, "iterator has no buffer")
	}
	return it.data[it.cur:it.levels[it.depth].end], nil
}

// next returns the next n bytes of the current level and moves past them.
func (it *DecodeIterator) next(n int) ([]byte, error) {
	if it.data == nil {
		return nil, errors.Wrap(ErrFailure, "iterator has no buffer")
	}
	if it.cur+n > it.levels[it.depth].end {
		return nil, ErrIncompleteData
	}

	p := it.data[it.cur : it.cur+n]
	it.cur += n
	return p, nil
}
