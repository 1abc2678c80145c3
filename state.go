package rwf

import (
	"strconv"
	"strings"

	"github.com/chaisql/rwf/internal/encoding"
	"github.com/cockroachdb/errors"
)

// State is the health of a stream: its stream state, the state of its
// data, a code and an optional text.
type State struct {
	streamState StreamState
	dataState   DataState
	code        StateCode
	text        Buffer
	blank       bool
}

// NewState returns a State without text.
func NewState(stream StreamState, data DataState, code StateCode) (State, error) {
	var s State
	if err := s.SetStreamState(stream); err != nil {
		return State{}, err
	}
	if err := s.SetDataState(data); err != nil {
		return State{}, err
	}
	if err := s.SetCode(code); err != nil {
		return State{}, err
	}
	return s, nil
}

// BlankState returns a blank State.
func BlankState() State {
	return State{blank: true}
}

func (s State) StreamState() StreamState { return s.streamState }
func (s State) DataState() DataState     { return s.dataState }
func (s State) Code() StateCode          { return s.code }

// Text returns the text of s. The returned buffer shares its bytes with s.
func (s State) Text() Buffer { return s.text }

func (s *State) SetStreamState(st StreamState) error {
	if st > maxStreamState {
		return invalidArgf("stream state %d out of range", st)
	}
	s.streamState = st
	s.blank = false
	return nil
}

func (s *State) SetDataState(d DataState) error {
	if d > maxDataState {
		return invalidArgf("data state %d out of range", d)
	}
	s.dataState = d
	s.blank = false
	return nil
}

func (s *State) SetCode(c StateCode) error {
	if c > MaxStateCode {
		return invalidArgf("state code %d out of range", c)
	}
	s.code = c
	s.blank = false
	return nil
}

// SetText makes s refer to the bytes of b. They are not copied.
func (s *State) SetText(b Buffer) error {
	if b.length > encoding.MaxRB15 {
		return errors.Wrapf(ErrValueOutOfRange, "state text of %d bytes", b.length)
	}
	s.text = b
	s.blank = false
	return nil
}

// SetTextString is like SetText for a string.
func (s *State) SetTextString(text string) error {
	return s.SetText(*NewStringBuffer(text))
}

func (s State) IsBlank() bool {
	return s.blank
}

func (s *State) Blank() {
	*s = State{blank: true}
}

func (s *State) Clear() {
	*s = State{}
}

// Equal compares the states, codes and the bytes of both texts.
func (s State) Equal(other State) bool {
	return s.blank == other.blank &&
		s.streamState == other.streamState &&
		s.dataState == other.dataState &&
		s.code == other.code &&
		s.text.Equal(&other.text)
}

// Copy copies s into dst. The text is copied into new memory owned by dst.
func (s State) Copy(dst *State) error {
	if dst == nil {
		return ErrInvalidArgument
	}

	*dst = s
	dst.text = s.text.Clone()
	return nil
}

// String returns the states and the code separated by slashes, followed
// by the quoted text if there is one: Open/Ok/None "all good".
func (s State) String() string {
	if s.blank {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(s.streamState.String())
	sb.WriteByte('/')
	sb.WriteString(s.dataState.String())
	sb.WriteByte('/')
	sb.WriteString(s.code.String())
	if s.text.length > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(s.text.String()))
	}
	return sb.String()
}

// Parse sets s from the layout written by String. The code may be left
// out, in which case it is CodeNone.
func (s *State) Parse(str string) error {
	str = strings.TrimSpace(str)
	if str == "" {
		s.Blank()
		return nil
	}

	head, quoted, _ := strings.Cut(str, " ")
	parts := strings.Split(head, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return invalidArgf("invalid state %q", str)
	}

	var ns State
	var err error
	if ns.streamState, err = ParseStreamState(parts[0]); err != nil {
		return err
	}
	if ns.dataState, err = ParseDataState(parts[1]); err != nil {
		return err
	}
	if len(parts) == 3 {
		if ns.code, err = ParseStateCode(parts[2]); err != nil {
			return err
		}
	}

	if quoted = strings.TrimSpace(quoted); quoted != "" {
		text, err := strconv.Unquote(quoted)
		if err != nil {
			return invalidArgf("invalid state text %s", quoted)
		}
		if err := ns.SetTextString(text); err != nil {
			return err
		}
	}

	*s = ns
	return nil
}

// Encode writes the stream and data states on one byte, the code on the
// next, then the text preceded by its length. A blank State, or one
// whose stream state is unspecified, cannot be encoded.
func (s State) Encode(it *EncodeIterator) error {
	switch {
	case s.blank:
		return invalidArgf("cannot encode a blank state")
	case s.streamState == StreamUnspecified:
		return invalidArgf("cannot encode a state with an unspecified stream state")
	}

	n := s.text.length
	if n > encoding.MaxRB15 {
		return errors.Wrapf(ErrValueOutOfRange, "state text of %d bytes", n)
	}

	dst, err := it.reserve(2 + encoding.RB15Size(n) + n)
	if err != nil {
		return err
	}

	dst[0] = byte(s.streamState)<<encoding.StateStreamShift | byte(s.dataState)
	dst[1] = byte(s.code)
	off := 2 + encoding.PutRB15(dst[2:], n)
	copy(dst[off:], s.text.Data())
	return nil
}

// Decode reads s from the bytes remaining at the current level. The text
// refers to the iterator's data.
func (s *State) Decode(it *DecodeIterator) error {
	src, err := it.span()
	if err != nil {
		return err
	}

	switch {
	case len(src) == 0:
		s.Blank()
		return ErrBlankData
	case len(src) < 3:
		return ErrIncompleteData
	}

	n, size := encoding.DecodeRB15(src[2:])
	if size == 0 || len(src) < 2+size+n {
		return ErrIncompleteData
	}
	if len(src) > 2+size+n {
		return ErrInvalidData
	}

	var ns State
	ns.streamState = StreamState(src[0] >> encoding.StateStreamShift)
	ns.dataState = DataState(src[0] & encoding.StateDataMask)
	ns.code = StateCode(src[1])
	if n > 0 {
		_ = ns.text.SetDataRange(src, 2+size, n)
	}

	*s = ns
	return nil
}
