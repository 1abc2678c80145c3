/*
Package rwf encodes and decodes the primitive types of the Reuters Wire Format.

RWF is the binary format of OMM messages. This package implements its
primitive layer: integers, floating point numbers, reals, dates, times,
quality of service, stream states and strings. Containers are out of its
scope, but the iterators keep the level stack they need, so that a
container codec can be built on top of them.

Iterators

Values are read and written through iterators bound to a Buffer.

	enc := rwf.NewEncodeIterator()
	err := enc.SetBufferAndRWFVersion(rwf.NewBuffer(make([]byte, 64)), rwf.MajorVersion, rwf.MinorVersion)
	if err != nil {
		return err
	}

	r, err := rwf.NewReal(125, rwf.Exponent_1)
	if err != nil {
		return err
	}
	if err := r.Encode(enc); err != nil {
		return err
	}
	fmt.Printf("%x\n", enc.Bytes()) // 0d7d

An EncodeIterator writes at its current position and fails with
ErrBufferTooSmall when the value does not fit. The buffer can then be
replaced by a larger one with RealignBuffer, keeping what was written.

A DecodeIterator reads the value spanning its current level. At the root,
the level spans the whole buffer. Decoders do not move the iterator: a
value is always decoded from the start of the current level.

Blank values

Every primitive can be blank, meaning the value is present but has no
content. Decoders report a blank value by setting it blank and returning
ErrBlankData, which is not a failure:

	var v rwf.Int
	err := v.Decode(dec)
	switch {
	case rwf.IsBlank(err):
		// v.IsBlank() is true
	case err != nil:
		return err
	}

Return codes

Errors carry a Code. Use errors.Is with the ErrXxx sentinels or CodeOf to
read it back from a wrapped error.

Text

Each primitive has a String method and a Parse method reading the same
layout back. Dates, times and date times also have an ISO 8601 form, and
Real values an exact decimal form.

Primitive

Primitive holds a value of any primitive type along with its DataType.
MarshalPrimitive and UnmarshalPrimitive convert it to and from its
encoded bytes, ParsePrimitive reads it from text.
*/
package rwf
