package rwf

import (
	"fmt"
	"strings"
)

// DataType identifies the type of an encoded value. The numbering is
// the one used on the wire by container headers.
type DataType uint8

// List of primitive data types.
const (
	DataTypeUnknown     DataType = 0
	DataTypeInt         DataType = 3
	DataTypeUInt        DataType = 4
	DataTypeFloat       DataType = 5
	DataTypeDouble      DataType = 6
	DataTypeReal        DataType = 8
	DataTypeDate        DataType = 9
	DataTypeTime        DataType = 10
	DataTypeDateTime    DataType = 11
	DataTypeQos         DataType = 12
	DataTypeState       DataType = 13
	DataTypeEnum        DataType = 14
	DataTypeBuffer      DataType = 16
	DataTypeASCIIString DataType = 17
	DataTypeUTF8String  DataType = 18
	DataTypeRMTESString DataType = 19
	DataTypeReal4RB     DataType = 35
	DataTypeReal8RB     DataType = 36
)

var dataTypeNames = map[DataType]string{
	DataTypeInt:         "int",
	DataTypeUInt:        "uint",
	DataTypeFloat:       "float",
	DataTypeDouble:      "double",
	DataTypeReal:        "real",
	DataTypeDate:        "date",
	DataTypeTime:        "time",
	DataTypeDateTime:    "datetime",
	DataTypeQos:         "qos",
	DataTypeState:       "state",
	DataTypeEnum:        "enum",
	DataTypeBuffer:      "buffer",
	DataTypeASCIIString: "ascii",
	DataTypeUTF8String:  "utf8",
	DataTypeRMTESString: "rmtes",
	DataTypeReal4RB:     "real4rb",
	DataTypeReal8RB:     "real8rb",
}

func (t DataType) String() string {
	if s, ok := dataTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("DataType(%d)", uint8(t))
}

// ParseDataType returns the data type named s, as returned by String.
func ParseDataType(s string) (DataType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range dataTypeNames {
		if name == s {
			return t, nil
		}
	}

	return DataTypeUnknown, invalidArgf("unknown data type %q", s)
}

// IsPrimitive reports whether t is one of the primitive types handled by
// this package.
func (t DataType) IsPrimitive() bool {
	_, ok := dataTypeNames[t]
	return ok
}

// IsString reports whether values of t are carried as a Buffer.
func (t DataType) IsString() bool {
	switch t {
	case DataTypeBuffer, DataTypeASCIIString, DataTypeUTF8String, DataTypeRMTESString:
		return true
	}
	return false
}

// MaxEncodedSize returns the largest encoding of a value of t, or -1
// when the size is not bounded.
func (t DataType) MaxEncodedSize() int {
	switch t {
	case DataTypeInt, DataTypeUInt:
		return 8
	case DataTypeFloat:
		return 4
	case DataTypeDouble:
		return 8
	case DataTypeReal:
		return 9
	case DataTypeDate:
		return 4
	case DataTypeTime:
		return 8
	case DataTypeDateTime:
		return 12
	case DataTypeQos:
		return 5
	case DataTypeEnum:
		return 2
	case DataTypeReal4RB:
		return 5
	case DataTypeReal8RB:
		return 9
	}
	return -1
}
