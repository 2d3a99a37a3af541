package param

import (
	"fmt"
	"strings"
)

// Type is the declared type of a parameter.
type Type uint8

// Parameter types.
const (
	TypeUnknown Type = iota
	TypeFloat
	TypeColor
	TypeImage
	TypePosition
	// TypeVector is a non-displayable vector of up to four components,
	// such as a rectangle or a per-channel bound.
	TypeVector
)

var typeNames = [...]string{
	TypeUnknown:  "unknown",
	TypeFloat:    "float",
	TypeColor:    "color",
	TypeImage:    "image",
	TypePosition: "position",
	TypeVector:   "vector",
}

// String returns the serialized name of the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[TypeUnknown]
}

// ParseType parses a serialized type name. "rectangle" is accepted as an
// alias of "vector".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float", "scalar":
		return TypeFloat, nil
	case "color":
		return TypeColor, nil
	case "image":
		return TypeImage, nil
	case "position":
		return TypePosition, nil
	case "vector", "rectangle":
		return TypeVector, nil
	case "unknown", "":
		return TypeUnknown, nil
	}
	return TypeUnknown, fmt.Errorf("param: unknown parameter type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
