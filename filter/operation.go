package filter

import (
	"fmt"
	"strings"
)

// OperationType selects how a Descriptor routes its inputs.
type OperationType uint8

// Operation types.
const (
	// OperationSingle takes one image and returns the same extent.
	OperationSingle OperationType = iota

	// OperationBlend composites the image over an opacity-scaled second image.
	OperationBlend

	// OperationLookup remaps colors through a lookup table image.
	OperationLookup

	// OperationCustom hands both inputs to the filter unchanged. Chains use it.
	OperationCustom
)

var operationNames = [...]string{
	OperationSingle: "single",
	OperationBlend:  "blend",
	OperationLookup: "lookup",
	OperationCustom: "custom",
}

// String returns the serialized name of the operation type.
func (o OperationType) String() string {
	if int(o) < len(operationNames) {
		return operationNames[o]
	}
	return fmt.Sprintf("OperationType(%d)", o)
}

// ParseOperationType parses a serialized operation type name.
// "singleInput" is accepted as an alias of "single".
func ParseOperationType(s string) (OperationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "singleinput":
		return OperationSingle, nil
	case "blend":
		return OperationBlend, nil
	case "lookup":
		return OperationLookup, nil
	case "custom":
		return OperationCustom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// MarshalText implements encoding.TextMarshaler.
func (o OperationType) MarshalText() ([]byte, error) {
	if int(o) >= len(operationNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, o)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OperationType) UnmarshalText(b []byte) error {
	v, err := ParseOperationType(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
