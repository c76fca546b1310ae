package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexBool is a bool that can be unmarshaled from either a JSON boolean or a
// JSON string ("true"/"false"/"1"/"0"). The form pages post both shapes.
type FlexBool bool

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	// Try unmarshaling as a boolean first
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*f = false
			return nil
		}
		val, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("FlexBool: invalid bool string %q: %w", s, err)
		}
		*f = FlexBool(val)
		return nil
	}

	return fmt.Errorf("FlexBool: unexpected type, expected boolean or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool converts FlexBool back to bool.
func (f FlexBool) Bool() bool {
	return bool(f)
}
