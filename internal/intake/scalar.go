package intake

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt accepts JSON numbers and quoted numbers; anything else is zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(v)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(v))
		return nil
	}
	*f = 0
	return nil
}

// FlexBool accepts booleans and the truthy strings form exports emit.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(data)), `"`))
	switch s {
	case "true", "yes", "on", "1", "checked":
		*f = true
	default:
		*f = false
	}
	return nil
}

// FlexStrings accepts a JSON array of strings or a single bare string.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*f = nil
		} else {
			*f = []string{one}
		}
		return nil
	}
	*f = nil
	return nil
}

func (f FlexStrings) contains(v string) bool {
	for _, s := range f {
		if s == v {
			return true
		}
	}
	return false
}
