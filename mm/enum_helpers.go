package mm

//go:generate go run ../cmd/mm-enumgen --input /usr/include/ModemManager/ModemManager-enums.h --output enums.go

import (
	"fmt"
	"strings"
)

// enumName pairs an enumerator value with its nickname.
type enumName struct {
	value int64
	name  string
}

type ErrorUnknownEnumName struct {
	Type, Name string
}

func (e ErrorUnknownEnumName) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Name, e.Type)
}

func valueString(v int64, names []enumName, typeName string) string {
	for _, n := range names {
		if n.value == v {
			return n.name
		}
	}
	return fmt.Sprintf("%s(%d)", typeName, v)
}

// flagString renders a bit mask as the nicknames of its set flags joined by
// "|". Bits no flag accounts for are appended in hex.
func flagString(v int64, names []enumName, typeName string) string {
	for _, n := range names {
		if n.value == v {
			return n.name
		}
	}
	if v == 0 {
		return "0"
	}

	var parts []string
	rest := v
	for _, n := range names {
		if n.value == 0 || v&n.value != n.value || rest&n.value == 0 {
			continue
		}
		parts = append(parts, n.name)
		rest &^= n.value
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", rest))
	}
	return strings.Join(parts, "|")
}

func parseEnum(s string, names []enumName, typeName string, flags bool) (int64, error) {
	lookup := func(nick string) (int64, bool) {
		nick = strings.ToLower(strings.TrimSpace(nick))
		for _, n := range names {
			if n.name == nick {
				return n.value, true
			}
		}
		return 0, false
	}
	if !flags {
		v, ok := lookup(s)
		if !ok {
			return 0, ErrorUnknownEnumName{typeName, s}
		}
		return v, nil
	}
	var mask int64
	for _, nick := range strings.Split(s, "|") {
		v, ok := lookup(nick)
		if !ok {
			return 0, ErrorUnknownEnumName{typeName, nick}
		}
		mask |= v
	}
	return mask, nil
}
