/*
 * Copyright 2014 Canonical Ltd.
 *
 * Authors:
 * Sergio Schvezov: sergio.schvezov@cannical.com
 *
 * This file is part of mmwrapper.
 *
 * mmwrapper is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; version 3.
 *
 * mmwrapper is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package enumgen

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	memberRefRe = regexp.MustCompile(`[%@](MM_[A-Z0-9_]+)`)
	typeRefRe   = regexp.MustCompile(`#(MM[A-Za-z0-9]+)`)
)

// GoTypeName drops the MM prefix of a C type name: MMModemState becomes
// ModemState.
func GoTypeName(cName string) string {
	if strings.HasPrefix(cName, "MM") && len(cName) > 2 {
		return cName[2:]
	}
	return cName
}

// GoMemberName turns a C enumerator into a Go identifier: MM_MODEM_STATE_FAILED
// becomes ModemStateFailed and MM_MODEM_3GPP_FACILITY_SIM becomes
// Modem3gppFacilitySim.
func GoMemberName(cName string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(cName, "MM_"), "_") {
		if part == "" {
			continue
		}
		b.WriteString(upper.String(part[:1]))
		b.WriteString(lower.String(part[1:]))
	}
	return b.String()
}

// Nicknames returns the short lowercase names of the members, the part after
// the prefix derived from the type name: MM_MODEM_STATE_FAILED becomes
// "failed". The prefix shared by all members is used instead when some member
// does not follow the type name.
func Nicknames(e *Enum) []string {
	prefix := typePrefix(e.Name)
	if prefix == "" || !allHavePrefix(e.Members, prefix) {
		prefix = commonPrefix(e.Members)
	}
	lower := cases.Lower(language.Und)
	nicks := make([]string, len(e.Members))
	for i, m := range e.Members {
		nick := strings.TrimPrefix(m.Name, prefix)
		nicks[i] = strings.ReplaceAll(lower.String(nick), "_", "-")
	}
	return nicks
}

// typePrefix returns the enumerator prefix of a C type name: MMCallState
// becomes MM_CALL_STATE_ and MMModem3gppFacility MM_MODEM_3GPP_FACILITY_.
func typePrefix(cName string) string {
	name := GoTypeName(cName)
	if name == "" || name == cName {
		return ""
	}
	var b strings.Builder
	b.WriteString("MM_")
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				b.WriteByte('_')
			case unicode.IsDigit(r) && unicode.IsLetter(prev):
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	b.WriteByte('_')
	return b.String()
}

func allHavePrefix(members []Member, prefix string) bool {
	for _, m := range members {
		if !strings.HasPrefix(m.Name, prefix) || m.Name == prefix {
			return false
		}
	}
	return true
}

// commonPrefix returns the longest prefix ending in '_' that leaves every
// member name non-empty.
func commonPrefix(members []Member) string {
	if len(members) == 0 {
		return ""
	}
	prefix := members[0].Name
	for _, m := range members[1:] {
		for !strings.HasPrefix(m.Name, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	for _, m := range members {
		if m.Name == prefix {
			prefix = prefix[:len(prefix)-1]
			break
		}
	}
	if i := strings.LastIndex(prefix, "_"); i >= 0 {
		return prefix[:i+1]
	}
	return ""
}

// rewriteRefs replaces gtk-doc references (%MM_FOO, @MM_FOO, #MMFoo) with the
// Go names they are generated as.
func rewriteRefs(doc string) string {
	doc = memberRefRe.ReplaceAllStringFunc(doc, func(ref string) string {
		return GoMemberName(ref[1:])
	})
	return typeRefRe.ReplaceAllStringFunc(doc, func(ref string) string {
		return GoTypeName(ref[1:])
	})
}
