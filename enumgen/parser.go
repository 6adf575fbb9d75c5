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

// Package enumgen turns the gtk-doc annotated enumerations of a C header,
// such as ModemManager-enums.h, into Go type and constant declarations.
//
// The generated code relies on the target package providing the enumName
// type and the valueString, flagString and parseEnum helpers.
package enumgen

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Member is one enumerator of a C enum.
type Member struct {
	Name string
	// Expr is the initializer as written in the header, empty when the
	// member continues from the previous one.
	Expr  string
	Value int64
	Doc   string
}

// Enum is a documented C enum declaration.
type Enum struct {
	Name    string
	Doc     string
	Since   string
	Flags   bool
	Members []Member
}

// Signed reports whether any member of e is negative.
func (e *Enum) Signed() bool {
	for _, m := range e.Members {
		if m.Value < 0 {
			return true
		}
	}
	return false
}

// Header is the result of parsing a C header.
type Header struct {
	Enums []*Enum
	// Warnings lists inconsistencies between documentation and declarations
	// that did not prevent parsing.
	Warnings []string
}

func (h *Header) warnf(format string, a ...interface{}) {
	h.Warnings = append(h.Warnings, fmt.Sprintf(format, a...))
}

var (
	memberDocRe  = regexp.MustCompile(`^@([A-Za-z0-9_]+):\s*(.*)$`)
	identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	annotationRe = regexp.MustCompile(`/\*<([^>]*)>\*/`)
	commentRe    = regexp.MustCompile(`/\*.*?\*/`)
)

type parseState int

const (
	stateOutside parseState = iota
	stateComment
	stateAwaitEnum
	stateEnum
)

// docBlock accumulates one gtk-doc comment.
type docBlock struct {
	name       string
	memberDocs map[string]string
	order      []string
	desc       []string
	since      string
	lastMember string
	startLine  int
}

func (b *docBlock) add(content string) {
	switch {
	case b.name == "" && strings.HasSuffix(content, ":") && !strings.Contains(content, " "):
		b.name = strings.TrimSuffix(content, ":")
	case strings.HasPrefix(content, "@"):
		if m := memberDocRe.FindStringSubmatch(content); m != nil {
			b.memberDocs[m[1]] = m[2]
			b.order = append(b.order, m[1])
			b.lastMember = m[1]
			return
		}
		b.desc = append(b.desc, content)
	case content == "":
		b.lastMember = ""
		if len(b.desc) > 0 && b.desc[len(b.desc)-1] != "" {
			b.desc = append(b.desc, "")
		}
	case strings.HasPrefix(content, "Since:"):
		b.since = strings.TrimSpace(strings.TrimPrefix(content, "Since:"))
	case b.lastMember != "":
		b.memberDocs[b.lastMember] += " " + content
	default:
		b.desc = append(b.desc, strings.TrimSpace(content))
	}
}

func (b *docBlock) description() string {
	return strings.TrimSpace(strings.Join(b.desc, "\n"))
}

// Parse reads a C header and returns every enum declaration preceded by a
// gtk-doc block.
func Parse(r io.Reader) (*Header, error) {
	h := &Header{}
	scanner := bufio.NewScanner(r)
	state := stateOutside
	lineNo := 0
	var block *docBlock
	var enum *Enum
	var enumLine int
	known := make(map[string]int64)
	next := int64(0)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch state {
		case stateOutside:
			if strings.HasPrefix(line, "/**") && !strings.HasSuffix(line, "*/") {
				block = &docBlock{memberDocs: make(map[string]string), startLine: lineNo}
				state = stateComment
			}
		case stateComment:
			if strings.HasPrefix(line, "*/") {
				state = stateAwaitEnum
				continue
			}
			content := strings.TrimPrefix(line, "*")
			content = strings.TrimPrefix(content, " ")
			block.add(strings.TrimRight(content, " "))
		case stateAwaitEnum:
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, "typedef enum") {
				// a doc block for something other than an enum
				state = stateOutside
				if strings.HasPrefix(line, "/**") && !strings.HasSuffix(line, "*/") {
					block = &docBlock{memberDocs: make(map[string]string), startLine: lineNo}
					state = stateComment
				}
				continue
			}
			enum = &Enum{Name: block.name, Doc: block.description(), Since: block.since}
			if m := annotationRe.FindStringSubmatch(line); m != nil {
				for _, opt := range strings.FieldsFunc(m[1], func(r rune) bool { return r == ',' || r == ' ' }) {
					if opt == "flags" {
						enum.Flags = true
					}
				}
			}
			enumLine = lineNo
			next = 0
			state = stateEnum
		case stateEnum:
			line = strings.TrimSpace(commentRe.ReplaceAllString(line, ""))
			if line == "" || line == "{" || strings.HasPrefix(line, "#") {
				continue
			}
			if strings.HasPrefix(line, "}") {
				name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "}"), ";"))
				if name == "" {
					return nil, ErrorBadMember{Line: lineNo, Text: line}
				}
				if enum.Name != name {
					if enum.Name != "" {
						h.warnf("%s: documented as %s", name, enum.Name)
					}
					enum.Name = name
				}
				checkDocumented(h, enum, block)
				h.Enums = append(h.Enums, enum)
				enum, block = nil, nil
				state = stateOutside
				continue
			}
			for _, item := range strings.Split(line, ",") {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				m, err := parseMember(item, next, known)
				if err != nil {
					return nil, ErrorBadMember{Line: lineNo, Text: item}
				}
				m.Doc = block.memberDocs[m.Name]
				known[m.Name] = m.Value
				next = m.Value + 1
				if strings.Contains(m.Expr, "<<") {
					enum.Flags = true
				}
				enum.Members = append(enum.Members, m)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	switch state {
	case stateComment:
		return nil, ErrorUnterminatedComment{Line: block.startLine}
	case stateEnum:
		return nil, ErrorUnterminatedEnum{Name: enum.Name, Line: enumLine}
	}
	return h, nil
}

func checkDocumented(h *Header, enum *Enum, block *docBlock) {
	declared := make(map[string]bool, len(enum.Members))
	for _, m := range enum.Members {
		declared[m.Name] = true
		if _, ok := block.memberDocs[m.Name]; !ok {
			h.warnf("%s: member %s is not documented", enum.Name, m.Name)
		}
	}
	for _, name := range block.order {
		if !declared[name] {
			h.warnf("%s: member %s is documented but not declared", enum.Name, name)
		}
	}
}

func parseMember(item string, next int64, known map[string]int64) (Member, error) {
	name, expr := item, ""
	if i := strings.Index(item, "="); i >= 0 {
		name = strings.TrimSpace(item[:i])
		expr = strings.TrimSpace(item[i+1:])
	}
	if !identifierRe.MatchString(name) {
		return Member{}, fmt.Errorf("bad enumerator name %q", name)
	}
	if expr == "" {
		return Member{Name: name, Value: next}, nil
	}
	value, err := evalExpr(expr, known)
	if err != nil {
		return Member{}, err
	}
	return Member{Name: name, Expr: expr, Value: value}, nil
}

// evalExpr evaluates the initializers found in enum headers: integer
// literals, earlier enumerators, shifts and bitwise ors.
func evalExpr(expr string, known map[string]int64) (int64, error) {
	expr = stripParens(expr)
	if parts := splitTopLevel(expr, "|"); len(parts) > 1 {
		var v int64
		for _, p := range parts {
			pv, err := evalExpr(p, known)
			if err != nil {
				return 0, err
			}
			v |= pv
		}
		return v, nil
	}
	if parts := splitTopLevel(expr, "<<"); len(parts) == 2 {
		l, err := evalExpr(parts[0], known)
		if err != nil {
			return 0, err
		}
		r, err := evalExpr(parts[1], known)
		if err != nil {
			return 0, err
		}
		if r < 0 || r > 62 {
			return 0, fmt.Errorf("shift out of range in %q", expr)
		}
		return l << uint(r), nil
	}
	if v, ok := known[expr]; ok {
		return v, nil
	}
	literal := strings.TrimRight(expr, "uUlL")
	if v, err := strconv.ParseInt(literal, 0, 64); err == nil {
		return v, nil
	}
	if v, err := strconv.ParseUint(literal, 0, 64); err == nil {
		return int64(v), nil
	}
	return 0, fmt.Errorf("cannot evaluate %q", expr)
}

// stripParens removes parentheses enclosing the whole of expr, leaving
// "(a) | (b)" alone.
func stripParens(expr string) string {
	expr = strings.TrimSpace(expr)
	for strings.HasPrefix(expr, "(") && closingParen(expr) == len(expr)-1 {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}
	return expr
}

// closingParen returns the index of the parenthesis matching the one
// opening expr, or -1.
func closingParen(expr string) int {
	depth := 0
	for i, r := range expr {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits expr around the occurrences of op outside
// parentheses.
func splitTopLevel(expr, op string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(expr); i++ {
		switch {
		case expr[i] == '(':
			depth++
		case expr[i] == ')':
			depth--
		case depth == 0 && strings.HasPrefix(expr[i:], op):
			parts = append(parts, expr[start:i])
			i += len(op) - 1
			start = i + 1
		}
	}
	return append(parts, expr[start:])
}
