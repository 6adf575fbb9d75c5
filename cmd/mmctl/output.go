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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var stdout io.Writer = os.Stdout

// textual is implemented by every report a command prints.
type textual interface {
	writeText(p *message.Printer, w io.Writer)
}

// emit prints v as text, or as YAML with --yaml.
func emit(v textual) error {
	if opts.Yaml {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}
	v.writeText(message.NewPrinter(language.English), stdout)
	return nil
}

// emitPartial prints a report even when some of it could not be read, then
// returns the first read error.
func emitPartial(v textual, readErr error) error {
	if err := emit(v); err != nil {
		return err
	}
	return readErr
}

// field writes one aligned "label: value" line, skipping empty values.
func field(w io.Writer, label string, value interface{}) {
	s := fmt.Sprint(value)
	if s == "" {
		return
	}
	fmt.Fprintf(w, "  %-24s %s\n", label+":", s)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n", title)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// byteCount renders n with digit grouping, e.g. "1,048,576 bytes".
func byteCount(p *message.Printer, n uint64) string {
	return p.Sprintf("%d bytes", n)
}

func stringers[T fmt.Stringer](values []T) []string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = v.String()
	}
	return strs
}

// pathList is a list of object paths printed one per line.
type pathList struct {
	Title string   `yaml:"-"`
	Paths []string `yaml:"paths"`
}

func newPathList(title string, paths []string) pathList {
	if paths == nil {
		paths = []string{}
	}
	return pathList{Title: title, Paths: paths}
}

func (l pathList) writeText(p *message.Printer, w io.Writer) {
	if len(l.Paths) == 0 {
		fmt.Fprintf(w, "No %s\n", l.Title)
		return
	}
	section(w, fmt.Sprintf("Found %d %s:", len(l.Paths), l.Title))
	for _, path := range l.Paths {
		fmt.Fprintf(w, "  %s\n", path)
	}
}

// result reports a single value, e.g. the path of a created object.
type result struct {
	Label string `yaml:"-"`
	Value string `yaml:"result"`
}

func (r result) writeText(p *message.Printer, w io.Writer) {
	fmt.Fprintf(w, "%s: %s\n", r.Label, r.Value)
}

// done reports that a command without output succeeded.
func done(what string) error {
	if opts.Yaml {
		return emit(result{Label: "ok", Value: what})
	}
	fmt.Fprintf(stdout, "successfully %s\n", what)
	return nil
}
