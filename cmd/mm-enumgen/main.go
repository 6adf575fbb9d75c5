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
	"bytes"
	"io"
	"log"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/ubports/mmwrapper/enumgen"
)

// exitStatus is 0 when help was asked for, 2 for any other command line
// error.
func exitStatus(err error) int {
	if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
		return 0
	}
	return 2
}

func main() {
	var args struct {
		// Input is the C header to read the enums from.
		Input string `long:"input" short:"i" required:"true" description:"C header with gtk-doc annotated enums, e.g. ModemManager-enums.h"`
		// Output is where the Go file is written, standard output when empty.
		Output  string `long:"output" short:"o" description:"Go file to write, stdout if not set"`
		Package string `long:"package" short:"p" description:"package name of the generated file" default:"mm"`
	}

	parser := flags.NewParser(&args, flags.Default)
	if _, err := parser.Parse(); err != nil {
		os.Exit(exitStatus(err))
	}

	in, err := os.Open(args.Input)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	header, err := enumgen.Parse(in)
	if err != nil {
		log.Fatalf("Cannot parse %s: %s", args.Input, err)
	}
	for _, w := range header.Warnings {
		log.Printf("%s: %s", args.Input, w)
	}

	var buf bytes.Buffer
	opts := enumgen.Options{Package: args.Package, Source: args.Input}
	if err := enumgen.Render(&buf, header, opts); err != nil {
		log.Fatal(err)
	}

	var out io.Writer = os.Stdout
	if args.Output != "" {
		// only touch the output once rendering succeeded
		f, err := os.Create(args.Output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if _, err := buf.WriteTo(out); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated %d enums from %s", len(header.Enums), args.Input)
}
