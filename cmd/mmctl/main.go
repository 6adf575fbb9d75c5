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
	"io"
	"log"
	"os"
	"path"

	flags "github.com/jessevdk/go-flags"
	"launchpad.net/go-xdg"
)

// globalOptions apply to every command. They can also be set from the
// [Application Options] section of the ini file.
type globalOptions struct {
	// Modem selects the modem by index, object path or equipment identifier.
	Modem string `long:"modem" short:"m" description:"modem index, object path or equipment identifier"`
	// Yaml switches the output to YAML.
	Yaml    bool `long:"yaml" description:"print YAML instead of text"`
	Verbose bool `long:"verbose" short:"v" description:"log D-Bus activity to stderr"`
}

var opts globalOptions

var configPath = path.Join("mmwrapper", "mmctl.ini")

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "ModemManager command line client"
	parser.LongDescription = "mmctl controls the modems managed by ModemManager over the system bus."
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if !opts.Verbose {
			log.SetOutput(io.Discard)
		}
		return cmd.Execute(args)
	}

	for _, cmd := range commands {
		c, err := parser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.data)
		if err != nil {
			log.Fatal(err)
		}
		for _, sub := range cmd.subcommands {
			if _, err := c.AddCommand(sub.name, sub.short, sub.long, sub.data); err != nil {
				log.Fatal(err)
			}
		}
	}
	return parser
}

// loadConfig applies the ini file, if any, before the command line is parsed
// so that flags take precedence.
func loadConfig(parser *flags.Parser) error {
	iniPath, err := xdg.Config.Find(configPath)
	if err != nil {
		return nil
	}
	return flags.NewIniParser(parser).ParseFile(iniPath)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mmctl: ")

	parser := newParser()
	if err := loadConfig(parser); err != nil {
		log.Fatal("Cannot load configuration: ", err)
	}
	if _, err := parser.Parse(); err != nil {
		os.Exit(exitStatus(err))
	}
}
