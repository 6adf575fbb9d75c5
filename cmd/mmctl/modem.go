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
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ubports/mmwrapper/mm"
	"github.com/ubports/mmwrapper/storage"
	"launchpad.net/go-dbus"
)

var connectBus = func() (*dbus.Connection, error) {
	return dbus.Connect(dbus.SystemBus)
}

var getPreferredModem = storage.GetPreferredModem

// newManager connects to the system bus. The returned function closes the
// connection.
func newManager() (*mm.ModemManager, func(), error) {
	conn, err := connectBus()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot connect to the system bus: %w", err)
	}
	log.Print("Using system bus on ", conn.UniqueName)
	return mm.NewModemManager(conn), func() { conn.Close() }, nil
}

type ErrorModemNotFound string

func (e ErrorModemNotFound) Error() string {
	return fmt.Sprintf("modem %q not found", string(e))
}

type ErrorAmbiguousModem int

func (e ErrorAmbiguousModem) Error() string {
	return fmt.Sprintf("%d modems found, select one with --modem", int(e))
}

var ErrorNoModems = errors.New("no modems found")

// identifiedModem is what modem selection needs from a modem.
type identifiedModem interface {
	Path() dbus.ObjectPath
	EquipmentIdentifier() (string, error)
}

// pickModem returns the index in modems of the one selector names. An empty
// selector falls back to the preferred modem, then to the only modem
// present.
//
// A numeric selector matches the trailing index of the object path, so "0"
// selects /org/freedesktop/ModemManager1/Modem/0.
func pickModem(modems []identifiedModem, selector, preferred string) (int, error) {
	if len(modems) == 0 {
		return -1, ErrorNoModems
	}
	if selector != "" {
		if i := matchModem(modems, selector); i >= 0 {
			return i, nil
		}
		return -1, ErrorModemNotFound(selector)
	}
	if preferred != "" {
		if i := matchEquipment(modems, preferred); i >= 0 {
			return i, nil
		}
		log.Printf("Preferred modem %s is not present", preferred)
	}
	if len(modems) == 1 {
		return 0, nil
	}
	return -1, ErrorAmbiguousModem(len(modems))
}

func matchModem(modems []identifiedModem, selector string) int {
	if strings.HasPrefix(selector, "/") {
		for i, m := range modems {
			if string(m.Path()) == selector {
				return i
			}
		}
		return -1
	}
	if _, err := strconv.ParseUint(selector, 10, 32); err == nil {
		for i, m := range modems {
			if modemIndex(m.Path()) == selector {
				return i
			}
		}
	}
	return matchEquipment(modems, selector)
}

func matchEquipment(modems []identifiedModem, id string) int {
	for i, m := range modems {
		equipment, err := m.EquipmentIdentifier()
		if err != nil {
			log.Printf("Cannot read the equipment identifier of %s: %s", m.Path(), err)
			continue
		}
		if equipment == id {
			return i
		}
	}
	return -1
}

func modemIndex(objectPath dbus.ObjectPath) string {
	p := string(objectPath)
	return p[strings.LastIndex(p, "/")+1:]
}

// selectModem picks the modem named by --modem among those present.
func selectModem(manager *mm.ModemManager) (*mm.Modem, error) {
	modems, err := manager.Modems()
	if err != nil {
		return nil, err
	}
	candidates := make([]identifiedModem, len(modems))
	for i := range modems {
		candidates[i] = modems[i]
	}
	var preferred string
	if opts.Modem == "" {
		preferred, _ = getPreferredModem()
	}
	i, err := pickModem(candidates, opts.Modem, preferred)
	if err != nil {
		return nil, codedError{err, ExitSelectModem}
	}
	return modems[i], nil
}

// withModem runs f with the selected modem and closes the bus connection
// afterwards.
func withModem(f func(manager *mm.ModemManager, modem *mm.Modem) error) error {
	manager, done, err := newManager()
	if err != nil {
		return err
	}
	defer done()
	modem, err := selectModem(manager)
	if err != nil {
		return err
	}
	return f(manager, modem)
}

func withManager(f func(manager *mm.ModemManager) error) error {
	manager, done, err := newManager()
	if err != nil {
		return err
	}
	defer done()
	return f(manager)
}
