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
	"log"
	"sort"
	"syscall"

	"github.com/ubports/mmwrapper/mm"
	"golang.org/x/text/message"
)

type cmdList struct{}

func (x *cmdList) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		modems, err := manager.Modems()
		if err != nil {
			return err
		}
		list := modemList{Modems: []modemSummary{}}
		for _, modem := range modems {
			list.Modems = append(list.Modems, summarize(modem))
		}
		return emit(list)
	})
}

type modemSummary struct {
	Path         string `yaml:"path"`
	Manufacturer string `yaml:"manufacturer,omitempty"`
	Model        string `yaml:"model,omitempty"`
	Equipment    string `yaml:"equipment-id,omitempty"`
}

func summarize(modem *mm.Modem) modemSummary {
	s := modemSummary{Path: string(modem.Path())}
	// the modem may still be initializing, keep whatever is readable
	s.Manufacturer, _ = modem.Manufacturer()
	s.Model, _ = modem.Model()
	s.Equipment, _ = modem.EquipmentIdentifier()
	return s
}

type modemList struct {
	Modems []modemSummary `yaml:"modems"`
}

func (l modemList) writeText(p *message.Printer, w io.Writer) {
	if len(l.Modems) == 0 {
		fmt.Fprintln(w, "No modems were found")
		return
	}
	p.Fprintf(w, "Found %d modems:\n", len(l.Modems))
	for _, m := range l.Modems {
		fmt.Fprintf(w, "  %s [%s] %s (%s)\n", m.Path, m.Manufacturer, m.Model, m.Equipment)
	}
}

// modemInfo gathers the general, status and 3GPP sections of a modem.
type modemInfo struct {
	Path               string            `yaml:"path"`
	Manufacturer       string            `yaml:"manufacturer"`
	Model              string            `yaml:"model"`
	Revision           string            `yaml:"revision"`
	Equipment          string            `yaml:"equipment-id"`
	Plugin             string            `yaml:"plugin"`
	Drivers            []string          `yaml:"drivers"`
	PrimaryPort        string            `yaml:"primary-port"`
	Ports              []string          `yaml:"ports"`
	Device             string            `yaml:"device"`
	OwnNumbers         []string          `yaml:"own-numbers"`
	State              string            `yaml:"state"`
	FailedReason       string            `yaml:"failed-reason,omitempty"`
	PowerState         string            `yaml:"power-state"`
	AccessTechnologies string            `yaml:"access-technologies"`
	SignalQuality      uint32            `yaml:"signal-quality"`
	SignalRecent       bool              `yaml:"signal-recent"`
	CurrentModes       string            `yaml:"current-modes"`
	CurrentBands       []string          `yaml:"current-bands"`
	UnlockRequired     string            `yaml:"unlock-required"`
	UnlockRetries      map[string]uint32 `yaml:"unlock-retries,omitempty"`
	Sim                string            `yaml:"sim"`
	Bearers            []string          `yaml:"bearers"`
	Registration       string            `yaml:"registration,omitempty"`
	OperatorCode       string            `yaml:"operator-code,omitempty"`
	OperatorName       string            `yaml:"operator-name,omitempty"`
	Imei               string            `yaml:"imei,omitempty"`
}

// infoReader collects the first error hit while filling a report, so a
// missing property does not hide the rest.
type infoReader struct {
	err error
}

func (r *infoReader) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

func readModemInfo(modem *mm.Modem) (modemInfo, error) {
	var r infoReader
	var err error
	info := modemInfo{Path: string(modem.Path())}

	info.Manufacturer, err = modem.Manufacturer()
	r.check(err)
	info.Model, err = modem.Model()
	r.check(err)
	info.Revision, err = modem.Revision()
	r.check(err)
	info.Equipment, err = modem.EquipmentIdentifier()
	r.check(err)
	info.Plugin, err = modem.Plugin()
	r.check(err)
	info.Drivers, err = modem.Drivers()
	r.check(err)
	info.PrimaryPort, err = modem.PrimaryPort()
	r.check(err)
	ports, err := modem.Ports()
	r.check(err)
	info.Ports = stringers(ports)
	info.Device, err = modem.Device()
	r.check(err)
	info.OwnNumbers, err = modem.OwnNumbers()
	r.check(err)

	state, err := modem.State()
	r.check(err)
	info.State = state.String()
	if state == mm.ModemStateFailed {
		reason, err := modem.StateFailedReason()
		r.check(err)
		info.FailedReason = reason.String()
	}
	power, err := modem.PowerState()
	r.check(err)
	info.PowerState = power.String()
	tech, err := modem.AccessTechnologies()
	r.check(err)
	info.AccessTechnologies = tech.String()
	quality, err := modem.SignalQuality()
	r.check(err)
	info.SignalQuality, info.SignalRecent = quality.Quality, quality.Recent
	modes, err := modem.CurrentModes()
	r.check(err)
	info.CurrentModes = modes.String()
	bands, err := modem.CurrentBands()
	r.check(err)
	info.CurrentBands = stringers(bands)

	lock, err := modem.UnlockRequired()
	r.check(err)
	info.UnlockRequired = lock.String()
	retries, err := modem.UnlockRetries()
	r.check(err)
	if len(retries) > 0 {
		info.UnlockRetries = make(map[string]uint32, len(retries))
		for l, n := range retries {
			info.UnlockRetries[l.String()] = n
		}
	}
	sim, err := modem.Sim()
	r.check(err)
	info.Sim = string(sim)
	bearers, err := modem.Bearers()
	r.check(err)
	for _, b := range bearers {
		info.Bearers = append(info.Bearers, string(b))
	}

	// only 3GPP modems implement the interface, ignore its absence
	gpp := modem.Modem3gpp()
	if registration, err := gpp.RegistrationState(); err == nil {
		info.Registration = registration.String()
		info.OperatorCode, _ = gpp.OperatorCode()
		info.OperatorName, _ = gpp.OperatorName()
		info.Imei, _ = gpp.Imei()
	} else {
		log.Printf("No 3GPP details for %s: %s", modem, err)
	}
	return info, r.err
}

func (info modemInfo) writeText(p *message.Printer, w io.Writer) {
	section(w, "General")
	field(w, "path", info.Path)
	field(w, "equipment id", info.Equipment)
	section(w, "Hardware")
	field(w, "manufacturer", info.Manufacturer)
	field(w, "model", info.Model)
	field(w, "revision", info.Revision)
	section(w, "System")
	field(w, "device", info.Device)
	field(w, "drivers", joinOrNone(info.Drivers))
	field(w, "plugin", info.Plugin)
	field(w, "primary port", info.PrimaryPort)
	field(w, "ports", joinOrNone(info.Ports))
	section(w, "Numbers")
	field(w, "own", joinOrNone(info.OwnNumbers))
	section(w, "Status")
	field(w, "lock", info.UnlockRequired)
	locks := make([]string, 0, len(info.UnlockRetries))
	for lock := range info.UnlockRetries {
		locks = append(locks, lock)
	}
	sort.Strings(locks)
	for _, lock := range locks {
		field(w, "retries "+lock, info.UnlockRetries[lock])
	}
	field(w, "state", info.State)
	field(w, "failed reason", info.FailedReason)
	field(w, "power state", info.PowerState)
	field(w, "access tech", info.AccessTechnologies)
	recent := ""
	if info.SignalRecent {
		recent = " (recent)"
	}
	field(w, "signal quality", p.Sprintf("%d%%%s", info.SignalQuality, recent))
	section(w, "Modes")
	field(w, "current", info.CurrentModes)
	section(w, "Bands")
	field(w, "current", joinOrNone(info.CurrentBands))
	if info.Registration != "" {
		section(w, "3GPP")
		field(w, "imei", info.Imei)
		field(w, "registration", info.Registration)
		field(w, "operator id", info.OperatorCode)
		field(w, "operator name", info.OperatorName)
	}
	section(w, "SIM")
	field(w, "path", info.Sim)
	section(w, "Bearers")
	field(w, "paths", joinOrNone(info.Bearers))
}

type cmdInfo struct{}

func (x *cmdInfo) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		return emitPartial(readModemInfo(modem))
	})
}

type cmdEnable struct {
	enable bool
}

func (x *cmdEnable) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		if err := modem.Enable(x.enable); err != nil {
			return err
		}
		if x.enable {
			return done("enabled the modem")
		}
		return done("disabled the modem")
	})
}

type cmdReset struct {
	Factory string `long:"factory" value-name:"CODE" description:"reset to the factory state using the carrier supplied code"`
}

func (x *cmdReset) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		if x.Factory != "" {
			if err := modem.FactoryReset(x.Factory); err != nil {
				return err
			}
			return done("factory reset the modem")
		}
		if err := modem.Reset(); err != nil {
			return err
		}
		return done("reset the modem")
	})
}

type cmdPower struct {
	Positional struct {
		State string `positional-arg-name:"state" description:"on, low or off"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdPower) Execute(args []string) error {
	state, err := mm.ParseModemPowerState(x.Positional.State)
	if err != nil {
		return err
	}
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		if err := modem.SetPowerState(state); err != nil {
			return err
		}
		return done("set the power state to " + state.String())
	})
}

type cmdScanDevices struct{}

func (x *cmdScanDevices) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.ScanDevices(); err != nil {
			return err
		}
		return done("requested to scan devices")
	})
}

type cmdLogging struct {
	Positional struct {
		Level string `positional-arg-name:"level" description:"ERR, WARN, INFO or DEBUG"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdLogging) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.SetLogging(x.Positional.Level); err != nil {
			return err
		}
		return done("set logging level to " + x.Positional.Level)
	})
}

// cmdInhibit holds the inhibition until interrupted, the daemon releases it
// when the bus connection goes away.
type cmdInhibit struct {
	Positional struct {
		Uid string `positional-arg-name:"uid" description:"physical device uid of the modem"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdInhibit) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		uid := x.Positional.Uid
		if err := manager.InhibitDevice(uid, true); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "inhibited %s, interrupt to release\n", uid)
		loop := newMainloop()
		loop.Bindings[syscall.SIGINT] = loop.Stop
		loop.Bindings[syscall.SIGTERM] = loop.Stop
		loop.Start()
		if err := manager.InhibitDevice(uid, false); err != nil {
			return err
		}
		return done("released " + uid)
	})
}

type cmdCommand struct {
	Timeout    uint32 `long:"timeout" default:"30" description:"seconds to wait for the reply"`
	Positional struct {
		Command string `positional-arg-name:"command" description:"AT command, e.g. +CSQ"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdCommand) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		reply, err := modem.Command(x.Positional.Command, x.Timeout)
		if err != nil {
			return err
		}
		return emit(result{Label: "response", Value: reply})
	})
}

type networkList struct {
	Networks []network `yaml:"networks"`
}

type network struct {
	OperatorCode     string `yaml:"operator-code"`
	OperatorLong     string `yaml:"operator-name"`
	AccessTechnology string `yaml:"access-technology"`
	Availability     string `yaml:"availability"`
}

func (l networkList) writeText(p *message.Printer, w io.Writer) {
	if len(l.Networks) == 0 {
		fmt.Fprintln(w, "No networks were found")
		return
	}
	p.Fprintf(w, "Found %d networks:\n", len(l.Networks))
	for _, n := range l.Networks {
		fmt.Fprintf(w, "  %s - %s (%s, %s)\n", n.OperatorCode, n.OperatorLong, n.AccessTechnology, n.Availability)
	}
}

type cmdScan struct{}

func (x *cmdScan) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		found, err := modem.Modem3gpp().Scan()
		if err != nil {
			return err
		}
		list := networkList{Networks: []network{}}
		for _, n := range found {
			list.Networks = append(list.Networks, network{
				OperatorCode:     n.OperatorCode,
				OperatorLong:     n.OperatorLong,
				AccessTechnology: n.AccessTechnology.String(),
				Availability:     n.Status.String(),
			})
		}
		return emit(list)
	})
}

type cmdRegister struct {
	Positional struct {
		Operator string `positional-arg-name:"operator" description:"MCC+MNC of the network"`
	} `positional-args:"yes"`
}

func (x *cmdRegister) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		if err := modem.Modem3gpp().Register(x.Positional.Operator); err != nil {
			return err
		}
		if x.Positional.Operator == "" {
			return done("requested automatic registration")
		}
		return done("registered with " + x.Positional.Operator)
	})
}
