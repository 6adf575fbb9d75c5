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
	"io"

	"github.com/ubports/mmwrapper/mm"
	"golang.org/x/text/message"
)

var ErrorNoSim = errors.New("no SIM card available")

func withSim(f func(modem *mm.Modem, sim *mm.Sim) error) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		sim, err := modem.GetSim()
		if err != nil {
			return err
		}
		if sim == nil {
			return ErrorNoSim
		}
		return f(modem, sim)
	})
}

type simInfo struct {
	Path             string   `yaml:"path"`
	Active           bool     `yaml:"active"`
	Identifier       string   `yaml:"identifier"`
	Imsi             string   `yaml:"imsi"`
	Eid              string   `yaml:"eid,omitempty"`
	OperatorCode     string   `yaml:"operator-code"`
	OperatorName     string   `yaml:"operator-name"`
	EmergencyNumbers []string `yaml:"emergency-numbers"`
}

func (info simInfo) writeText(p *message.Printer, w io.Writer) {
	section(w, "SIM")
	field(w, "path", info.Path)
	field(w, "active", info.Active)
	field(w, "iccid", info.Identifier)
	field(w, "imsi", info.Imsi)
	field(w, "eid", info.Eid)
	field(w, "operator id", info.OperatorCode)
	field(w, "operator name", info.OperatorName)
	field(w, "emergency numbers", joinOrNone(info.EmergencyNumbers))
}

func readSimInfo(sim *mm.Sim) (simInfo, error) {
	var r infoReader
	var err error
	info := simInfo{Path: string(sim.Path())}
	info.Active, err = sim.Active()
	r.check(err)
	info.Identifier, err = sim.SimIdentifier()
	r.check(err)
	info.Imsi, err = sim.Imsi()
	r.check(err)
	// eSIM only
	info.Eid, _ = sim.Eid()
	info.OperatorCode, err = sim.OperatorIdentifier()
	r.check(err)
	info.OperatorName, err = sim.OperatorName()
	r.check(err)
	info.EmergencyNumbers, err = sim.EmergencyNumbers()
	r.check(err)
	return info, r.err
}

type cmdSimInfo struct{}

func (x *cmdSimInfo) Execute(args []string) error {
	return withSim(func(modem *mm.Modem, sim *mm.Sim) error {
		return emitPartial(readSimInfo(sim))
	})
}

// pinError adds the remaining attempts to a failed unlock when the daemon
// reports them.
func pinError(modem *mm.Modem, err error) error {
	if !mm.IsErrorName(err, mm.ERROR_ME_INCORRECT_PASSWORD) {
		return err
	}
	lock, lerr := modem.UnlockRequired()
	if lerr != nil {
		return err
	}
	retries, rerr := modem.UnlockRetries()
	if rerr != nil {
		return err
	}
	if n, ok := retries[lock]; ok {
		return fmt.Errorf("%w (%d attempts left for %s)", err, n, lock)
	}
	return err
}

type cmdSimPin struct {
	Positional struct {
		Pin string `positional-arg-name:"pin"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdSimPin) Execute(args []string) error {
	return withSim(func(modem *mm.Modem, sim *mm.Sim) error {
		if err := sim.SendPin(x.Positional.Pin); err != nil {
			return pinError(modem, err)
		}
		return done("sent PIN code to the SIM")
	})
}

type cmdSimPuk struct {
	Positional struct {
		Puk string `positional-arg-name:"puk"`
		Pin string `positional-arg-name:"new-pin"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdSimPuk) Execute(args []string) error {
	return withSim(func(modem *mm.Modem, sim *mm.Sim) error {
		if err := sim.SendPuk(x.Positional.Puk, x.Positional.Pin); err != nil {
			return pinError(modem, err)
		}
		return done("sent PUK code to the SIM")
	})
}

type cmdSimEnablePin struct {
	Disable    bool `long:"disable" description:"disable PIN checking instead"`
	Positional struct {
		Pin string `positional-arg-name:"pin"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdSimEnablePin) Execute(args []string) error {
	return withSim(func(modem *mm.Modem, sim *mm.Sim) error {
		if err := sim.EnablePin(x.Positional.Pin, !x.Disable); err != nil {
			return pinError(modem, err)
		}
		if x.Disable {
			return done("disabled PIN checking")
		}
		return done("enabled PIN checking")
	})
}

type cmdSimChangePin struct {
	Positional struct {
		Old string `positional-arg-name:"old-pin"`
		New string `positional-arg-name:"new-pin"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdSimChangePin) Execute(args []string) error {
	return withSim(func(modem *mm.Modem, sim *mm.Sim) error {
		if err := sim.ChangePin(x.Positional.Old, x.Positional.New); err != nil {
			return pinError(modem, err)
		}
		return done("changed the PIN code")
	})
}
