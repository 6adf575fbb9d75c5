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

package mm

import (
	"launchpad.net/go-dbus"
)

// PreferredNetwork is one entry of the SIM's preferred network list.
type PreferredNetwork struct {
	OperatorCode     string
	AccessTechnology ModemAccessTechnology
}

// Sim mirrors org.freedesktop.ModemManager1.Sim.
type Sim struct {
	mmInterface
}

func NewSim(conn *dbus.Connection, objectPath dbus.ObjectPath) *Sim {
	return &Sim{newInterface(conn, objectPath, SIM_INTERFACE)}
}

// SendPin sends the PIN to unlock the SIM card.
func (sim *Sim) SendPin(pin string) error {
	return sim.call("SendPin", nil, pin)
}

// SendPuk sends the PUK and a new PIN to unlock the SIM card.
func (sim *Sim) SendPuk(puk, pin string) error {
	return sim.call("SendPuk", nil, puk, pin)
}

// EnablePin enables or disables the PIN checking.
func (sim *Sim) EnablePin(pin string, enabled bool) error {
	return sim.call("EnablePin", nil, pin, enabled)
}

func (sim *Sim) ChangePin(oldPin, newPin string) error {
	return sim.call("ChangePin", nil, oldPin, newPin)
}

// SetPreferredNetworks stores the preferred network list on the card. An
// empty access technology lets the modem pick.
func (sim *Sim) SetPreferredNetworks(networks []PreferredNetwork) error {
	type network struct {
		OperatorCode     string
		AccessTechnology uint32
	}
	arg := make([]network, len(networks))
	for i, n := range networks {
		arg[i] = network{n.OperatorCode, uint32(n.AccessTechnology)}
	}
	return sim.call("SetPreferredNetworks", nil, arg)
}

// Active reports whether the SIM is the one in use in a multi-SIM modem.
func (sim *Sim) Active() (bool, error) {
	return sim.boolProperty("Active")
}

// SimIdentifier is the ICCID of the card.
func (sim *Sim) SimIdentifier() (string, error) {
	return sim.stringProperty("SimIdentifier")
}

func (sim *Sim) Imsi() (string, error) {
	return sim.stringProperty("Imsi")
}

// Eid is the eUICC identifier, empty for cards that are not eUICC.
func (sim *Sim) Eid() (string, error) {
	return sim.stringProperty("Eid")
}

// OperatorIdentifier is the MCC+MNC of the operator that issued the card.
func (sim *Sim) OperatorIdentifier() (string, error) {
	return sim.stringProperty("OperatorIdentifier")
}

func (sim *Sim) OperatorName() (string, error) {
	return sim.stringProperty("OperatorName")
}

func (sim *Sim) EmergencyNumbers() ([]string, error) {
	return sim.stringsProperty("EmergencyNumbers")
}

func (sim *Sim) PreferredNetworks() ([]PreferredNetwork, error) {
	v, err := sim.property("PreferredNetworks")
	if err != nil {
		return nil, err
	}
	list, err := asList("PreferredNetworks", v, []PreferredNetwork{})
	if err != nil {
		return nil, err
	}
	networks := make([]PreferredNetwork, len(list))
	for i, item := range list {
		fields, err := asStruct("PreferredNetworks", item, 2, PreferredNetwork{})
		if err != nil {
			return nil, err
		}
		code, err := asString("PreferredNetworks", fields[0])
		if err != nil {
			return nil, err
		}
		tech, err := asUint32("PreferredNetworks", fields[1])
		if err != nil {
			return nil, err
		}
		networks[i] = PreferredNetwork{code, ModemAccessTechnology(tech)}
	}
	return networks, nil
}
