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

// Voice mirrors org.freedesktop.ModemManager1.Modem.Voice.
type Voice struct {
	mmInterface
}

func (v *Voice) ListCalls() ([]*Call, error) {
	var paths []dbus.ObjectPath
	if err := v.call("ListCalls", []interface{}{&paths}); err != nil {
		return nil, err
	}
	return v.calls(paths), nil
}

func (v *Voice) DeleteCall(call dbus.ObjectPath) error {
	return v.call("DeleteCall", nil, call)
}

// CreateCall creates an outgoing call to number. The call is not started
// until Start is called on it.
func (v *Voice) CreateCall(number string) (*Call, error) {
	if number == "" {
		return nil, ErrorPropertyMissing("number")
	}
	props := map[string]dbus.Variant{"number": dbus.Variant{Value: number}}
	var objectPath dbus.ObjectPath
	if err := v.call("CreateCall", []interface{}{&objectPath}, props); err != nil {
		return nil, err
	}
	return NewCall(v.conn, objectPath), nil
}

// HoldAndAccept puts the active calls on hold and accepts the next waiting
// or held call.
func (v *Voice) HoldAndAccept() error {
	return v.call("HoldAndAccept", nil)
}

// HangupAndAccept hangs up the active calls and accepts the next waiting or
// held call.
func (v *Voice) HangupAndAccept() error {
	return v.call("HangupAndAccept", nil)
}

func (v *Voice) HangupAll() error {
	return v.call("HangupAll", nil)
}

// Transfer joins the active and held calls and disconnects from them.
func (v *Voice) Transfer() error {
	return v.call("Transfer", nil)
}

func (v *Voice) CallWaitingSetup(enable bool) error {
	return v.call("CallWaitingSetup", nil, enable)
}

func (v *Voice) CallWaitingQuery() (bool, error) {
	var status bool
	if err := v.call("CallWaitingQuery", []interface{}{&status}); err != nil {
		return false, err
	}
	return status, nil
}

func (v *Voice) Calls() ([]dbus.ObjectPath, error) {
	return v.pathsProperty("Calls")
}

func (v *Voice) GetCalls() ([]*Call, error) {
	paths, err := v.Calls()
	if err != nil {
		return nil, err
	}
	return v.calls(paths), nil
}

func (v *Voice) calls(paths []dbus.ObjectPath) []*Call {
	calls := make([]*Call, len(paths))
	for i, p := range paths {
		calls[i] = NewCall(v.conn, p)
	}
	return calls
}

// EmergencyOnly reports whether only emergency calls are allowed.
func (v *Voice) EmergencyOnly() (bool, error) {
	return v.boolProperty("EmergencyOnly")
}
