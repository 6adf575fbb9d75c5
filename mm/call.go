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

// AudioFormat describes the audio of a call routed through the host.
type AudioFormat struct {
	// Encoding is e.g. "pcm".
	Encoding string `yaml:"encoding,omitempty"`
	// Resolution is e.g. "s16le".
	Resolution string `yaml:"resolution,omitempty"`
	// Rate is the sampling rate in Hz.
	Rate uint32 `yaml:"rate,omitempty"`
}

// Call mirrors org.freedesktop.ModemManager1.Call.
type Call struct {
	mmInterface
}

func NewCall(conn *dbus.Connection, objectPath dbus.ObjectPath) *Call {
	return &Call{newInterface(conn, objectPath, CALL_INTERFACE)}
}

// Start starts an outgoing call.
func (c *Call) Start() error {
	return c.call("Start", nil)
}

// Accept accepts an incoming call.
func (c *Call) Accept() error {
	return c.call("Accept", nil)
}

// Deflect redirects an incoming or waiting call to number.
func (c *Call) Deflect(number string) error {
	return c.call("Deflect", nil, number)
}

// JoinMultiparty joins the call to the currently ongoing multiparty call,
// putting on hold the ones not in it.
func (c *Call) JoinMultiparty() error {
	return c.call("JoinMultiparty", nil)
}

// LeaveMultiparty makes the call private, putting the others of the
// multiparty call on hold.
func (c *Call) LeaveMultiparty() error {
	return c.call("LeaveMultiparty", nil)
}

func (c *Call) Hangup() error {
	return c.call("Hangup", nil)
}

// SendDtmf sends DTMF tones. Only the characters 0-9, A-D, * and # are valid.
func (c *Call) SendDtmf(dtmf string) error {
	if !validDtmf(dtmf) {
		return ErrorInvalidDtmf(dtmf)
	}
	return c.call("SendDtmf", nil, dtmf)
}

func validDtmf(dtmf string) bool {
	if dtmf == "" {
		return false
	}
	for _, r := range dtmf {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'D':
		case r == '*' || r == '#':
		default:
			return false
		}
	}
	return true
}

func (c *Call) State() (CallState, error) {
	v, err := c.int32Property("State")
	return CallState(v), err
}

func (c *Call) StateReason() (CallStateReason, error) {
	v, err := c.int32Property("StateReason")
	return CallStateReason(v), err
}

func (c *Call) Direction() (CallDirection, error) {
	v, err := c.int32Property("Direction")
	return CallDirection(v), err
}

func (c *Call) Number() (string, error) {
	return c.stringProperty("Number")
}

func (c *Call) Multiparty() (bool, error) {
	return c.boolProperty("Multiparty")
}

// AudioPort is the kernel device carrying the call audio when it is routed
// through the host.
func (c *Call) AudioPort() (string, error) {
	return c.stringProperty("AudioPort")
}

// AudioFormat returns the raw audio format dictionary.
func (c *Call) AudioFormat() (PropertiesType, error) {
	return c.mapProperty("AudioFormat")
}

func (c *Call) GetAudioFormat() (AudioFormat, error) {
	props, err := c.AudioFormat()
	if err != nil {
		return AudioFormat{}, err
	}
	var format AudioFormat
	if format.Encoding, err = props.String("encoding"); err != nil && !isMissing(err) {
		return AudioFormat{}, err
	}
	if format.Resolution, err = props.String("resolution"); err != nil && !isMissing(err) {
		return AudioFormat{}, err
	}
	if format.Rate, err = props.Uint32("rate"); err != nil && !isMissing(err) {
		return AudioFormat{}, err
	}
	return format, nil
}
