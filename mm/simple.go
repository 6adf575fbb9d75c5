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

// Simple mirrors org.freedesktop.ModemManager1.Modem.Simple, the one call
// way of getting a modem connected.
type Simple struct {
	mmInterface
}

// ConnectProperties are the bearer settings for Simple.Connect plus the
// unlock and registration details the daemon may need on the way.
type ConnectProperties struct {
	BearerProperties
	Pin        string
	OperatorId string
}

func (p ConnectProperties) ToDBus() PropertiesType {
	props := p.BearerProperties.ToDBus()
	if p.Pin != "" {
		props["pin"] = dbus.Variant{Value: p.Pin}
	}
	if p.OperatorId != "" {
		props["operator-id"] = dbus.Variant{Value: p.OperatorId}
	}
	return props
}

// Connect unlocks, enables and registers the modem as needed, then connects
// a bearer with the given settings.
func (s *Simple) Connect(props ConnectProperties) (*Bearer, error) {
	var objectPath dbus.ObjectPath
	if err := s.call("Connect", []interface{}{&objectPath}, map[string]dbus.Variant(props.ToDBus())); err != nil {
		return nil, err
	}
	return NewBearer(s.conn, objectPath), nil
}

// Disconnect disconnects the given bearer, or every bearer of the modem when
// bearer is "/".
func (s *Simple) Disconnect(bearer dbus.ObjectPath) error {
	if bearer == "" {
		bearer = EMPTY_PATH
	}
	return s.call("Disconnect", nil, bearer)
}

func (s *Simple) DisconnectAll() error {
	return s.Disconnect(EMPTY_PATH)
}

// GetStatus returns the raw status dictionary.
func (s *Simple) GetStatus() (PropertiesType, error) {
	props := make(PropertiesType)
	if err := s.call("GetStatus", []interface{}{&props}); err != nil {
		return nil, err
	}
	return props, nil
}

// SimpleStatus is the typed view of GetStatus. The 3GPP items are only set on
// 3GPP capable modems.
type SimpleStatus struct {
	State              ModemState
	SignalQuality      SignalQuality
	CurrentBands       []ModemBand
	AccessTechnologies ModemAccessTechnology
	RegistrationState  Modem3gppRegistrationState
	OperatorCode       string
	OperatorName       string
}

func (s *Simple) Status() (SimpleStatus, error) {
	props, err := s.GetStatus()
	if err != nil {
		return SimpleStatus{}, err
	}
	return simpleStatusFromDBus(props)
}

func simpleStatusFromDBus(props PropertiesType) (status SimpleStatus, err error) {
	state, err := props.Int32("state")
	if err != nil {
		return status, err
	}
	status.State = ModemState(state)
	if v, ok := props.lookup("signal-quality"); ok {
		if status.SignalQuality, err = signalQualityFromVariant("signal-quality", v); err != nil {
			return status, err
		}
	}
	if v, ok := props.lookup("current-bands"); ok {
		bands, err := asUint32s("current-bands", v)
		if err != nil {
			return status, err
		}
		status.CurrentBands = toBands(bands)
	}
	if v, err := props.Uint32("access-technologies"); err == nil {
		status.AccessTechnologies = ModemAccessTechnology(v)
	} else if !isMissing(err) {
		return status, err
	}
	if v, err := props.Uint32("m3gpp-registration-state"); err == nil {
		status.RegistrationState = Modem3gppRegistrationState(v)
	} else if !isMissing(err) {
		return status, err
	}
	if status.OperatorCode, err = props.String("m3gpp-operator-code"); err != nil && !isMissing(err) {
		return status, err
	}
	if status.OperatorName, err = props.String("m3gpp-operator-name"); err != nil && !isMissing(err) {
		return status, err
	}
	return status, nil
}
