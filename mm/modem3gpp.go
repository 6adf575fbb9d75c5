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

// Modem3gpp mirrors org.freedesktop.ModemManager1.Modem.Modem3gpp.
type Modem3gpp struct {
	mmInterface
}

// NetworkInfo is one network found by Scan.
type NetworkInfo struct {
	Status           Modem3gppNetworkAvailability
	OperatorLong     string
	OperatorShort    string
	OperatorCode     string
	AccessTechnology ModemAccessTechnology
}

// Register requests registration with the given network, or automatic
// registration when operatorID is empty. operatorID is the MCC+MNC.
func (m *Modem3gpp) Register(operatorID string) error {
	return m.call("Register", nil, operatorID)
}

// Scan scans for available networks. It may take a long time.
func (m *Modem3gpp) Scan() ([]NetworkInfo, error) {
	var results []PropertiesType
	if err := m.call("Scan", []interface{}{&results}); err != nil {
		return nil, err
	}
	networks := make([]NetworkInfo, 0, len(results))
	for _, props := range results {
		network, err := networkInfoFromDBus(props)
		if err != nil {
			return nil, err
		}
		networks = append(networks, network)
	}
	return networks, nil
}

func networkInfoFromDBus(props PropertiesType) (network NetworkInfo, err error) {
	status, err := props.Uint32("status")
	if err != nil {
		return network, err
	}
	network.Status = Modem3gppNetworkAvailability(status)
	if network.OperatorCode, err = props.String("operator-code"); err != nil {
		return network, err
	}
	if network.OperatorLong, err = props.String("operator-long"); err != nil && !isMissing(err) {
		return network, err
	}
	if network.OperatorShort, err = props.String("operator-short"); err != nil && !isMissing(err) {
		return network, err
	}
	if tech, err := props.Uint32("access-technology"); err == nil {
		network.AccessTechnology = ModemAccessTechnology(tech)
	} else if !isMissing(err) {
		return network, err
	}
	return network, nil
}

func (m *Modem3gpp) SetEpsUeModeOperation(mode Modem3gppEpsUeModeOperation) error {
	return m.call("SetEpsUeModeOperation", nil, uint32(mode))
}

// SetInitialEpsBearerSettings updates the settings used for the LTE attach.
func (m *Modem3gpp) SetInitialEpsBearerSettings(settings BearerProperties) error {
	return m.call("SetInitialEpsBearerSettings", nil, map[string]dbus.Variant(settings.ToDBus()))
}

func (m *Modem3gpp) Imei() (string, error) {
	return m.stringProperty("Imei")
}

func (m *Modem3gpp) RegistrationState() (Modem3gppRegistrationState, error) {
	v, err := m.uint32Property("RegistrationState")
	return Modem3gppRegistrationState(v), err
}

func (m *Modem3gpp) OperatorCode() (string, error) {
	return m.stringProperty("OperatorCode")
}

func (m *Modem3gpp) OperatorName() (string, error) {
	return m.stringProperty("OperatorName")
}

func (m *Modem3gpp) EnabledFacilityLocks() (Modem3gppFacility, error) {
	v, err := m.uint32Property("EnabledFacilityLocks")
	return Modem3gppFacility(v), err
}

func (m *Modem3gpp) SubscriptionState() (Modem3gppSubscriptionState, error) {
	v, err := m.uint32Property("SubscriptionState")
	return Modem3gppSubscriptionState(v), err
}

func (m *Modem3gpp) EpsUeModeOperation() (Modem3gppEpsUeModeOperation, error) {
	v, err := m.uint32Property("EpsUeModeOperation")
	return Modem3gppEpsUeModeOperation(v), err
}

// InitialEpsBearer returns the bearer used for the LTE attach, "/" when
// there is none.
func (m *Modem3gpp) InitialEpsBearer() (dbus.ObjectPath, error) {
	return m.pathProperty("InitialEpsBearer")
}

func (m *Modem3gpp) InitialEpsBearerSettings() (BearerProperties, error) {
	props, err := m.mapProperty("InitialEpsBearerSettings")
	if err != nil {
		return BearerProperties{}, err
	}
	return bearerPropertiesFromDBus(props)
}
