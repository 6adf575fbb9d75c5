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
	"fmt"

	"launchpad.net/go-dbus"
)

// Port is one entry of the Ports property.
type Port struct {
	Name string
	Type ModemPortType
}

func (p Port) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Type)
}

// SignalQuality is the signal quality in percent and whether the value was
// taken recently.
type SignalQuality struct {
	Quality uint32
	Recent  bool
}

// ModeCombination is an allowed set of access modes together with the
// preferred one among them.
type ModeCombination struct {
	Allowed   ModemMode
	Preferred ModemMode
}

func (c ModeCombination) String() string {
	return fmt.Sprintf("allowed: %s; preferred: %s", c.Allowed, c.Preferred)
}

// Modem mirrors org.freedesktop.ModemManager1.Modem.
type Modem struct {
	mmInterface
}

func NewModem(conn *dbus.Connection, objectPath dbus.ObjectPath) *Modem {
	return &Modem{newInterface(conn, objectPath, MODEM_INTERFACE)}
}

func (modem *Modem) String() string {
	return string(modem.Path())
}

func (modem *Modem) Simple() *Simple {
	return &Simple{modem.with(MODEM_SIMPLE_INTERFACE)}
}

func (modem *Modem) Modem3gpp() *Modem3gpp {
	return &Modem3gpp{modem.with(MODEM_3GPP_INTERFACE)}
}

func (modem *Modem) Messaging() *Messaging {
	return &Messaging{modem.with(MODEM_MESSAGING_INTERFACE)}
}

func (modem *Modem) Voice() *Voice {
	return &Voice{modem.with(MODEM_VOICE_INTERFACE)}
}

// Enable enables or disables the modem. When enabled the modem's radio is
// powered on and data sessions, voice calls, location services and SMS may be
// available.
func (modem *Modem) Enable(enable bool) error {
	return modem.call("Enable", nil, enable)
}

// ListBearers lists the packet data bearers of the modem.
//
// Deprecated: read the Bearers property instead.
func (modem *Modem) ListBearers() ([]*Bearer, error) {
	var paths []dbus.ObjectPath
	if err := modem.call("ListBearers", []interface{}{&paths}); err != nil {
		return nil, err
	}
	return modem.bearers(paths), nil
}

// CreateBearer creates a new packet data bearer using the given
// characteristics. The bearer is not connected.
func (modem *Modem) CreateBearer(props BearerProperties) (*Bearer, error) {
	var objectPath dbus.ObjectPath
	if err := modem.call("CreateBearer", []interface{}{&objectPath}, map[string]dbus.Variant(props.ToDBus())); err != nil {
		return nil, err
	}
	return NewBearer(modem.conn, objectPath), nil
}

// DeleteBearer deletes an existing packet data bearer. A connected bearer is
// disconnected first.
func (modem *Modem) DeleteBearer(bearer dbus.ObjectPath) error {
	return modem.call("DeleteBearer", nil, bearer)
}

// Reset clears non-persistent configuration and state, and returns the device
// to a newly-powered-on state.
func (modem *Modem) Reset() error {
	return modem.call("Reset", nil)
}

// FactoryReset clears the modem's configuration (including persistent
// configuration and state) and returns the device to a factory-default
// state. code is carrier supplied.
func (modem *Modem) FactoryReset(code string) error {
	return modem.call("FactoryReset", nil, code)
}

func (modem *Modem) SetPowerState(state ModemPowerState) error {
	return modem.call("SetPowerState", nil, uint32(state))
}

func (modem *Modem) SetCurrentCapabilities(capabilities ModemCapability) error {
	return modem.call("SetCurrentCapabilities", nil, uint32(capabilities))
}

// SetCurrentModes sets the access technologies the device may use, and the
// preferred one among them.
func (modem *Modem) SetCurrentModes(modes ModeCombination) error {
	arg := struct {
		Allowed, Preferred uint32
	}{uint32(modes.Allowed), uint32(modes.Preferred)}
	return modem.call("SetCurrentModes", nil, arg)
}

// SetCurrentBands sets the radio frequency and technology bands the device
// is currently allowed to use. ModemBandAny alone enables every supported
// band.
func (modem *Modem) SetCurrentBands(bands []ModemBand) error {
	arg := make([]uint32, len(bands))
	for i, b := range bands {
		arg[i] = uint32(b)
	}
	return modem.call("SetCurrentBands", nil, arg)
}

// SetPrimarySimSlot selects the SIM slot to use, counting from 1. The modem
// is reprobed after the switch.
func (modem *Modem) SetPrimarySimSlot(slot uint32) error {
	return modem.call("SetPrimarySimSlot", nil, slot)
}

// Command sends an AT command to the modem and returns its reply. timeout is
// in seconds. The daemon only allows it in debug mode.
func (modem *Modem) Command(cmd string, timeout uint32) (string, error) {
	var response string
	if err := modem.call("Command", []interface{}{&response}, cmd, timeout); err != nil {
		return "", err
	}
	return response, nil
}

// Sim returns the object path of the active SIM, "/" when there is none.
func (modem *Modem) Sim() (dbus.ObjectPath, error) {
	return modem.pathProperty("Sim")
}

// GetSim returns the active SIM, nil when there is none.
func (modem *Modem) GetSim() (*Sim, error) {
	objectPath, err := modem.Sim()
	if err != nil || isEmptyPath(objectPath) {
		return nil, err
	}
	return NewSim(modem.conn, objectPath), nil
}

// SimSlots returns the SIM object paths of every slot; empty slots are "/".
func (modem *Modem) SimSlots() ([]dbus.ObjectPath, error) {
	return modem.pathsProperty("SimSlots")
}

// GetSimSlots returns the SIM of every slot with nil for empty ones.
func (modem *Modem) GetSimSlots() ([]*Sim, error) {
	paths, err := modem.SimSlots()
	if err != nil {
		return nil, err
	}
	sims := make([]*Sim, len(paths))
	for i, p := range paths {
		if !isEmptyPath(p) {
			sims[i] = NewSim(modem.conn, p)
		}
	}
	return sims, nil
}

func (modem *Modem) PrimarySimSlot() (uint32, error) {
	return modem.uint32Property("PrimarySimSlot")
}

func (modem *Modem) Bearers() ([]dbus.ObjectPath, error) {
	return modem.pathsProperty("Bearers")
}

func (modem *Modem) GetBearers() ([]*Bearer, error) {
	paths, err := modem.Bearers()
	if err != nil {
		return nil, err
	}
	return modem.bearers(paths), nil
}

func (modem *Modem) bearers(paths []dbus.ObjectPath) []*Bearer {
	bearers := make([]*Bearer, len(paths))
	for i, p := range paths {
		bearers[i] = NewBearer(modem.conn, p)
	}
	return bearers
}

// SupportedCapabilities lists the capability combinations the modem can be
// switched to.
func (modem *Modem) SupportedCapabilities() ([]ModemCapability, error) {
	values, err := modem.uint32sProperty("SupportedCapabilities")
	if err != nil {
		return nil, err
	}
	caps := make([]ModemCapability, len(values))
	for i, v := range values {
		caps[i] = ModemCapability(v)
	}
	return caps, nil
}

func (modem *Modem) CurrentCapabilities() (ModemCapability, error) {
	v, err := modem.uint32Property("CurrentCapabilities")
	return ModemCapability(v), err
}

func (modem *Modem) MaxBearers() (uint32, error) {
	return modem.uint32Property("MaxBearers")
}

func (modem *Modem) MaxActiveBearers() (uint32, error) {
	return modem.uint32Property("MaxActiveBearers")
}

func (modem *Modem) MaxActiveMultiplexedBearers() (uint32, error) {
	return modem.uint32Property("MaxActiveMultiplexedBearers")
}

func (modem *Modem) Manufacturer() (string, error) {
	return modem.stringProperty("Manufacturer")
}

func (modem *Modem) Model() (string, error) {
	return modem.stringProperty("Model")
}

func (modem *Modem) Revision() (string, error) {
	return modem.stringProperty("Revision")
}

func (modem *Modem) CarrierConfiguration() (string, error) {
	return modem.stringProperty("CarrierConfiguration")
}

func (modem *Modem) CarrierConfigurationRevision() (string, error) {
	return modem.stringProperty("CarrierConfigurationRevision")
}

func (modem *Modem) HardwareRevision() (string, error) {
	return modem.stringProperty("HardwareRevision")
}

// DeviceIdentifier is a best-effort device identifier based on various
// device information, stable across reboots.
func (modem *Modem) DeviceIdentifier() (string, error) {
	return modem.stringProperty("DeviceIdentifier")
}

// Device is the physical modem device reference, the uid InhibitDevice
// expects.
func (modem *Modem) Device() (string, error) {
	return modem.stringProperty("Device")
}

func (modem *Modem) Drivers() ([]string, error) {
	return modem.stringsProperty("Drivers")
}

func (modem *Modem) Plugin() (string, error) {
	return modem.stringProperty("Plugin")
}

func (modem *Modem) PrimaryPort() (string, error) {
	return modem.stringProperty("PrimaryPort")
}

func (modem *Modem) Ports() ([]Port, error) {
	v, err := modem.property("Ports")
	if err != nil {
		return nil, err
	}
	list, err := asList("Ports", v, []Port{})
	if err != nil {
		return nil, err
	}
	ports := make([]Port, len(list))
	for i, item := range list {
		fields, err := asStruct("Ports", item, 2, Port{})
		if err != nil {
			return nil, err
		}
		name, err := asString("Ports", fields[0])
		if err != nil {
			return nil, err
		}
		portType, err := asUint32("Ports", fields[1])
		if err != nil {
			return nil, err
		}
		ports[i] = Port{name, ModemPortType(portType)}
	}
	return ports, nil
}

// EquipmentIdentifier is the IMEI for GSM/UMTS/LTE modems, the ESN or MEID
// for CDMA ones.
func (modem *Modem) EquipmentIdentifier() (string, error) {
	return modem.stringProperty("EquipmentIdentifier")
}

func (modem *Modem) UnlockRequired() (ModemLock, error) {
	v, err := modem.uint32Property("UnlockRequired")
	return ModemLock(v), err
}

// UnlockRetries returns the number of unlock attempts left for each lock type.
func (modem *Modem) UnlockRetries() (map[ModemLock]uint32, error) {
	v, err := modem.property("UnlockRetries")
	if err != nil {
		return nil, err
	}
	raw, err := asUint32Map("UnlockRetries", v)
	if err != nil {
		return nil, err
	}
	retries := make(map[ModemLock]uint32, len(raw))
	for lock, n := range raw {
		retries[ModemLock(lock)] = n
	}
	return retries, nil
}

func (modem *Modem) State() (ModemState, error) {
	v, err := modem.int32Property("State")
	return ModemState(v), err
}

func (modem *Modem) StateFailedReason() (ModemStateFailedReason, error) {
	v, err := modem.uint32Property("StateFailedReason")
	return ModemStateFailedReason(v), err
}

func (modem *Modem) AccessTechnologies() (ModemAccessTechnology, error) {
	v, err := modem.uint32Property("AccessTechnologies")
	return ModemAccessTechnology(v), err
}

func (modem *Modem) SignalQuality() (SignalQuality, error) {
	v, err := modem.property("SignalQuality")
	if err != nil {
		return SignalQuality{}, err
	}
	return signalQualityFromVariant("SignalQuality", v)
}

func signalQualityFromVariant(name string, v interface{}) (SignalQuality, error) {
	fields, err := asStruct(name, v, 2, SignalQuality{})
	if err != nil {
		return SignalQuality{}, err
	}
	quality, err := asUint32(name, fields[0])
	if err != nil {
		return SignalQuality{}, err
	}
	recent, err := asBool(name, fields[1])
	if err != nil {
		return SignalQuality{}, err
	}
	return SignalQuality{quality, recent}, nil
}

func (modem *Modem) OwnNumbers() ([]string, error) {
	return modem.stringsProperty("OwnNumbers")
}

func (modem *Modem) PowerState() (ModemPowerState, error) {
	v, err := modem.uint32Property("PowerState")
	return ModemPowerState(v), err
}

func (modem *Modem) SupportedModes() ([]ModeCombination, error) {
	v, err := modem.property("SupportedModes")
	if err != nil {
		return nil, err
	}
	list, err := asList("SupportedModes", v, []ModeCombination{})
	if err != nil {
		return nil, err
	}
	modes := make([]ModeCombination, len(list))
	for i, item := range list {
		if modes[i], err = modeCombination("SupportedModes", item); err != nil {
			return nil, err
		}
	}
	return modes, nil
}

func (modem *Modem) CurrentModes() (ModeCombination, error) {
	v, err := modem.property("CurrentModes")
	if err != nil {
		return ModeCombination{}, err
	}
	return modeCombination("CurrentModes", v)
}

func modeCombination(name string, v interface{}) (ModeCombination, error) {
	fields, err := asStruct(name, v, 2, ModeCombination{})
	if err != nil {
		return ModeCombination{}, err
	}
	allowed, err := asUint32(name, fields[0])
	if err != nil {
		return ModeCombination{}, err
	}
	preferred, err := asUint32(name, fields[1])
	if err != nil {
		return ModeCombination{}, err
	}
	return ModeCombination{ModemMode(allowed), ModemMode(preferred)}, nil
}

func (modem *Modem) SupportedBands() ([]ModemBand, error) {
	return modem.bandsProperty("SupportedBands")
}

func (modem *Modem) CurrentBands() ([]ModemBand, error) {
	return modem.bandsProperty("CurrentBands")
}

func (modem *Modem) bandsProperty(name string) ([]ModemBand, error) {
	values, err := modem.uint32sProperty(name)
	if err != nil {
		return nil, err
	}
	return toBands(values), nil
}

func toBands(values []uint32) []ModemBand {
	bands := make([]ModemBand, len(values))
	for i, v := range values {
		bands[i] = ModemBand(v)
	}
	return bands
}

func (modem *Modem) SupportedIpFamilies() (BearerIpFamily, error) {
	v, err := modem.uint32Property("SupportedIpFamilies")
	return BearerIpFamily(v), err
}
