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
	. "launchpad.net/gocheck"
)

const testModemPath = dbus.ObjectPath("/org/freedesktop/ModemManager1/Modem/0")

type ModemTestSuite struct {
	bus     fakeBus
	restore func()
	obj     *fakeObject
	modem   *Modem
}

var _ = Suite(&ModemTestSuite{})

func (s *ModemTestSuite) SetUpTest(c *C) {
	s.bus = make(fakeBus)
	s.restore = s.bus.install()
	s.obj = s.bus.object(testModemPath)
	s.modem = NewModem(nil, testModemPath)
}

func (s *ModemTestSuite) TearDownTest(c *C) {
	s.restore()
}

func (s *ModemTestSuite) TestEnable(c *C) {
	c.Assert(s.modem.Enable(true), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{MODEM_INTERFACE, "Enable", []interface{}{true}})
	c.Assert(s.modem.Enable(false), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{MODEM_INTERFACE, "Enable", []interface{}{false}})
}

func (s *ModemTestSuite) TestEnableUnauthorized(c *C) {
	s.obj.errs[MODEM_INTERFACE+".Enable"] = &dbus.Error{Name: ERROR_CORE_UNAUTHORIZED, Message: "not allowed"}
	err := s.modem.Enable(true)
	c.Assert(err, NotNil)
	c.Check(IsErrorName(err, ERROR_CORE_UNAUTHORIZED), Equals, true)
}

func (s *ModemTestSuite) TestCommand(c *C) {
	s.obj.replies[MODEM_INTERFACE+".Command"] = []interface{}{"+CSQ: 20,99"}
	response, err := s.modem.Command("AT+CSQ", 3)
	c.Assert(err, IsNil)
	c.Check(response, Equals, "+CSQ: 20,99")
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{MODEM_INTERFACE, "Command", []interface{}{"AT+CSQ", uint32(3)}})
}

func (s *ModemTestSuite) TestResetAndFactoryReset(c *C) {
	c.Assert(s.modem.Reset(), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{MODEM_INTERFACE, "Reset", nil})
	c.Assert(s.modem.FactoryReset("1234"), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{MODEM_INTERFACE, "FactoryReset", []interface{}{"1234"}})
}

func (s *ModemTestSuite) TestSetters(c *C) {
	c.Assert(s.modem.SetPowerState(ModemPowerStateOn), IsNil)
	c.Check(s.obj.lastCall().args, DeepEquals, []interface{}{uint32(3)})

	c.Assert(s.modem.SetCurrentCapabilities(ModemCapabilityGsmUmts|ModemCapabilityLte), IsNil)
	c.Check(s.obj.lastCall().args, DeepEquals, []interface{}{uint32(12)})

	c.Assert(s.modem.SetCurrentBands([]ModemBand{ModemBandUtran1, ModemBandEutran1}), IsNil)
	c.Check(s.obj.lastCall().args, DeepEquals, []interface{}{[]uint32{5, 31}})

	c.Assert(s.modem.SetPrimarySimSlot(2), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{MODEM_INTERFACE, "SetPrimarySimSlot", []interface{}{uint32(2)}})
}

func (s *ModemTestSuite) TestSetCurrentModes(c *C) {
	modes := ModeCombination{Allowed: ModemMode3g | ModemMode4g, Preferred: ModemMode4g}
	c.Assert(s.modem.SetCurrentModes(modes), IsNil)
	call := s.obj.lastCall()
	c.Check(call.method, Equals, "SetCurrentModes")
	c.Assert(call.args, HasLen, 1)
	fields, err := asStruct("modes", call.args[0], 2, modes)
	c.Assert(err, IsNil)
	c.Check(fields, DeepEquals, []interface{}{uint32(12), uint32(8)})
}

func (s *ModemTestSuite) TestCreateBearer(c *C) {
	s.obj.replies[MODEM_INTERFACE+".CreateBearer"] = []interface{}{dbus.ObjectPath("/org/freedesktop/ModemManager1/Bearer/4")}
	bearer, err := s.modem.CreateBearer(BearerProperties{Apn: "internet"})
	c.Assert(err, IsNil)
	c.Check(bearer.Path(), Equals, dbus.ObjectPath("/org/freedesktop/ModemManager1/Bearer/4"))
	args := s.obj.lastCall().args
	c.Assert(args, HasLen, 1)
	c.Check(args[0].(map[string]dbus.Variant)["apn"], DeepEquals, dbus.Variant{Value: "internet"})
}

func (s *ModemTestSuite) TestListBearers(c *C) {
	s.obj.replies[MODEM_INTERFACE+".ListBearers"] = []interface{}{[]dbus.ObjectPath{"/b/0", "/b/1"}}
	bearers, err := s.modem.ListBearers()
	c.Assert(err, IsNil)
	c.Assert(bearers, HasLen, 2)
	c.Check(bearers[1].Path(), Equals, dbus.ObjectPath("/b/1"))
}

func (s *ModemTestSuite) TestStringProperties(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "Manufacturer", "Quectel")
	s.obj.setProp(MODEM_INTERFACE, "Model", "EG25")
	s.obj.setProp(MODEM_INTERFACE, "EquipmentIdentifier", "867698041234567")

	manufacturer, err := s.modem.Manufacturer()
	c.Assert(err, IsNil)
	c.Check(manufacturer, Equals, "Quectel")
	model, err := s.modem.Model()
	c.Assert(err, IsNil)
	c.Check(model, Equals, "EG25")
	imei, err := s.modem.EquipmentIdentifier()
	c.Assert(err, IsNil)
	c.Check(imei, Equals, "867698041234567")
}

func (s *ModemTestSuite) TestMissingProperty(c *C) {
	_, err := s.modem.Revision()
	c.Assert(err, NotNil)
	c.Check(ErrorName(err), Equals, "org.freedesktop.DBus.Error.InvalidArgs")
}

func (s *ModemTestSuite) TestPropertyType(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "Model", uint32(1))
	_, err := s.modem.Model()
	c.Assert(err, FitsTypeOf, ErrorPropertyType{})
	c.Check(err.(ErrorPropertyType).Property(), Equals, "Model")
	c.Check(err, ErrorMatches, `property "Model" type is uint32, want string`)
}

func (s *ModemTestSuite) TestState(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "State", int32(-1))
	state, err := s.modem.State()
	c.Assert(err, IsNil)
	c.Check(state, Equals, ModemStateFailed)

	s.obj.setProp(MODEM_INTERFACE, "State", int32(8))
	state, err = s.modem.State()
	c.Assert(err, IsNil)
	c.Check(state, Equals, ModemStateRegistered)
	c.Check(state.String(), Equals, "registered")
}

func (s *ModemTestSuite) TestSignalQuality(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "SignalQuality", []interface{}{uint32(74), true})
	quality, err := s.modem.SignalQuality()
	c.Assert(err, IsNil)
	c.Check(quality, Equals, SignalQuality{74, true})

	s.obj.setProp(MODEM_INTERFACE, "SignalQuality", struct {
		Quality uint32
		Recent  bool
	}{12, false})
	quality, err = s.modem.SignalQuality()
	c.Assert(err, IsNil)
	c.Check(quality, Equals, SignalQuality{12, false})
}

func (s *ModemTestSuite) TestSignalQualityMalformed(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "SignalQuality", []interface{}{uint32(74)})
	_, err := s.modem.SignalQuality()
	c.Check(err, FitsTypeOf, ErrorPropertyType{})
}

func (s *ModemTestSuite) TestPorts(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "Ports", []interface{}{
		[]interface{}{"cdc-wdm0", uint32(6)},
		[]interface{}{"ttyUSB2", uint32(3)},
	})
	ports, err := s.modem.Ports()
	c.Assert(err, IsNil)
	c.Check(ports, DeepEquals, []Port{{"cdc-wdm0", ModemPortTypeQmi}, {"ttyUSB2", ModemPortTypeAt}})
	c.Check(ports[1].String(), Equals, "ttyUSB2 (at)")
}

func (s *ModemTestSuite) TestModes(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "CurrentModes", []interface{}{uint32(12), uint32(8)})
	s.obj.setProp(MODEM_INTERFACE, "SupportedModes", []interface{}{
		[]interface{}{uint32(4), uint32(0)},
		[]interface{}{uint32(12), uint32(8)},
	})
	current, err := s.modem.CurrentModes()
	c.Assert(err, IsNil)
	c.Check(current, Equals, ModeCombination{ModemMode3g | ModemMode4g, ModemMode4g})
	c.Check(current.String(), Equals, "allowed: 3g|4g; preferred: 4g")

	supported, err := s.modem.SupportedModes()
	c.Assert(err, IsNil)
	c.Check(supported, HasLen, 2)
	c.Check(supported[0], Equals, ModeCombination{ModemMode3g, ModemModeNone})
}

func (s *ModemTestSuite) TestUnlockRetries(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "UnlockRetries", map[uint32]uint32{2: 3, 4: 10})
	retries, err := s.modem.UnlockRetries()
	c.Assert(err, IsNil)
	c.Check(retries, DeepEquals, map[ModemLock]uint32{ModemLockSimPin: 3, ModemLockSimPuk: 10})
}

func (s *ModemTestSuite) TestBands(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "CurrentBands", []uint32{256})
	bands, err := s.modem.CurrentBands()
	c.Assert(err, IsNil)
	c.Check(bands, DeepEquals, []ModemBand{ModemBandAny})
}

func (s *ModemTestSuite) TestGetSim(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "Sim", dbus.ObjectPath("/"))
	sim, err := s.modem.GetSim()
	c.Assert(err, IsNil)
	c.Check(sim, IsNil)

	s.obj.setProp(MODEM_INTERFACE, "Sim", dbus.ObjectPath("/org/freedesktop/ModemManager1/SIM/0"))
	sim, err = s.modem.GetSim()
	c.Assert(err, IsNil)
	c.Assert(sim, NotNil)
	c.Check(sim.Path(), Equals, dbus.ObjectPath("/org/freedesktop/ModemManager1/SIM/0"))
}

func (s *ModemTestSuite) TestGetSimSlots(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "SimSlots", []dbus.ObjectPath{"/org/freedesktop/ModemManager1/SIM/0", "/"})
	sims, err := s.modem.GetSimSlots()
	c.Assert(err, IsNil)
	c.Assert(sims, HasLen, 2)
	c.Check(sims[0].Path(), Equals, dbus.ObjectPath("/org/freedesktop/ModemManager1/SIM/0"))
	c.Check(sims[1], IsNil)
}

func (s *ModemTestSuite) TestSubInterfacesShareObject(c *C) {
	c.Check(s.modem.Simple().InterfaceName(), Equals, MODEM_SIMPLE_INTERFACE)
	c.Check(s.modem.Modem3gpp().InterfaceName(), Equals, MODEM_3GPP_INTERFACE)
	c.Check(s.modem.Messaging().InterfaceName(), Equals, MODEM_MESSAGING_INTERFACE)
	c.Check(s.modem.Voice().InterfaceName(), Equals, MODEM_VOICE_INTERFACE)
	c.Check(s.modem.Voice().Path(), Equals, testModemPath)
	c.Check(s.modem.String(), Equals, string(testModemPath))
}

func (s *ModemTestSuite) TestGetAllProperties(c *C) {
	s.obj.setProp(MODEM_INTERFACE, "Model", "EG25")
	s.obj.setProp(MODEM_INTERFACE, "State", int32(6))
	s.obj.setProp(MODEM_SIMPLE_INTERFACE, "Unrelated", "x")
	props, err := s.modem.GetAllProperties()
	c.Assert(err, IsNil)
	c.Check(props, DeepEquals, PropertiesType{
		"Model": dbus.Variant{Value: "EG25"},
		"State": dbus.Variant{Value: int32(6)},
	})
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{PROPERTIES_INTERFACE, "GetAll", []interface{}{MODEM_INTERFACE}})
}

func (s *ModemTestSuite) TestStateChange(c *C) {
	change := stateChange(6, 8, 1)
	c.Check(change, Equals, StateChange{ModemStateEnabled, ModemStateRegistered, ModemStateChangeReasonUserRequested})
}
