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

type SimpleTestSuite struct {
	bus     fakeBus
	restore func()
	obj     *fakeObject
	simple  *Simple
	m3gpp   *Modem3gpp
}

var _ = Suite(&SimpleTestSuite{})

func (s *SimpleTestSuite) SetUpTest(c *C) {
	s.bus = make(fakeBus)
	s.restore = s.bus.install()
	s.obj = s.bus.object(testModemPath)
	modem := NewModem(nil, testModemPath)
	s.simple = modem.Simple()
	s.m3gpp = modem.Modem3gpp()
}

func (s *SimpleTestSuite) TearDownTest(c *C) {
	s.restore()
}

func (s *SimpleTestSuite) TestConnect(c *C) {
	s.obj.replies[MODEM_SIMPLE_INTERFACE+".Connect"] = []interface{}{testBearerPath}
	bearer, err := s.simple.Connect(ConnectProperties{
		BearerProperties: BearerProperties{Apn: "internet"},
		Pin:              "1234",
	})
	c.Assert(err, IsNil)
	c.Check(bearer.Path(), Equals, testBearerPath)
	c.Check(s.obj.lastCall().args, DeepEquals, []interface{}{map[string]dbus.Variant{
		"apn": dbus.Variant{Value: "internet"},
		"pin": dbus.Variant{Value: "1234"},
	}})
}

func (s *SimpleTestSuite) TestConnectFails(c *C) {
	s.obj.errs[MODEM_SIMPLE_INTERFACE+".Connect"] = &dbus.Error{Name: ERROR_ME_SIM_PIN}
	bearer, err := s.simple.Connect(ConnectProperties{})
	c.Check(bearer, IsNil)
	c.Check(IsErrorName(err, ERROR_ME_SIM_PIN), Equals, true)
}

func (s *SimpleTestSuite) TestDisconnect(c *C) {
	c.Assert(s.simple.Disconnect(testBearerPath), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{MODEM_SIMPLE_INTERFACE, "Disconnect", []interface{}{testBearerPath}})
	c.Assert(s.simple.DisconnectAll(), IsNil)
	c.Check(s.obj.lastCall().args, DeepEquals, []interface{}{EMPTY_PATH})
	c.Assert(s.simple.Disconnect(""), IsNil)
	c.Check(s.obj.lastCall().args, DeepEquals, []interface{}{EMPTY_PATH})
}

func (s *SimpleTestSuite) TestStatus(c *C) {
	s.obj.replies[MODEM_SIMPLE_INTERFACE+".GetStatus"] = []interface{}{PropertiesType{
		"state":                    dbus.Variant{Value: int32(11)},
		"signal-quality":           dbus.Variant{Value: []interface{}{uint32(60), true}},
		"current-bands":            dbus.Variant{Value: []uint32{31}},
		"access-technologies":      dbus.Variant{Value: uint32(1 << 14)},
		"m3gpp-registration-state": dbus.Variant{Value: uint32(1)},
		"m3gpp-operator-code":      dbus.Variant{Value: "21407"},
		"m3gpp-operator-name":      dbus.Variant{Value: "Movistar"},
	}}
	status, err := s.simple.Status()
	c.Assert(err, IsNil)
	c.Check(status, DeepEquals, SimpleStatus{
		State:              ModemStateConnected,
		SignalQuality:      SignalQuality{60, true},
		CurrentBands:       []ModemBand{ModemBandEutran1},
		AccessTechnologies: ModemAccessTechnologyLte,
		RegistrationState:  Modem3gppRegistrationStateHome,
		OperatorCode:       "21407",
		OperatorName:       "Movistar",
	})
}

func (s *SimpleTestSuite) TestStatusMinimal(c *C) {
	status, err := simpleStatusFromDBus(PropertiesType{"state": dbus.Variant{Value: int32(3)}})
	c.Assert(err, IsNil)
	c.Check(status, DeepEquals, SimpleStatus{State: ModemStateDisabled})
}

func (s *SimpleTestSuite) TestStatusWithoutState(c *C) {
	_, err := simpleStatusFromDBus(PropertiesType{})
	c.Check(err, Equals, ErrorPropertyMissing("state"))
}

func (s *SimpleTestSuite) TestScan(c *C) {
	s.obj.replies[MODEM_3GPP_INTERFACE+".Scan"] = []interface{}{[]PropertiesType{
		{
			"status":            dbus.Variant{Value: uint32(2)},
			"operator-code":     dbus.Variant{Value: "21407"},
			"operator-long":     dbus.Variant{Value: "Movistar"},
			"access-technology": dbus.Variant{Value: uint32(1 << 14)},
		},
		{
			"status":        dbus.Variant{Value: uint32(3)},
			"operator-code": dbus.Variant{Value: "21401"},
		},
	}}
	networks, err := s.m3gpp.Scan()
	c.Assert(err, IsNil)
	c.Check(networks, DeepEquals, []NetworkInfo{
		{
			Status:           Modem3gppNetworkAvailabilityCurrent,
			OperatorLong:     "Movistar",
			OperatorCode:     "21407",
			AccessTechnology: ModemAccessTechnologyLte,
		},
		{
			Status:       Modem3gppNetworkAvailabilityForbidden,
			OperatorCode: "21401",
		},
	})
}

func (s *SimpleTestSuite) TestScanMissingOperatorCode(c *C) {
	s.obj.replies[MODEM_3GPP_INTERFACE+".Scan"] = []interface{}{[]PropertiesType{
		{"status": dbus.Variant{Value: uint32(1)}},
	}}
	_, err := s.m3gpp.Scan()
	c.Check(err, Equals, ErrorPropertyMissing("operator-code"))
}

func (s *SimpleTestSuite) TestRegister(c *C) {
	c.Assert(s.m3gpp.Register(""), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{MODEM_3GPP_INTERFACE, "Register", []interface{}{""}})
}

func (s *SimpleTestSuite) TestRegistrationState(c *C) {
	s.obj.setProp(MODEM_3GPP_INTERFACE, "RegistrationState", uint32(1))
	state, err := s.m3gpp.RegistrationState()
	c.Assert(err, IsNil)
	c.Check(state, Equals, Modem3gppRegistrationStateHome)
}
