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
	"errors"

	"launchpad.net/go-dbus"
	. "launchpad.net/gocheck"
)

type ManagerTestSuite struct {
	bus     fakeBus
	restore func()
	manager *ModemManager
	root    *fakeObject
}

var _ = Suite(&ManagerTestSuite{})

func (s *ManagerTestSuite) SetUpTest(c *C) {
	s.bus = make(fakeBus)
	s.restore = s.bus.install()
	s.manager = NewModemManager(nil)
	s.root = s.bus.object(MM_OBJECT_PATH)
}

func (s *ManagerTestSuite) TearDownTest(c *C) {
	s.restore()
}

func (s *ManagerTestSuite) TestScanDevices(c *C) {
	c.Assert(s.manager.ScanDevices(), IsNil)
	c.Check(s.root.lastCall(), DeepEquals, fakeCall{MM_MANAGER_INTERFACE, "ScanDevices", nil})
}

func (s *ManagerTestSuite) TestSetLogging(c *C) {
	for _, level := range []string{"ERR", "WARN", "INFO", "DEBUG"} {
		c.Assert(s.manager.SetLogging(level), IsNil)
		c.Check(s.root.lastCall(), DeepEquals, fakeCall{MM_MANAGER_INTERFACE, "SetLogging", []interface{}{level}})
	}
}

func (s *ManagerTestSuite) TestSetLoggingInvalid(c *C) {
	err := s.manager.SetLogging("debug")
	c.Check(err, Equals, ErrorInvalidLogLevel("debug"))
	c.Check(s.root.calls, HasLen, 0)
}

func (s *ManagerTestSuite) TestReportKernelEvent(c *C) {
	event := KernelEvent{Action: "add", Name: "ttyUSB0", Subsystem: "tty"}
	c.Assert(s.manager.ReportKernelEvent(event), IsNil)
	call := s.root.lastCall()
	c.Check(call.method, Equals, "ReportKernelEvent")
	c.Assert(call.args, HasLen, 1)
	c.Check(call.args[0], DeepEquals, map[string]dbus.Variant{
		"action":    dbus.Variant{Value: "add"},
		"name":      dbus.Variant{Value: "ttyUSB0"},
		"subsystem": dbus.Variant{Value: "tty"},
	})

	event.Uid = "usb-modem"
	c.Assert(s.manager.ReportKernelEvent(event), IsNil)
	c.Check(s.root.lastCall().args[0].(map[string]dbus.Variant)["uid"], DeepEquals, dbus.Variant{Value: "usb-modem"})
}

func (s *ManagerTestSuite) TestReportKernelEventInvalid(c *C) {
	events := []KernelEvent{
		{Action: "change", Name: "ttyUSB0", Subsystem: "tty"},
		{Action: "add", Subsystem: "tty"},
		{Action: "remove", Name: "ttyUSB0"},
	}
	for _, event := range events {
		err := s.manager.ReportKernelEvent(event)
		c.Check(err, FitsTypeOf, ErrorInvalidKernelEvent{})
	}
	c.Check(s.root.calls, HasLen, 0)
}

func (s *ManagerTestSuite) TestInhibitDevice(c *C) {
	c.Assert(s.manager.InhibitDevice("/sys/devices/usb1", true), IsNil)
	c.Check(s.root.lastCall(), DeepEquals, fakeCall{MM_MANAGER_INTERFACE, "InhibitDevice", []interface{}{"/sys/devices/usb1", true}})
}

func (s *ManagerTestSuite) TestVersion(c *C) {
	s.root.setProp(MM_MANAGER_INTERFACE, "Version", "1.20.0")
	version, err := s.manager.Version()
	c.Assert(err, IsNil)
	c.Check(version, Equals, "1.20.0")
}

func (s *ManagerTestSuite) TestModemsSortedAndFiltered(c *C) {
	s.root.replies[OBJECT_MANAGER_INTERFACE+".GetManagedObjects"] = []interface{}{ManagedObjects{
		"/org/freedesktop/ModemManager1/Modem/3": {MODEM_INTERFACE: PropertiesType{}},
		"/org/freedesktop/ModemManager1/SIM/0":   {SIM_INTERFACE: PropertiesType{}},
		"/org/freedesktop/ModemManager1/Modem/1": {MODEM_INTERFACE: PropertiesType{}, MODEM_SIMPLE_INTERFACE: PropertiesType{}},
	}}
	modems, err := s.manager.Modems()
	c.Assert(err, IsNil)
	c.Assert(modems, HasLen, 2)
	c.Check(modems[0].Path(), Equals, dbus.ObjectPath("/org/freedesktop/ModemManager1/Modem/1"))
	c.Check(modems[1].Path(), Equals, dbus.ObjectPath("/org/freedesktop/ModemManager1/Modem/3"))
	c.Check(modems[0].InterfaceName(), Equals, MODEM_INTERFACE)
}

func (s *ManagerTestSuite) TestModemsError(c *C) {
	s.root.errs[OBJECT_MANAGER_INTERFACE+".GetManagedObjects"] = &dbus.Error{Name: ERROR_DBUS_SERVICE_UNKNOWN}
	_, err := s.manager.Modems()
	c.Check(IsErrorName(err, ERROR_DBUS_SERVICE_UNKNOWN), Equals, true)
}

func (s *ManagerTestSuite) TestWrappers(c *C) {
	c.Check(s.manager.Modem("/m/0").InterfaceName(), Equals, MODEM_INTERFACE)
	c.Check(s.manager.Bearer("/b/0").InterfaceName(), Equals, BEARER_INTERFACE)
	c.Check(s.manager.Sim("/s/0").InterfaceName(), Equals, SIM_INTERFACE)
	c.Check(s.manager.Sms("/sms/0").InterfaceName(), Equals, SMS_INTERFACE)
	c.Check(s.manager.Call("/c/0").InterfaceName(), Equals, CALL_INTERFACE)
	c.Check(s.manager.Call("/c/0").Path(), Equals, dbus.ObjectPath("/c/0"))
}

func (s *ManagerTestSuite) TestModemAddedAndRemoved(c *C) {
	s.manager.signal = &signalWatches{endWatch: make(chan bool)}
	defer s.manager.signal.cancel()

	done := make(chan bool)
	go func() {
		s.manager.handleInterfacesAdded("/m/0", map[string]PropertiesType{SIM_INTERFACE: {}})
		s.manager.handleInterfacesAdded("/m/1", map[string]PropertiesType{MODEM_INTERFACE: {}})
		s.manager.handleInterfacesRemoved("/m/1", []string{MODEM_SIMPLE_INTERFACE})
		s.manager.handleInterfacesRemoved("/m/1", []string{MODEM_INTERFACE})
		done <- true
	}()

	added := <-s.manager.ModemAdded
	c.Check(added.Path(), Equals, dbus.ObjectPath("/m/1"))
	removed := <-s.manager.ModemRemoved
	c.Check(removed, Equals, added)
	<-done
	c.Check(s.manager.modems, HasLen, 0)
}

func (s *ManagerTestSuite) TestModemAddedOnce(c *C) {
	s.manager.signal = &signalWatches{endWatch: make(chan bool)}
	defer s.manager.signal.cancel()

	done := make(chan bool)
	go func() {
		s.manager.addModem("/m/2")
		s.manager.handleInterfacesAdded("/m/2", map[string]PropertiesType{MODEM_INTERFACE: {}})
		s.manager.handleInterfacesAdded("/m/3", map[string]PropertiesType{MODEM_INTERFACE: {}})
		done <- true
	}()

	c.Check((<-s.manager.ModemAdded).Path(), Equals, dbus.ObjectPath("/m/2"))
	c.Check((<-s.manager.ModemAdded).Path(), Equals, dbus.ObjectPath("/m/3"))
	<-done
	c.Check(s.manager.modems, HasLen, 2)
}

func (s *ManagerTestSuite) TestRemoveUnknownModem(c *C) {
	s.manager.signal = &signalWatches{endWatch: make(chan bool)}
	c.Check(s.manager.handleInterfacesRemoved("/m/7", []string{MODEM_INTERFACE}), Equals, true)
}

func (s *ManagerTestSuite) TestAddModemAfterCancel(c *C) {
	s.manager.signal = &signalWatches{endWatch: make(chan bool)}
	s.manager.signal.cancel()
	c.Check(s.manager.addModem("/m/0"), Equals, false)
}

func (s *ManagerTestSuite) TestErrorName(c *C) {
	err := &dbus.Error{Name: ERROR_ME_SIM_PIN, Message: "SIM PIN required"}
	wrapped := errors.New("not from the bus")
	c.Check(ErrorName(err), Equals, ERROR_ME_SIM_PIN)
	c.Check(ErrorName(wrapped), Equals, "")
	c.Check(IsErrorName(err, ERROR_ME_SIM_PUK, ERROR_ME_SIM_PIN), Equals, true)
	c.Check(IsErrorName(err, ERROR_ME_SIM_PUK), Equals, false)
	c.Check(IsErrorName(nil, ERROR_ME_SIM_PUK), Equals, false)

	smsErr := &dbus.Error{Name: "org.freedesktop.ModemManager1.Error.MessageError.SmscAddressUnknown"}
	c.Check(IsErrorName(smsErr, ERROR_SMS_SMSC_ADDRESS), Equals, true)
}
