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

const testSmsPath = dbus.ObjectPath("/org/freedesktop/ModemManager1/SMS/3")

type SmsTestSuite struct {
	bus       fakeBus
	restore   func()
	modemObj  *fakeObject
	smsObj    *fakeObject
	messaging *Messaging
	sms       *Sms
}

var _ = Suite(&SmsTestSuite{})

func (s *SmsTestSuite) SetUpTest(c *C) {
	s.bus = make(fakeBus)
	s.restore = s.bus.install()
	s.modemObj = s.bus.object(testModemPath)
	s.smsObj = s.bus.object(testSmsPath)
	s.messaging = NewModem(nil, testModemPath).Messaging()
	s.sms = NewSms(nil, testSmsPath)
}

func (s *SmsTestSuite) TearDownTest(c *C) {
	s.restore()
}

func (s *SmsTestSuite) TestCreate(c *C) {
	s.modemObj.replies[MODEM_MESSAGING_INTERFACE+".Create"] = []interface{}{testSmsPath}
	sms, err := s.messaging.Create(SmsProperties{Number: "+34600000000", Text: "hola"})
	c.Assert(err, IsNil)
	c.Check(sms.Path(), Equals, testSmsPath)
	c.Check(s.modemObj.lastCall().args, DeepEquals, []interface{}{map[string]dbus.Variant{
		"number": dbus.Variant{Value: "+34600000000"},
		"text":   dbus.Variant{Value: "hola"},
	}})
}

func (s *SmsTestSuite) TestCreateInvalid(c *C) {
	invalid := []SmsProperties{
		{Text: "no number"},
		{Number: "+34600000000"},
		{Number: "+34600000000", Text: "both", Data: []byte{1}},
	}
	for _, props := range invalid {
		_, err := s.messaging.Create(props)
		c.Check(err, FitsTypeOf, ErrorInvalidSmsProperties{})
	}
	c.Check(s.modemObj.calls, HasLen, 0)
}

func (s *SmsTestSuite) TestToDBusOptional(c *C) {
	class := int32(1)
	props := SmsProperties{
		Number:                "+34600000000",
		Data:                  []byte{0xca, 0xfe},
		Smsc:                  "+34609090909",
		Validity:              Validity{SmsValidityTypeRelative, 60},
		Class:                 &class,
		DeliveryReportRequest: true,
		Storage:               SmsStorageMe,
	}
	d := props.ToDBus()
	c.Check(d["data"], DeepEquals, dbus.Variant{Value: []byte{0xca, 0xfe}})
	c.Check(d["smsc"], DeepEquals, dbus.Variant{Value: "+34609090909"})
	c.Check(d["class"], DeepEquals, dbus.Variant{Value: int32(1)})
	c.Check(d["delivery-report-request"], DeepEquals, dbus.Variant{Value: true})
	c.Check(d["storage"], DeepEquals, dbus.Variant{Value: uint32(2)})
	c.Check(d.Has("text"), Equals, false)
	fields, err := asStruct("validity", d["validity"].Value, 2, Validity{})
	c.Assert(err, IsNil)
	c.Check(fields, DeepEquals, []interface{}{uint32(1), dbus.Variant{Value: uint32(60)}})
}

func (s *SmsTestSuite) TestList(c *C) {
	s.modemObj.replies[MODEM_MESSAGING_INTERFACE+".List"] = []interface{}{[]dbus.ObjectPath{testSmsPath}}
	messages, err := s.messaging.List()
	c.Assert(err, IsNil)
	c.Assert(messages, HasLen, 1)
	c.Check(messages[0].Path(), Equals, testSmsPath)
}

func (s *SmsTestSuite) TestDelete(c *C) {
	c.Assert(s.messaging.Delete(testSmsPath), IsNil)
	c.Check(s.modemObj.lastCall(), DeepEquals, fakeCall{MODEM_MESSAGING_INTERFACE, "Delete", []interface{}{testSmsPath}})
}

func (s *SmsTestSuite) TestSupportedStorages(c *C) {
	s.modemObj.setProp(MODEM_MESSAGING_INTERFACE, "SupportedStorages", []uint32{1, 2})
	storages, err := s.messaging.SupportedStorages()
	c.Assert(err, IsNil)
	c.Check(storages, DeepEquals, []SmsStorage{SmsStorageSm, SmsStorageMe})
}

func (s *SmsTestSuite) TestSendAndStore(c *C) {
	c.Assert(s.sms.Send(), IsNil)
	c.Check(s.smsObj.lastCall(), DeepEquals, fakeCall{SMS_INTERFACE, "Send", nil})
	c.Assert(s.sms.Store(SmsStorageUnknown), IsNil)
	c.Check(s.smsObj.lastCall(), DeepEquals, fakeCall{SMS_INTERFACE, "Store", []interface{}{uint32(0)}})
}

func (s *SmsTestSuite) TestProperties(c *C) {
	s.smsObj.setProp(SMS_INTERFACE, "Number", "+34600000000")
	s.smsObj.setProp(SMS_INTERFACE, "State", uint32(3))
	s.smsObj.setProp(SMS_INTERFACE, "Data", []byte{1, 2, 3})

	number, err := s.sms.Number()
	c.Assert(err, IsNil)
	c.Check(number, Equals, "+34600000000")
	state, err := s.sms.State()
	c.Assert(err, IsNil)
	c.Check(state, Equals, SmsStateReceived)
	data, err := s.sms.Data()
	c.Assert(err, IsNil)
	c.Check(data, DeepEquals, []byte{1, 2, 3})

	s.smsObj.setProp(SMS_INTERFACE, "Data", []interface{}{byte(4), byte(5)})
	data, err = s.sms.Data()
	c.Assert(err, IsNil)
	c.Check(data, DeepEquals, []byte{4, 5})
}

func (s *SmsTestSuite) TestValidityRelative(c *C) {
	s.smsObj.setProp(SMS_INTERFACE, "Validity", []interface{}{uint32(1), dbus.Variant{Value: uint32(167)}})
	validity, err := s.sms.Validity()
	c.Assert(err, IsNil)
	c.Check(validity, Equals, Validity{SmsValidityTypeRelative, 167})
}

func (s *SmsTestSuite) TestValidityUnknown(c *C) {
	s.smsObj.setProp(SMS_INTERFACE, "Validity", []interface{}{uint32(0), dbus.Variant{Value: uint32(0)}})
	validity, err := s.sms.Validity()
	c.Assert(err, IsNil)
	c.Check(validity, Equals, Validity{})
}

func (s *SmsTestSuite) TestMessageEvent(c *C) {
	event := s.messaging.messageEvent(testSmsPath, true, false)
	c.Check(event.Sms.Path(), Equals, testSmsPath)
	c.Check(event.Received, Equals, true)
	c.Check(event.Deleted, Equals, false)
}
