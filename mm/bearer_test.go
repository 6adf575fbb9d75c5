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

const testBearerPath = dbus.ObjectPath("/org/freedesktop/ModemManager1/Bearer/0")

type BearerTestSuite struct {
	bus     fakeBus
	restore func()
	obj     *fakeObject
	bearer  *Bearer
}

var _ = Suite(&BearerTestSuite{})

func (s *BearerTestSuite) SetUpTest(c *C) {
	s.bus = make(fakeBus)
	s.restore = s.bus.install()
	s.obj = s.bus.object(testBearerPath)
	s.bearer = NewBearer(nil, testBearerPath)
}

func (s *BearerTestSuite) TearDownTest(c *C) {
	s.restore()
}

func (s *BearerTestSuite) TestPropertiesToDBus(c *C) {
	roaming := false
	profile := int32(2)
	props := BearerProperties{
		Apn:          "internet",
		IpType:       BearerIpFamilyIpv4v6,
		AllowedAuth:  BearerAllowedAuthPap | BearerAllowedAuthChap,
		User:         "guest",
		Password:     "secret",
		ProfileId:    &profile,
		AllowRoaming: &roaming,
	}
	c.Check(props.ToDBus(), DeepEquals, PropertiesType{
		"apn":           dbus.Variant{Value: "internet"},
		"ip-type":       dbus.Variant{Value: uint32(4)},
		"allowed-auth":  dbus.Variant{Value: uint32(6)},
		"user":          dbus.Variant{Value: "guest"},
		"password":      dbus.Variant{Value: "secret"},
		"profile-id":    dbus.Variant{Value: int32(2)},
		"allow-roaming": dbus.Variant{Value: false},
	})
}

func (s *BearerTestSuite) TestEmptyPropertiesToDBus(c *C) {
	c.Check(BearerProperties{}.ToDBus(), HasLen, 0)
}

func (s *BearerTestSuite) TestBearerProperties(c *C) {
	s.obj.setProp(BEARER_INTERFACE, "Properties", map[string]dbus.Variant{
		"apn":           dbus.Variant{Value: "ims"},
		"apn-type":      dbus.Variant{Value: uint32(4)},
		"allow-roaming": dbus.Variant{Value: true},
		"profile-id":    dbus.Variant{Value: int32(1)},
	})
	props, err := s.bearer.BearerProperties()
	c.Assert(err, IsNil)
	c.Check(props.Apn, Equals, "ims")
	c.Check(props.ApnType, Equals, BearerApnTypeIms)
	c.Assert(props.AllowRoaming, NotNil)
	c.Check(*props.AllowRoaming, Equals, true)
	c.Assert(props.ProfileId, NotNil)
	c.Check(*props.ProfileId, Equals, int32(1))
	c.Check(props.User, Equals, "")
}

func (s *BearerTestSuite) TestBearerPropertiesRoundTrip(c *C) {
	in := BearerProperties{Apn: "internet", IpType: BearerIpFamilyIpv4, Multiplex: BearerMultiplexSupportRequested}
	out, err := bearerPropertiesFromDBus(in.ToDBus())
	c.Assert(err, IsNil)
	c.Check(out, DeepEquals, in)
}

func (s *BearerTestSuite) TestBearerPropertiesWrongType(c *C) {
	_, err := bearerPropertiesFromDBus(PropertiesType{"apn": dbus.Variant{Value: uint32(1)}})
	c.Check(err, FitsTypeOf, ErrorPropertyType{})
}

func (s *BearerTestSuite) TestIP4Config(c *C) {
	s.obj.setProp(BEARER_INTERFACE, "Ip4Config", map[string]dbus.Variant{
		"method":  dbus.Variant{Value: uint32(2)},
		"address": dbus.Variant{Value: "10.64.12.7"},
		"prefix":  dbus.Variant{Value: uint32(30)},
		"gateway": dbus.Variant{Value: "10.64.12.5"},
		"dns1":    dbus.Variant{Value: "8.8.8.8"},
		"dns2":    dbus.Variant{Value: "8.8.4.4"},
		"mtu":     dbus.Variant{Value: uint32(1500)},
	})
	config, err := s.bearer.IP4Config()
	c.Assert(err, IsNil)
	c.Check(config, DeepEquals, IPConfig{
		Method:  BearerIpMethodStatic,
		Address: "10.64.12.7",
		Prefix:  30,
		DNS:     []string{"8.8.8.8", "8.8.4.4"},
		Gateway: "10.64.12.5",
		Mtu:     1500,
	})
}

func (s *BearerTestSuite) TestIP6ConfigDhcp(c *C) {
	s.obj.setProp(BEARER_INTERFACE, "Ip6Config", map[string]dbus.Variant{
		"method": dbus.Variant{Value: uint32(3)},
	})
	config, err := s.bearer.IP6Config()
	c.Assert(err, IsNil)
	c.Check(config, DeepEquals, IPConfig{Method: BearerIpMethodDhcp})
}

func (s *BearerTestSuite) TestBearerStats(c *C) {
	s.obj.setProp(BEARER_INTERFACE, "Stats", map[string]dbus.Variant{
		"rx-bytes":        dbus.Variant{Value: uint64(1 << 20)},
		"tx-bytes":        dbus.Variant{Value: uint64(4096)},
		"duration":        dbus.Variant{Value: uint32(60)},
		"attempts":        dbus.Variant{Value: uint32(2)},
		"failed-attempts": dbus.Variant{Value: uint32(1)},
	})
	stats, err := s.bearer.BearerStats()
	c.Assert(err, IsNil)
	c.Check(stats, Equals, BearerStats{
		RxBytes:        1 << 20,
		TxBytes:        4096,
		Duration:       60,
		Attempts:       2,
		FailedAttempts: 1,
	})
}

func (s *BearerTestSuite) TestConnectionError(c *C) {
	s.obj.setProp(BEARER_INTERFACE, "ConnectionError", []interface{}{ERROR_ME_GPRS_NOT_ALLOWED, "service option not subscribed"})
	connErr, err := s.bearer.ConnectionError()
	c.Assert(err, IsNil)
	c.Check(connErr.Name, Equals, ERROR_ME_GPRS_NOT_ALLOWED)
	c.Check(connErr.String(), Equals, ERROR_ME_GPRS_NOT_ALLOWED+": service option not subscribed")
	c.Check(ConnectionError{}.String(), Equals, "")
}

func (s *BearerTestSuite) TestConnectDisconnect(c *C) {
	c.Assert(s.bearer.Connect(), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{BEARER_INTERFACE, "Connect", nil})
	c.Assert(s.bearer.Disconnect(), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{BEARER_INTERFACE, "Disconnect", nil})
}

func (s *BearerTestSuite) TestConnected(c *C) {
	s.obj.setProp(BEARER_INTERFACE, "Connected", true)
	s.obj.setProp(BEARER_INTERFACE, "Interface", "wwan0")
	connected, err := s.bearer.Connected()
	c.Assert(err, IsNil)
	c.Check(connected, Equals, true)
	iface, err := s.bearer.Interface()
	c.Assert(err, IsNil)
	c.Check(iface, Equals, "wwan0")
}
