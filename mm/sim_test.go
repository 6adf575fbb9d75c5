package mm

import (
	"launchpad.net/go-dbus"
	. "launchpad.net/gocheck"
)

const testSimPath = dbus.ObjectPath("/org/freedesktop/ModemManager1/SIM/0")

type SimTestSuite struct {
	bus     fakeBus
	restore func()
	obj     *fakeObject
	sim     *Sim
}

var _ = Suite(&SimTestSuite{})

func (s *SimTestSuite) SetUpTest(c *C) {
	s.bus = make(fakeBus)
	s.restore = s.bus.install()
	s.obj = s.bus.object(testSimPath)
	s.sim = NewSim(nil, testSimPath)
}

func (s *SimTestSuite) TearDownTest(c *C) {
	s.restore()
}

func (s *SimTestSuite) TestPinMethods(c *C) {
	c.Assert(s.sim.SendPin("1234"), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{SIM_INTERFACE, "SendPin", []interface{}{"1234"}})
	c.Assert(s.sim.SendPuk("12345678", "0000"), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{SIM_INTERFACE, "SendPuk", []interface{}{"12345678", "0000"}})
	c.Assert(s.sim.EnablePin("0000", false), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{SIM_INTERFACE, "EnablePin", []interface{}{"0000", false}})
	c.Assert(s.sim.ChangePin("0000", "4321"), IsNil)
	c.Check(s.obj.lastCall(), DeepEquals, fakeCall{SIM_INTERFACE, "ChangePin", []interface{}{"0000", "4321"}})
}

func (s *SimTestSuite) TestSendPinIncorrect(c *C) {
	s.obj.errs[SIM_INTERFACE+".SendPin"] = &dbus.Error{Name: ERROR_ME_INCORRECT_PASSWORD, Message: "Incorrect password"}
	err := s.sim.SendPin("9999")
	c.Check(ErrorName(err), Equals, ERROR_ME_INCORRECT_PASSWORD)
}

func (s *SimTestSuite) TestIdentifiers(c *C) {
	s.obj.setProp(SIM_INTERFACE, "SimIdentifier", "8934071100276980483")
	s.obj.setProp(SIM_INTERFACE, "Imsi", "214074300891234")
	s.obj.setProp(SIM_INTERFACE, "Active", true)
	iccid, err := s.sim.SimIdentifier()
	c.Assert(err, IsNil)
	c.Check(iccid, Equals, "8934071100276980483")
	imsi, err := s.sim.Imsi()
	c.Assert(err, IsNil)
	c.Check(imsi, Equals, "214074300891234")
	active, err := s.sim.Active()
	c.Assert(err, IsNil)
	c.Check(active, Equals, true)
}

func (s *SimTestSuite) TestPreferredNetworks(c *C) {
	s.obj.setProp(SIM_INTERFACE, "PreferredNetworks", []interface{}{
		[]interface{}{"21407", uint32(1 << 14)},
		[]interface{}{"21401", uint32(0)},
	})
	networks, err := s.sim.PreferredNetworks()
	c.Assert(err, IsNil)
	c.Check(networks, DeepEquals, []PreferredNetwork{
		{"21407", ModemAccessTechnologyLte},
		{"21401", ModemAccessTechnologyUnknown},
	})
}

func (s *SimTestSuite) TestSetPreferredNetworks(c *C) {
	err := s.sim.SetPreferredNetworks([]PreferredNetwork{{"21407", ModemAccessTechnologyUmts | ModemAccessTechnologyLte}})
	c.Assert(err, IsNil)
	args := s.obj.lastCall().args
	c.Assert(args, HasLen, 1)
	list, err := asList("networks", args[0], nil)
	c.Assert(err, IsNil)
	c.Assert(list, HasLen, 1)
	fields, err := asStruct("networks", list[0], 2, nil)
	c.Assert(err, IsNil)
	c.Check(fields, DeepEquals, []interface{}{"21407", uint32(1<<5 | 1<<14)})
}
