package mm

import (
	. "launchpad.net/gocheck"
)

type EnumsTestSuite struct{}

var _ = Suite(&EnumsTestSuite{})

func (s *EnumsTestSuite) TestValueString(c *C) {
	c.Check(ModemStateFailed.String(), Equals, "failed")
	c.Check(ModemStateConnected.String(), Equals, "connected")
	c.Check(ModemState(42).String(), Equals, "ModemState(42)")
	c.Check(ModemPortTypeQmi.String(), Equals, "qmi")
	c.Check(SmsStorageMe.String(), Equals, "me")
}

func (s *EnumsTestSuite) TestFlagString(c *C) {
	c.Check(ModemCapabilityNone.String(), Equals, "none")
	c.Check(ModemCapabilityAny.String(), Equals, "any")
	c.Check((ModemCapabilityGsmUmts | ModemCapabilityLte).String(), Equals, "gsm-umts|lte")
	c.Check((ModemMode2g | ModemMode3g | ModemMode4g).String(), Equals, "2g|3g|4g")
	c.Check((ModemAccessTechnologyLte | 1<<30).String(), Equals, "lte|0x40000000")
	c.Check(BearerIpFamilyIpv4v6.String(), Equals, "ipv4v6")
}

func (s *EnumsTestSuite) TestParseValue(c *C) {
	state, err := ParseModemState("registered")
	c.Assert(err, IsNil)
	c.Check(state, Equals, ModemStateRegistered)

	state, err = ParseModemState(" Failed ")
	c.Assert(err, IsNil)
	c.Check(state, Equals, ModemStateFailed)

	_, err = ParseModemState("asleep")
	c.Check(err, Equals, ErrorUnknownEnumName{"ModemState", "asleep"})
	c.Check(err, ErrorMatches, `"asleep" is not a valid ModemState`)
}

func (s *EnumsTestSuite) TestParseFlags(c *C) {
	mode, err := ParseModemMode("3g|4g")
	c.Assert(err, IsNil)
	c.Check(mode, Equals, ModemMode3g|ModemMode4g)

	auth, err := ParseBearerAllowedAuth("pap | chap")
	c.Assert(err, IsNil)
	c.Check(auth, Equals, BearerAllowedAuthPap|BearerAllowedAuthChap)

	_, err = ParseModemMode("3g|6g")
	c.Check(err, Equals, ErrorUnknownEnumName{"ModemMode", "6g"})
}

func (s *EnumsTestSuite) TestParseRoundTrip(c *C) {
	for _, band := range []ModemBand{ModemBandUtran1, ModemBandEutran1, ModemBandAny} {
		parsed, err := ParseModemBand(band.String())
		c.Assert(err, IsNil)
		c.Check(parsed, Equals, band)
	}
	for _, tech := range []ModemAccessTechnology{ModemAccessTechnologyGsm, ModemAccessTechnologyUmts | ModemAccessTechnologyHspa} {
		parsed, err := ParseModemAccessTechnology(tech.String())
		c.Assert(err, IsNil)
		c.Check(parsed, Equals, tech)
	}
}

func (s *EnumsTestSuite) TestMarshalYAML(c *C) {
	v, err := BearerIpMethodStatic.MarshalYAML()
	c.Assert(err, IsNil)
	c.Check(v, Equals, "static")
	v, err = (BearerAllowedAuthPap | BearerAllowedAuthChap).MarshalYAML()
	c.Assert(err, IsNil)
	c.Check(v, Equals, "pap|chap")
	v, err = ModemState(42).MarshalYAML()
	c.Assert(err, IsNil)
	c.Check(v, Equals, "ModemState(42)")
}
