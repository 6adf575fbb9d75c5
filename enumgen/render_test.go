package enumgen

import (
	"bytes"
	"os"
	"regexp"
	"strings"

	. "launchpad.net/gocheck"
)

type RenderTestSuite struct {
	out string
}

var _ = Suite(&RenderTestSuite{})

func (s *RenderTestSuite) SetUpSuite(c *C) {
	f, err := os.Open("testdata/sample-enums.h")
	c.Assert(err, IsNil)
	defer f.Close()
	h, err := Parse(f)
	c.Assert(err, IsNil)

	var buf bytes.Buffer
	c.Assert(Render(&buf, h, Options{Package: "mm", Source: "testdata/sample-enums.h"}), IsNil)
	s.out = buf.String()
}

// checkConst looks for a constant declaration regardless of the alignment
// gofmt picked for its block.
func (s *RenderTestSuite) checkConst(c *C, name, typ, value string) {
	re := regexp.MustCompile(`\n\t` + regexp.QuoteMeta(name) + `\s+` + regexp.QuoteMeta(typ) + `\s+=\s+` + regexp.QuoteMeta(value) + `\n`)
	c.Check(re.MatchString(s.out), Equals, true, Commentf("%s %s = %s not found in:\n%s", name, typ, value, s.out))
}

func (s *RenderTestSuite) TestHeader(c *C) {
	c.Check(strings.HasPrefix(s.out, "// Code generated by mm-enumgen; DO NOT EDIT.\n// Source: testdata/sample-enums.h\n\npackage mm\n"), Equals, true)
}

func (s *RenderTestSuite) TestTypes(c *C) {
	c.Check(s.out, Matches, `(?s).*\ntype ModemCapability uint32\n.*`)
	c.Check(s.out, Matches, `(?s).*\ntype ModemState int32\n.*`)
	c.Check(s.out, Matches, `(?s).*\ntype SmsValidity uint32\n.*`)
	c.Check(s.out, Matches, `(?s).*// ModemState mirrors MMModemState\.\n//\n// Enumeration of possible modem states\.\n//\n// Since: 1\.0\n.*`)
}

func (s *RenderTestSuite) TestConstants(c *C) {
	s.checkConst(c, "ModemCapabilityPots", "ModemCapability", "1 << 0")
	s.checkConst(c, "ModemCapabilityAny", "ModemCapability", "0xFFFFFFFF")
	s.checkConst(c, "ModemStateFailed", "ModemState", "-1")
	s.checkConst(c, "ModemStateEnabled", "ModemState", "3")
	s.checkConst(c, "ModemStateConnected", "ModemState", "4")
	s.checkConst(c, "BearerAllowedAuthAny", "BearerAllowedAuth", "(BearerAllowedAuthPap | BearerAllowedAuthChap)")
}

func (s *RenderTestSuite) TestMemberDocs(c *C) {
	c.Check(strings.Contains(s.out, "\t// Modem supports the analog wired telephone network.\n"), Equals, true)
	c.Check(strings.Contains(s.out, "\t// The modem is enabled, see ModemStateLocked.\n"), Equals, true)
	c.Check(strings.Contains(s.out, "Never declared"), Equals, false)
}

func (s *RenderTestSuite) TestNamesAndHelpers(c *C) {
	c.Check(strings.Contains(s.out, "\t{int64(ModemStateFailed), \"failed\"},\n"), Equals, true)
	c.Check(strings.Contains(s.out, "\t{int64(BearerAllowedAuthAny), \"any\"},\n"), Equals, true)
	c.Check(strings.Contains(s.out, "return flagString(int64(v), modemCapabilityNames, \"ModemCapability\")"), Equals, true)
	c.Check(strings.Contains(s.out, "return valueString(int64(v), modemStateNames, \"ModemState\")"), Equals, true)
	c.Check(strings.Contains(s.out, "func ParseSmsValidity(s string) (SmsValidity, error) {"), Equals, true)
	c.Check(strings.Contains(s.out, "func (v SmsValidity) MarshalYAML() (interface{}, error) {\n\treturn v.String(), nil\n}"), Equals, true)
	c.Check(strings.Contains(s.out, "v, err := parseEnum(s, bearerAllowedAuthNames, \"BearerAllowedAuth\", true)"), Equals, true)
}

func (s *RenderTestSuite) TestDefaultPackage(c *C) {
	var buf bytes.Buffer
	c.Assert(Render(&buf, &Header{}, Options{}), IsNil)
	c.Check(buf.String(), Equals, "// Code generated by mm-enumgen; DO NOT EDIT.\n\npackage mm\n")
}
