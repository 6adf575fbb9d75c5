package enumgen

import (
	. "launchpad.net/gocheck"
)

type NamesTestSuite struct{}

var _ = Suite(&NamesTestSuite{})

func (s *NamesTestSuite) TestGoTypeName(c *C) {
	c.Check(GoTypeName("MMModemState"), Equals, "ModemState")
	c.Check(GoTypeName("MMModem3gppFacility"), Equals, "Modem3gppFacility")
	c.Check(GoTypeName("GFileType"), Equals, "GFileType")
	c.Check(GoTypeName("MM"), Equals, "MM")
}

func (s *NamesTestSuite) TestGoMemberName(c *C) {
	c.Check(GoMemberName("MM_MODEM_STATE_FAILED"), Equals, "ModemStateFailed")
	c.Check(GoMemberName("MM_MODEM_3GPP_FACILITY_SIM"), Equals, "Modem3gppFacilitySim")
	c.Check(GoMemberName("MM_MODEM_BAND_EUTRAN_1"), Equals, "ModemBandEutran1")
	c.Check(GoMemberName("MM_MODEM_MODE_5G"), Equals, "ModemMode5g")
}

func (s *NamesTestSuite) TestNicknames(c *C) {
	e := &Enum{Name: "MMSmsState", Members: []Member{
		{Name: "MM_SMS_STATE_SENDING"},
		{Name: "MM_SMS_STATE_SENT"},
		{Name: "MM_SMS_STATE_RECEIVING"},
	}}
	c.Check(Nicknames(e), DeepEquals, []string{"sending", "sent", "receiving"})

	e = &Enum{Name: "MMCallState", Members: []Member{
		{Name: "MM_CALL_STATE_RINGING_IN"},
		{Name: "MM_CALL_STATE_RINGING_OUT"},
	}}
	c.Check(Nicknames(e), DeepEquals, []string{"ringing-in", "ringing-out"})
}

func (s *NamesTestSuite) TestNicknamesWithoutTypeName(c *C) {
	e := &Enum{Members: []Member{
		{Name: "MM_FOO_RINGING_IN"},
		{Name: "MM_FOO_RINGING_OUT"},
	}}
	c.Check(Nicknames(e), DeepEquals, []string{"in", "out"})

	// members not following the type name fall back to the shared prefix
	e = &Enum{Name: "MMSmsValidityType", Members: []Member{
		{Name: "MM_SMS_VALIDITY_UNKNOWN"},
		{Name: "MM_SMS_VALIDITY_RELATIVE"},
	}}
	c.Check(Nicknames(e), DeepEquals, []string{"unknown", "relative"})
}

func (s *NamesTestSuite) TestTypePrefix(c *C) {
	c.Check(typePrefix("MMCallState"), Equals, "MM_CALL_STATE_")
	c.Check(typePrefix("MMModem3gppFacility"), Equals, "MM_MODEM_3GPP_FACILITY_")
	c.Check(typePrefix("MMSmsCdmaTeleserviceId"), Equals, "MM_SMS_CDMA_TELESERVICE_ID_")
	c.Check(typePrefix("MMModemCdmaRmProtocol"), Equals, "MM_MODEM_CDMA_RM_PROTOCOL_")
	c.Check(typePrefix(""), Equals, "")
	c.Check(typePrefix("GType"), Equals, "")
}

func (s *NamesTestSuite) TestNicknameSingleMember(c *C) {
	e := &Enum{Members: []Member{{Name: "MM_FOO_BAR"}}}
	c.Check(Nicknames(e), DeepEquals, []string{"bar"})
}

func (s *NamesTestSuite) TestNicknameMemberIsPrefix(c *C) {
	e := &Enum{Name: "MMOmaSessionState", Members: []Member{
		{Name: "MM_OMA_SESSION_STATE_FAILED"},
		{Name: "MM_OMA_SESSION_STATE_FAILED_REASON"},
	}}
	c.Check(Nicknames(e), DeepEquals, []string{"failed", "failed-reason"})
}

func (s *NamesTestSuite) TestRewriteRefs(c *C) {
	doc := "Set when #MMModemState is %MM_MODEM_STATE_FAILED, see @MM_MODEM_LOCK_SIM_PIN."
	c.Check(rewriteRefs(doc), Equals, "Set when ModemState is ModemStateFailed, see ModemLockSimPin.")
}

func (s *NamesTestSuite) TestGoExpr(c *C) {
	c.Check(goExpr("1 << 3"), Equals, "1 << 3")
	c.Check(goExpr("0xFFFFFFFFu"), Equals, "0xFFFFFFFF")
	c.Check(goExpr("(MM_BEARER_ALLOWED_AUTH_PAP | MM_BEARER_ALLOWED_AUTH_CHAP)"), Equals, "(BearerAllowedAuthPap | BearerAllowedAuthChap)")
	c.Check(goExpr("MM_MODEM_CAPABILITY_ALL"), Equals, "ModemCapabilityAll")
}
