package mm

import (
	"launchpad.net/go-dbus"
	. "launchpad.net/gocheck"
)

const testCallPath = dbus.ObjectPath("/org/freedesktop/ModemManager1/Call/1")

type CallTestSuite struct {
	bus      fakeBus
	restore  func()
	modemObj *fakeObject
	callObj  *fakeObject
	voice    *Voice
	call     *Call
}

var _ = Suite(&CallTestSuite{})

func (s *CallTestSuite) SetUpTest(c *C) {
	s.bus = make(fakeBus)
	s.restore = s.bus.install()
	s.modemObj = s.bus.object(testModemPath)
	s.callObj = s.bus.object(testCallPath)
	s.voice = NewModem(nil, testModemPath).Voice()
	s.call = NewCall(nil, testCallPath)
}

func (s *CallTestSuite) TearDownTest(c *C) {
	s.restore()
}

func (s *CallTestSuite) TestCreateCall(c *C) {
	s.modemObj.replies[MODEM_VOICE_INTERFACE+".CreateCall"] = []interface{}{testCallPath}
	call, err := s.voice.CreateCall("112")
	c.Assert(err, IsNil)
	c.Check(call.Path(), Equals, testCallPath)
	c.Check(s.modemObj.lastCall().args, DeepEquals, []interface{}{map[string]dbus.Variant{
		"number": dbus.Variant{Value: "112"},
	}})
}

func (s *CallTestSuite) TestCreateCallWithoutNumber(c *C) {
	_, err := s.voice.CreateCall("")
	c.Check(err, Equals, ErrorPropertyMissing("number"))
	c.Check(s.modemObj.calls, HasLen, 0)
}

func (s *CallTestSuite) TestVoiceMethods(c *C) {
	for method, f := range map[string]func() error{
		"HoldAndAccept":   s.voice.HoldAndAccept,
		"HangupAndAccept": s.voice.HangupAndAccept,
		"HangupAll":       s.voice.HangupAll,
		"Transfer":        s.voice.Transfer,
	} {
		c.Assert(f(), IsNil)
		c.Check(s.modemObj.lastCall(), DeepEquals, fakeCall{MODEM_VOICE_INTERFACE, method, nil})
	}
}

func (s *CallTestSuite) TestCallWaiting(c *C) {
	c.Assert(s.voice.CallWaitingSetup(true), IsNil)
	c.Check(s.modemObj.lastCall().args, DeepEquals, []interface{}{true})

	s.modemObj.replies[MODEM_VOICE_INTERFACE+".CallWaitingQuery"] = []interface{}{true}
	enabled, err := s.voice.CallWaitingQuery()
	c.Assert(err, IsNil)
	c.Check(enabled, Equals, true)
}

func (s *CallTestSuite) TestGetCalls(c *C) {
	s.modemObj.setProp(MODEM_VOICE_INTERFACE, "Calls", []dbus.ObjectPath{testCallPath})
	calls, err := s.voice.GetCalls()
	c.Assert(err, IsNil)
	c.Assert(calls, HasLen, 1)
	c.Check(calls[0].Path(), Equals, testCallPath)
}

func (s *CallTestSuite) TestSendDtmf(c *C) {
	c.Assert(s.call.SendDtmf("123*#AD"), IsNil)
	c.Check(s.callObj.lastCall(), DeepEquals, fakeCall{CALL_INTERFACE, "SendDtmf", []interface{}{"123*#AD"}})
}

func (s *CallTestSuite) TestSendDtmfInvalid(c *C) {
	for _, dtmf := range []string{"", "12e", "a", "1 2"} {
		c.Check(s.call.SendDtmf(dtmf), Equals, ErrorInvalidDtmf(dtmf))
	}
	c.Check(s.callObj.calls, HasLen, 0)
}

func (s *CallTestSuite) TestDeflect(c *C) {
	c.Assert(s.call.Deflect("+34600000001"), IsNil)
	c.Check(s.callObj.lastCall(), DeepEquals, fakeCall{CALL_INTERFACE, "Deflect", []interface{}{"+34600000001"}})
}

func (s *CallTestSuite) TestState(c *C) {
	s.callObj.setProp(CALL_INTERFACE, "State", int32(3))
	s.callObj.setProp(CALL_INTERFACE, "StateReason", int32(2))
	state, err := s.call.State()
	c.Assert(err, IsNil)
	c.Check(state, Equals, CallStateRingingIn)
	c.Check(state.String(), Equals, "ringing-in")
	reason, err := s.call.StateReason()
	c.Assert(err, IsNil)
	c.Check(reason, Equals, CallStateReasonIncomingNew)
}

func (s *CallTestSuite) TestGetAudioFormat(c *C) {
	s.callObj.setProp(CALL_INTERFACE, "AudioFormat", map[string]dbus.Variant{
		"encoding":   dbus.Variant{Value: "pcm"},
		"resolution": dbus.Variant{Value: "s16le"},
		"rate":       dbus.Variant{Value: uint32(8000)},
	})
	format, err := s.call.GetAudioFormat()
	c.Assert(err, IsNil)
	c.Check(format, Equals, AudioFormat{"pcm", "s16le", 8000})
}

func (s *CallTestSuite) TestGetAudioFormatEmpty(c *C) {
	s.callObj.setProp(CALL_INTERFACE, "AudioFormat", map[string]dbus.Variant{})
	format, err := s.call.GetAudioFormat()
	c.Assert(err, IsNil)
	c.Check(format, Equals, AudioFormat{})
}
