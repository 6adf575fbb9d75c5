package main

import (
	"bytes"
	"time"

	"github.com/ubports/mmwrapper/mm"
	. "launchpad.net/gocheck"
)

type MonitorTestSuite struct{}

var _ = Suite(&MonitorTestSuite{})

func (s *MonitorTestSuite) TestPrintStates(c *C) {
	buf := &bytes.Buffer{}
	mon := newMonitor(buf)
	changes := make(chan mm.StateChange, 2)
	changes <- mm.StateChange{Old: mm.ModemStateDisabled, New: mm.ModemStateEnabling, Reason: mm.ModemStateChangeReasonUserRequested}
	changes <- mm.StateChange{Old: mm.ModemStateEnabling, New: mm.ModemStateEnabled, Reason: mm.ModemStateChangeReasonUserRequested}
	close(changes)

	mon.printStates("/org/freedesktop/ModemManager1/Modem/0", changes)
	c.Check(buf.String(), Equals,
		"/org/freedesktop/ModemManager1/Modem/0: state changed, 'disabled' --> 'enabling' (reason: user-requested)\n"+
			"/org/freedesktop/ModemManager1/Modem/0: state changed, 'enabling' --> 'enabled' (reason: user-requested)\n")
}

func (s *MonitorTestSuite) TestPrintMessages(c *C) {
	buf := &bytes.Buffer{}
	mon := newMonitor(buf)
	events := make(chan mm.MessageEvent, 3)
	events <- mm.MessageEvent{Sms: mm.NewSms(nil, "/org/freedesktop/ModemManager1/SMS/1"), Received: true}
	events <- mm.MessageEvent{Sms: mm.NewSms(nil, "/org/freedesktop/ModemManager1/SMS/2")}
	events <- mm.MessageEvent{Sms: mm.NewSms(nil, "/org/freedesktop/ModemManager1/SMS/1"), Deleted: true}
	close(events)

	mon.printMessages("/m/0", events)
	c.Check(buf.String(), Equals,
		"/m/0: message received /org/freedesktop/ModemManager1/SMS/1\n"+
			"/m/0: message added /org/freedesktop/ModemManager1/SMS/2\n"+
			"/m/0: message deleted /org/freedesktop/ModemManager1/SMS/1\n")
}

func (s *MonitorTestSuite) TestRemoveUnknownModem(c *C) {
	mon := newMonitor(&bytes.Buffer{})
	mon.removeModem("/org/freedesktop/ModemManager1/Modem/9")
	mon.stop()
	c.Check(mon.watches, HasLen, 0)
}

func (s *MonitorTestSuite) TestMainloopStop(c *C) {
	loop := newMainloop()
	finished := make(chan bool)
	go func() {
		loop.Start()
		finished <- true
	}()
	loop.Stop()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		c.Fatal("mainloop did not stop")
	}
}
