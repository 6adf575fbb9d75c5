package main

import (
	"errors"
	"fmt"

	flags "github.com/jessevdk/go-flags"
	"launchpad.net/go-dbus"
	. "launchpad.net/gocheck"
)

type ExitStatusTestSuite struct{}

var _ = Suite(&ExitStatusTestSuite{})

func (s *ExitStatusTestSuite) TestExitStatus(c *C) {
	daemonErr := &dbus.Error{Name: "org.freedesktop.ModemManager1.Error.Core.WrongState"}
	c.Check(exitStatus(nil), Equals, 0)
	c.Check(exitStatus(&flags.Error{Type: flags.ErrHelp}), Equals, 0)
	c.Check(exitStatus(&flags.Error{Type: flags.ErrRequired}), Equals, ExitUsage)
	c.Check(exitStatus(codedError{ErrorNoModems, ExitSelectModem}), Equals, ExitSelectModem)
	c.Check(exitStatus(daemonErr), Equals, ExitDaemon)
	c.Check(exitStatus(fmt.Errorf("created /x but could not send it: %w", daemonErr)), Equals, ExitDaemon)
	c.Check(exitStatus(errors.New("boom")), Equals, ExitFailure)
}

func (s *ExitStatusTestSuite) TestCodedErrorUnwraps(c *C) {
	err := codedError{ErrorAmbiguousModem(2), ExitSelectModem}
	c.Check(err, ErrorMatches, "2 modems found, select one with --modem")
	var ambiguous ErrorAmbiguousModem
	c.Check(errors.As(err, &ambiguous), Equals, true)
}
