package main

import (
	"errors"
	"testing"

	flags "github.com/jessevdk/go-flags"
	. "launchpad.net/gocheck"
)

func Test(t *testing.T) { TestingT(t) }

type MainTestSuite struct{}

var _ = Suite(&MainTestSuite{})

func (s *MainTestSuite) TestHelpExitsCleanly(c *C) {
	var args struct {
		Input string `long:"input" required:"true"`
	}
	parser := flags.NewParser(&args, flags.HelpFlag)
	_, err := parser.ParseArgs([]string{"--help"})
	c.Assert(err, NotNil)
	c.Check(exitStatus(err), Equals, 0)
}

func (s *MainTestSuite) TestUsageErrors(c *C) {
	var args struct {
		Input string `long:"input" required:"true"`
	}
	parser := flags.NewParser(&args, flags.HelpFlag)
	_, err := parser.ParseArgs(nil)
	c.Assert(err, NotNil)
	c.Check(exitStatus(err), Equals, 2)
	c.Check(exitStatus(errors.New("boom")), Equals, 2)
}
