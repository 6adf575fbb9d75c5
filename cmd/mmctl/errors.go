package main

import (
	"errors"

	flags "github.com/jessevdk/go-flags"
	"github.com/ubports/mmwrapper/mm"
)

// Exit statuses of mmctl.
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitSelectModem = 3
	ExitDaemon      = 4
)

type codedError struct {
	error
	code int
}

func (e codedError) ExitCode() int { return e.code }

func (e codedError) Unwrap() error { return e.error }

// exitStatus maps the error returned by the parser to the process exit
// status.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) {
		if flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return ExitUsage
	}
	var coded codedError
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	if mm.ErrorName(err) != "" {
		return ExitDaemon
	}
	return ExitFailure
}
