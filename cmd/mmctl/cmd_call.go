package main

import (
	"fmt"
	"io"

	"github.com/ubports/mmwrapper/mm"
	"golang.org/x/text/message"
	"launchpad.net/go-dbus"
)

type callPath struct {
	Call string `positional-arg-name:"call" description:"call object path"`
}

type callSummary struct {
	Path      string `yaml:"path"`
	Number    string `yaml:"number"`
	Direction string `yaml:"direction"`
	State     string `yaml:"state"`
	Reason    string `yaml:"reason"`
}

type callList struct {
	Calls []callSummary `yaml:"calls"`
}

func (l callList) writeText(p *message.Printer, w io.Writer) {
	if len(l.Calls) == 0 {
		fmt.Fprintln(w, "No calls were found")
		return
	}
	p.Fprintf(w, "Found %d calls:\n", len(l.Calls))
	for _, c := range l.Calls {
		fmt.Fprintf(w, "  %s %s %s (%s, %s)\n", c.Path, c.Direction, c.Number, c.State, c.Reason)
	}
}

func readCallSummary(call *mm.Call) (callSummary, error) {
	var r infoReader
	var err error
	s := callSummary{Path: string(call.Path())}
	s.Number, err = call.Number()
	r.check(err)
	direction, err := call.Direction()
	r.check(err)
	s.Direction = direction.String()
	state, err := call.State()
	r.check(err)
	s.State = state.String()
	reason, err := call.StateReason()
	r.check(err)
	s.Reason = reason.String()
	return s, r.err
}

type cmdCallList struct{}

func (x *cmdCallList) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		calls, err := modem.Voice().ListCalls()
		if err != nil {
			return err
		}
		list := callList{Calls: []callSummary{}}
		for _, call := range calls {
			s, err := readCallSummary(call)
			if err != nil {
				return err
			}
			list.Calls = append(list.Calls, s)
		}
		return emit(list)
	})
}

type cmdCallDial struct {
	Positional struct {
		Number string `positional-arg-name:"number"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdCallDial) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		call, err := modem.Voice().CreateCall(x.Positional.Number)
		if err != nil {
			return err
		}
		if err := call.Start(); err != nil {
			return fmt.Errorf("created %s but could not start it: %w", call.Path(), err)
		}
		return emit(result{Label: "started call", Value: string(call.Path())})
	})
}

type cmdCallAccept struct {
	Positional callPath `positional-args:"yes" required:"yes"`
}

func (x *cmdCallAccept) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.Call(dbus.ObjectPath(x.Positional.Call)).Accept(); err != nil {
			return err
		}
		return done("accepted " + x.Positional.Call)
	})
}

type cmdCallHangup struct {
	All        bool `long:"all" description:"hang up every call of the modem"`
	Positional struct {
		Call string `positional-arg-name:"call" description:"call object path"`
	} `positional-args:"yes"`
}

func (x *cmdCallHangup) Execute(args []string) error {
	if x.All {
		return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
			if err := modem.Voice().HangupAll(); err != nil {
				return err
			}
			return done("hung up all calls")
		})
	}
	if x.Positional.Call == "" {
		return fmt.Errorf("a call path or --all is required")
	}
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.Call(dbus.ObjectPath(x.Positional.Call)).Hangup(); err != nil {
			return err
		}
		return done("hung up " + x.Positional.Call)
	})
}

type cmdCallDtmf struct {
	Positional struct {
		Call  string `positional-arg-name:"call" description:"call object path"`
		Tones string `positional-arg-name:"tones" description:"digits, *, # and A to D"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdCallDtmf) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.Call(dbus.ObjectPath(x.Positional.Call)).SendDtmf(x.Positional.Tones); err != nil {
			return err
		}
		return done("sent " + x.Positional.Tones)
	})
}

type cmdCallDeflect struct {
	Positional struct {
		Call   string `positional-arg-name:"call" description:"call object path"`
		Number string `positional-arg-name:"number" description:"number to deflect to"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdCallDeflect) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.Call(dbus.ObjectPath(x.Positional.Call)).Deflect(x.Positional.Number); err != nil {
			return err
		}
		return done("deflected the call to " + x.Positional.Number)
	})
}
