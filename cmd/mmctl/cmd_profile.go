package main

import (
	"fmt"
	"io"

	"github.com/ubports/mmwrapper/mm"
	"github.com/ubports/mmwrapper/storage"
	"golang.org/x/text/message"
)

type profileIds struct {
	Preferred string   `yaml:"preferred,omitempty"`
	Ids       []string `yaml:"profiles"`
}

func (l profileIds) writeText(p *message.Printer, w io.Writer) {
	if len(l.Ids) == 0 {
		fmt.Fprintln(w, "No profiles stored")
	} else {
		p.Fprintf(w, "Found %d profiles:\n", len(l.Ids))
		for _, id := range l.Ids {
			mark := ""
			if id == l.Preferred {
				mark = " (preferred)"
			}
			fmt.Fprintf(w, "  %s%s\n", id, mark)
		}
	}
}

type cmdProfileList struct{}

func (x *cmdProfileList) Execute(args []string) error {
	ids, err := storage.ProfileIds()
	if err != nil {
		return err
	}
	preferred, _ := storage.GetPreferredModem()
	return emit(profileIds{Preferred: preferred, Ids: ids})
}

type equipmentArg struct {
	Equipment string `positional-arg-name:"equipment-id" description:"equipment identifier of the modem, e.g. the IMEI"`
}

type profileView struct {
	Equipment string              `yaml:"equipment-id"`
	Bearer    mm.BearerProperties `yaml:"bearer"`
}

func (v profileView) writeText(p *message.Printer, w io.Writer) {
	section(w, "Profile "+v.Equipment)
	field(w, "apn", v.Bearer.Apn)
	if v.Bearer.IpType != 0 {
		field(w, "ip type", v.Bearer.IpType)
	}
	if v.Bearer.AllowedAuth != 0 {
		field(w, "allowed auth", v.Bearer.AllowedAuth)
	}
	field(w, "user", v.Bearer.User)
	if v.Bearer.AllowRoaming != nil {
		field(w, "roaming", *v.Bearer.AllowRoaming)
	}
}

type cmdProfileShow struct {
	Positional equipmentArg `positional-args:"yes" required:"yes"`
}

func (x *cmdProfileShow) Execute(args []string) error {
	props, err := storage.GetProfile(x.Positional.Equipment)
	if err != nil {
		return err
	}
	return emit(profileView{Equipment: x.Positional.Equipment, Bearer: props})
}

type cmdProfileRemove struct {
	Positional struct {
		Ids []string `positional-arg-name:"equipment-id" required:"1"`
	} `positional-args:"yes"`
}

func (x *cmdProfileRemove) Execute(args []string) error {
	if err := storage.RemoveProfiles(x.Positional.Ids...); err != nil {
		return err
	}
	return done("removed the profiles")
}

type cmdProfilePrefer struct {
	Positional equipmentArg `positional-args:"yes" required:"yes"`
}

func (x *cmdProfilePrefer) Execute(args []string) error {
	if err := storage.SetPreferredModem(x.Positional.Equipment); err != nil {
		return err
	}
	return done("set the preferred modem to " + x.Positional.Equipment)
}

type cmdProfileClear struct{}

func (x *cmdProfileClear) Execute(args []string) error {
	if err := storage.Clear(); err != nil {
		return err
	}
	return done("removed every profile")
}
