/*
 * Copyright 2014 Canonical Ltd.
 *
 * Authors:
 * Sergio Schvezov: sergio.schvezov@cannical.com
 *
 * This file is part of mmwrapper.
 *
 * mmwrapper is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; version 3.
 *
 * mmwrapper is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/ubports/mmwrapper/mm"
	"github.com/ubports/mmwrapper/storage"
	"golang.org/x/text/message"
	"launchpad.net/go-dbus"
)

// bearerOptions are the bearer settings accepted on the command line.
type bearerOptions struct {
	Apn         string `long:"apn" description:"access point name"`
	IpType      string `long:"ip-type" description:"ipv4, ipv6 or ipv4v6"`
	AllowedAuth string `long:"allowed-auth" description:"allowed authentication methods, e.g. pap|chap"`
	User        string `long:"user" description:"user name for authentication"`
	Password    string `long:"password" description:"password for authentication"`
	NoRoaming   bool   `long:"no-roaming" description:"do not connect while roaming"`
}

func (o bearerOptions) empty() bool {
	return o == bearerOptions{}
}

func (o bearerOptions) properties() (props mm.BearerProperties, err error) {
	props.Apn = o.Apn
	props.User = o.User
	props.Password = o.Password
	if o.IpType != "" {
		if props.IpType, err = mm.ParseBearerIpFamily(o.IpType); err != nil {
			return props, err
		}
	}
	if o.AllowedAuth != "" {
		if props.AllowedAuth, err = mm.ParseBearerAllowedAuth(o.AllowedAuth); err != nil {
			return props, err
		}
	}
	if o.NoRoaming {
		roaming := false
		props.AllowRoaming = &roaming
	}
	return props, nil
}

type cmdBearerList struct{}

func (x *cmdBearerList) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		bearers, err := modem.ListBearers()
		if err != nil {
			return err
		}
		paths := make([]string, len(bearers))
		for i, b := range bearers {
			paths[i] = string(b.Path())
		}
		return emit(newPathList("bearers", paths))
	})
}

type bearerPath struct {
	Bearer string `positional-arg-name:"bearer" description:"bearer object path"`
}

type bearerInfo struct {
	Path            string              `yaml:"path"`
	Interface       string              `yaml:"interface"`
	Connected       bool                `yaml:"connected"`
	Suspended       bool                `yaml:"suspended"`
	Multiplexed     bool                `yaml:"multiplexed"`
	IpTimeout       uint32              `yaml:"ip-timeout"`
	Type            string              `yaml:"type"`
	Properties      mm.BearerProperties `yaml:"properties"`
	ConnectionError string              `yaml:"connection-error,omitempty"`
	IP4             *mm.IPConfig        `yaml:"ipv4,omitempty"`
	IP6             *mm.IPConfig        `yaml:"ipv6,omitempty"`
	Stats           mm.BearerStats      `yaml:"stats"`
}

func readBearerInfo(bearer *mm.Bearer) (bearerInfo, error) {
	var r infoReader
	var err error
	info := bearerInfo{Path: string(bearer.Path())}
	info.Interface, err = bearer.Interface()
	r.check(err)
	info.Connected, err = bearer.Connected()
	r.check(err)
	info.Suspended, err = bearer.Suspended()
	r.check(err)
	// added in ModemManager 1.20
	info.Multiplexed, _ = bearer.Multiplexed()
	info.IpTimeout, err = bearer.IpTimeout()
	r.check(err)
	bearerType, err := bearer.BearerType()
	r.check(err)
	info.Type = bearerType.String()
	info.Properties, err = bearer.BearerProperties()
	r.check(err)
	connErr, err := bearer.ConnectionError()
	r.check(err)
	info.ConnectionError = connErr.String()
	if info.Connected {
		ip4, err := bearer.IP4Config()
		r.check(err)
		if ip4.Method != mm.BearerIpMethodUnknown {
			info.IP4 = &ip4
		}
		ip6, err := bearer.IP6Config()
		r.check(err)
		if ip6.Method != mm.BearerIpMethodUnknown {
			info.IP6 = &ip6
		}
	}
	info.Stats, err = bearer.BearerStats()
	r.check(err)
	return info, r.err
}

func writeIPConfig(w io.Writer, title string, c *mm.IPConfig) {
	if c == nil {
		return
	}
	section(w, title)
	field(w, "method", c.Method)
	field(w, "address", c.Address)
	if c.Prefix != 0 {
		field(w, "prefix", c.Prefix)
	}
	field(w, "gateway", c.Gateway)
	if len(c.DNS) > 0 {
		field(w, "dns", joinOrNone(c.DNS))
	}
	if c.Mtu != 0 {
		field(w, "mtu", c.Mtu)
	}
}

func (info bearerInfo) writeText(p *message.Printer, w io.Writer) {
	section(w, "General")
	field(w, "path", info.Path)
	field(w, "type", info.Type)
	section(w, "Status")
	field(w, "connected", info.Connected)
	field(w, "suspended", info.Suspended)
	field(w, "multiplexed", info.Multiplexed)
	field(w, "interface", info.Interface)
	field(w, "ip timeout", info.IpTimeout)
	field(w, "connection error", info.ConnectionError)
	section(w, "Properties")
	props := info.Properties
	field(w, "apn", props.Apn)
	if props.IpType != 0 {
		field(w, "ip type", props.IpType)
	}
	if props.AllowedAuth != 0 {
		field(w, "allowed auth", props.AllowedAuth)
	}
	field(w, "user", props.User)
	if props.AllowRoaming != nil {
		field(w, "roaming", *props.AllowRoaming)
	}
	writeIPConfig(w, "IPv4 configuration", info.IP4)
	writeIPConfig(w, "IPv6 configuration", info.IP6)
	section(w, "Statistics")
	field(w, "duration", p.Sprintf("%d seconds", info.Stats.Duration))
	field(w, "bytes rx", byteCount(p, info.Stats.RxBytes))
	field(w, "bytes tx", byteCount(p, info.Stats.TxBytes))
	field(w, "attempts", p.Sprintf("%d", info.Stats.Attempts))
	field(w, "attempts failed", p.Sprintf("%d", info.Stats.FailedAttempts))
	field(w, "total duration", p.Sprintf("%d seconds", info.Stats.TotalDuration))
	field(w, "total bytes rx", byteCount(p, info.Stats.TotalRxBytes))
	field(w, "total bytes tx", byteCount(p, info.Stats.TotalTxBytes))
}

type cmdBearerInfo struct {
	Positional bearerPath `positional-args:"yes" required:"yes"`
}

func (x *cmdBearerInfo) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		return emitPartial(readBearerInfo(manager.Bearer(dbus.ObjectPath(x.Positional.Bearer))))
	})
}

type cmdBearerCreate struct {
	bearerOptions
}

func (x *cmdBearerCreate) Execute(args []string) error {
	props, err := x.properties()
	if err != nil {
		return err
	}
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		bearer, err := modem.CreateBearer(props)
		if err != nil {
			return err
		}
		return emit(result{Label: "created bearer", Value: string(bearer.Path())})
	})
}

type cmdBearerDelete struct {
	Positional bearerPath `positional-args:"yes" required:"yes"`
}

func (x *cmdBearerDelete) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		if err := modem.DeleteBearer(dbus.ObjectPath(x.Positional.Bearer)); err != nil {
			return err
		}
		return done("deleted bearer " + x.Positional.Bearer)
	})
}

type cmdBearerConnect struct {
	connect    bool
	Positional bearerPath `positional-args:"yes" required:"yes"`
}

func (x *cmdBearerConnect) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		bearer := manager.Bearer(dbus.ObjectPath(x.Positional.Bearer))
		if !x.connect {
			if err := bearer.Disconnect(); err != nil {
				return err
			}
			return done("disconnected " + x.Positional.Bearer)
		}
		if err := bearer.Connect(); err != nil {
			return err
		}
		return done("connected " + x.Positional.Bearer)
	})
}

type cmdConnect struct {
	bearerOptions
	Pin      string `long:"pin" description:"SIM PIN, sent when the modem is locked"`
	Operator string `long:"operator" description:"MCC+MNC of the network to register with"`
	Save     bool   `long:"save" description:"store the bearer settings as the profile of this modem and prefer it"`
}

// connectProperties uses the options given, or the stored profile of the
// modem when there are none.
func (x *cmdConnect) connectProperties(equipment string) (mm.ConnectProperties, error) {
	props := mm.ConnectProperties{Pin: x.Pin, OperatorId: x.Operator}
	if x.bearerOptions.empty() && equipment != "" {
		profile, err := storage.GetProfile(equipment)
		if err == nil {
			log.Printf("Using the stored profile for %s", equipment)
			props.BearerProperties = profile
			return props, nil
		}
		log.Print(err)
	}
	var err error
	props.BearerProperties, err = x.properties()
	return props, err
}

func (x *cmdConnect) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		equipment, err := modem.EquipmentIdentifier()
		if err != nil {
			log.Printf("Cannot read the equipment identifier of %s: %s", modem, err)
		}
		props, err := x.connectProperties(equipment)
		if err != nil {
			return err
		}
		bearer, err := modem.Simple().Connect(props)
		if err != nil {
			return err
		}
		if x.Save {
			if equipment == "" {
				return fmt.Errorf("cannot save a profile for %s without an equipment identifier", modem)
			}
			if err := storage.SetProfile(equipment, props.BearerProperties); err != nil {
				return err
			}
			if err := storage.SetPreferredModem(equipment); err != nil {
				return err
			}
		}
		return emit(result{Label: "connected bearer", Value: string(bearer.Path())})
	})
}

type cmdDisconnect struct {
	Positional struct {
		Bearer string `positional-arg-name:"bearer" description:"bearer object path, all bearers when left out"`
	} `positional-args:"yes"`
}

func (x *cmdDisconnect) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		if x.Positional.Bearer == "" {
			if err := modem.Simple().DisconnectAll(); err != nil {
				return err
			}
			return done("disconnected all bearers")
		}
		if err := modem.Simple().Disconnect(dbus.ObjectPath(x.Positional.Bearer)); err != nil {
			return err
		}
		return done("disconnected " + x.Positional.Bearer)
	})
}
