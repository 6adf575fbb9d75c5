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

package mm

import (
	"fmt"

	"launchpad.net/go-dbus"
)

// BearerProperties are the settings a bearer is created or connected with.
// Zero values are left out when sent to the daemon.
type BearerProperties struct {
	Apn          string                 `json:"apn,omitempty" yaml:"apn,omitempty"`
	IpType       BearerIpFamily         `json:"ip-type,omitempty" yaml:"ip-type,omitempty"`
	ApnType      BearerApnType          `json:"apn-type,omitempty" yaml:"apn-type,omitempty"`
	AllowedAuth  BearerAllowedAuth      `json:"allowed-auth,omitempty" yaml:"allowed-auth,omitempty"`
	User         string                 `json:"user,omitempty" yaml:"user,omitempty"`
	Password     string                 `json:"password,omitempty" yaml:"-"`
	ProfileId    *int32                 `json:"profile-id,omitempty" yaml:"profile-id,omitempty"`
	RmProtocol   ModemCdmaRmProtocol    `json:"rm-protocol,omitempty" yaml:"rm-protocol,omitempty"`
	AllowRoaming *bool                  `json:"allow-roaming,omitempty" yaml:"allow-roaming,omitempty"`
	Multiplex    BearerMultiplexSupport `json:"multiplex,omitempty" yaml:"multiplex,omitempty"`
	// Number is deprecated by the daemon and only used by POTS modems.
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
}

// ToDBus returns the a{sv} dictionary the daemon expects.
func (p BearerProperties) ToDBus() PropertiesType {
	props := make(PropertiesType)
	if p.Apn != "" {
		props["apn"] = dbus.Variant{Value: p.Apn}
	}
	if p.IpType != 0 {
		props["ip-type"] = dbus.Variant{Value: uint32(p.IpType)}
	}
	if p.ApnType != 0 {
		props["apn-type"] = dbus.Variant{Value: uint32(p.ApnType)}
	}
	if p.AllowedAuth != 0 {
		props["allowed-auth"] = dbus.Variant{Value: uint32(p.AllowedAuth)}
	}
	if p.User != "" {
		props["user"] = dbus.Variant{Value: p.User}
	}
	if p.Password != "" {
		props["password"] = dbus.Variant{Value: p.Password}
	}
	if p.ProfileId != nil {
		props["profile-id"] = dbus.Variant{Value: *p.ProfileId}
	}
	if p.RmProtocol != 0 {
		props["rm-protocol"] = dbus.Variant{Value: uint32(p.RmProtocol)}
	}
	if p.AllowRoaming != nil {
		props["allow-roaming"] = dbus.Variant{Value: *p.AllowRoaming}
	}
	if p.Multiplex != 0 {
		props["multiplex"] = dbus.Variant{Value: uint32(p.Multiplex)}
	}
	if p.Number != "" {
		props["number"] = dbus.Variant{Value: p.Number}
	}
	return props
}

func bearerPropertiesFromDBus(props PropertiesType) (p BearerProperties, err error) {
	strs := []struct {
		key string
		dst *string
	}{
		{"apn", &p.Apn},
		{"user", &p.User},
		{"password", &p.Password},
		{"number", &p.Number},
	}
	for _, s := range strs {
		if *s.dst, err = props.String(s.key); err != nil && !isMissing(err) {
			return p, err
		}
	}
	uints := []struct {
		key string
		dst *uint32
	}{
		{"ip-type", (*uint32)(&p.IpType)},
		{"apn-type", (*uint32)(&p.ApnType)},
		{"allowed-auth", (*uint32)(&p.AllowedAuth)},
		{"rm-protocol", (*uint32)(&p.RmProtocol)},
		{"multiplex", (*uint32)(&p.Multiplex)},
	}
	for _, u := range uints {
		if *u.dst, err = props.Uint32(u.key); err != nil && !isMissing(err) {
			return p, err
		}
	}
	if id, err := props.Int32("profile-id"); err == nil {
		p.ProfileId = &id
	} else if !isMissing(err) {
		return p, err
	}
	if roaming, err := props.Bool("allow-roaming"); err == nil {
		p.AllowRoaming = &roaming
	} else if !isMissing(err) {
		return p, err
	}
	return p, nil
}

// IPConfig is the typed view of the Ip4Config and Ip6Config properties.
// With PPP or DHCP only Method is guaranteed to be set.
type IPConfig struct {
	Method  BearerIpMethod `yaml:"method"`
	Address string         `yaml:"address,omitempty"`
	Prefix  uint32         `yaml:"prefix,omitempty"`
	DNS     []string       `yaml:"dns,omitempty"`
	Gateway string         `yaml:"gateway,omitempty"`
	Mtu     uint32         `yaml:"mtu,omitempty"`
}

func ipConfigFromDBus(props PropertiesType) (c IPConfig, err error) {
	method, err := props.Uint32("method")
	if err != nil && !isMissing(err) {
		return c, err
	}
	c.Method = BearerIpMethod(method)
	if c.Address, err = props.String("address"); err != nil && !isMissing(err) {
		return c, err
	}
	if c.Gateway, err = props.String("gateway"); err != nil && !isMissing(err) {
		return c, err
	}
	if c.Prefix, err = props.Uint32("prefix"); err != nil && !isMissing(err) {
		return c, err
	}
	if c.Mtu, err = props.Uint32("mtu"); err != nil && !isMissing(err) {
		return c, err
	}
	for _, key := range []string{"dns1", "dns2", "dns3"} {
		dns, err := props.String(key)
		if isMissing(err) {
			continue
		}
		if err != nil {
			return c, err
		}
		c.DNS = append(c.DNS, dns)
	}
	return c, nil
}

// BearerStats is the typed view of the Stats property. The Total and
// attempt counters are kept across reconnections.
type BearerStats struct {
	RxBytes        uint64 `yaml:"rx-bytes"`
	TxBytes        uint64 `yaml:"tx-bytes"`
	Duration       uint32 `yaml:"duration"`
	Attempts       uint32 `yaml:"attempts"`
	FailedAttempts uint32 `yaml:"failed-attempts"`
	TotalRxBytes   uint64 `yaml:"total-rx-bytes"`
	TotalTxBytes   uint64 `yaml:"total-tx-bytes"`
	TotalDuration  uint32 `yaml:"total-duration"`
}

func bearerStatsFromDBus(props PropertiesType) (s BearerStats, err error) {
	u64 := map[string]*uint64{
		"rx-bytes":       &s.RxBytes,
		"tx-bytes":       &s.TxBytes,
		"total-rx-bytes": &s.TotalRxBytes,
		"total-tx-bytes": &s.TotalTxBytes,
	}
	for key, dst := range u64 {
		if *dst, err = props.Uint64(key); err != nil && !isMissing(err) {
			return s, err
		}
	}
	u32 := map[string]*uint32{
		"duration":        &s.Duration,
		"attempts":        &s.Attempts,
		"failed-attempts": &s.FailedAttempts,
		"total-duration":  &s.TotalDuration,
	}
	for key, dst := range u32 {
		if *dst, err = props.Uint32(key); err != nil && !isMissing(err) {
			return s, err
		}
	}
	return s, nil
}

// ConnectionError is the D-Bus error of the last failed connection attempt.
type ConnectionError struct {
	Name    string
	Message string
}

func (e ConnectionError) String() string {
	if e.Name == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// Bearer mirrors org.freedesktop.ModemManager1.Bearer.
type Bearer struct {
	mmInterface
}

func NewBearer(conn *dbus.Connection, objectPath dbus.ObjectPath) *Bearer {
	return &Bearer{newInterface(conn, objectPath, BEARER_INTERFACE)}
}

// Connect requests activation of the packet data connection.
func (b *Bearer) Connect() error {
	return b.call("Connect", nil)
}

func (b *Bearer) Disconnect() error {
	return b.call("Disconnect", nil)
}

// Interface is the operating system name of the network data interface
// carrying the connection, set only while connected.
func (b *Bearer) Interface() (string, error) {
	return b.stringProperty("Interface")
}

func (b *Bearer) Connected() (bool, error) {
	return b.boolProperty("Connected")
}

func (b *Bearer) ConnectionError() (ConnectionError, error) {
	v, err := b.property("ConnectionError")
	if err != nil {
		return ConnectionError{}, err
	}
	fields, err := asStruct("ConnectionError", v, 2, ConnectionError{})
	if err != nil {
		return ConnectionError{}, err
	}
	name, err := asString("ConnectionError", fields[0])
	if err != nil {
		return ConnectionError{}, err
	}
	message, err := asString("ConnectionError", fields[1])
	if err != nil {
		return ConnectionError{}, err
	}
	return ConnectionError{name, message}, nil
}

// Suspended reports whether the connection is temporarily unusable, e.g.
// while a 2G modem is in a voice call.
func (b *Bearer) Suspended() (bool, error) {
	return b.boolProperty("Suspended")
}

func (b *Bearer) Multiplexed() (bool, error) {
	return b.boolProperty("Multiplexed")
}

func (b *Bearer) Ip4Config() (PropertiesType, error) {
	return b.mapProperty("Ip4Config")
}

func (b *Bearer) Ip6Config() (PropertiesType, error) {
	return b.mapProperty("Ip6Config")
}

func (b *Bearer) IP4Config() (IPConfig, error) {
	props, err := b.Ip4Config()
	if err != nil {
		return IPConfig{}, err
	}
	return ipConfigFromDBus(props)
}

func (b *Bearer) IP6Config() (IPConfig, error) {
	props, err := b.Ip6Config()
	if err != nil {
		return IPConfig{}, err
	}
	return ipConfigFromDBus(props)
}

func (b *Bearer) Stats() (PropertiesType, error) {
	return b.mapProperty("Stats")
}

func (b *Bearer) BearerStats() (BearerStats, error) {
	props, err := b.Stats()
	if err != nil {
		return BearerStats{}, err
	}
	return bearerStatsFromDBus(props)
}

// IpTimeout is the connection attempt timeout in seconds.
func (b *Bearer) IpTimeout() (uint32, error) {
	return b.uint32Property("IpTimeout")
}

func (b *Bearer) BearerType() (BearerType, error) {
	v, err := b.uint32Property("BearerType")
	return BearerType(v), err
}

// ProfileId is the 3GPP profile the bearer was connected with, -1 when none.
func (b *Bearer) ProfileId() (int32, error) {
	return b.int32Property("ProfileId")
}

func (b *Bearer) Properties() (PropertiesType, error) {
	return b.mapProperty("Properties")
}

func (b *Bearer) BearerProperties() (BearerProperties, error) {
	props, err := b.Properties()
	if err != nil {
		return BearerProperties{}, err
	}
	return bearerPropertiesFromDBus(props)
}
