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

// Package mm exposes the ModemManager D-Bus API as typed Go objects.
//
// Every type in this package mirrors one D-Bus interface of the
// org.freedesktop.ModemManager1 service. Methods forward to the D-Bus method of
// the same name and property getters read the D-Bus property of the same name;
// nothing is cached on the client side.
package mm

//go:generate go run ../cmd/mm-enumgen -i /usr/include/ModemManager/ModemManager-enums.h -o enums.go

import (
	"fmt"

	"launchpad.net/go-dbus"
)

const (
	MM_SENDER                 = "org.freedesktop.ModemManager1"
	MM_OBJECT_PATH            = dbus.ObjectPath("/org/freedesktop/ModemManager1")
	MM_MANAGER_INTERFACE      = "org.freedesktop.ModemManager1"
	MODEM_INTERFACE           = "org.freedesktop.ModemManager1.Modem"
	MODEM_SIMPLE_INTERFACE    = "org.freedesktop.ModemManager1.Modem.Simple"
	MODEM_3GPP_INTERFACE      = "org.freedesktop.ModemManager1.Modem.Modem3gpp"
	MODEM_MESSAGING_INTERFACE = "org.freedesktop.ModemManager1.Modem.Messaging"
	MODEM_VOICE_INTERFACE     = "org.freedesktop.ModemManager1.Modem.Voice"
	BEARER_INTERFACE          = "org.freedesktop.ModemManager1.Bearer"
	SIM_INTERFACE             = "org.freedesktop.ModemManager1.Sim"
	SMS_INTERFACE             = "org.freedesktop.ModemManager1.Sms"
	CALL_INTERFACE            = "org.freedesktop.ModemManager1.Call"
	PROPERTIES_INTERFACE      = "org.freedesktop.DBus.Properties"
	OBJECT_MANAGER_INTERFACE  = "org.freedesktop.DBus.ObjectManager"
)

// EMPTY_PATH is what the daemon reports for an object reference that is not
// set, e.g. a SIM slot without a card.
const EMPTY_PATH = dbus.ObjectPath("/")

type PropertiesType map[string]dbus.Variant

// busObject is a single object exported by the daemon.
type busObject interface {
	path() dbus.ObjectPath
	// call invokes iface.method and decodes the reply into out.
	call(iface, method string, out []interface{}, args ...interface{}) error
}

type proxyObject struct {
	proxy      *dbus.ObjectProxy
	objectPath dbus.ObjectPath
}

var newBusObject = func(conn *dbus.Connection, objectPath dbus.ObjectPath) busObject {
	return &proxyObject{
		proxy:      conn.Object(MM_SENDER, objectPath),
		objectPath: objectPath,
	}
}

func (o *proxyObject) path() dbus.ObjectPath {
	return o.objectPath
}

func (o *proxyObject) call(iface, method string, out []interface{}, args ...interface{}) error {
	reply, err := o.proxy.Call(iface, method, args...)
	if err != nil {
		return fmt.Errorf("%s.%s on %s: %w", iface, method, o.objectPath, err)
	}
	if reply.Type == dbus.TypeError {
		return fmt.Errorf("%s.%s on %s: %w", iface, method, o.objectPath, reply.AsError())
	}
	if len(out) == 0 {
		return nil
	}
	if err := reply.Args(out...); err != nil {
		return fmt.Errorf("cannot decode reply of %s.%s on %s: %w", iface, method, o.objectPath, err)
	}
	return nil
}

func getProperty(obj busObject, iface, name string) (dbus.Variant, error) {
	var v dbus.Variant
	if err := obj.call(PROPERTIES_INTERFACE, "Get", []interface{}{&v}, iface, name); err != nil {
		return dbus.Variant{}, fmt.Errorf("cannot retrieve %s from %s: %w", name, iface, err)
	}
	return v, nil
}

func getAllProperties(obj busObject, iface string) (PropertiesType, error) {
	props := make(PropertiesType)
	if err := obj.call(PROPERTIES_INTERFACE, "GetAll", []interface{}{&props}, iface); err != nil {
		return nil, fmt.Errorf("cannot retrieve properties of %s: %w", iface, err)
	}
	return props, nil
}

// mmInterface is the part shared by all the wrappers: the connection used to
// reach related objects and the object this wrapper forwards to.
type mmInterface struct {
	conn  *dbus.Connection
	obj   busObject
	iface string
}

func newInterface(conn *dbus.Connection, objectPath dbus.ObjectPath, iface string) mmInterface {
	return mmInterface{conn: conn, obj: newBusObject(conn, objectPath), iface: iface}
}

// with returns a wrapper for another interface of the same object.
func (i mmInterface) with(iface string) mmInterface {
	return mmInterface{conn: i.conn, obj: i.obj, iface: iface}
}

// Path returns the D-Bus object path of the wrapped object.
func (i mmInterface) Path() dbus.ObjectPath {
	return i.obj.path()
}

// InterfaceName returns the D-Bus interface name this wrapper mirrors.
func (i mmInterface) InterfaceName() string {
	return i.iface
}

// GetAllProperties returns every property of the mirrored interface in a
// single round trip.
func (i mmInterface) GetAllProperties() (PropertiesType, error) {
	return getAllProperties(i.obj, i.iface)
}

func (i mmInterface) call(method string, out []interface{}, args ...interface{}) error {
	return i.obj.call(i.iface, method, out, args...)
}

func (i mmInterface) property(name string) (interface{}, error) {
	v, err := getProperty(i.obj, i.iface, name)
	if err != nil {
		return nil, err
	}
	return v.Value, nil
}

func (i mmInterface) stringProperty(name string) (string, error) {
	v, err := i.property(name)
	if err != nil {
		return "", err
	}
	return asString(name, v)
}

func (i mmInterface) boolProperty(name string) (bool, error) {
	v, err := i.property(name)
	if err != nil {
		return false, err
	}
	return asBool(name, v)
}

func (i mmInterface) uint32Property(name string) (uint32, error) {
	v, err := i.property(name)
	if err != nil {
		return 0, err
	}
	return asUint32(name, v)
}

func (i mmInterface) int32Property(name string) (int32, error) {
	v, err := i.property(name)
	if err != nil {
		return 0, err
	}
	return asInt32(name, v)
}

func (i mmInterface) pathProperty(name string) (dbus.ObjectPath, error) {
	v, err := i.property(name)
	if err != nil {
		return "", err
	}
	return asObjectPath(name, v)
}

func (i mmInterface) stringsProperty(name string) ([]string, error) {
	v, err := i.property(name)
	if err != nil {
		return nil, err
	}
	return asStrings(name, v)
}

func (i mmInterface) pathsProperty(name string) ([]dbus.ObjectPath, error) {
	v, err := i.property(name)
	if err != nil {
		return nil, err
	}
	return asObjectPaths(name, v)
}

func (i mmInterface) uint32sProperty(name string) ([]uint32, error) {
	v, err := i.property(name)
	if err != nil {
		return nil, err
	}
	return asUint32s(name, v)
}

func (i mmInterface) mapProperty(name string) (PropertiesType, error) {
	v, err := i.property(name)
	if err != nil {
		return nil, err
	}
	return asProperties(name, v)
}

// isEmptyPath reports whether the daemon used objectPath to mean "no object".
func isEmptyPath(objectPath dbus.ObjectPath) bool {
	return objectPath == "" || objectPath == EMPTY_PATH
}
