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
	"log"
	"sort"

	"launchpad.net/go-dbus"
)

// ManagedObjects maps object paths to the interfaces they implement and the
// properties of each, as returned by ObjectManager.GetManagedObjects.
type ManagedObjects map[dbus.ObjectPath]map[string]PropertiesType

// KernelEvent is the argument of ReportKernelEvent.
type KernelEvent struct {
	// Action is "add" or "remove".
	Action    string
	Name      string
	Subsystem string
	// Uid is optional, the sysfs path of the physical device is used when
	// empty.
	Uid string
}

func (e KernelEvent) validate() error {
	switch {
	case e.Action != "add" && e.Action != "remove":
		return ErrorInvalidKernelEvent{Reason: "action must be add or remove, got " + e.Action}
	case e.Name == "":
		return ErrorInvalidKernelEvent{Reason: "name is mandatory"}
	case e.Subsystem == "":
		return ErrorInvalidKernelEvent{Reason: "subsystem is mandatory"}
	}
	return nil
}

func (e KernelEvent) toDBus() PropertiesType {
	props := PropertiesType{
		"action":    dbus.Variant{Value: e.Action},
		"name":      dbus.Variant{Value: e.Name},
		"subsystem": dbus.Variant{Value: e.Subsystem},
	}
	if e.Uid != "" {
		props["uid"] = dbus.Variant{Value: e.Uid}
	}
	return props
}

// ModemManager controls and queries the daemon through the
// org.freedesktop.ModemManager1 interface.
//
// After Init, modems appearing and disappearing on the bus are delivered on
// ModemAdded and ModemRemoved.
type ModemManager struct {
	mmInterface
	ModemAdded   chan *Modem
	ModemRemoved chan *Modem
	modems       map[dbus.ObjectPath]*Modem
	signalConn   *dbus.Connection
	signal       *signalWatches
}

func NewModemManager(conn *dbus.Connection) *ModemManager {
	return &ModemManager{
		mmInterface:  newInterface(conn, MM_OBJECT_PATH, MM_MANAGER_INTERFACE),
		ModemAdded:   make(chan *Modem),
		ModemRemoved: make(chan *Modem),
		modems:       make(map[dbus.ObjectPath]*Modem),
	}
}

var connectSignalBus = func() (*dbus.Connection, error) {
	return dbus.Connect(dbus.SystemBus)
}

// Init starts watching for modems. The modems already present are delivered
// on ModemAdded first.
func (manager *ModemManager) Init() error {
	//Use a different connection for the signals to avoid go-dbus blocking issues
	conn, err := connectSignalBus()
	if err != nil {
		return err
	}
	signal, err := newSignalWatches(conn, MM_OBJECT_PATH, OBJECT_MANAGER_INTERFACE, "InterfacesAdded", "InterfacesRemoved")
	if err != nil {
		conn.Close()
		return err
	}
	manager.signalConn = conn
	manager.signal = signal

	var existing []dbus.ObjectPath
	if modems, err := manager.Modems(); err != nil {
		log.Print("Cannot preemptively add modems: ", err)
	} else {
		for _, modem := range modems {
			existing = append(existing, modem.Path())
		}
	}
	go manager.watchModems(existing)
	return nil
}

func (manager *ModemManager) watchModems(existing []dbus.ObjectPath) {
	for _, objectPath := range existing {
		if !manager.addModem(objectPath) {
			return
		}
	}
	added, removed := manager.signal.watches[0], manager.signal.watches[1]
	for {
		var objectPath dbus.ObjectPath
		select {
		case <-manager.signal.endWatch:
			log.Print("Ending modem watch")
			return
		case m, ok := <-added.C:
			if !ok {
				return
			}
			var interfaces map[string]PropertiesType
			if err := m.Args(&objectPath, &interfaces); err != nil {
				log.Print(err)
				continue
			}
			if !manager.handleInterfacesAdded(objectPath, interfaces) {
				return
			}
		case m, ok := <-removed.C:
			if !ok {
				return
			}
			var interfaces []string
			if err := m.Args(&objectPath, &interfaces); err != nil {
				log.Print(err)
				continue
			}
			if !manager.handleInterfacesRemoved(objectPath, interfaces) {
				return
			}
		}
	}
}

// handleInterfacesAdded reports false when the watch ended while delivering.
func (manager *ModemManager) handleInterfacesAdded(objectPath dbus.ObjectPath, interfaces map[string]PropertiesType) bool {
	if _, ok := interfaces[MODEM_INTERFACE]; !ok {
		return true
	}
	return manager.addModem(objectPath)
}

func (manager *ModemManager) handleInterfacesRemoved(objectPath dbus.ObjectPath, interfaces []string) bool {
	for _, iface := range interfaces {
		if iface == MODEM_INTERFACE {
			return manager.removeModem(objectPath)
		}
	}
	return true
}

func (manager *ModemManager) addModem(objectPath dbus.ObjectPath) bool {
	// the signal watch starts before the existing modems are listed, so a
	// modem appearing in between is reported twice
	if _, ok := manager.modems[objectPath]; ok {
		log.Printf("Modem %s already known", objectPath)
		return true
	}
	modem := NewModem(manager.conn, objectPath)
	manager.modems[objectPath] = modem
	select {
	case manager.ModemAdded <- modem:
		return true
	case <-manager.signal.endWatch:
		return false
	}
}

func (manager *ModemManager) removeModem(objectPath dbus.ObjectPath) bool {
	modem, ok := manager.modems[objectPath]
	if !ok {
		log.Printf("Cannot satisfy request to remove modem %s as it does not exist", objectPath)
		return true
	}
	delete(manager.modems, objectPath)
	log.Printf("Deleting modem instance %s", objectPath)
	select {
	case manager.ModemRemoved <- modem:
		return true
	case <-manager.signal.endWatch:
		return false
	}
}

// Close stops the modem watch started by Init.
func (manager *ModemManager) Close() error {
	if manager.signal == nil {
		return nil
	}
	manager.signal.cancel()
	if manager.signalConn != nil {
		return manager.signalConn.Close()
	}
	return nil
}

// ScanDevices starts a new scan for connected modem devices.
func (manager *ModemManager) ScanDevices() error {
	return manager.call("ScanDevices", nil)
}

// SetLogging sets the daemon's logging verbosity to one of ERR, WARN, INFO or
// DEBUG.
func (manager *ModemManager) SetLogging(level string) error {
	switch level {
	case "ERR", "WARN", "INFO", "DEBUG":
	default:
		return ErrorInvalidLogLevel(level)
	}
	return manager.call("SetLogging", nil, level)
}

// ReportKernelEvent reports a device event to the daemon. Only available when
// the daemon runs without udev.
func (manager *ModemManager) ReportKernelEvent(event KernelEvent) error {
	if err := event.validate(); err != nil {
		return err
	}
	return manager.call("ReportKernelEvent", nil, map[string]dbus.Variant(event.toDBus()))
}

// InhibitDevice inhibits or uninhibits the device with the given uid, the
// Device property of its modem. The inhibition lasts as long as the caller
// stays on the bus.
func (manager *ModemManager) InhibitDevice(uid string, inhibit bool) error {
	return manager.call("InhibitDevice", nil, uid, inhibit)
}

func (manager *ModemManager) GetManagedObjects() (ManagedObjects, error) {
	objects := make(ManagedObjects)
	if err := manager.obj.call(OBJECT_MANAGER_INTERFACE, "GetManagedObjects", []interface{}{&objects}); err != nil {
		return nil, err
	}
	return objects, nil
}

// Version returns the runtime version of the daemon.
func (manager *ModemManager) Version() (string, error) {
	return manager.stringProperty("Version")
}

// Modems returns the modems currently exported by the daemon, sorted by
// object path.
func (manager *ModemManager) Modems() ([]*Modem, error) {
	objects, err := manager.GetManagedObjects()
	if err != nil {
		return nil, err
	}
	var paths []string
	for objectPath, interfaces := range objects {
		if _, ok := interfaces[MODEM_INTERFACE]; ok {
			paths = append(paths, string(objectPath))
		}
	}
	sort.Strings(paths)
	modems := make([]*Modem, len(paths))
	for i, p := range paths {
		modems[i] = NewModem(manager.conn, dbus.ObjectPath(p))
	}
	return modems, nil
}

func (manager *ModemManager) Modem(objectPath dbus.ObjectPath) *Modem {
	return NewModem(manager.conn, objectPath)
}

func (manager *ModemManager) Bearer(objectPath dbus.ObjectPath) *Bearer {
	return NewBearer(manager.conn, objectPath)
}

func (manager *ModemManager) Sim(objectPath dbus.ObjectPath) *Sim {
	return NewSim(manager.conn, objectPath)
}

func (manager *ModemManager) Sms(objectPath dbus.ObjectPath) *Sms {
	return NewSms(manager.conn, objectPath)
}

func (manager *ModemManager) Call(objectPath dbus.ObjectPath) *Call {
	return NewCall(manager.conn, objectPath)
}
