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
	"sync"
	"syscall"

	"github.com/ubports/mmwrapper/mm"
	"launchpad.net/go-dbus"
)

type cmdMonitor struct{}

func (x *cmdMonitor) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.Init(); err != nil {
			return err
		}
		defer manager.Close()

		mon := newMonitor(stdout)
		go mon.watchModems(manager.ModemAdded, manager.ModemRemoved)

		loop := newMainloop()
		loop.Bindings[syscall.SIGINT] = loop.Stop
		loop.Bindings[syscall.SIGTERM] = loop.Stop
		loop.Bindings[syscall.SIGHUP] = loop.Stop
		loop.Start()
		mon.stop()
		return nil
	})
}

// modemWatch holds the watches of one modem.
type modemWatch struct {
	state    *mm.StateWatch
	messages *mm.MessageWatch
}

func (w modemWatch) cancel() {
	if w.state != nil {
		w.state.Cancel()
	}
	if w.messages != nil {
		w.messages.Cancel()
	}
}

// monitor prints one line per modem event. Events arrive from one goroutine
// per watch so writes are serialized.
type monitor struct {
	lock    sync.Mutex
	out     io.Writer
	watches map[dbus.ObjectPath]modemWatch
}

func newMonitor(out io.Writer) *monitor {
	return &monitor{out: out, watches: make(map[dbus.ObjectPath]modemWatch)}
}

func (mon *monitor) printf(format string, a ...interface{}) {
	mon.lock.Lock()
	defer mon.lock.Unlock()
	fmt.Fprintf(mon.out, format, a...)
}

func (mon *monitor) watchModems(added, removed <-chan *mm.Modem) {
	for {
		select {
		case modem, ok := <-added:
			if !ok {
				return
			}
			mon.printf("%s: added\n", modem.Path())
			mon.addModem(modem)
		case modem, ok := <-removed:
			if !ok {
				return
			}
			mon.printf("%s: removed\n", modem.Path())
			mon.removeModem(modem.Path())
		}
	}
}

func (mon *monitor) addModem(modem *mm.Modem) {
	var w modemWatch
	var err error
	if w.state, err = modem.WatchState(); err != nil {
		log.Printf("Cannot watch the state of %s: %s", modem, err)
	} else {
		go mon.printStates(modem.Path(), w.state.C)
	}
	if w.messages, err = modem.Messaging().WatchMessages(); err != nil {
		log.Printf("Cannot watch the messages of %s: %s", modem, err)
	} else {
		go mon.printMessages(modem.Path(), w.messages.C)
	}

	mon.lock.Lock()
	old, ok := mon.watches[modem.Path()]
	mon.watches[modem.Path()] = w
	mon.lock.Unlock()
	if ok {
		old.cancel()
	}
}

func (mon *monitor) removeModem(objectPath dbus.ObjectPath) {
	mon.lock.Lock()
	w, ok := mon.watches[objectPath]
	delete(mon.watches, objectPath)
	mon.lock.Unlock()
	if ok {
		w.cancel()
	}
}

func (mon *monitor) stop() {
	mon.lock.Lock()
	watches := mon.watches
	mon.watches = make(map[dbus.ObjectPath]modemWatch)
	mon.lock.Unlock()
	for _, w := range watches {
		w.cancel()
	}
}

func (mon *monitor) printStates(objectPath dbus.ObjectPath, changes <-chan mm.StateChange) {
	for change := range changes {
		mon.printf("%s: state changed, '%s' --> '%s' (reason: %s)\n", objectPath, change.Old, change.New, change.Reason)
	}
}

func (mon *monitor) printMessages(objectPath dbus.ObjectPath, events <-chan mm.MessageEvent) {
	for event := range events {
		switch {
		case event.Deleted:
			mon.printf("%s: message deleted %s\n", objectPath, event.Sms.Path())
		case event.Received:
			mon.printf("%s: message received %s\n", objectPath, event.Sms.Path())
		default:
			mon.printf("%s: message added %s\n", objectPath, event.Sms.Path())
		}
	}
}
