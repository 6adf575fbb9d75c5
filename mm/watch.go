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
	"sync"

	"launchpad.net/go-dbus"
)

var connectToSignal = func(conn *dbus.Connection, path dbus.ObjectPath, inter, member string) (*dbus.SignalWatch, error) {
	w, err := conn.WatchSignal(&dbus.MatchRule{
		Type:      dbus.TypeSignal,
		Sender:    MM_SENDER,
		Interface: inter,
		Member:    member,
		Path:      path})
	return w, err
}

// signalWatches groups the bus watches backing one of the exported watch
// types so they can be torn down together.
type signalWatches struct {
	watches  []*dbus.SignalWatch
	endWatch chan bool
	once     sync.Once
}

func newSignalWatches(conn *dbus.Connection, path dbus.ObjectPath, inter string, members ...string) (*signalWatches, error) {
	w := &signalWatches{endWatch: make(chan bool)}
	for _, member := range members {
		sw, err := connectToSignal(conn, path, inter, member)
		if err != nil {
			w.cancel()
			return nil, err
		}
		w.watches = append(w.watches, sw)
	}
	return w, nil
}

func (w *signalWatches) cancel() {
	w.once.Do(func() {
		for _, sw := range w.watches {
			sw.Cancel()
		}
		close(w.endWatch)
	})
}

// StateChange is one Modem.StateChanged signal.
type StateChange struct {
	Old, New ModemState
	Reason   ModemStateChangeReason
}

// StateWatch delivers the state transitions of a modem on C until Cancel is
// called.
type StateWatch struct {
	C      <-chan StateChange
	c      chan StateChange
	path   dbus.ObjectPath
	signal *signalWatches
}

// WatchState subscribes to the StateChanged signal of the modem.
func (m *Modem) WatchState() (*StateWatch, error) {
	signal, err := newSignalWatches(m.conn, m.Path(), MODEM_INTERFACE, "StateChanged")
	if err != nil {
		return nil, err
	}
	c := make(chan StateChange)
	w := &StateWatch{C: c, c: c, path: m.Path(), signal: signal}
	go w.watch()
	return w, nil
}

func (w *StateWatch) watch() {
	defer close(w.c)
	stateSignal := w.signal.watches[0]
watchloop:
	for {
		select {
		case <-w.signal.endWatch:
			log.Printf("Ending state watch for %s", w.path)
			return
		case msg, ok := <-stateSignal.C:
			if !ok {
				return
			}
			var oldState, newState int32
			var reason uint32
			if err := msg.Args(&oldState, &newState, &reason); err != nil {
				log.Printf("Cannot interpret StateChanged on %s: %s", w.path, err)
				continue watchloop
			}
			select {
			case w.c <- stateChange(oldState, newState, reason):
			case <-w.signal.endWatch:
				return
			}
		}
	}
}

func stateChange(oldState, newState int32, reason uint32) StateChange {
	return StateChange{
		Old:    ModemState(oldState),
		New:    ModemState(newState),
		Reason: ModemStateChangeReason(reason),
	}
}

// Cancel stops the watch and closes C.
func (w *StateWatch) Cancel() {
	w.signal.cancel()
}

// MessageEvent is one Messaging.Added or Messaging.Deleted signal.
type MessageEvent struct {
	Sms *Sms
	// Received is false for messages created locally.
	Received bool
	Deleted  bool
}

// MessageWatch delivers messages added to or deleted from a modem on C until
// Cancel is called.
type MessageWatch struct {
	C         <-chan MessageEvent
	c         chan MessageEvent
	messaging *Messaging
	signal    *signalWatches
}

// WatchMessages subscribes to the Added and Deleted signals.
func (m *Messaging) WatchMessages() (*MessageWatch, error) {
	signal, err := newSignalWatches(m.conn, m.Path(), MODEM_MESSAGING_INTERFACE, "Added", "Deleted")
	if err != nil {
		return nil, err
	}
	c := make(chan MessageEvent)
	w := &MessageWatch{C: c, c: c, messaging: m, signal: signal}
	go w.watch()
	return w, nil
}

func (w *MessageWatch) watch() {
	defer close(w.c)
	added, deleted := w.signal.watches[0], w.signal.watches[1]
	for {
		var event MessageEvent
		select {
		case <-w.signal.endWatch:
			log.Printf("Ending message watch for %s", w.messaging.Path())
			return
		case msg, ok := <-added.C:
			if !ok {
				return
			}
			var objectPath dbus.ObjectPath
			var received bool
			if err := msg.Args(&objectPath, &received); err != nil {
				log.Printf("Cannot interpret Messaging.Added: %s", err)
				continue
			}
			event = w.messaging.messageEvent(objectPath, received, false)
		case msg, ok := <-deleted.C:
			if !ok {
				return
			}
			var objectPath dbus.ObjectPath
			if err := msg.Args(&objectPath); err != nil {
				log.Printf("Cannot interpret Messaging.Deleted: %s", err)
				continue
			}
			event = w.messaging.messageEvent(objectPath, false, true)
		}
		select {
		case w.c <- event:
		case <-w.signal.endWatch:
			return
		}
	}
}

func (m *Messaging) messageEvent(objectPath dbus.ObjectPath, received, deleted bool) MessageEvent {
	return MessageEvent{Sms: NewSms(m.conn, objectPath), Received: received, Deleted: deleted}
}

// Cancel stops the watch and closes C.
func (w *MessageWatch) Cancel() {
	w.signal.cancel()
}

// CallStateChange is one Call.StateChanged signal.
type CallStateChange struct {
	Old, New CallState
	Reason   CallStateReason
}

// CallWatch delivers state changes and received DTMF tones of a call until
// Cancel is called. Both channels are closed when the watch ends.
type CallWatch struct {
	StateChanged <-chan CallStateChange
	DtmfReceived <-chan string
	stateC       chan CallStateChange
	dtmfC        chan string
	path         dbus.ObjectPath
	signal       *signalWatches
}

// WatchCall subscribes to the StateChanged and DtmfReceived signals.
func (c *Call) WatchCall() (*CallWatch, error) {
	signal, err := newSignalWatches(c.conn, c.Path(), CALL_INTERFACE, "StateChanged", "DtmfReceived")
	if err != nil {
		return nil, err
	}
	stateC := make(chan CallStateChange)
	dtmfC := make(chan string)
	w := &CallWatch{
		StateChanged: stateC,
		DtmfReceived: dtmfC,
		stateC:       stateC,
		dtmfC:        dtmfC,
		path:         c.Path(),
		signal:       signal,
	}
	go w.watch()
	return w, nil
}

func (w *CallWatch) watch() {
	defer close(w.stateC)
	defer close(w.dtmfC)
	stateSignal, dtmfSignal := w.signal.watches[0], w.signal.watches[1]
	for {
		select {
		case <-w.signal.endWatch:
			log.Printf("Ending call watch for %s", w.path)
			return
		case msg, ok := <-stateSignal.C:
			if !ok {
				return
			}
			var oldState, newState int32
			var reason uint32
			if err := msg.Args(&oldState, &newState, &reason); err != nil {
				log.Printf("Cannot interpret Call.StateChanged on %s: %s", w.path, err)
				continue
			}
			change := CallStateChange{CallState(oldState), CallState(newState), CallStateReason(reason)}
			select {
			case w.stateC <- change:
			case <-w.signal.endWatch:
				return
			}
		case msg, ok := <-dtmfSignal.C:
			if !ok {
				return
			}
			var dtmf string
			if err := msg.Args(&dtmf); err != nil {
				log.Printf("Cannot interpret Call.DtmfReceived on %s: %s", w.path, err)
				continue
			}
			select {
			case w.dtmfC <- dtmf:
			case <-w.signal.endWatch:
				return
			}
		}
	}
}

// Cancel stops the watch and closes its channels.
func (w *CallWatch) Cancel() {
	w.signal.cancel()
}
