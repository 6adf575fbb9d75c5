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
	"log"
	"os"
	"os/signal"
)

// Mainloop runs until Stop is called, dispatching the bound signals to their
// handlers.
type Mainloop struct {
	sigchan  chan os.Signal
	termchan chan int
	Bindings map[os.Signal]func()
}

func newMainloop() *Mainloop {
	return &Mainloop{
		sigchan:  make(chan os.Signal, 1),
		termchan: make(chan int),
		Bindings: make(map[os.Signal]func()),
	}
}

/*
Start the mainloop.

This method blocks until Stop is called, usually from one of the Bindings.
*/
func (m *Mainloop) Start() {
	sigs := make([]os.Signal, 0, len(m.Bindings))
	for s := range m.Bindings {
		sigs = append(sigs, s)
	}
	signal.Notify(m.sigchan, sigs...)
	defer signal.Stop(m.sigchan)
L:
	for {
		select {
		case sig := <-m.sigchan:
			log.Print("Received ", sig)
			m.Bindings[sig]()
		case <-m.termchan:
			break L
		}
	}
}

/*
Stops the mainloop.
*/
func (m *Mainloop) Stop() {
	go func() { m.termchan <- 1 }()
}
