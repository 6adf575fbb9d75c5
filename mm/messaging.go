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
	"launchpad.net/go-dbus"
)

// Messaging mirrors org.freedesktop.ModemManager1.Modem.Messaging.
type Messaging struct {
	mmInterface
}

// List returns the messages known to the modem, both received and locally
// created.
func (m *Messaging) List() ([]*Sms, error) {
	var paths []dbus.ObjectPath
	if err := m.call("List", []interface{}{&paths}); err != nil {
		return nil, err
	}
	return m.messages(paths), nil
}

func (m *Messaging) Delete(sms dbus.ObjectPath) error {
	return m.call("Delete", nil, sms)
}

// Create creates a new message object. It is not sent nor stored until Send
// or Store is called on it.
func (m *Messaging) Create(props SmsProperties) (*Sms, error) {
	if err := props.validate(); err != nil {
		return nil, err
	}
	var objectPath dbus.ObjectPath
	if err := m.call("Create", []interface{}{&objectPath}, map[string]dbus.Variant(props.ToDBus())); err != nil {
		return nil, err
	}
	return NewSms(m.conn, objectPath), nil
}

func (m *Messaging) Messages() ([]dbus.ObjectPath, error) {
	return m.pathsProperty("Messages")
}

func (m *Messaging) GetMessages() ([]*Sms, error) {
	paths, err := m.Messages()
	if err != nil {
		return nil, err
	}
	return m.messages(paths), nil
}

func (m *Messaging) messages(paths []dbus.ObjectPath) []*Sms {
	messages := make([]*Sms, len(paths))
	for i, p := range paths {
		messages[i] = NewSms(m.conn, p)
	}
	return messages
}

func (m *Messaging) SupportedStorages() ([]SmsStorage, error) {
	values, err := m.uint32sProperty("SupportedStorages")
	if err != nil {
		return nil, err
	}
	storages := make([]SmsStorage, len(values))
	for i, v := range values {
		storages[i] = SmsStorage(v)
	}
	return storages, nil
}

func (m *Messaging) DefaultStorage() (SmsStorage, error) {
	v, err := m.uint32Property("DefaultStorage")
	return SmsStorage(v), err
}
