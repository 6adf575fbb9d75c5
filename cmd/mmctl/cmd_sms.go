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

	"github.com/ubports/mmwrapper/mm"
	"golang.org/x/text/message"
	"launchpad.net/go-dbus"
)

type smsPath struct {
	Sms string `positional-arg-name:"sms" description:"message object path"`
}

type cmdSmsList struct{}

func (x *cmdSmsList) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		messages, err := modem.Messaging().List()
		if err != nil {
			return err
		}
		list := smsList{Messages: []smsSummary{}}
		for _, sms := range messages {
			s := smsSummary{Path: string(sms.Path())}
			state, err := sms.State()
			if err != nil {
				return err
			}
			s.State = state.String()
			s.Number, _ = sms.Number()
			list.Messages = append(list.Messages, s)
		}
		return emit(list)
	})
}

type smsSummary struct {
	Path   string `yaml:"path"`
	State  string `yaml:"state"`
	Number string `yaml:"number,omitempty"`
}

type smsList struct {
	Messages []smsSummary `yaml:"messages"`
}

func (l smsList) writeText(p *message.Printer, w io.Writer) {
	if len(l.Messages) == 0 {
		fmt.Fprintln(w, "No messages were found")
		return
	}
	p.Fprintf(w, "Found %d messages:\n", len(l.Messages))
	for _, m := range l.Messages {
		fmt.Fprintf(w, "  %s (%s) %s\n", m.Path, m.State, m.Number)
	}
}

type smsInfo struct {
	Path               string `yaml:"path"`
	Number             string `yaml:"number"`
	Text               string `yaml:"text,omitempty"`
	DataBytes          int    `yaml:"data-bytes,omitempty"`
	PduType            string `yaml:"pdu-type"`
	State              string `yaml:"state"`
	Storage            string `yaml:"storage"`
	Smsc               string `yaml:"smsc,omitempty"`
	Validity           string `yaml:"validity,omitempty"`
	Class              int32  `yaml:"class"`
	DeliveryReport     bool   `yaml:"delivery-report"`
	MessageReference   uint32 `yaml:"message-reference"`
	Timestamp          string `yaml:"timestamp,omitempty"`
	DischargeTimestamp string `yaml:"discharge-timestamp,omitempty"`
	DeliveryState      string `yaml:"delivery-state,omitempty"`
}

func readSmsInfo(sms *mm.Sms) (smsInfo, error) {
	var r infoReader
	var err error
	info := smsInfo{Path: string(sms.Path())}
	info.Number, err = sms.Number()
	r.check(err)
	info.Text, err = sms.Text()
	r.check(err)
	data, err := sms.Data()
	r.check(err)
	info.DataBytes = len(data)
	pduType, err := sms.PduType()
	r.check(err)
	info.PduType = pduType.String()
	state, err := sms.State()
	r.check(err)
	info.State = state.String()
	storage, err := sms.Storage()
	r.check(err)
	info.Storage = storage.String()
	info.Smsc, err = sms.SMSC()
	r.check(err)
	validity, err := sms.Validity()
	r.check(err)
	switch validity.Type {
	case mm.SmsValidityTypeUnknown:
	case mm.SmsValidityTypeRelative:
		info.Validity = fmt.Sprintf("%d minutes", validity.Value)
	default:
		info.Validity = validity.Type.String()
	}
	info.Class, err = sms.Class()
	r.check(err)
	info.DeliveryReport, err = sms.DeliveryReportRequest()
	r.check(err)
	info.MessageReference, err = sms.MessageReference()
	r.check(err)
	info.Timestamp, err = sms.Timestamp()
	r.check(err)
	if pduType == mm.SmsPduTypeStatusReport {
		info.DischargeTimestamp, err = sms.DischargeTimestamp()
		r.check(err)
		deliveryState, err := sms.DeliveryState()
		r.check(err)
		info.DeliveryState = deliveryState.String()
	}
	return info, r.err
}

func (info smsInfo) writeText(p *message.Printer, w io.Writer) {
	section(w, "General")
	field(w, "path", info.Path)
	section(w, "Content")
	field(w, "number", info.Number)
	field(w, "text", info.Text)
	if info.DataBytes > 0 {
		field(w, "data", byteCount(p, uint64(info.DataBytes)))
	}
	section(w, "Properties")
	field(w, "pdu type", info.PduType)
	field(w, "state", info.State)
	field(w, "storage", info.Storage)
	field(w, "smsc", info.Smsc)
	field(w, "validity", info.Validity)
	field(w, "class", info.Class)
	field(w, "delivery report", info.DeliveryReport)
	field(w, "message reference", info.MessageReference)
	field(w, "timestamp", info.Timestamp)
	field(w, "discharge timestamp", info.DischargeTimestamp)
	field(w, "delivery state", info.DeliveryState)
}

type cmdSmsShow struct {
	Positional smsPath `positional-args:"yes" required:"yes"`
}

func (x *cmdSmsShow) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		return emitPartial(readSmsInfo(manager.Sms(dbus.ObjectPath(x.Positional.Sms))))
	})
}

type cmdSmsCreate struct {
	Number         string `long:"number" required:"yes" description:"destination number"`
	Text           string `long:"text" description:"message text"`
	Smsc           string `long:"smsc" description:"service center number"`
	Validity       uint32 `long:"validity" description:"relative validity in minutes"`
	Class          *int32 `long:"class" description:"3GPP message class"`
	DeliveryReport bool   `long:"delivery-report" description:"request a delivery report"`
	Storage        string `long:"storage" description:"where to store the message, e.g. me or sm"`
	Send           bool   `long:"send" description:"send the message once created"`
}

func (x *cmdSmsCreate) smsProperties() (props mm.SmsProperties, err error) {
	props = mm.SmsProperties{
		Number:                x.Number,
		Text:                  x.Text,
		Smsc:                  x.Smsc,
		Class:                 x.Class,
		DeliveryReportRequest: x.DeliveryReport,
	}
	if x.Validity != 0 {
		props.Validity = mm.Validity{Type: mm.SmsValidityTypeRelative, Value: x.Validity}
	}
	if x.Storage != "" {
		if props.Storage, err = mm.ParseSmsStorage(x.Storage); err != nil {
			return props, err
		}
	}
	return props, nil
}

func (x *cmdSmsCreate) Execute(args []string) error {
	props, err := x.smsProperties()
	if err != nil {
		return err
	}
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		sms, err := modem.Messaging().Create(props)
		if err != nil {
			return err
		}
		if x.Send {
			if err := sms.Send(); err != nil {
				return fmt.Errorf("created %s but could not send it: %w", sms.Path(), err)
			}
			return emit(result{Label: "sent message", Value: string(sms.Path())})
		}
		return emit(result{Label: "created message", Value: string(sms.Path())})
	})
}

type cmdSmsSend struct {
	Positional smsPath `positional-args:"yes" required:"yes"`
}

func (x *cmdSmsSend) Execute(args []string) error {
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.Sms(dbus.ObjectPath(x.Positional.Sms)).Send(); err != nil {
			return err
		}
		return done("sent the message")
	})
}

type cmdSmsStore struct {
	Storage    string  `long:"storage" default:"me" description:"storage to use, e.g. me or sm"`
	Positional smsPath `positional-args:"yes" required:"yes"`
}

func (x *cmdSmsStore) Execute(args []string) error {
	storage, err := mm.ParseSmsStorage(x.Storage)
	if err != nil {
		return err
	}
	return withManager(func(manager *mm.ModemManager) error {
		if err := manager.Sms(dbus.ObjectPath(x.Positional.Sms)).Store(storage); err != nil {
			return err
		}
		return done("stored the message in " + storage.String())
	})
}

type cmdSmsDelete struct {
	Positional smsPath `positional-args:"yes" required:"yes"`
}

func (x *cmdSmsDelete) Execute(args []string) error {
	return withModem(func(manager *mm.ModemManager, modem *mm.Modem) error {
		if err := modem.Messaging().Delete(dbus.ObjectPath(x.Positional.Sms)); err != nil {
			return err
		}
		return done("deleted " + x.Positional.Sms)
	})
}
