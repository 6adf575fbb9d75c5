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

// Validity is the SMS validity period. For SmsValidityTypeRelative Value is
// the length of the period in minutes.
type Validity struct {
	Type  SmsValidityType
	Value uint32
}

// SmsProperties describes a message for Messaging.Create. Number and exactly
// one of Text or Data are required.
type SmsProperties struct {
	Number string
	Text   string
	Data   []byte
	Smsc   string
	// Validity is sent only when its Type is set.
	Validity              Validity
	Class                 *int32
	DeliveryReportRequest bool
	Storage               SmsStorage
	TeleserviceId         SmsCdmaTeleserviceId
	ServiceCategory       SmsCdmaServiceCategory
}

func (p SmsProperties) validate() error {
	switch {
	case p.Number == "":
		return ErrorInvalidSmsProperties{"number is mandatory"}
	case p.Text == "" && len(p.Data) == 0:
		return ErrorInvalidSmsProperties{"one of text or data is mandatory"}
	case p.Text != "" && len(p.Data) != 0:
		return ErrorInvalidSmsProperties{"text and data are mutually exclusive"}
	}
	return nil
}

func (p SmsProperties) ToDBus() PropertiesType {
	props := PropertiesType{"number": dbus.Variant{Value: p.Number}}
	if p.Text != "" {
		props["text"] = dbus.Variant{Value: p.Text}
	}
	if len(p.Data) != 0 {
		props["data"] = dbus.Variant{Value: p.Data}
	}
	if p.Smsc != "" {
		props["smsc"] = dbus.Variant{Value: p.Smsc}
	}
	if p.Validity.Type != SmsValidityTypeUnknown {
		props["validity"] = dbus.Variant{Value: struct {
			Type  uint32
			Value dbus.Variant
		}{uint32(p.Validity.Type), dbus.Variant{Value: p.Validity.Value}}}

	}
	if p.Class != nil {
		props["class"] = dbus.Variant{Value: *p.Class}
	}
	if p.DeliveryReportRequest {
		props["delivery-report-request"] = dbus.Variant{Value: true}
	}
	if p.Storage != SmsStorageUnknown {
		props["storage"] = dbus.Variant{Value: uint32(p.Storage)}
	}
	if p.TeleserviceId != SmsCdmaTeleserviceIdUnknown {
		props["teleservice-id"] = dbus.Variant{Value: uint32(p.TeleserviceId)}
	}
	if p.ServiceCategory != SmsCdmaServiceCategoryUnknown {
		props["service-category"] = dbus.Variant{Value: uint32(p.ServiceCategory)}
	}
	return props
}

// Sms mirrors org.freedesktop.ModemManager1.Sms.
type Sms struct {
	mmInterface
}

func NewSms(conn *dbus.Connection, objectPath dbus.ObjectPath) *Sms {
	return &Sms{newInterface(conn, objectPath, SMS_INTERFACE)}
}

// Send sends the message. Received messages cannot be sent.
func (sms *Sms) Send() error {
	return sms.call("Send", nil)
}

// Store stores the message in the device if not already done. With
// SmsStorageUnknown the daemon picks the default storage.
func (sms *Sms) Store(storage SmsStorage) error {
	return sms.call("Store", nil, uint32(storage))
}

func (sms *Sms) State() (SmsState, error) {
	v, err := sms.uint32Property("State")
	return SmsState(v), err
}

func (sms *Sms) PduType() (SmsPduType, error) {
	v, err := sms.uint32Property("PduType")
	return SmsPduType(v), err
}

func (sms *Sms) Number() (string, error) {
	return sms.stringProperty("Number")
}

// Text is the message text in UTF-8. Empty for binary messages, see Data.
func (sms *Sms) Text() (string, error) {
	return sms.stringProperty("Text")
}

func (sms *Sms) Data() ([]byte, error) {
	v, err := sms.property("Data")
	if err != nil {
		return nil, err
	}
	return asBytes("Data", v)
}

// SMSC is the service center number, always empty for 3GPP2/CDMA.
func (sms *Sms) SMSC() (string, error) {
	return sms.stringProperty("SMSC")
}

func (sms *Sms) Validity() (Validity, error) {
	v, err := sms.property("Validity")
	if err != nil {
		return Validity{}, err
	}
	fields, err := asStruct("Validity", v, 2, Validity{})
	if err != nil {
		return Validity{}, err
	}
	validityType, err := asUint32("Validity", fields[0])
	if err != nil {
		return Validity{}, err
	}
	inner := fields[1]
	if variant, ok := inner.(dbus.Variant); ok {
		inner = variant.Value
	}
	if variant, ok := inner.(*dbus.Variant); ok {
		inner = variant.Value
	}
	if SmsValidityType(validityType) != SmsValidityTypeRelative {
		return Validity{Type: SmsValidityType(validityType)}, nil
	}
	value, err := asUint32("Validity", inner)
	if err != nil {
		return Validity{}, err
	}
	return Validity{SmsValidityType(validityType), value}, nil
}

// Class is the 3GPP message class, -1 when not used.
func (sms *Sms) Class() (int32, error) {
	return sms.int32Property("Class")
}

func (sms *Sms) TeleserviceId() (SmsCdmaTeleserviceId, error) {
	v, err := sms.uint32Property("TeleserviceId")
	return SmsCdmaTeleserviceId(v), err
}

func (sms *Sms) ServiceCategory() (SmsCdmaServiceCategory, error) {
	v, err := sms.uint32Property("ServiceCategory")
	return SmsCdmaServiceCategory(v), err
}

func (sms *Sms) DeliveryReportRequest() (bool, error) {
	return sms.boolProperty("DeliveryReportRequest")
}

func (sms *Sms) MessageReference() (uint32, error) {
	return sms.uint32Property("MessageReference")
}

// Timestamp is when the first PDU reached the SMSC, in ISO8601 format.
func (sms *Sms) Timestamp() (string, error) {
	return sms.stringProperty("Timestamp")
}

func (sms *Sms) DischargeTimestamp() (string, error) {
	return sms.stringProperty("DischargeTimestamp")
}

// DeliveryState is only meaningful for status reports.
func (sms *Sms) DeliveryState() (SmsDeliveryState, error) {
	v, err := sms.uint32Property("DeliveryState")
	return SmsDeliveryState(v), err
}

func (sms *Sms) Storage() (SmsStorage, error) {
	v, err := sms.uint32Property("Storage")
	return SmsStorage(v), err
}
