package mm

import (
	"errors"
	"fmt"

	"launchpad.net/go-dbus"
)

// D-Bus error names returned by the daemon.
const (
	ERROR_CORE_FAILED           = "org.freedesktop.ModemManager1.Error.Core.Failed"
	ERROR_CORE_CANCELLED        = "org.freedesktop.ModemManager1.Error.Core.Cancelled"
	ERROR_CORE_ABORTED          = "org.freedesktop.ModemManager1.Error.Core.Aborted"
	ERROR_CORE_UNSUPPORTED      = "org.freedesktop.ModemManager1.Error.Core.Unsupported"
	ERROR_CORE_NO_PLUGINS       = "org.freedesktop.ModemManager1.Error.Core.NoPlugins"
	ERROR_CORE_UNAUTHORIZED     = "org.freedesktop.ModemManager1.Error.Core.Unauthorized"
	ERROR_CORE_INVALID_ARGS     = "org.freedesktop.ModemManager1.Error.Core.InvalidArgs"
	ERROR_CORE_IN_PROGRESS      = "org.freedesktop.ModemManager1.Error.Core.InProgress"
	ERROR_CORE_WRONG_STATE      = "org.freedesktop.ModemManager1.Error.Core.WrongState"
	ERROR_CORE_CONNECTED        = "org.freedesktop.ModemManager1.Error.Core.Connected"
	ERROR_CORE_TOO_MANY         = "org.freedesktop.ModemManager1.Error.Core.TooMany"
	ERROR_CORE_NOT_FOUND        = "org.freedesktop.ModemManager1.Error.Core.NotFound"
	ERROR_CORE_RETRY            = "org.freedesktop.ModemManager1.Error.Core.Retry"
	ERROR_CORE_EXISTS           = "org.freedesktop.ModemManager1.Error.Core.Exists"
	ERROR_CORE_WRONG_SIM_STATE  = "org.freedesktop.ModemManager1.Error.Core.WrongSimState"
	ERROR_CORE_RESET_RETRY      = "org.freedesktop.ModemManager1.Error.Core.ResetAndRetry"
	ERROR_ME_PHONE_FAILURE      = "org.freedesktop.ModemManager1.Error.MobileEquipment.PhoneFailure"
	ERROR_ME_NOT_ALLOWED        = "org.freedesktop.ModemManager1.Error.MobileEquipment.NotAllowed"
	ERROR_ME_NOT_SUPPORTED      = "org.freedesktop.ModemManager1.Error.MobileEquipment.NotSupported"
	ERROR_ME_SIM_NOT_INSERTED   = "org.freedesktop.ModemManager1.Error.MobileEquipment.SimNotInserted"
	ERROR_ME_SIM_PIN            = "org.freedesktop.ModemManager1.Error.MobileEquipment.SimPin"
	ERROR_ME_SIM_PUK            = "org.freedesktop.ModemManager1.Error.MobileEquipment.SimPuk"
	ERROR_ME_SIM_FAILURE        = "org.freedesktop.ModemManager1.Error.MobileEquipment.SimFailure"
	ERROR_ME_SIM_BUSY           = "org.freedesktop.ModemManager1.Error.MobileEquipment.SimBusy"
	ERROR_ME_SIM_WRONG          = "org.freedesktop.ModemManager1.Error.MobileEquipment.SimWrong"
	ERROR_ME_INCORRECT_PASSWORD = "org.freedesktop.ModemManager1.Error.MobileEquipment.IncorrectPassword"
	ERROR_ME_NO_NETWORK         = "org.freedesktop.ModemManager1.Error.MobileEquipment.NoNetwork"
	ERROR_ME_NETWORK_TIMEOUT    = "org.freedesktop.ModemManager1.Error.MobileEquipment.NetworkTimeout"
	ERROR_ME_GPRS_NOT_ALLOWED   = "org.freedesktop.ModemManager1.Error.MobileEquipment.GprsServiceOptionNotSubscribed"
	ERROR_ME_UNKNOWN            = "org.freedesktop.ModemManager1.Error.MobileEquipment.Unknown"
	ERROR_SMS_UNKNOWN           = "org.freedesktop.ModemManager1.Error.MessageError.Unknown"
	ERROR_SMS_NETWORK_TIMEOUT   = "org.freedesktop.ModemManager1.Error.MessageError.NetworkTimeout"
	ERROR_SMS_INVALID_PDU       = "org.freedesktop.ModemManager1.Error.MessageError.InvalidPduParameter"
	ERROR_SMS_SMSC_ADDRESS      = "org.freedesktop.ModemManager1.Error.MessageError.SmscAddressUnknown"
	ERROR_DBUS_UNKNOWN_METHOD   = "org.freedesktop.DBus.Error.UnknownMethod"
	ERROR_DBUS_UNKNOWN_OBJECT   = "org.freedesktop.DBus.Error.UnknownObject"
	ERROR_DBUS_SERVICE_UNKNOWN  = "org.freedesktop.DBus.Error.ServiceUnknown"
)

// ErrorName returns the D-Bus error name carried by err, or "" when err did
// not come from the bus.
func ErrorName(err error) string {
	var dbusErr *dbus.Error
	if errors.As(err, &dbusErr) {
		return dbusErr.Name
	}
	return ""
}

// IsErrorName reports whether err is a D-Bus error with one of the given names.
func IsErrorName(err error, names ...string) bool {
	name := ErrorName(err)
	if name == "" {
		return false
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

type ErrorInvalidLogLevel string

func (e ErrorInvalidLogLevel) Error() string {
	return fmt.Sprintf("invalid log level %q: want one of ERR, WARN, INFO, DEBUG", string(e))
}

type ErrorInvalidDtmf string

func (e ErrorInvalidDtmf) Error() string {
	return fmt.Sprintf("invalid DTMF string %q: only 0-9, A-D, * and # are allowed", string(e))
}

type ErrorInvalidSmsProperties struct {
	Reason string
}

func (e ErrorInvalidSmsProperties) Error() string {
	return "invalid SMS properties: " + e.Reason
}

type ErrorInvalidKernelEvent struct {
	Reason string
}

func (e ErrorInvalidKernelEvent) Error() string {
	return "invalid kernel event: " + e.Reason
}
