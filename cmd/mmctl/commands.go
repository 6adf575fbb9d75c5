package main

type command struct {
	name, short, long string
	data              interface{}
	subcommands       []command
}

var commands = []command{
	{name: "list", short: "List the available modems", data: &cmdList{}},
	{name: "info", short: "Show the status of a modem", data: &cmdInfo{}},
	{name: "enable", short: "Enable a modem", data: &cmdEnable{enable: true}},
	{name: "disable", short: "Disable a modem", data: &cmdEnable{enable: false}},
	{name: "reset", short: "Reset a modem", long: "Reset clears non-persistent configuration and state; --factory with a carrier supplied code restores the factory defaults.", data: &cmdReset{}},
	{name: "power", short: "Set the power state of a modem", data: &cmdPower{}},
	{name: "scan-devices", short: "Ask ModemManager to look for new modems", data: &cmdScanDevices{}},
	{name: "logging", short: "Set the ModemManager log level", data: &cmdLogging{}},
	{name: "inhibit", short: "Inhibit a modem device until interrupted", data: &cmdInhibit{}},
	{name: "command", short: "Send an AT command (ModemManager must run in debug mode)", data: &cmdCommand{}},
	{name: "scan", short: "Scan for 3GPP networks", data: &cmdScan{}},
	{name: "register", short: "Register with a 3GPP network, automatic when no operator is given", data: &cmdRegister{}},
	{name: "connect", short: "Connect a modem using the simple interface", data: &cmdConnect{}},
	{name: "disconnect", short: "Disconnect one or all bearers of a modem", data: &cmdDisconnect{}},
	{name: "monitor", short: "Print modem and state changes until interrupted", data: &cmdMonitor{}},
	{name: "sim", short: "SIM card operations", subcommands: []command{
		{name: "info", short: "Show the active SIM", data: &cmdSimInfo{}},
		{name: "pin", short: "Send the PIN", data: &cmdSimPin{}},
		{name: "puk", short: "Send the PUK and a new PIN", data: &cmdSimPuk{}},
		{name: "enable-pin", short: "Enable or disable PIN checking", data: &cmdSimEnablePin{}},
		{name: "change-pin", short: "Change the PIN", data: &cmdSimChangePin{}},
	}},
	{name: "bearer", short: "Packet data bearer operations", subcommands: []command{
		{name: "list", short: "List the bearers of a modem", data: &cmdBearerList{}},
		{name: "info", short: "Show a bearer", data: &cmdBearerInfo{}},
		{name: "create", short: "Create a bearer", data: &cmdBearerCreate{}},
		{name: "delete", short: "Delete a bearer", data: &cmdBearerDelete{}},
		{name: "connect", short: "Connect a bearer", data: &cmdBearerConnect{connect: true}},
		{name: "disconnect", short: "Disconnect a bearer", data: &cmdBearerConnect{connect: false}},
	}},
	{name: "sms", short: "Text message operations", subcommands: []command{
		{name: "list", short: "List the messages of a modem", data: &cmdSmsList{}},
		{name: "show", short: "Show a message", data: &cmdSmsShow{}},
		{name: "create", short: "Create a message", data: &cmdSmsCreate{}},
		{name: "send", short: "Send a message", data: &cmdSmsSend{}},
		{name: "store", short: "Store a message", data: &cmdSmsStore{}},
		{name: "delete", short: "Delete a message", data: &cmdSmsDelete{}},
	}},
	{name: "call", short: "Voice call operations", subcommands: []command{
		{name: "list", short: "List the calls of a modem", data: &cmdCallList{}},
		{name: "dial", short: "Create and start a call", data: &cmdCallDial{}},
		{name: "accept", short: "Accept an incoming call", data: &cmdCallAccept{}},
		{name: "hangup", short: "Hang up a call, or all of them", data: &cmdCallHangup{}},
		{name: "dtmf", short: "Send DTMF tones", data: &cmdCallDtmf{}},
		{name: "deflect", short: "Deflect an incoming call", data: &cmdCallDeflect{}},
	}},
	{name: "profile", short: "Stored connection profiles", subcommands: []command{
		{name: "list", short: "List the modems with a stored profile", data: &cmdProfileList{}},
		{name: "show", short: "Show a stored profile", data: &cmdProfileShow{}},
		{name: "remove", short: "Remove stored profiles", data: &cmdProfileRemove{}},
		{name: "prefer", short: "Use a modem by default", data: &cmdProfilePrefer{}},
		{name: "clear", short: "Remove every profile and the preferred modem", data: &cmdProfileClear{}},
	}},
}
