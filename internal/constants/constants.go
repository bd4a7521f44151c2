package constants

import (
	"time"
)

const (
	AppName   = "hostpwrctl"
	EnvPrefix = "HOSTPWRCTL"
)

const (
	// ConfirmationTimeout bounds the wait for the state service to report
	// the requested power state.
	ConfirmationTimeout = 30 * time.Second
	CallTimeout         = 5 * time.Second
)

const (
	TransportDBus = "dbus"
	TransportREST = "rest"
	TransportNATS = "nats"
)

const (
	OutputText  = "text"
	OutputTable = "table"
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
)
