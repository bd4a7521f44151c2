package constants

import (
	"time"
)

const (
	// bmcweb endpoints.
	RESTSubscribePath   = "/subscribe"
	RESTAttrPathFmt     = "%s/attr/%s"
	RESTActionPathFmt   = "%s/action/%s"
	RESTEventProperties = "PropertiesChanged"
)

const (
	WSPingPeriod     = 4 * time.Second
	WSPongWait       = 6 * time.Second
	WSWriteWait      = 2 * time.Second
	WSEventQueueSize = 16
)
