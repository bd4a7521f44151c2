package constants

const (
	MQDefaultSubjectPrefix = "obmc"

	// out requests.
	MQMapperGetObject = "mapper.get_object"
	MQPropertiesGet   = "properties.get"
	MQPropertiesSet   = "properties.set"
	MQSignalNamespace = "signal"
	MQSignalQueueSize = 16
)
