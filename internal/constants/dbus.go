package constants

const (
	ObjectMapperService = "xyz.openbmc_project.ObjectMapper"
	ObjectMapperPath    = "/xyz/openbmc_project/object_mapper"
	ObjectMapperIface   = "xyz.openbmc_project.ObjectMapper"
	ObjectMapperGetObj  = "GetObject"

	PropertiesIface   = "org.freedesktop.DBus.Properties"
	PropertiesGet     = PropertiesIface + ".Get"
	PropertiesSet     = PropertiesIface + ".Set"
	PropertiesChanged = "PropertiesChanged"
)

// chassis.
const (
	ChassisPath          = "/xyz/openbmc_project/state/chassis0"
	ChassisIface         = "xyz.openbmc_project.State.Chassis"
	ChassisState         = "CurrentPowerState"
	ChassisStateOn       = "xyz.openbmc_project.State.Chassis.PowerState.On"
	ChassisStateOff      = "xyz.openbmc_project.State.Chassis.PowerState.Off"
	ChassisTransition    = "RequestedPowerTransition"
	ChassisTransitionOff = "xyz.openbmc_project.State.Chassis.Transition.Off"
)

// host.
const (
	HostPath             = "/xyz/openbmc_project/state/host0"
	HostIface            = "xyz.openbmc_project.State.Host"
	HostState            = "CurrentHostState"
	HostStateRunning     = "xyz.openbmc_project.State.Host.HostState.Running"
	HostStateOff         = "xyz.openbmc_project.State.Host.HostState.Off"
	HostTransition       = "RequestedHostTransition"
	HostTransitionOn     = "xyz.openbmc_project.State.Host.Transition.On"
	HostTransitionOff    = "xyz.openbmc_project.State.Host.Transition.Off"
	HostTransitionReboot = "xyz.openbmc_project.State.Host.Transition.Reboot"
)

const DBusSignalQueueSize = 16
