package dbusbus

import (
	"github.com/godbus/dbus/v5"
	"github.com/samber/lo"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
)

const propertiesChangedMember = constants.PropertiesIface + "." + constants.PropertiesChanged

// decodeSignal converts a PropertiesChanged signal of iface on path. Every
// other signal delivered to the connection is rejected.
func decodeSignal(signal *dbus.Signal, path, iface string) (event entities.PropertiesChanged, ok bool) {
	if signal == nil || signal.Name != propertiesChangedMember || string(signal.Path) != path {
		return event, false
	}

	if len(signal.Body) < 2 {
		return event, false
	}

	signalIface, ok := signal.Body[0].(string)
	if !ok || signalIface != iface {
		return event, false
	}

	changed, ok := signal.Body[1].(map[string]dbus.Variant)
	if !ok {
		return event, false
	}

	event = entities.PropertiesChanged{
		Path:      path,
		Interface: iface,
		Changed: lo.MapValues(changed, func(v dbus.Variant, _ string) any {
			return v.Value()
		}),
	}

	if len(signal.Body) > 2 {
		if invalidated, ok := signal.Body[2].([]string); ok {
			event.Invalidated = invalidated
		}
	}

	return event, true
}
