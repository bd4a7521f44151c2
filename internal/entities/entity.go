package entities

import (
	"fmt"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type Entity string

const (
	EntityChassis Entity = "chassis"
	EntityHost    Entity = "host"
)

// Entities lists tracked entities in display order.
var Entities = []Entity{EntityChassis, EntityHost}

func (e Entity) String() string {
	return string(e)
}

// EntityInterface locates the entity state on the state service.
type EntityInterface struct {
	Label              string
	Path               string
	Interface          string
	StateProperty      string
	TransitionProperty string
}

var entityInterfaces = map[Entity]EntityInterface{
	EntityChassis: {
		Label:              "Chassis",
		Path:               constants.ChassisPath,
		Interface:          constants.ChassisIface,
		StateProperty:      constants.ChassisState,
		TransitionProperty: constants.ChassisTransition,
	},
	EntityHost: {
		Label:              "Host",
		Path:               constants.HostPath,
		Interface:          constants.HostIface,
		StateProperty:      constants.HostState,
		TransitionProperty: constants.HostTransition,
	},
}

func (e Entity) Interface() (iface EntityInterface, err error) {
	iface, ok := entityInterfaces[e]
	if !ok {
		return iface, fmt.Errorf("Interface: %w: %q", errs.ErrUnknownEntity, e)
	}

	return iface, nil
}

// EntityByInterface returns the entity exposing the given D-Bus interface.
func EntityByInterface(iface string) (Entity, bool) {
	for entity, ei := range entityInterfaces {
		if ei.Interface == iface {
			return entity, true
		}
	}

	return "", false
}
