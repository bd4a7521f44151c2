package action

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

// Action maps the current state of the system to a Plan.
type Action struct {
	command     Command
	description string

	// noOpState is the chassis state in which the action does nothing.
	noOpState     entities.StateToken
	noOpMessage   string
	issuedMessage string
	request       entities.TransitionRequest
	expected      entities.StatePair
	cycle         bool
}

var table = []Action{
	{
		command:       CommandOn,
		description:   "turn the host on",
		noOpState:     constants.ChassisStateOn,
		noOpMessage:   "System is already up.",
		issuedMessage: "Power up signal was sent to host, waiting for system start.",
		request: entities.TransitionRequest{
			Entity: entities.EntityHost,
			Value:  constants.HostTransitionOn,
		},
		expected: entities.NewStatePair(constants.ChassisStateOn, constants.HostStateRunning),
	},
	{
		command:       CommandOff,
		description:   "turn the host off",
		noOpState:     constants.ChassisStateOff,
		noOpMessage:   "System is already down.",
		issuedMessage: "Shutdown signal was sent to chassis, waiting for system down.",
		request: entities.TransitionRequest{
			Entity: entities.EntityChassis,
			Value:  constants.ChassisTransitionOff,
		},
		expected: entities.NewStatePair(constants.ChassisStateOff, constants.HostStateOff),
	},
	{
		command:       CommandSoft,
		description:   "gracefully turn the host off",
		noOpState:     constants.ChassisStateOff,
		noOpMessage:   "System is already down.",
		issuedMessage: "Shutdown signal was sent to host, waiting for system down.",
		request: entities.TransitionRequest{
			Entity: entities.EntityHost,
			Value:  constants.HostTransitionOff,
		},
		expected: entities.NewStatePair(constants.ChassisStateOff, constants.HostStateOff),
	},
	{
		command:       CommandReboot,
		description:   "reboot the host",
		noOpState:     constants.ChassisStateOff,
		noOpMessage:   "Chassis is off, reboot is impossible.",
		issuedMessage: "Reboot signal was sent to host, waiting for system down and start again.",
		request: entities.TransitionRequest{
			Entity: entities.EntityHost,
			Value:  constants.HostTransitionReboot,
		},
		expected: entities.NewStatePair(constants.ChassisStateOn, constants.HostStateRunning),
		cycle:    true,
	},
	{
		command:     CommandStatus,
		description: "show actual host power state",
	},
}

var actions = lo.SliceToMap(table, func(a Action) (Command, Action) {
	return a.command, a
})

// Parse returns the action for a command token.
func Parse(token string) (a Action, err error) {
	a, ok := actions[Command(strings.TrimSpace(token))]
	if !ok {
		return a, fmt.Errorf("Parse: %w: %q", errs.ErrUnknownCommand, token)
	}

	return a, nil
}

// Commands returns all command tokens in usage order.
func Commands() []Command {
	return lo.Map(table, func(a Action, _ int) Command {
		return a.command
	})
}

// Describe returns the usage line of a command.
func Describe(command Command) string {
	return actions[command].description
}

func (a Action) Command() Command {
	return a.command
}

// IsStatus reports whether the action only reads and prints the state.
func (a Action) IsStatus() bool {
	return a.command == CommandStatus
}

// Plan decides what to do for the current state. The no-op condition only
// looks at the chassis, the host state does not matter.
func (a Action) Plan(current entities.StatePair) Plan {
	if a.IsStatus() {
		return Plan{NoOp: true}
	}

	if current.Chassis == a.noOpState {
		return Plan{
			NoOp:    true,
			Message: a.noOpMessage,
		}
	}

	return Plan{
		Message:  a.issuedMessage,
		Request:  a.request,
		Expected: a.expected,
		Cycle:    a.cycle,
	}
}
