package action

import (
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
)

type Command string

const (
	CommandOn     Command = "on"
	CommandOff    Command = "off"
	CommandSoft   Command = "soft"
	CommandReboot Command = "reboot"
	CommandStatus Command = "status"
)

func (c Command) String() string {
	return string(c)
}

// Plan is the decision an action takes for the observed state.
type Plan struct {
	// NoOp is set when the target is already reached (or unreachable) and
	// nothing must be written.
	NoOp     bool
	Message  string
	Request  entities.TransitionRequest
	Expected entities.StatePair

	// Cycle is set when Expected must be left and reached again, so a state
	// that already matches does not confirm the transition.
	Cycle bool
}
