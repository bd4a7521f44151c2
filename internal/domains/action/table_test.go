package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/action"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

var (
	running = entities.NewStatePair(constants.ChassisStateOn, constants.HostStateRunning)
	down    = entities.NewStatePair(constants.ChassisStateOff, constants.HostStateOff)
	unknown = entities.StatePair{}
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, command := range action.Commands() {
		a, err := action.Parse(command.String())
		require.NoError(t, err)
		assert.Equal(t, command, a.Command())
		assert.NotEmpty(t, action.Describe(command))
	}

	for _, token := range []string{"", "reset", "ON", "power-on"} {
		_, err := action.Parse(token)
		require.ErrorIs(t, err, errs.ErrUnknownCommand, token)
	}
}

func TestAction_Plan(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name            string
		command         action.Command
		current         entities.StatePair
		expectedNoOp    bool
		expectedRequest entities.TransitionRequest
		expectedPair    entities.StatePair
		expectedCycle   bool
	}{
		{
			name:         "on when already up",
			command:      action.CommandOn,
			current:      running,
			expectedNoOp: true,
		},
		{
			name:    "on when down",
			command: action.CommandOn,
			current: down,
			expectedRequest: entities.TransitionRequest{
				Entity: entities.EntityHost,
				Value:  constants.HostTransitionOn,
			},
			expectedPair: running,
		},
		{
			name:    "on with unknown state",
			command: action.CommandOn,
			current: unknown,
			expectedRequest: entities.TransitionRequest{
				Entity: entities.EntityHost,
				Value:  constants.HostTransitionOn,
			},
			expectedPair: running,
		},
		{
			name:         "off when already down",
			command:      action.CommandOff,
			current:      down,
			expectedNoOp: true,
		},
		{
			name:    "off writes chassis transition",
			command: action.CommandOff,
			current: running,
			expectedRequest: entities.TransitionRequest{
				Entity: entities.EntityChassis,
				Value:  constants.ChassisTransitionOff,
			},
			expectedPair: down,
		},
		{
			name:    "soft writes host transition",
			command: action.CommandSoft,
			current: running,
			expectedRequest: entities.TransitionRequest{
				Entity: entities.EntityHost,
				Value:  constants.HostTransitionOff,
			},
			expectedPair: down,
		},
		{
			name:         "soft when already down",
			command:      action.CommandSoft,
			current:      entities.NewStatePair(constants.ChassisStateOff, constants.HostStateRunning),
			expectedNoOp: true,
		},
		{
			name:         "reboot impossible with chassis off",
			command:      action.CommandReboot,
			current:      entities.NewStatePair(constants.ChassisStateOff, constants.HostStateRunning),
			expectedNoOp: true,
		},
		{
			name:    "reboot running host",
			command: action.CommandReboot,
			current: running,
			expectedRequest: entities.TransitionRequest{
				Entity: entities.EntityHost,
				Value:  constants.HostTransitionReboot,
			},
			expectedPair:  running,
			expectedCycle: true,
		},
		{
			name:    "reboot with unknown host state",
			command: action.CommandReboot,
			current: entities.NewStatePair(constants.ChassisStateOn, ""),
			expectedRequest: entities.TransitionRequest{
				Entity: entities.EntityHost,
				Value:  constants.HostTransitionReboot,
			},
			expectedPair:  running,
			expectedCycle: true,
		},
		{
			name:         "status never plans a transition",
			command:      action.CommandStatus,
			current:      down,
			expectedNoOp: true,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			a, err := action.Parse(testCase.command.String())
			require.NoError(t, err)

			plan := a.Plan(testCase.current)
			require.Equal(t, testCase.expectedNoOp, plan.NoOp)
			if testCase.expectedNoOp {
				require.Empty(t, plan.Request.Entity)
				require.False(t, plan.Expected.Defined())
				return
			}

			require.Equal(t, testCase.expectedRequest, plan.Request)
			require.Equal(t, testCase.expectedPair, plan.Expected)
			require.Equal(t, testCase.expectedCycle, plan.Cycle)
			require.NotEmpty(t, plan.Message)
		})
	}
}
