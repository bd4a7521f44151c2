package notification_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/notification"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
)

var (
	errTestError = errors.New("test error")
)

// --- fakes ---

type fakeSubscriber struct {
	mx      sync.Mutex
	streams map[string]chan entities.PropertiesChanged
	failOn  string
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{
		streams: map[string]chan entities.PropertiesChanged{},
	}
}

func (f *fakeSubscriber) SubscribePropertiesChanged(ctx context.Context, path, _ string) (<-chan entities.PropertiesChanged, error) {
	if path == f.failOn {
		return nil, errTestError
	}

	f.mx.Lock()
	defer f.mx.Unlock()

	in := make(chan entities.PropertiesChanged, 4)
	out := make(chan entities.PropertiesChanged)
	f.streams[path] = in

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (f *fakeSubscriber) emit(path string, event entities.PropertiesChanged) {
	f.mx.Lock()
	defer f.mx.Unlock()

	f.streams[path] <- event
}

func (f *fakeSubscriber) drop(path string) {
	f.mx.Lock()
	defer f.mx.Unlock()

	close(f.streams[path])
}

// --- helpers ---

func chassisEvent(value any) entities.PropertiesChanged {
	return entities.PropertiesChanged{
		Path:      constants.ChassisPath,
		Interface: constants.ChassisIface,
		Changed:   map[string]any{constants.ChassisState: value},
	}
}

func hostEvent(value any) entities.PropertiesChanged {
	return entities.PropertiesChanged{
		Path:      constants.HostPath,
		Interface: constants.HostIface,
		Changed:   map[string]any{constants.HostState: value},
	}
}

func receive(t *testing.T, changes <-chan entities.StateChange) entities.StateChange {
	t.Helper()

	select {
	case change, ok := <-changes:
		require.True(t, ok, "stream closed")
		return change
	case <-time.After(time.Second):
		require.FailNow(t, "no state change received")
	}

	return entities.StateChange{}
}

// --- tests ---

func TestExtract(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		event          entities.PropertiesChanged
		expectedOK     bool
		expectedChange entities.StateChange
	}{
		{
			name:           "chassis power state",
			event:          chassisEvent(constants.ChassisStateOn),
			expectedOK:     true,
			expectedChange: entities.NewStateChange(entities.EntityChassis, constants.ChassisStateOn),
		},
		{
			name:           "host state",
			event:          hostEvent(constants.HostStateOff),
			expectedOK:     true,
			expectedChange: entities.NewStateChange(entities.EntityHost, constants.HostStateOff),
		},
		{
			name: "host state without path",
			event: entities.PropertiesChanged{
				Interface: constants.HostIface,
				Changed:   map[string]any{constants.HostState: constants.HostStateRunning},
			},
			expectedOK:     true,
			expectedChange: entities.NewStateChange(entities.EntityHost, constants.HostStateRunning),
		},
		{
			name: "other property of a tracked interface",
			event: entities.PropertiesChanged{
				Path:      constants.HostPath,
				Interface: constants.HostIface,
				Changed:   map[string]any{"RequestedHostTransition": constants.HostTransitionOn},
			},
		},
		{
			name: "unrelated interface",
			event: entities.PropertiesChanged{
				Path:      "/xyz/openbmc_project/state/bmc0",
				Interface: "xyz.openbmc_project.State.BMC",
				Changed:   map[string]any{"CurrentBMCState": "xyz.openbmc_project.State.BMC.BMCState.Ready"},
			},
		},
		{
			name: "other chassis instance",
			event: entities.PropertiesChanged{
				Path:      "/xyz/openbmc_project/state/chassis1",
				Interface: constants.ChassisIface,
				Changed:   map[string]any{constants.ChassisState: constants.ChassisStateOn},
			},
		},
		{
			name:  "non string value",
			event: chassisEvent(42),
		},
		{
			name: "invalidated only",
			event: entities.PropertiesChanged{
				Path:        constants.ChassisPath,
				Interface:   constants.ChassisIface,
				Invalidated: []string{constants.ChassisState},
			},
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			change, ok := notification.Extract(testCase.event)
			require.Equal(t, testCase.expectedOK, ok)
			if testCase.expectedOK {
				require.Equal(t, testCase.expectedChange, change)
			}
		})
	}
}

func TestService_Listen(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subscriber := newFakeSubscriber()
	service := notification.NewService(subscriber)

	changes, err := service.Listen(ctx, entities.Entities)
	require.NoError(t, err)

	subscriber.emit(constants.HostPath, entities.PropertiesChanged{
		Path:      constants.HostPath,
		Interface: constants.HostIface,
		Changed:   map[string]any{"BootProgress": "OSRunning"},
	})
	subscriber.emit(constants.ChassisPath, chassisEvent(constants.ChassisStateOn))
	assert.Equal(t, entities.NewStateChange(entities.EntityChassis, constants.ChassisStateOn), receive(t, changes))

	subscriber.emit(constants.HostPath, hostEvent(constants.HostStateRunning))
	assert.Equal(t, entities.NewStateChange(entities.EntityHost, constants.HostStateRunning), receive(t, changes))

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestService_ListenStreamLost(t *testing.T) {
	t.Parallel()

	subscriber := newFakeSubscriber()
	service := notification.NewService(subscriber)

	changes, err := service.Listen(context.Background(), entities.Entities)
	require.NoError(t, err)

	subscriber.emit(constants.HostPath, hostEvent(constants.HostStateOff))
	assert.Equal(t, entities.NewStateChange(entities.EntityHost, constants.HostStateOff), receive(t, changes))

	// losing one subscription ends the merged stream
	subscriber.drop(constants.ChassisPath)
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestService_ListenSubscribeFailed(t *testing.T) {
	t.Parallel()

	subscriber := newFakeSubscriber()
	subscriber.failOn = constants.HostPath
	service := notification.NewService(subscriber)

	_, err := service.Listen(context.Background(), entities.Entities)
	require.ErrorIs(t, err, errTestError)
}
