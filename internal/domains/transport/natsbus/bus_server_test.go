package natsbus_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/transport/natsbus"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

const (
	hostSignalSubject = "obmc.signal.xyz.openbmc_project.state.host0"
	hostService       = "xyz.openbmc_project.State.Host"
)

type propertyRequest struct {
	Service   string `json:"service"`
	Path      string `json:"path"`
	Interface string `json:"interface"`
	Property  string `json:"property"`
	Value     string `json:"value"`
}

// fakeBridge answers the bridge subjects the way the D-Bus side would.
type fakeBridge struct {
	conn   *nats.Conn
	writes chan propertyRequest
}

func runBridge(t *testing.T) (url string, bridge *fakeBridge) {
	t.Helper()

	opts := test.DefaultTestOptions
	opts.Port = -1
	server := test.RunServer(&opts)
	t.Cleanup(server.Shutdown)

	conn, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	bridge = &fakeBridge{
		conn:   conn,
		writes: make(chan propertyRequest, 1),
	}

	_, err = conn.Subscribe("obmc."+constants.MQMapperGetObject, func(msg *nats.Msg) {
		var request struct {
			Path       string   `json:"path"`
			Interfaces []string `json:"interfaces"`
		}
		if err := json.Unmarshal(msg.Data, &request); err != nil || request.Path != constants.HostPath {
			respond(msg, map[string]any{"error": "org.freedesktop.DBus.Error.FileNotFound"})
			return
		}

		respond(msg, map[string]any{"data": map[string][]string{
			hostService: request.Interfaces,
		}})
	})
	require.NoError(t, err)

	_, err = conn.Subscribe("obmc."+constants.MQPropertiesGet, func(msg *nats.Msg) {
		var request propertyRequest
		if err := json.Unmarshal(msg.Data, &request); err != nil || request.Service != hostService {
			respond(msg, map[string]any{"error": "org.freedesktop.DBus.Error.ServiceUnknown"})
			return
		}

		switch request.Property {
		case constants.HostState:
			respond(msg, map[string]any{"data": constants.HostStateOff})
		case "BootProgress":
			respond(msg, map[string]any{"data": 7})
		default:
			respond(msg, map[string]any{"error": "org.freedesktop.DBus.Error.UnknownProperty"})
		}
	})
	require.NoError(t, err)

	_, err = conn.Subscribe("obmc."+constants.MQPropertiesSet, func(msg *nats.Msg) {
		var request propertyRequest
		if err := json.Unmarshal(msg.Data, &request); err != nil {
			respond(msg, map[string]any{"error": err.Error()})
			return
		}

		bridge.writes <- request
		respond(msg, map[string]any{})
	})
	require.NoError(t, err)
	require.NoError(t, conn.Flush())

	return server.ClientURL(), bridge
}

func respond(msg *nats.Msg, body any) {
	data, _ := json.Marshal(body)
	_ = msg.Respond(data)
}

func (b *fakeBridge) publish(t *testing.T, event map[string]any) {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)
	require.NoError(t, b.conn.Publish(hostSignalSubject, data))
	require.NoError(t, b.conn.Flush())
}

func openBus(t *testing.T, url string) *natsbus.Bus {
	t.Helper()

	bus, err := natsbus.Open(url, "")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = bus.Close()
	})

	return bus
}

func TestBus_Calls(t *testing.T) {
	t.Parallel()

	url, bridge := runBridge(t)
	bus := openBus(t, url)
	ctx := context.Background()

	service, err := bus.ResolveService(ctx, constants.HostPath, constants.HostIface)
	require.NoError(t, err)
	require.Equal(t, hostService, service)

	_, err = bus.ResolveService(ctx, "/xyz/openbmc_project/state/host9", constants.HostIface)
	require.ErrorIs(t, err, errs.ErrAPIError)

	value, err := bus.GetProperty(ctx, service, constants.HostPath, constants.HostIface, constants.HostState)
	require.NoError(t, err)
	require.Equal(t, constants.HostStateOff, value)

	_, err = bus.GetProperty(ctx, service, constants.HostPath, constants.HostIface, "BootProgress")
	require.ErrorIs(t, err, errs.ErrUnexpectedValue)

	_, err = bus.GetProperty(ctx, service, constants.HostPath, constants.HostIface, constants.HostTransition)
	require.ErrorIs(t, err, errs.ErrAPIError)

	err = bus.SetProperty(ctx, service, constants.HostPath, constants.HostIface, constants.HostTransition, constants.HostTransitionOn)
	require.NoError(t, err)
	require.Equal(t, propertyRequest{
		Service:   hostService,
		Path:      constants.HostPath,
		Interface: constants.HostIface,
		Property:  constants.HostTransition,
		Value:     constants.HostTransitionOn,
	}, <-bridge.writes)
}

func TestBus_RequestWithoutResponder(t *testing.T) {
	t.Parallel()

	url, _ := runBridge(t)
	bus, err := natsbus.Open(url, "bmc1")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = bus.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = bus.ResolveService(ctx, constants.HostPath, constants.HostIface)
	require.ErrorIs(t, err, errs.ErrRemoteCall)
}

func TestBus_SubscribePropertiesChanged(t *testing.T) {
	t.Parallel()

	url, bridge := runBridge(t)
	bus := openBus(t, url)

	events, err := bus.SubscribePropertiesChanged(context.Background(), constants.HostPath, constants.HostIface)
	require.NoError(t, err)

	// a round trip on the same connection makes sure the subscription is live
	_, err = bus.ResolveService(context.Background(), constants.HostPath, constants.HostIface)
	require.NoError(t, err)

	bridge.publish(t, map[string]any{
		"path":      constants.HostPath,
		"interface": "xyz.openbmc_project.State.Boot.Progress",
		"changed":   map[string]any{"BootProgress": "OSRunning"},
	})
	bridge.publish(t, map[string]any{
		"path":        constants.HostPath,
		"interface":   constants.HostIface,
		"changed":     map[string]any{constants.HostState: constants.HostStateRunning},
		"invalidated": []string{},
	})

	select {
	case event := <-events:
		require.Equal(t, entities.PropertiesChanged{
			Path:        constants.HostPath,
			Interface:   constants.HostIface,
			Changed:     map[string]any{constants.HostState: constants.HostStateRunning},
			Invalidated: []string{},
		}, event)

	case <-time.After(2 * time.Second):
		require.FailNow(t, "no event received")
	}

	require.NoError(t, bus.Close())
	requireClosed(t, events)
}

func TestBus_SubscribeCanceled(t *testing.T) {
	t.Parallel()

	url, _ := runBridge(t)
	bus := openBus(t, url)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := bus.SubscribePropertiesChanged(ctx, constants.HostPath, constants.HostIface)
	require.NoError(t, err)

	cancel()
	requireClosed(t, events)
}

func requireClosed(t *testing.T, events <-chan entities.PropertiesChanged) {
	t.Helper()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
