// Package natsbus reaches the OpenBMC state services through a NATS bridge
// that republishes D-Bus calls and signals as subjects.
package natsbus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/transport"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type Bus struct {
	conn   *nats.Conn
	prefix string
	closed chan struct{}
}

type (
	getObjectRequest struct {
		Path       string   `json:"path"`
		Interfaces []string `json:"interfaces"`
	}

	propertyRequest struct {
		Service   string `json:"service"`
		Path      string `json:"path"`
		Interface string `json:"interface"`
		Property  string `json:"property"`
		Value     string `json:"value,omitempty"`
	}

	// reply is the bridge envelope, Error is set instead of Data on failure.
	reply struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	signalMessage struct {
		Path        string         `json:"path"`
		Interface   string         `json:"interface"`
		Changed     map[string]any `json:"changed"`
		Invalidated []string       `json:"invalidated"`
	}
)

func Open(url, prefix string) (bus *Bus, err error) {
	closed := make(chan struct{})
	conn, err := nats.Connect(url,
		nats.Name(constants.AppName),
		nats.ClosedHandler(func(_ *nats.Conn) {
			close(closed)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	return &Bus{
		conn:   conn,
		prefix: lo.Ternary(lo.IsEmpty(prefix), constants.MQDefaultSubjectPrefix, prefix),
		closed: closed,
	}, nil
}

func (b *Bus) Close() (err error) {
	b.conn.Close()
	return nil
}

func (b *Bus) ResolveService(ctx context.Context, path, iface string) (service string, err error) {
	var objects map[string][]string
	if err = b.request(ctx, constants.MQMapperGetObject, getObjectRequest{
		Path:       path,
		Interfaces: []string{iface},
	}, &objects); err != nil {
		return service, fmt.Errorf("ResolveService: %w", err)
	}

	return transport.FirstService(objects), nil
}

func (b *Bus) GetProperty(ctx context.Context, service, path, iface, property string) (value string, err error) {
	var data any
	if err = b.request(ctx, constants.MQPropertiesGet, propertyRequest{
		Service:   service,
		Path:      path,
		Interface: iface,
		Property:  property,
	}, &data); err != nil {
		return value, fmt.Errorf("GetProperty: %w", err)
	}

	value, ok := data.(string)
	if !ok {
		return value, fmt.Errorf("GetProperty: %w: %s is %T", errs.ErrUnexpectedValue, property, data)
	}

	return value, nil
}

func (b *Bus) SetProperty(ctx context.Context, service, path, iface, property, value string) (err error) {
	if err = b.request(ctx, constants.MQPropertiesSet, propertyRequest{
		Service:   service,
		Path:      path,
		Interface: iface,
		Property:  property,
		Value:     value,
	}, nil); err != nil {
		return fmt.Errorf("SetProperty: %w", err)
	}

	return nil
}

// SubscribePropertiesChanged listens to the signal subject of path. The
// channel is closed when ctx is done or the connection is closed.
func (b *Bus) SubscribePropertiesChanged(ctx context.Context, path, iface string) (events <-chan entities.PropertiesChanged, err error) {
	messages := make(chan *nats.Msg, constants.MQSignalQueueSize)
	sub, err := b.conn.ChanSubscribe(signalSubject(b.prefix, path), messages)
	if err != nil {
		return nil, fmt.Errorf("SubscribePropertiesChanged: %w: %w", errs.ErrRemoteCall, err)
	}

	out := make(chan entities.PropertiesChanged, constants.MQSignalQueueSize)
	go func() {
		defer close(out)
		defer func() {
			if uErr := sub.Unsubscribe(); uErr != nil {
				log.Debug().
					Err(uErr).
					Msg("SubscribePropertiesChanged")
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case <-b.closed:
				log.Warn().
					Str("path", path).
					Msg("SubscribePropertiesChanged: connection closed")

				return

			case message := <-messages:
				event, ok := decodeSignal(message.Data, path, iface)
				if !ok {
					continue
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

func (b *Bus) request(ctx context.Context, subject string, payload, result any) (err error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}

	message, err := b.conn.RequestWithContext(ctx, b.prefix+"."+subject, data)
	if err != nil {
		return fmt.Errorf("request: %w: %w", errs.ErrRemoteCall, err)
	}

	if err = decodeReply(message.Data, result); err != nil {
		return fmt.Errorf("request: %s: %w", subject, err)
	}

	return nil
}

func decodeReply(data []byte, result any) (err error) {
	var envelope reply
	if err = json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrUnexpectedValue, err)
	}

	if !lo.IsEmpty(envelope.Error) {
		return fmt.Errorf("%w: %s", errs.ErrAPIError, envelope.Error)
	}

	if result == nil || len(envelope.Data) == 0 {
		return nil
	}

	if err = json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrUnexpectedValue, err)
	}

	return nil
}

func decodeSignal(data []byte, path, iface string) (event entities.PropertiesChanged, ok bool) {
	var message signalMessage
	if err := json.Unmarshal(data, &message); err != nil {
		log.Trace().
			Err(err).
			Msg("decodeSignal: skip malformed signal")

		return event, false
	}

	if message.Path != path || message.Interface != iface {
		return event, false
	}

	return entities.PropertiesChanged(message), true
}

// signalSubject maps an object path to its signal subject:
// /xyz/openbmc_project/state/host0 -> <prefix>.signal.xyz.openbmc_project.state.host0.
func signalSubject(prefix, path string) string {
	tokens := strings.Split(strings.Trim(path, "/"), "/")
	return strings.Join(append([]string{prefix, constants.MQSignalNamespace}, tokens...), ".")
}
