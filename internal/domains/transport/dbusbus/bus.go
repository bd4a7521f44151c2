// Package dbusbus talks to the local OpenBMC state services over D-Bus.
package dbusbus

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/transport"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type Bus struct {
	conn *dbus.Conn
}

// Open connects to the bus at address, or to the system bus when address
// is empty.
func Open(address string) (bus *Bus, err error) {
	var conn *dbus.Conn
	if lo.IsEmpty(address) {
		conn, err = dbus.ConnectSystemBus()
	} else {
		conn, err = dbus.Connect(address)
	}
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	return &Bus{
		conn: conn,
	}, nil
}

func (b *Bus) Close() (err error) {
	if err = b.conn.Close(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	return nil
}

// ResolveService asks the ObjectMapper which service owns path with iface.
func (b *Bus) ResolveService(ctx context.Context, path, iface string) (service string, err error) {
	var objects map[string][]string
	if err = b.conn.Object(constants.ObjectMapperService, dbus.ObjectPath(constants.ObjectMapperPath)).
		CallWithContext(ctx, constants.ObjectMapperIface+"."+constants.ObjectMapperGetObj, 0, path, []string{iface}).
		Store(&objects); err != nil {
		return service, fmt.Errorf("ResolveService: %w: %w", errs.ErrRemoteCall, err)
	}

	return transport.FirstService(objects), nil
}

func (b *Bus) GetProperty(ctx context.Context, service, path, iface, property string) (value string, err error) {
	var variant dbus.Variant
	if err = b.conn.Object(service, dbus.ObjectPath(path)).
		CallWithContext(ctx, constants.PropertiesGet, 0, iface, property).
		Store(&variant); err != nil {
		return value, fmt.Errorf("GetProperty: %w: %w", errs.ErrRemoteCall, err)
	}

	value, ok := variant.Value().(string)
	if !ok {
		return value, fmt.Errorf("GetProperty: %w: %s has signature %s", errs.ErrUnexpectedValue, property, variant.Signature())
	}

	return value, nil
}

func (b *Bus) SetProperty(ctx context.Context, service, path, iface, property, value string) (err error) {
	if err = b.conn.Object(service, dbus.ObjectPath(path)).
		CallWithContext(ctx, constants.PropertiesSet, 0, iface, property, dbus.MakeVariant(value)).
		Err; err != nil {
		return fmt.Errorf("SetProperty: %w: %w", errs.ErrRemoteCall, err)
	}

	return nil
}

// SubscribePropertiesChanged installs a match rule for PropertiesChanged of
// iface on path. The returned channel is closed when ctx is done or the
// connection is lost.
func (b *Bus) SubscribePropertiesChanged(ctx context.Context, path, iface string) (events <-chan entities.PropertiesChanged, err error) {
	options := []dbus.MatchOption{
		dbus.WithMatchObjectPath(dbus.ObjectPath(path)),
		dbus.WithMatchInterface(constants.PropertiesIface),
		dbus.WithMatchMember(constants.PropertiesChanged),
		dbus.WithMatchArg(0, iface),
	}
	if err = b.conn.AddMatchSignalContext(ctx, options...); err != nil {
		return nil, fmt.Errorf("SubscribePropertiesChanged: %w: %w", errs.ErrRemoteCall, err)
	}

	signals := make(chan *dbus.Signal, constants.DBusSignalQueueSize)
	b.conn.Signal(signals)

	out := make(chan entities.PropertiesChanged, constants.DBusSignalQueueSize)
	go func() {
		defer close(out)
		defer func() {
			b.conn.RemoveSignal(signals)
			if rErr := b.conn.RemoveMatchSignalContext(context.Background(), options...); rErr != nil {
				log.Debug().
					Err(rErr).
					Str("path", path).
					Msg("SubscribePropertiesChanged: remove match")
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case signal, ok := <-signals:
				if !ok {
					log.Warn().
						Str("path", path).
						Msg("SubscribePropertiesChanged: connection closed")

					return
				}

				event, ok := decodeSignal(signal, path, iface)
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
