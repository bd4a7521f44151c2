package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type (
	// IBus is the request/response side of the state service transport.
	IBus interface {
		ResolveService(ctx context.Context, path, iface string) (service string, err error)
		GetProperty(ctx context.Context, service, path, iface, property string) (value string, err error)
		SetProperty(ctx context.Context, service, path, iface, property, value string) (err error)
	}
)

// Service reads and writes entity state properties. Every call makes one
// resolve and one property call, without retries.
type Service struct {
	bus         IBus
	callTimeout time.Duration
}

func NewService(bus IBus, callTimeout time.Duration) *Service {
	return &Service{
		bus:         bus,
		callTimeout: callTimeout,
	}
}

// ReadState returns the current state token of the entity. On failure the
// token is empty and err carries errs.ErrServiceNotFound or errs.ErrRemoteCall.
func (s *Service) ReadState(ctx context.Context, entity entities.Entity) (token entities.StateToken, err error) {
	defer func() {
		if err != nil {
			log.Error().
				Err(err).
				Str("entity", entity.String()).
				Msg("ReadState")
		}
	}()

	iface, err := entity.Interface()
	if err != nil {
		return token, fmt.Errorf("ReadState: %w", err)
	}

	service, err := s.resolve(ctx, iface)
	if err != nil {
		return token, fmt.Errorf("ReadState: %w", err)
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	value, err := s.bus.GetProperty(callCtx, service, iface.Path, iface.Interface, iface.StateProperty)
	if err != nil {
		return token, fmt.Errorf("ReadState: get %s: %w", iface.StateProperty, asRemoteErr(err))
	}

	log.Debug().
		Str("entity", entity.String()).
		Str("state", value).
		Msg("ReadState: state read")

	return entities.StateToken(value), nil
}

// RequestTransition writes the entity transition property. The state change
// itself is confirmed only through notifications.
func (s *Service) RequestTransition(ctx context.Context, request entities.TransitionRequest) (err error) {
	defer func() {
		if err != nil {
			log.Error().
				Err(err).
				Str("entity", request.Entity.String()).
				Str("transition", request.Value.String()).
				Msg("RequestTransition")
		}
	}()

	iface, err := request.Entity.Interface()
	if err != nil {
		return fmt.Errorf("RequestTransition: %w", err)
	}

	service, err := s.resolve(ctx, iface)
	if err != nil {
		return fmt.Errorf("RequestTransition: %w", err)
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	if err = s.bus.SetProperty(callCtx, service, iface.Path, iface.Interface, iface.TransitionProperty, request.Value.String()); err != nil {
		return fmt.Errorf("RequestTransition: set %s: %w", iface.TransitionProperty, asRemoteErr(err))
	}

	log.Info().
		Str("entity", request.Entity.String()).
		Str("service", service).
		Str("transition", request.Value.String()).
		Msg("RequestTransition: transition requested")

	return nil
}

func (s *Service) resolve(ctx context.Context, iface entities.EntityInterface) (service string, err error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	service, err = s.bus.ResolveService(callCtx, iface.Path, iface.Interface)
	if err != nil {
		return service, fmt.Errorf("resolve %s: %w", iface.Interface, asRemoteErr(err))
	}

	if lo.IsEmpty(service) {
		return service, fmt.Errorf("resolve %s: %w", iface.Interface, errs.ErrServiceNotFound)
	}

	return service, nil
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.callTimeout)
}

// asRemoteErr tags transport errors so callers can tell them apart from
// resolution misses.
func asRemoteErr(err error) error {
	if errors.Is(err, errs.ErrServiceNotFound) || errors.Is(err, errs.ErrRemoteCall) {
		return err
	}

	return fmt.Errorf("%w: %w", errs.ErrRemoteCall, err)
}
