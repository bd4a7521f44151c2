package notification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
)

const (
	changesQueueSize = 16
)

type (
	// ISubscriber is the publish/subscribe side of the state service
	// transport. The returned channel is closed when ctx is done or the
	// subscription is lost.
	ISubscriber interface {
		SubscribePropertiesChanged(ctx context.Context, path, iface string) (events <-chan entities.PropertiesChanged, err error)
	}
)

type Service struct {
	subscriber ISubscriber
}

func NewService(subscriber ISubscriber) *Service {
	return &Service{
		subscriber: subscriber,
	}
}

// Listen subscribes to every target entity and merges the tracked state
// changes into one stream. The stream is closed when ctx is done or any of
// the subscriptions is lost.
func (s *Service) Listen(ctx context.Context, targets []entities.Entity) (changes <-chan entities.StateChange, err error) {
	subCtx, cancel := context.WithCancel(ctx)

	streams := make([]<-chan entities.PropertiesChanged, 0, len(targets))
	for _, entity := range targets {
		iface, err := entity.Interface()
		if err != nil {
			cancel()
			return nil, fmt.Errorf("Listen: %w", err)
		}

		stream, err := s.subscriber.SubscribePropertiesChanged(subCtx, iface.Path, iface.Interface)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("Listen: subscribe %s: %w", entity, err)
		}

		log.Debug().
			Str("path", iface.Path).
			Str("interface", iface.Interface).
			Msg("Listen: subscribed")

		streams = append(streams, stream)
	}

	out := make(chan entities.StateChange, changesQueueSize)
	wg := conc.NewWaitGroup()
	for _, stream := range streams {
		wg.Go(func() {
			defer cancel()
			forward(subCtx, stream, out)
		})
	}

	go func() {
		defer close(out)

		wg.Wait()
	}()

	return out, nil
}

func forward(ctx context.Context, stream <-chan entities.PropertiesChanged, out chan<- entities.StateChange) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-stream:
			if !ok {
				return
			}

			change, ok := Extract(event)
			if !ok {
				log.Trace().
					Str("path", event.Path).
					Str("interface", event.Interface).
					Msg("forward: notification skipped")

				continue
			}

			select {
			case out <- change:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Extract returns the tracked state change carried by a notification:
// CurrentPowerState for the chassis, CurrentHostState for the host. Events
// for other interfaces, paths or properties and non string values yield
// false.
func Extract(event entities.PropertiesChanged) (change entities.StateChange, ok bool) {
	entity, ok := entities.EntityByInterface(event.Interface)
	if !ok {
		return change, false
	}

	iface, err := entity.Interface()
	if err != nil {
		return change, false
	}

	if event.Path != "" && event.Path != iface.Path {
		return change, false
	}

	raw, ok := event.Changed[iface.StateProperty]
	if !ok {
		return change, false
	}

	value, ok := raw.(string)
	if !ok {
		return change, false
	}

	return entities.NewStateChange(entity, entities.StateToken(value)), true
}
