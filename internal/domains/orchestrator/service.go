package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/action"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/convergence"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type (
	IStateClient interface {
		ReadState(ctx context.Context, entity entities.Entity) (token entities.StateToken, err error)
		RequestTransition(ctx context.Context, request entities.TransitionRequest) (err error)
	}

	INotificationSource interface {
		Listen(ctx context.Context, targets []entities.Entity) (changes <-chan entities.StateChange, err error)
	}

	IPrinter interface {
		Message(msg string)
		StateChanged(change entities.StateChange)
		Status(snapshot entities.StatePair)
		Timeout(timeout time.Duration)
	}
)

// Service runs the transition protocol: snapshot, no-op check, transition
// request and the wait for both entities to report the expected state.
type Service struct {
	stateClient   IStateClient
	notifications INotificationSource
	printer       IPrinter
	timeout       time.Duration
}

func NewService(stateClient IStateClient, notifications INotificationSource, printer IPrinter, timeout time.Duration) *Service {
	return &Service{
		stateClient:   stateClient,
		notifications: notifications,
		printer:       printer,
		timeout:       timeout,
	}
}

// Run executes the action once. Timeout is reported as entities.OutcomeTimeout
// with errs.ErrTimeout; transport and cancellation failures as
// entities.OutcomeServiceError.
func (s *Service) Run(ctx context.Context, a action.Action) (outcome entities.Outcome, err error) {
	snapshot := s.readSnapshot(ctx)

	if a.IsStatus() {
		s.printer.Status(snapshot)
		return entities.OutcomeSuccess, nil
	}

	plan := a.Plan(snapshot)
	if plan.NoOp {
		log.Info().
			Str("command", a.Command().String()).
			Msg("Run: nothing to do")

		s.printer.Message(plan.Message)
		return entities.OutcomeAlreadySatisfied, nil
	}

	inv := newInvocation(plan, snapshot)

	listenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// subscriptions must exist before the request is sent
	changes, err := s.notifications.Listen(listenCtx, entities.Entities)
	if err != nil {
		return entities.OutcomeServiceError, fmt.Errorf("Run: %w", err)
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	s.step(ctx, inv, entities.NewActionReadyEvent())
	for !inv.tracker.Done() {
		select {
		case change, ok := <-changes:
			if !ok {
				inv.tracker.Fail(errs.ErrStreamClosed)
				break
			}
			s.step(ctx, inv, entities.NewStateChangedEvent(change))

		case <-timer.C:
			s.step(ctx, inv, entities.NewTimedOutEvent())

		case <-ctx.Done():
			inv.tracker.Fail(ctx.Err())
		}
	}

	return s.outcome(inv)
}

// step applies one event to the invocation.
func (s *Service) step(ctx context.Context, inv *invocation, event entities.Event) {
	log.Trace().
		Str("event", event.Kind.String()).
		Str("entity", event.Change.Entity.String()).
		Str("token", event.Change.Token.String()).
		Msg("step")

	switch event.Kind {
	case entities.EventActionReady:
		if err := inv.tracker.Expect(inv.plan.Expected, inv.plan.Cycle); err != nil {
			inv.tracker.Fail(err)
			return
		}

		// a failed write is not fatal, the wait ends with a timeout
		if err := s.stateClient.RequestTransition(ctx, inv.plan.Request); err != nil {
			log.Warn().
				Err(err).
				Msg("step: transition request not confirmed")
		}
		s.printer.Message(inv.plan.Message)

		s.recheck(ctx, inv)

	case entities.EventStateChanged:
		if inv.tracker.Observe(event.Change) {
			s.printer.StateChanged(event.Change)
		}

	case entities.EventTimedOut:
		if inv.tracker.Expire() {
			s.printer.Timeout(s.timeout)
		}
	}
}

// recheck reads both entities right after the request, the state service
// may have applied it before any notification is delivered.
func (s *Service) recheck(ctx context.Context, inv *invocation) {
	snapshot := s.readSnapshot(ctx)
	for _, entity := range entities.Entities {
		token := snapshot.Get(entity)
		if token.IsUnknown() {
			continue
		}

		inv.tracker.Observe(entities.NewStateChange(entity, token))
	}

	if inv.tracker.Converged() {
		log.Info().Msg("recheck: converged right after the request")
	}
}

// readSnapshot reads both entities. Failed reads leave the token unknown.
func (s *Service) readSnapshot(ctx context.Context) (snapshot entities.StatePair) {
	for _, entity := range entities.Entities {
		token, err := s.stateClient.ReadState(ctx, entity)
		if err != nil {
			log.Warn().
				Err(err).
				Str("entity", entity.String()).
				Msg("readSnapshot: state is unknown")

			continue
		}

		snapshot.Set(entity, token)
	}

	return snapshot
}

func (s *Service) outcome(inv *invocation) (outcome entities.Outcome, err error) {
	switch inv.tracker.State() {
	case convergence.StateConverged:
		return entities.OutcomeSuccess, nil

	case convergence.StateTimedOut:
		log.Warn().
			Any("current", inv.tracker.Current()).
			Any("expected", inv.tracker.Expected()).
			Msg("Run: state not confirmed")

		return entities.OutcomeTimeout, fmt.Errorf("Run: %w", errs.ErrTimeout)
	}

	return entities.OutcomeServiceError, fmt.Errorf("Run: %w", inv.tracker.Err())
}
