package infrastructure

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/notification"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/orchestrator"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/state"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/transport/dbusbus"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/transport/natsbus"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/transport/restbus"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/environment"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type IInjector interface {
	InjectOrchestratorService() *orchestrator.Service
}

var _ IInjector = (*Kernel)(nil)

// IBus is what every transport provides: remote calls and signals.
type IBus interface {
	state.IBus
	notification.ISubscriber
	io.Closer
}

type Kernel struct {
	env environment.Environment

	Bus IBus
}

// Inject opens the transport selected by env.Transport.
func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	if k.Bus, err = openBus(env); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	log.Debug().
		Str("transport", env.Transport).
		Msg("Inject: transport opened")

	return k, nil
}

func (k *Kernel) Close() (err error) {
	if k.Bus == nil {
		return nil
	}

	if err = k.Bus.Close(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	return nil
}

func openBus(env environment.Environment) (bus IBus, err error) { //nolint:ireturn // transport is chosen at runtime
	switch env.Transport {
	case constants.TransportDBus:
		dbusBus, err := dbusbus.Open(env.DBus.Address)
		if err != nil {
			return nil, fmt.Errorf("openBus: %w", err)
		}

		return dbusBus, nil

	case constants.TransportREST:
		return restbus.NewClient(restbus.Options{
			Endpoint: env.REST.Endpoint,
			Username: env.REST.Username,
			Password: env.REST.Password,
			Insecure: env.REST.Insecure,
			Timeout:  env.CallTimeout,
		}), nil

	case constants.TransportNATS:
		natsBus, err := natsbus.Open(env.NATS.URL, env.NATS.SubjectPrefix)
		if err != nil {
			return nil, fmt.Errorf("openBus: %w", err)
		}

		return natsBus, nil
	}

	return nil, fmt.Errorf("openBus: %w: %q", errs.ErrUnknownTransport, env.Transport)
}
