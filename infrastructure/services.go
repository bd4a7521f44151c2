package infrastructure

import (
	"os"
	"sync"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/notification"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/orchestrator"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/printer"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/state"
)

var (
	stateService     *state.Service
	stateServiceOnce sync.Once
)

func (k *Kernel) InjectStateService() *state.Service {
	stateServiceOnce.Do(func() {
		stateService = state.NewService(
			k.Bus,
			k.env.CallTimeout,
		)
	})

	return stateService
}

var (
	notificationService     *notification.Service
	notificationServiceOnce sync.Once
)

func (k *Kernel) InjectNotificationService() *notification.Service {
	notificationServiceOnce.Do(func() {
		notificationService = notification.NewService(
			k.Bus,
		)
	})

	return notificationService
}

var (
	printerService     *printer.Service
	printerServiceOnce sync.Once
)

func (k *Kernel) InjectPrinterService() *printer.Service {
	printerServiceOnce.Do(func() {
		printerService = printer.NewService(
			os.Stdout,
			k.env.Output,
		)
	})

	return printerService
}

var (
	orchestratorService     *orchestrator.Service
	orchestratorServiceOnce sync.Once
)

func (k *Kernel) InjectOrchestratorService() *orchestrator.Service {
	orchestratorServiceOnce.Do(func() {
		orchestratorService = orchestrator.NewService(
			k.InjectStateService(),
			k.InjectNotificationService(),
			k.InjectPrinterService(),
			k.env.Timeout,
		)
	})

	return orchestratorService
}
