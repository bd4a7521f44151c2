package orchestrator

import (
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/action"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/convergence"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
)

// invocation is the state owned by one Run call.
type invocation struct {
	plan    action.Plan
	tracker *convergence.Tracker
}

func newInvocation(plan action.Plan, snapshot entities.StatePair) *invocation {
	tracker := convergence.NewTracker()
	tracker.Seed(snapshot)

	return &invocation{
		plan:    plan,
		tracker: tracker,
	}
}
