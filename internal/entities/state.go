package entities

// StateToken is a namespaced state value, e.g.
// xyz.openbmc_project.State.Chassis.PowerState.On. Empty means unknown.
type StateToken string

func (t StateToken) String() string {
	return string(t)
}

func (t StateToken) IsUnknown() bool {
	return t == ""
}

// StatePair holds one token per entity. It is used both for observed
// snapshots and for convergence expectations.
type StatePair struct {
	Chassis StateToken
	Host    StateToken
}

func NewStatePair(chassis, host StateToken) StatePair {
	return StatePair{
		Chassis: chassis,
		Host:    host,
	}
}

func (p StatePair) Get(entity Entity) StateToken {
	switch entity {
	case EntityChassis:
		return p.Chassis
	case EntityHost:
		return p.Host
	}

	return ""
}

func (p *StatePair) Set(entity Entity, token StateToken) {
	switch entity {
	case EntityChassis:
		p.Chassis = token
	case EntityHost:
		p.Host = token
	}
}

// Defined reports whether both entities carry a token.
func (p StatePair) Defined() bool {
	return !p.Chassis.IsUnknown() && !p.Host.IsUnknown()
}

// Satisfies reports whether p converged to expected. An expectation that is
// not defined for both entities is never satisfied.
func (p StatePair) Satisfies(expected StatePair) bool {
	return expected.Defined() &&
		p.Chassis == expected.Chassis &&
		p.Host == expected.Host
}

// TransitionRequest is a single property write asking the state service to
// start a transition.
type TransitionRequest struct {
	Entity Entity
	Value  StateToken
}
