package entities

// PropertiesChanged is a decoded org.freedesktop.DBus.Properties
// PropertiesChanged signal, whatever transport delivered it.
type PropertiesChanged struct {
	Path        string
	Interface   string
	Changed     map[string]any
	Invalidated []string
}

// StateChange is a tracked state update extracted from a notification.
type StateChange struct {
	Entity Entity
	Token  StateToken
}

func NewStateChange(entity Entity, token StateToken) StateChange {
	return StateChange{
		Entity: entity,
		Token:  token,
	}
}
