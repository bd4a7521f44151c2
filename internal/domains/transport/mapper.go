// Package transport holds helpers shared by the bus implementations.
package transport

import (
	"slices"

	"github.com/samber/lo"
)

// FirstService picks the owner of an object from an ObjectMapper GetObject
// reply. Several owners are possible, the lexicographically first one wins.
func FirstService(objects map[string][]string) (service string) {
	services := lo.Keys(objects)
	if len(services) == 0 {
		return ""
	}

	slices.Sort(services)
	return services[0]
}
