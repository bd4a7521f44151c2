package printer

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
)

var (
	statusHeader = table.Row{"ENTITY", "STATE", "VALUE"}
)

// TrimClassName removes the namespace from a property value:
// 'xyz.foo.bar.value' -> 'value'. It is used for display only.
func TrimClassName(value string) string {
	last := strings.LastIndex(value, ".")
	if last > 0 {
		return value[last+1:]
	}

	return value
}

// formatStatusTable renders a snapshot as a table.
func formatStatusTable(snapshot entities.StatePair) string {
	t := table.NewWriter()
	t.AppendHeader(statusHeader)

	for _, entity := range entities.Entities {
		iface, err := entity.Interface()
		if err != nil {
			continue
		}

		token := snapshot.Get(entity)
		t.AppendRow(table.Row{
			iface.Label,
			lo.Ternary(token.IsUnknown(), "Unknown", TrimClassName(token.String())),
			token.String(),
		})
	}

	return t.Render()
}
