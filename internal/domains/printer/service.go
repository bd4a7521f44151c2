package printer

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
)

// Service writes user facing messages. Diagnostics go to the logger.
type Service struct {
	out    io.Writer
	format string
}

func NewService(out io.Writer, format string) *Service {
	return &Service{
		out:    out,
		format: format,
	}
}

func (s *Service) Message(msg string) {
	s.printf("%s\n", msg)
}

// StateChanged prints a notified state with the namespace trimmed.
func (s *Service) StateChanged(change entities.StateChange) {
	iface, err := change.Entity.Interface()
	if err != nil {
		return
	}

	s.printf("Current %s State: %s\n", iface.Label, TrimClassName(change.Token.String()))
}

// Status prints both entity states.
func (s *Service) Status(snapshot entities.StatePair) {
	if s.format == constants.OutputTable {
		s.printf("%s\n", formatStatusTable(snapshot))
		return
	}

	s.printf("Current Chassis state: %s\n", TrimClassName(snapshot.Chassis.String()))
	s.printf("Current Host state: %s\n", TrimClassName(snapshot.Host.String()))
}

// Timeout keeps the "(N s)" form for whole seconds and falls back to the
// duration notation otherwise, so a fractional timeout is never truncated.
func (s *Service) Timeout(timeout time.Duration) {
	period := timeout.String()
	if timeout%time.Second == 0 {
		period = fmt.Sprintf("%d s", int64(timeout/time.Second))
	}

	s.printf("Unable to confirm operation success within timeout period (%s).\n", period)
}

func (s *Service) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		log.Error().Err(err).Msg("printf")
	}
}
