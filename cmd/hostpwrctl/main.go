package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/infrastructure"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/action"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/environment"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

var serviceVersion = "0.0.1"

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type rootFlags struct {
	configPath string
	transport  string
	timeout    time.Duration
	output     string
	logLevel   string
	endpoint   string
}

type application struct {
	flags    rootFlags
	exitCode int
}

// execute runs the command line and returns the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) (exitCode int) {
	app := &application{}

	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errs.ErrUsage) || errors.Is(err, errs.ErrUnknownCommand) {
			log.Debug().Err(err).Msg("execute")
			printUsage(cmd)
			return entities.ExitFailure
		}

		log.Error().Err(err).Msg("execute")
		return entities.ExitServiceError
	}

	return app.exitCode
}

func newRootCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:           constants.AppName + " <command>",
		Short:         "Control the host power state",
		Version:       serviceVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          validateArgs,
		RunE:          app.run,
	}

	flags := cmd.Flags()
	flags.StringVarP(&app.flags.configPath, "config", "c", "", "configuration file (default "+constants.DefaultConfigPath+")")
	flags.StringVar(&app.flags.transport, "transport", constants.TransportDBus, "transport to the state services: dbus, rest or nats")
	flags.DurationVar(&app.flags.timeout, "timeout", constants.ConfirmationTimeout, "time to wait for the requested state")
	flags.StringVar(&app.flags.output, "output", constants.OutputText, "status output format: text or table")
	flags.StringVar(&app.flags.logLevel, "log-level", "warn", "log level")
	flags.StringVar(&app.flags.endpoint, "endpoint", "", "BMC URL for the rest transport")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errs.ErrUsage, err)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		printUsage(c)
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printUsage(c)
	})

	return cmd
}

func validateArgs(_ *cobra.Command, args []string) (err error) {
	if len(args) != 1 {
		return fmt.Errorf("validateArgs: %w: expected one command, got %d", errs.ErrUsage, len(args))
	}

	if _, err = action.Parse(args[0]); err != nil {
		return fmt.Errorf("validateArgs: %w", err)
	}

	return nil
}

func (a *application) run(cmd *cobra.Command, args []string) (err error) {
	act, err := action.Parse(args[0])
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	env, err := environment.New(environment.Options{
		ConfigPath: a.flags.configPath,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	logCloser, err := setupLogger(env, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer logCloser()

	log.Info().
		Str("version", serviceVersion).
		Str("command", act.Command().String()).
		Str("transport", env.Transport).
		Dur("timeout", env.Timeout).
		Msg("run: started")

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer func() {
		if cErr := kernel.Close(); cErr != nil {
			log.Error().Err(cErr).Msg("run: close transport")
		}
	}()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	outcome, err := kernel.InjectOrchestratorService().Run(ctx, act)
	a.exitCode = outcome.ExitCode()

	event := log.Info()
	if outcome == entities.OutcomeServiceError {
		event = log.Error()
	}
	event.Err(err).
		Str("outcome", outcome.String()).
		Msg("run: finished")

	return nil
}

func printUsage(cmd *cobra.Command) {
	var usage strings.Builder

	fmt.Fprintf(&usage, "Usage: %s [flags] <command>\n", constants.AppName)
	usage.WriteString("The commands:\n")
	for _, command := range action.Commands() {
		fmt.Fprintf(&usage, "  %-6s - %s\n", command, action.Describe(command))
	}
	usage.WriteString("Flags:\n")
	usage.WriteString(cmd.Flags().FlagUsages())

	fmt.Fprint(cmd.OutOrStdout(), usage.String())
}
