package environment_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/environment"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hostpwrctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), constants.LogFilePerm))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	flags.String("transport", constants.TransportDBus, "")
	flags.Duration("timeout", constants.ConfirmationTimeout, "")
	flags.String("output", constants.OutputText, "")
	flags.String("log-level", "warn", "")
	flags.String("endpoint", "", "")
	require.NoError(t, flags.Parse(args))

	return flags
}

func TestNew_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	env, err := environment.New(environment.Options{ConfigPath: path})
	require.NoError(t, err)
	require.Equal(t, environment.Environment{
		Transport:   constants.TransportDBus,
		Timeout:     30 * time.Second,
		CallTimeout: 5 * time.Second,
		Output:      constants.OutputText,
		LogLevel:    "warn",
		NATS: environment.NATS{
			URL:           "nats://127.0.0.1:4222",
			SubjectPrefix: "obmc",
		},
	}, env)
}

func TestNew_Layers(t *testing.T) {
	path := writeConfig(t, `
transport = "rest"
timeout = "10s"
output = "table"

[rest]
endpoint = "https://bmc.local/"
username = "root"
insecure = true

[nats]
subject_prefix = "bmc1"
`)

	t.Setenv("HOSTPWRCTL_REST_PASSWORD", "0penBmc")
	t.Setenv("HOSTPWRCTL_TIMEOUT", "20s")
	t.Setenv("HOSTPWRCTL_CALL_TIMEOUT", "2s")

	env, err := environment.New(environment.Options{
		ConfigPath: path,
		Flags:      newFlags(t, "--timeout", "45s", "--log-level", "DEBUG"),
	})
	require.NoError(t, err)

	require.Equal(t, constants.TransportREST, env.Transport)
	require.Equal(t, 45*time.Second, env.Timeout)
	require.Equal(t, 2*time.Second, env.CallTimeout)
	require.Equal(t, constants.OutputTable, env.Output)
	require.Equal(t, "debug", env.LogLevel)
	require.True(t, env.IsDebug())
	require.Equal(t, environment.REST{
		Endpoint: "https://bmc.local",
		Username: "root",
		Password: "0penBmc",
		Insecure: true,
	}, env.REST)
	require.Equal(t, "bmc1", env.NATS.SubjectPrefix)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `timeout = "10s"`)
	t.Setenv("HOSTPWRCTL_TIMEOUT", "20s")

	env, err := environment.New(environment.Options{
		ConfigPath: path,
		Flags:      newFlags(t),
	})
	require.NoError(t, err)
	require.Equal(t, 20*time.Second, env.Timeout)
}

func TestNew_Errors(t *testing.T) {
	testTable := []struct {
		name    string
		content string
		args    []string
		env     map[string]string
	}{
		{
			name:    "unknown transport",
			content: `transport = "ipmi"`,
		},
		{
			name:    "rest without endpoint",
			content: `transport = "rest"`,
		},
		{
			name:    "bad output flag",
			content: "",
			args:    []string{"--output", "json"},
		},
		{
			name:    "zero timeout",
			content: "",
			args:    []string{"--timeout", "0s"},
		},
		{
			name:    "sub-second timeout flag",
			content: "",
			args:    []string{"--timeout", "500ms"},
		},
		{
			name:    "bare timeout variable",
			content: "",
			env:     map[string]string{"HOSTPWRCTL_TIMEOUT": "45"},
		},
		{
			name:    "bare call timeout variable",
			content: "",
			env:     map[string]string{"HOSTPWRCTL_CALL_TIMEOUT": "5"},
		},
		{
			name:    "bare call timeout in file",
			content: `call_timeout = 2`,
		},
		{
			name:    "bad log level",
			content: `log_level = "verbose"`,
		},
		{
			name:    "unknown key",
			content: `retries = 3`,
		},
		{
			name:    "malformed file",
			content: `transport = `,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			for key, value := range testCase.env {
				t.Setenv(key, value)
			}

			path := writeConfig(t, testCase.content)

			_, err := environment.New(environment.Options{
				ConfigPath: path,
				Flags:      newFlags(t, testCase.args...),
			})
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}
}

func TestNew_MissingExplicitFile(t *testing.T) {
	_, err := environment.New(environment.Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
	})
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}
