package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

// viper keys.
const (
	KeyTransport   = "transport"
	KeyTimeout     = "timeout"
	KeyCallTimeout = "call_timeout"
	KeyOutput      = "output"
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
	KeyDBusAddress = "dbus.address"
	KeyRESTURL     = "rest.endpoint"
	KeyRESTUser    = "rest.username"
	KeyRESTPass    = "rest.password"
	KeyRESTSkipTLS = "rest.insecure"
	KeyNATSURL     = "nats.url"
	KeyNATSPrefix  = "nats.subject_prefix"
)

// flagKeys binds command line flags to viper keys.
var flagKeys = map[string]string{
	"transport": KeyTransport,
	"timeout":   KeyTimeout,
	"output":    KeyOutput,
	"log-level": KeyLogLevel,
	"endpoint":  KeyRESTURL,
}

type Environment struct {
	Transport   string        `validate:"oneof=dbus rest nats"`
	Timeout     time.Duration `validate:"gte=1s"`
	CallTimeout time.Duration `validate:"gte=1s"`
	Output      string        `validate:"oneof=text table"`
	LogLevel    string        `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFile     string

	DBus DBus
	REST REST
	NATS NATS
}

type DBus struct {
	// Address of the bus, the system bus when empty.
	Address string
}

type REST struct {
	Endpoint string `validate:"omitempty,url"`
	Username string
	Password string
	Insecure bool
}

type NATS struct {
	URL           string `validate:"required,url"`
	SubjectPrefix string `validate:"required"`
}

type Options struct {
	// ConfigPath of the TOML file. A missing file is an error only when the
	// path was given explicitly.
	ConfigPath string
	Flags      *pflag.FlagSet
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	Transport   string        `toml:"transport"`
	Timeout     time.Duration `toml:"timeout"`
	CallTimeout time.Duration `toml:"call_timeout"`
	Output      string        `toml:"output"`
	LogLevel    string        `toml:"log_level"`
	LogFile     string        `toml:"log_file"`
	DBus        struct {
		Address string `toml:"address"`
	} `toml:"dbus"`
	REST struct {
		Endpoint string `toml:"endpoint"`
		Username string `toml:"username"`
		Password string `toml:"password"`
		Insecure bool   `toml:"insecure"`
	} `toml:"rest"`
	NATS struct {
		URL           string `toml:"url"`
		SubjectPrefix string `toml:"subject_prefix"`
	} `toml:"nats"`
}

// New builds the environment from defaults, the TOML file, HOSTPWRCTL_*
// variables and flags, each layer overriding the previous one.
func New(opts Options) (e Environment, err error) {
	v := viper.New()
	setDefaults(v)

	if err = loadFile(v, opts.ConfigPath); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}

			if err = v.BindPFlag(key, flag); err != nil {
				return e, fmt.Errorf("New: %w", err)
			}
		}
	}

	e = Environment{
		Transport:   strings.ToLower(v.GetString(KeyTransport)),
		Timeout:     v.GetDuration(KeyTimeout),
		CallTimeout: v.GetDuration(KeyCallTimeout),
		Output:      strings.ToLower(v.GetString(KeyOutput)),
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
		LogFile:     v.GetString(KeyLogFile),
		DBus: DBus{
			Address: v.GetString(KeyDBusAddress),
		},
		REST: REST{
			Endpoint: strings.TrimRight(v.GetString(KeyRESTURL), "/"),
			Username: v.GetString(KeyRESTUser),
			Password: v.GetString(KeyRESTPass),
			Insecure: v.GetBool(KeyRESTSkipTLS),
		},
		NATS: NATS{
			URL:           v.GetString(KeyNATSURL),
			SubjectPrefix: v.GetString(KeyNATSPrefix),
		},
	}

	if err = e.Validate(); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

func (e Environment) Validate() (err error) {
	if err = validator.New().Struct(e); err != nil {
		return fmt.Errorf("Validate: %w: %w", errs.ErrInvalidConfig, err)
	}

	if e.Transport == constants.TransportREST && lo.IsEmpty(e.REST.Endpoint) {
		return fmt.Errorf("Validate: %w: rest transport needs an endpoint", errs.ErrInvalidConfig)
	}

	return nil
}

func (e Environment) IsDebug() bool {
	return e.LogLevel == "debug" || e.LogLevel == "trace"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTransport, constants.TransportDBus)
	v.SetDefault(KeyTimeout, constants.ConfirmationTimeout)
	v.SetDefault(KeyCallTimeout, constants.CallTimeout)
	v.SetDefault(KeyOutput, constants.OutputText)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyDBusAddress, "")
	v.SetDefault(KeyRESTURL, "")
	v.SetDefault(KeyRESTUser, "")
	v.SetDefault(KeyRESTPass, "")
	v.SetDefault(KeyRESTSkipTLS, false)
	v.SetDefault(KeyNATSURL, nats.DefaultURL)
	v.SetDefault(KeyNATSPrefix, constants.MQDefaultSubjectPrefix)
}

// loadFile overlays the keys present in the TOML file on the defaults.
func loadFile(v *viper.Viper, path string) (err error) {
	explicit := !lo.IsEmpty(path)
	if !explicit {
		path = constants.DefaultConfigPath
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("loadFile: %w: %w", errs.ErrInvalidConfig, err)
	}

	overlay := []struct {
		key   []string
		name  string
		value any
	}{
		{[]string{"transport"}, KeyTransport, strings.TrimSpace(raw.Transport)},
		{[]string{"timeout"}, KeyTimeout, raw.Timeout},
		{[]string{"call_timeout"}, KeyCallTimeout, raw.CallTimeout},
		{[]string{"output"}, KeyOutput, strings.TrimSpace(raw.Output)},
		{[]string{"log_level"}, KeyLogLevel, strings.TrimSpace(raw.LogLevel)},
		{[]string{"log_file"}, KeyLogFile, strings.TrimSpace(raw.LogFile)},
		{[]string{"dbus", "address"}, KeyDBusAddress, strings.TrimSpace(raw.DBus.Address)},
		{[]string{"rest", "endpoint"}, KeyRESTURL, strings.TrimSpace(raw.REST.Endpoint)},
		{[]string{"rest", "username"}, KeyRESTUser, raw.REST.Username},
		{[]string{"rest", "password"}, KeyRESTPass, raw.REST.Password},
		{[]string{"rest", "insecure"}, KeyRESTSkipTLS, raw.REST.Insecure},
		{[]string{"nats", "url"}, KeyNATSURL, strings.TrimSpace(raw.NATS.URL)},
		{[]string{"nats", "subject_prefix"}, KeyNATSPrefix, strings.TrimSpace(raw.NATS.SubjectPrefix)},
	}
	for _, item := range overlay {
		if meta.IsDefined(item.key...) {
			v.SetDefault(item.name, item.value)
		}
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("loadFile: %w: unknown keys %v", errs.ErrInvalidConfig, undecoded)
	}

	return nil
}
