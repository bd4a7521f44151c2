package constants

const (
	DefaultConfigPath = "/etc/hostpwrctl.toml"
)
