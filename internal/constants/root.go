package constants

const (
	AppName = "edtfloc"
	Version = "v0.3.0"

	// DefaultConfigDir holds the config file and the logs directory.
	DefaultConfigDir  = "~/.config/edtfloc"
	DefaultConfigFile = "config.toml"
	LogDirName        = "logs"
	LogFileName       = "edtfloc.log"
)
