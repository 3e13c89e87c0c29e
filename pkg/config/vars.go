package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnbarcode"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnbarcode by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnbarcode by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// ScratchDir returns the default directory for staged output files.
// Returns ~/.cache/gnbarcode/scratch by default.
func ScratchDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "scratch")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnbarcode/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnbarcode/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// StagingDir returns the directory where staged files are created.
// Explicit Curate.ScratchDir wins over the default location.
func (c *Config) StagingDir() string {
	if c.Curate.ScratchDir != "" {
		return c.Curate.ScratchDir
	}
	return ScratchDir(c.HomeDir)
}
