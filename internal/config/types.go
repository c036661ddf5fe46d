package config

// Config represents the autobackup YAML configuration file.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error. Empty means info.
	LogLevel string `yaml:"loglevel,omitempty"`

	// FilesToIgnore lists exact relative paths whose source files are
	// deleted instead of moved. Entries are case-sensitive, no globbing.
	FilesToIgnore []string `yaml:"filesToIgnore,omitempty"`

	// Backup optionally restricts processing to subfolder pairs. When
	// empty the whole source root maps onto the whole destination root.
	Backup []BackupFolder `yaml:"backup,omitempty"`
}

// BackupFolder maps a subfolder of the source root onto a subfolder of the
// destination root. Both sides are root-relative and must stay inside their
// root.
type BackupFolder struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// Folders returns the folder pairs to process. An empty backup list means
// one implicit pair covering both roots entirely.
func (c Config) Folders() []BackupFolder {
	if len(c.Backup) == 0 {
		return []BackupFolder{{Source: ".", Destination: "."}}
	}
	return c.Backup
}
