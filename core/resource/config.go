package resource

// Config holds the file system locations used for reconciliation.
type Config struct {
	// ResDir is the Android res directory.
	ResDir string `mapstructure:"res_dir" default:"res"`
	// TranslationsDir holds one <name>.csv import file per locale.
	TranslationsDir string `mapstructure:"translations_dir" default:"translations"`
	// ValuesDir is the base name of the values directories.
	ValuesDir string `mapstructure:"values_dir" default:"values"`
	// StringsFile is the file name inside each values directory.
	StringsFile string `mapstructure:"strings_file" default:"strings.xml"`
}

// Layout returns the path layout described by the configuration.
func (c Config) Layout() Layout {
	l := NewLayout(c.ResDir)
	if c.ValuesDir != "" {
		l.ValuesDir = c.ValuesDir
	}
	if c.StringsFile != "" {
		l.StringsFile = c.StringsFile
	}
	return l
}
