package app

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

type fileConfig struct {
	Locale      string                `toml:"locale"`
	DefaultTime string                `toml:"default_time"`
	Output      string                `toml:"output"`
	Fields      string                `toml:"fields"`
	Format      string                `toml:"format"`
	Profile     string                `toml:"profile"`
	Profiles    map[string]fileConfig `toml:"profiles"`
}

// resolveGlobalOptions layers defaults, the user and project config files,
// environment variables, and explicitly-set flags, in that order.
func resolveGlobalOptions(cmd *cobra.Command, defaults *globalOptions) (*globalOptions, error) {
	resolved := *defaults

	profile := firstNonEmpty(env("DSHORT_PROFILE"), defaults.Profile)
	if flagValueChanged(cmd, "profile") {
		profile = defaults.Profile
	}
	if profile == "" {
		profile = "default"
	}
	resolved.Profile = profile

	userPath := defaultUserConfigPath()
	projectPath := ".dshort.toml"
	configPath := firstNonEmpty(env("DSHORT_CONFIG"), userPath)
	if flagValueChanged(cmd, "config") {
		configPath = defaults.Config
	}

	if cfg, ok := readConfigFile(userPath); ok {
		applyFileConfig(&resolved, cfg, profile)
	}
	if cfg, ok := readConfigFile(projectPath); ok {
		applyFileConfig(&resolved, cfg, profile)
	}
	if configPath != "" && configPath != userPath && configPath != projectPath {
		if cfg, ok := readConfigFile(configPath); ok {
			applyFileConfig(&resolved, cfg, profile)
		}
	}

	applyEnv(&resolved)
	applyFlags(cmd, &resolved, defaults)

	if resolved.Config == "" {
		resolved.Config = configPath
	}
	return &resolved, nil
}

func applyFileConfig(dst *globalOptions, cfg fileConfig, profile string) {
	if p, ok := cfg.Profiles[profile]; ok {
		cfg = mergeFileConfig(cfg, p)
	}
	if cfg.Locale != "" {
		dst.Locale = cfg.Locale
	}
	if cfg.DefaultTime != "" {
		dst.DefaultTime = cfg.DefaultTime
	}
	if cfg.Fields != "" {
		dst.Fields = cfg.Fields
	}
	if cfg.Format != "" {
		dst.Format = cfg.Format
	}
	if cfg.Output != "" {
		applyOutputMode(dst, cfg.Output)
	}
}

func mergeFileConfig(base, overlay fileConfig) fileConfig {
	if overlay.Locale != "" {
		base.Locale = overlay.Locale
	}
	if overlay.DefaultTime != "" {
		base.DefaultTime = overlay.DefaultTime
	}
	if overlay.Output != "" {
		base.Output = overlay.Output
	}
	if overlay.Fields != "" {
		base.Fields = overlay.Fields
	}
	if overlay.Format != "" {
		base.Format = overlay.Format
	}
	if overlay.Profile != "" {
		base.Profile = overlay.Profile
	}
	return base
}

func applyOutputMode(dst *globalOptions, v string) {
	switch strings.ToLower(v) {
	case "json":
		dst.JSON, dst.JSONL, dst.Plain = true, false, false
	case "jsonl":
		dst.JSON, dst.JSONL, dst.Plain = false, true, false
	case "plain":
		dst.JSON, dst.JSONL, dst.Plain = false, false, true
	}
}

func applyEnv(dst *globalOptions) {
	if v := env("DSHORT_LOCALE"); v != "" {
		dst.Locale = v
	}
	if v := env("DSHORT_DEFAULT_TIME"); v != "" {
		dst.DefaultTime = v
	}
	if v := env("DSHORT_FIELDS"); v != "" {
		dst.Fields = v
	}
	if v := env("DSHORT_FORMAT"); v != "" {
		dst.Format = v
	}
	if v := env("DSHORT_OUTPUT"); v != "" {
		applyOutputMode(dst, v)
	}
}

func applyFlags(cmd *cobra.Command, dst, fromFlags *globalOptions) {
	copyIfChanged(cmd, "json", func() { dst.JSON = fromFlags.JSON })
	copyIfChanged(cmd, "jsonl", func() { dst.JSONL = fromFlags.JSONL })
	copyIfChanged(cmd, "plain", func() { dst.Plain = fromFlags.Plain })
	copyIfChanged(cmd, "fields", func() { dst.Fields = fromFlags.Fields })
	copyIfChanged(cmd, "quiet", func() { dst.Quiet = fromFlags.Quiet })
	copyIfChanged(cmd, "verbose", func() { dst.Verbose = fromFlags.Verbose })
	copyIfChanged(cmd, "no-color", func() { dst.NoColor = fromFlags.NoColor })
	copyIfChanged(cmd, "profile", func() { dst.Profile = fromFlags.Profile })
	copyIfChanged(cmd, "config", func() { dst.Config = fromFlags.Config })
	copyIfChanged(cmd, "locale", func() { dst.Locale = fromFlags.Locale })
	copyIfChanged(cmd, "locale-file", func() { dst.LocaleFile = fromFlags.LocaleFile })
	copyIfChanged(cmd, "from", func() { dst.From = fromFlags.From })
	copyIfChanged(cmd, "default-time", func() { dst.DefaultTime = fromFlags.DefaultTime })
	copyIfChanged(cmd, "format", func() { dst.Format = fromFlags.Format })
	copyIfChanged(cmd, "schema-version", func() { dst.SchemaVersion = fromFlags.SchemaVersion })

	// If exactly one output mode flag is explicitly set, it overrides the
	// env/config output mode.
	modeSet := 0
	if flagValueChanged(cmd, "json") && fromFlags.JSON {
		modeSet++
	}
	if flagValueChanged(cmd, "jsonl") && fromFlags.JSONL {
		modeSet++
	}
	if flagValueChanged(cmd, "plain") && fromFlags.Plain {
		modeSet++
	}
	if modeSet == 1 {
		switch {
		case flagValueChanged(cmd, "json") && fromFlags.JSON:
			applyOutputMode(dst, "json")
		case flagValueChanged(cmd, "jsonl") && fromFlags.JSONL:
			applyOutputMode(dst, "jsonl")
		case flagValueChanged(cmd, "plain") && fromFlags.Plain:
			applyOutputMode(dst, "plain")
		}
	}
}

func copyIfChanged(cmd *cobra.Command, name string, fn func()) {
	if flagValueChanged(cmd, name) {
		fn()
	}
}

func flagValueChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

func readConfigFile(path string) (fileConfig, bool) {
	if strings.TrimSpace(path) == "" {
		return fileConfig{}, false
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, false
	}
	var cfg fileConfig
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, false
	}
	return cfg, true
}

func configDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "dshort")
	}
	home := strings.TrimSpace(os.Getenv("HOME"))
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "dshort")
}

func defaultUserConfigPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

func env(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
