package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agis/dshort/internal/contract"
	"github.com/agis/dshort/internal/output"
	"github.com/agis/dshort/internal/shortcut"
)

type globalOptions struct {
	JSON          bool
	JSONL         bool
	Plain         bool
	Fields        string
	Quiet         bool
	Verbose       bool
	NoColor       bool
	Locale        string
	LocaleFile    string
	From          string
	DefaultTime   string
	Format        string
	Profile       string
	Config        string
	SchemaVersion string
}

func Execute() int {
	cmd := NewRootCommand()
	err := cmd.Execute()
	if err != nil {
		renderTopLevelError(cmd, err)
	}
	return ExitCode(err)
}

func NewRootCommand() *cobra.Command {
	opts := &globalOptions{
		Locale:        "en",
		Profile:       "default",
		SchemaVersion: contract.SchemaVersion,
	}

	root := &cobra.Command{
		Use:           "dshort",
		Short:         "Resolve date shortcuts like t+3d. or 23.03+2w into timestamps",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       BuildVersionString(),
	}
	root.SetVersionTemplate("dshort {{.Version}}\n")

	root.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Output structured JSON")
	root.PersistentFlags().BoolVar(&opts.JSONL, "jsonl", false, "Output newline-delimited JSON")
	root.PersistentFlags().BoolVar(&opts.Plain, "plain", false, "Output stable plain text")
	root.PersistentFlags().StringVar(&opts.Fields, "fields", "", "Projected fields, comma-separated")
	root.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Reduce success output")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose diagnostics")
	root.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable color output")
	root.PersistentFlags().StringVarP(&opts.Locale, "locale", "l", "en", "Locale tag: en|de|fr|tr")
	root.PersistentFlags().StringVar(&opts.LocaleFile, "locale-file", "", "YAML file with a custom locale table")
	root.PersistentFlags().StringVar(&opts.From, "from", "", "Reference instant (RFC3339 or YYYY-MM-DD, default now)")
	root.PersistentFlags().StringVar(&opts.DefaultTime, "default-time", "", "Fallback time of day, HH[:MM[:SS]]")
	root.PersistentFlags().StringVar(&opts.Format, "format", "", "strftime pattern for the formatted output field")
	root.PersistentFlags().StringVar(&opts.Profile, "profile", "default", "Config profile")
	root.PersistentFlags().StringVar(&opts.Config, "config", "", "Config file path")
	root.PersistentFlags().StringVar(&opts.SchemaVersion, "schema-version", contract.SchemaVersion, "Output schema version")

	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newBatchCmd(opts))
	root.AddCommand(newLocalesCmd(opts))
	root.AddCommand(newExpandCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newVersionCmd())
	root.AddCommand(newCompletionCmd(root))

	return root
}

// buildContext resolves global options and builds the printer for one
// command invocation.
func buildContext(cmd *cobra.Command, opts *globalOptions, command string) (output.Printer, *globalOptions, error) {
	resolved, err := resolveGlobalOptions(cmd, opts)
	if err != nil {
		return output.Printer{}, nil, Wrap(2, err)
	}
	if conflictCount(resolved.JSON, resolved.JSONL, resolved.Plain) > 1 {
		return output.Printer{}, nil, Wrap(2, errors.New("--json, --jsonl, and --plain are mutually exclusive"))
	}
	mode := output.ModeAuto
	switch {
	case resolved.JSON:
		mode = output.ModeJSON
	case resolved.JSONL:
		mode = output.ModeJSONL
	case resolved.Plain:
		mode = output.ModePlain
	default:
		// Humans at a terminal get plain text; pipes get JSONL.
		if output.IsTerminal(os.Stdout) {
			mode = output.ModePlain
		} else {
			mode = output.ModeJSONL
		}
	}

	printer := output.Printer{
		Mode:          mode,
		Command:       command,
		Fields:        splitCSV(resolved.Fields),
		Quiet:         resolved.Quiet,
		NoColor:       resolved.NoColor || !output.IsTerminal(os.Stdout),
		SchemaVersion: resolved.SchemaVersion,
		Out:           cmd.OutOrStdout(),
		Err:           cmd.ErrOrStderr(),
	}

	if resolved.Verbose {
		_, _ = fmt.Fprintf(printer.Err, "dshort: command=%s locale=%s mode=%s profile=%s\n", command, resolved.Locale, mode, resolved.Profile)
	}
	return printer, resolved, nil
}

// buildParser constructs the shortcut parser from resolved options and
// returns the locale label used in output.
func buildParser(ro *globalOptions) (*shortcut.Parser, string, error) {
	parserOpts := make([]shortcut.Option, 0, 3)
	label := strings.ToLower(strings.TrimSpace(ro.Locale))
	if strings.TrimSpace(ro.LocaleFile) != "" {
		loc, err := loadLocaleFile(ro.LocaleFile)
		if err != nil {
			return nil, "", err
		}
		parserOpts = append(parserOpts, shortcut.WithLocalization(loc))
		label = "custom"
	} else {
		parserOpts = append(parserOpts, shortcut.WithLocale(ro.Locale))
	}
	if strings.TrimSpace(ro.From) != "" {
		ref, err := parseReference(ro.From)
		if err != nil {
			return nil, "", err
		}
		parserOpts = append(parserOpts, shortcut.WithReference(ref))
	}
	if strings.TrimSpace(ro.DefaultTime) != "" {
		parserOpts = append(parserOpts, shortcut.WithDefaultTime(ro.DefaultTime))
	}
	p, err := shortcut.New(parserOpts...)
	if err != nil {
		return nil, "", err
	}
	return p, label, nil
}

func parseReference(v string) (time.Time, error) {
	s := strings.TrimSpace(v)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --from value: %q", v)
}

func renderTopLevelError(cmd *cobra.Command, err error) {
	var appErr AppError
	if errors.As(err, &appErr) && appErr.Printed {
		return
	}
	if wantsStructuredErrorOutput(os.Args[1:]) {
		printer := output.Printer{
			Mode:          output.ModeJSON,
			SchemaVersion: contract.SchemaVersion,
			Err:           cmd.ErrOrStderr(),
		}
		_ = printer.Error(errorCodeForExit(ExitCode(err)), err.Error(), "")
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err.Error())
}

func wantsStructuredErrorOutput(args []string) bool {
	for _, arg := range args {
		switch {
		case arg == "--":
			return false
		case arg == "--json", arg == "--jsonl":
			return true
		case strings.HasPrefix(arg, "--json="), strings.HasPrefix(arg, "--jsonl="):
			return true
		}
	}
	return false
}

func errorCodeForExit(code int) contract.ErrorCode {
	switch code {
	case 2:
		return contract.ErrInvalidUsage
	case 3:
		return contract.ErrParse
	case 5:
		return contract.ErrStore
	default:
		return contract.ErrGeneric
	}
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return root.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return root.GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func conflictCount(vals ...bool) int {
	total := 0
	for _, v := range vals {
		if v {
			total++
		}
	}
	return total
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
