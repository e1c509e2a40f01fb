package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
	"github.com/spf13/cobra"

	"github.com/agis/dshort/internal/contract"
	"github.com/agis/dshort/internal/history"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var noRecord bool
	cmd := &cobra.Command{
		Use:   "parse <shortcut>",
		Short: "Resolve a date shortcut against the reference instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, ro, err := buildContext(c, opts, "parse")
			if err != nil {
				return err
			}
			parser, locale, err := buildParser(ro)
			if err != nil {
				_ = p.Error(errorCodeFor(err), err.Error(), "Check --locale, --locale-file, --from and --default-time")
				return WrapPrinted(2, err)
			}
			resolved, err := parser.Parse(args[0])
			if err != nil {
				_ = p.Error(errorCodeFor(err), err.Error(), "Run `dshort locales "+locale+"` to list recognized keywords")
				return WrapPrinted(3, err)
			}
			res := contract.Resolution{
				Shortcut:  strings.TrimSpace(args[0]),
				Locale:    locale,
				Reference: parser.Reference(),
				Resolved:  resolved,
				Relative:  humanize.RelTime(resolved, parser.Reference(), "ago", "from now"),
			}
			if strings.TrimSpace(ro.Format) != "" {
				res.Formatted = strftime.Format(ro.Format, resolved)
			}
			var warnings []string
			if !noRecord {
				if err := recordResolution(c.Context(), res); err != nil {
					// History is best-effort; never fail the parse over it.
					warnings = append(warnings, "history: "+err.Error())
				}
			}
			return p.Success(res, map[string]any{"count": 1}, warnings)
		},
	}
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Skip recording the resolution to history")
	return cmd
}

func historyDBPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "history.db")
}

func recordResolution(ctx context.Context, res contract.Resolution) error {
	path := historyDBPath()
	if path == "" {
		return nil
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(ctx, history.Entry{
		Shortcut:  res.Shortcut,
		Locale:    res.Locale,
		Reference: res.Reference,
		Resolved:  res.Resolved,
	})
	return err
}
