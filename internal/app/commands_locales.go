package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agis/dshort/internal/contract"
	"github.com/agis/dshort/internal/shortcut"
)

func newLocalesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locales [tag]",
		Short: "List built-in locales and their keyword tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, _, err := buildContext(c, opts, "locales")
			if err != nil {
				return err
			}
			if len(args) == 1 {
				loc, err := shortcut.ResolveLocale(args[0])
				if err != nil {
					_ = p.Error(contract.ErrInvalidUsage, err.Error(), "Run `dshort locales` to list available tags")
					return WrapPrinted(2, err)
				}
				return p.Success(localeInfo(args[0], loc), nil, nil)
			}
			tags := shortcut.LocaleTags()
			infos := make([]contract.LocaleInfo, 0, len(tags))
			for _, tag := range tags {
				loc, err := shortcut.ResolveLocale(tag)
				if err != nil {
					return Wrap(1, err)
				}
				infos = append(infos, localeInfo(tag, loc))
			}
			return p.Success(infos, map[string]any{"count": len(infos)}, nil)
		},
	}
}

func localeInfo(tag string, loc shortcut.Localization) contract.LocaleInfo {
	patterns := make([]string, 0, len(loc.DatePatterns))
	for _, dp := range loc.DatePatterns {
		patterns = append(patterns, fmt.Sprintf("%s %s", dp.Order, dp.Regexp))
	}
	return contract.LocaleInfo{
		Tag:      tag,
		Year:     loc.Year,
		Month:    loc.Month,
		Week:     loc.Week,
		Day:      loc.Day,
		Today:    loc.Today,
		Weekday:  loc.Weekday,
		AM:       loc.AMMarkers,
		PM:       loc.PMMarkers,
		Patterns: patterns,
	}
}
