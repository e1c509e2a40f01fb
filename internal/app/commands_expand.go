package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teambition/rrule-go"

	"github.com/agis/dshort/internal/contract"
)

func newExpandCmd(opts *globalOptions) *cobra.Command {
	var rule string
	var count int
	cmd := &cobra.Command{
		Use:   "expand <shortcut>",
		Short: "Resolve a shortcut and expand a recurrence rule from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, ro, err := buildContext(c, opts, "expand")
			if err != nil {
				return err
			}
			if strings.TrimSpace(rule) == "" {
				err := fmt.Errorf("--rule is required")
				_ = p.Error(contract.ErrInvalidUsage, err.Error(), `Pass an RFC 5545 rule like --rule "FREQ=WEEKLY;BYDAY=MO"`)
				return WrapPrinted(2, err)
			}
			if count <= 0 || count > 1000 {
				err := fmt.Errorf("--count must be between 1 and 1000")
				_ = p.Error(contract.ErrInvalidUsage, err.Error(), "")
				return WrapPrinted(2, err)
			}
			parser, locale, err := buildParser(ro)
			if err != nil {
				_ = p.Error(errorCodeFor(err), err.Error(), "Check --locale, --locale-file, --from and --default-time")
				return WrapPrinted(2, err)
			}
			anchor, err := parser.Parse(args[0])
			if err != nil {
				_ = p.Error(errorCodeFor(err), err.Error(), "Run `dshort locales "+locale+"` to list recognized keywords")
				return WrapPrinted(3, err)
			}
			r, err := rrule.StrToRRule(rule)
			if err != nil {
				_ = p.Error(contract.ErrInvalidUsage, fmt.Sprintf("invalid --rule: %v", err), "")
				return WrapPrinted(2, err)
			}
			r.DTStart(anchor)

			occurrences := make([]contract.Occurrence, 0, count)
			next := r.Iterator()
			for i := 1; i <= count; i++ {
				at, ok := next()
				if !ok {
					break
				}
				occurrences = append(occurrences, contract.Occurrence{Index: i, At: at})
			}
			meta := map[string]any{"count": len(occurrences), "anchor": anchor, "rule": rule}
			return p.Success(occurrences, meta, nil)
		},
	}
	cmd.Flags().StringVar(&rule, "rule", "", "RFC 5545 recurrence rule (RRULE body)")
	cmd.Flags().IntVar(&count, "count", 5, "Number of occurrences to list")
	return cmd
}
