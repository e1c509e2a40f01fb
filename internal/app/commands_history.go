package app

import (
	"github.com/spf13/cobra"

	"github.com/agis/dshort/internal/contract"
	"github.com/agis/dshort/internal/history"
)

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently resolved shortcuts",
		RunE: func(c *cobra.Command, _ []string) error {
			p, _, err := buildContext(c, opts, "history")
			if err != nil {
				return err
			}
			path := historyDBPath()
			if path == "" {
				return p.Success([]history.Entry{}, map[string]any{"count": 0}, nil)
			}
			store, err := history.Open(path)
			if err != nil {
				_ = p.Error(contract.ErrStore, err.Error(), "Check history database permissions")
				return WrapPrinted(5, err)
			}
			defer store.Close()
			entries, err := store.Recent(c.Context(), limit)
			if err != nil {
				_ = p.Error(contract.ErrStore, err.Error(), "")
				return WrapPrinted(5, err)
			}
			if entries == nil {
				entries = []history.Entry{}
			}
			return p.Success(entries, map[string]any{"count": len(entries)}, nil)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to list")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded resolutions",
		RunE: func(c *cobra.Command, _ []string) error {
			p, _, err := buildContext(c, opts, "history.clear")
			if err != nil {
				return err
			}
			path := historyDBPath()
			if path == "" {
				return p.Success(map[string]any{"removed": 0}, nil, nil)
			}
			store, err := history.Open(path)
			if err != nil {
				_ = p.Error(contract.ErrStore, err.Error(), "Check history database permissions")
				return WrapPrinted(5, err)
			}
			defer store.Close()
			n, err := store.Clear(c.Context())
			if err != nil {
				_ = p.Error(contract.ErrStore, err.Error(), "")
				return WrapPrinted(5, err)
			}
			return p.Success(map[string]any{"removed": n}, nil, nil)
		},
	}
	cmd.AddCommand(clear)
	return cmd
}
