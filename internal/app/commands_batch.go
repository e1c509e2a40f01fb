package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"
	"github.com/spf13/cobra"

	"github.com/agis/dshort/internal/contract"
	"github.com/agis/dshort/internal/shortcut"
)

// batchLine is one JSONL input row. Locale and default_time fall back to
// the resolved global options when omitted.
type batchLine struct {
	Shortcut    string `json:"shortcut"`
	Locale      string `json:"locale,omitempty"`
	DefaultTime string `json:"default_time,omitempty"`
}

func newBatchCmd(opts *globalOptions) *cobra.Command {
	var filePath string
	var strict bool
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Resolve shortcuts from a JSONL file or stdin",
		RunE: func(c *cobra.Command, _ []string) error {
			p, ro, err := buildContext(c, opts, "batch")
			if err != nil {
				return err
			}
			if strings.TrimSpace(filePath) == "" {
				err := fmt.Errorf("--file is required")
				_ = p.Error(contract.ErrInvalidUsage, err.Error(), "Pass --file <path> or --file -")
				return WrapPrinted(2, err)
			}
			raw, err := readTextInput(filePath)
			if err != nil {
				_ = p.Error(contract.ErrInvalidUsage, err.Error(), "Check file path or stdin")
				return WrapPrinted(2, err)
			}

			txID := uuid.NewString()
			parsers := map[string]*shortcut.Parser{}
			lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
			results := make([]map[string]any, 0)
			errorsCount := 0
			fail := func(line int, msg string) bool {
				errorsCount++
				results = append(results, map[string]any{
					"tx_id": txID, "op_id": uuid.NewString(), "line": line, "ok": false, "error": msg,
				})
				return !strict
			}
			for i, line := range lines {
				s := strings.TrimSpace(line)
				if s == "" {
					continue
				}
				var row batchLine
				if err := json.Unmarshal([]byte(s), &row); err != nil {
					if fail(i+1, "invalid json") {
						continue
					}
					break
				}
				parser, locale, err := batchParser(parsers, ro, row)
				if err != nil {
					if fail(i+1, err.Error()) {
						continue
					}
					break
				}
				resolved, err := parser.Parse(row.Shortcut)
				if err != nil {
					if fail(i+1, err.Error()) {
						continue
					}
					break
				}
				res := map[string]any{
					"tx_id":    txID,
					"op_id":    uuid.NewString(),
					"line":     i + 1,
					"ok":       true,
					"shortcut": strings.TrimSpace(row.Shortcut),
					"locale":   locale,
					"resolved": resolved,
				}
				if strings.TrimSpace(ro.Format) != "" {
					res["formatted"] = strftime.Format(ro.Format, resolved)
				}
				results = append(results, res)
			}
			meta := map[string]any{"count": len(results), "errors": errorsCount, "tx_id": txID}
			if errorsCount > 0 {
				_ = p.Success(results, meta, nil)
				return WrapPrinted(1, fmt.Errorf("batch completed with %d error(s)", errorsCount))
			}
			return p.Success(results, meta, nil)
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "JSONL file path or - for stdin")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail fast on first row error")
	return cmd
}

// batchParser returns a parser for the row, caching per locale/default-time
// combination since parser construction compiles regexps.
func batchParser(cache map[string]*shortcut.Parser, ro *globalOptions, row batchLine) (*shortcut.Parser, string, error) {
	rowOpts := *ro
	if strings.TrimSpace(row.Locale) != "" {
		rowOpts.Locale = row.Locale
		rowOpts.LocaleFile = ""
	}
	if strings.TrimSpace(row.DefaultTime) != "" {
		rowOpts.DefaultTime = row.DefaultTime
	}
	label := strings.ToLower(strings.TrimSpace(rowOpts.Locale))
	if strings.TrimSpace(rowOpts.LocaleFile) != "" {
		label = "custom"
	}
	key := label + "\x00" + rowOpts.LocaleFile + "\x00" + rowOpts.DefaultTime
	if p, ok := cache[key]; ok {
		return p, label, nil
	}
	p, _, err := buildParser(&rowOpts)
	if err != nil {
		return nil, "", err
	}
	cache[key] = p
	return p, label, nil
}

func readTextInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
