package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/senat"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// envelope wraps every JSON result.
type envelope struct {
	RunID       string                  `json:"run_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	Data        any                     `json:"data"`
	Failures    []senat.Failure         `json:"failures"`
	Guesses     map[string]model.Gender `json:"guessed_genders,omitempty"`
}

// tabular is the --format table rendering of a result.
type tabular struct {
	header table.Row
	rows   []table.Row
}

// result is what a command produced. table is nil for results that have no
// tabular form.
type result struct {
	data     any
	failures []senat.Failure
	guesses  map[string]model.Gender
	table    func() tabular
}

func checkFormat(cmd *cobra.Command) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatJSON, formatTable:
		return nil
	default:
		return eris.Errorf("unknown --format %q (want json or table)", format)
	}
}

// emit writes res to --out (stdout by default) in the --format layout.
func emit(cmd *cobra.Command, runID string, res result) (err error) {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	if format == formatTable && res.table == nil {
		return eris.Errorf("--format table is not available for %q", cmd.CommandPath())
	}

	w := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return eris.Wrap(err, "create output file")
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = eris.Wrap(cerr, "close output file")
			}
		}()
		w = f
	}

	if format == formatTable {
		renderTable(w, res.table(), res.failures)
		return nil
	}

	failures := res.failures
	if failures == nil {
		failures = []senat.Failure{}
	}
	return writeJSON(w, envelope{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Data:        res.data,
		Failures:    failures,
		Guesses:     res.guesses,
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return eris.Wrap(enc.Encode(v), "encode output")
}

func renderTable(w io.Writer, tb tabular, failures []senat.Failure) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(tb.header)
	t.AppendRows(tb.rows)
	t.Render()

	if len(failures) == 0 {
		return
	}
	f := table.NewWriter()
	f.SetOutputMirror(w)
	f.SetStyle(table.StyleRounded)
	f.SetTitle("Failures")
	f.AppendHeader(table.Row{"Entity", "ID", "Kind", "Error"})
	for _, fl := range failures {
		f.AppendRow(table.Row{fl.Entity, fl.ID, fl.Kind, truncate(fl.Error, 80)})
	}
	f.Render()
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
