package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"markdoll/diag"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// diagColor maps a severity to the color function used to render it,
// following the Colors.Map keyed-lookup pattern of
// encode/encode_colors.go, but keyed on diag.Severity instead of
// (ir.Type, ColorAttr).
func diagColor(sev diag.Severity) func(string, ...any) string {
	switch sev {
	case diag.Error:
		return color.RedString
	case diag.Warning:
		return color.YellowString
	default:
		return color.CyanString
	}
}

// statusUpdate is one line of the "status-update" stream: progress on a
// pipeline stage, written to stderr as it happens under --json.
type statusUpdate struct {
	Kind   string `json:"kind"`
	Stage  string `json:"stage"`
	Status string `json:"status"`
}

// labelJSON is one entry of a diagnostic's "labels" array.
type labelJSON struct {
	Primary  bool   `json:"primary"`
	Label    string `json:"label"`
	Location string `json:"location"`
}

// diagnosticJSON is the wire shape of one diagnostic inside a
// "diagnostics" envelope.
type diagnosticJSON struct {
	Message    string      `json:"message"`
	Code       string      `json:"code"`
	Severity   string      `json:"severity"`
	Help       *string     `json:"help"`
	URL        *string     `json:"url"`
	Labels     []labelJSON `json:"labels"`
	CauseChain []string    `json:"cause_chain"`
	Rendered   string      `json:"rendered"`
}

// diagnosticsEnvelope is the final "diagnostics" line, written once after
// the last stage's terminal status.
type diagnosticsEnvelope struct {
	Kind        string           `json:"kind"`
	Diagnostics []diagnosticJSON `json:"diagnostics"`
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// statusReporter emits the "status-update" stream: a status-update line
// per stage transition under --json, or an informational log line
// otherwise. --no-status silences the stream in either mode; the caller
// still gets the final diagnostics.
type statusReporter struct {
	w      io.Writer
	json   bool
	silent bool
}

func newStatusReporter(w io.Writer, asJSON, noStatus bool) *statusReporter {
	return &statusReporter{w: w, json: asJSON, silent: noStatus}
}

// stage reports status for stage ("parse" or "emit"), one of "working",
// "success", "failure", or (emit only, once the last byte reaches the
// caller's sink) "written".
func (r *statusReporter) stage(stage, status string) {
	if r.silent {
		return
	}
	if r.json {
		_ = json.NewEncoder(r.w).Encode(statusUpdate{Kind: "status-update", Stage: stage, Status: status})
		return
	}
	theLog.Info(stage, "status", status)
}

// reportDiagnostics writes diags to w: a single "diagnostics" envelope
// object under --json, or one rendered, optionally colorized report per
// diagnostic otherwise.
func reportDiagnostics(w io.Writer, diags []diag.Diagnostic, sources diag.SourceSet, asJSON bool) {
	if asJSON {
		entries := make([]diagnosticJSON, len(diags))
		for i, d := range diags {
			labels := make([]labelJSON, len(d.Labels))
			for j, l := range d.Labels {
				loc := l.Span.Source
				if src, ok := sources.Source(l.Span.Source); ok {
					loc = diag.NewLineIndex(l.Span.Source, src).Location(l.Span)
				}
				labels[j] = labelJSON{Primary: l.Primary, Label: l.Text, Location: loc}
			}
			entries[i] = diagnosticJSON{
				Message:    d.Message,
				Code:       d.Code,
				Severity:   d.Severity.String(),
				Help:       nullableString(d.Help),
				URL:        nullableString(d.URL),
				Labels:     labels,
				CauseChain: append([]string{}, d.CauseChain...),
				Rendered:   diag.Render(d, sources),
			}
		}
		_ = json.NewEncoder(w).Encode(diagnosticsEnvelope{Kind: "diagnostics", Diagnostics: entries})
		return
	}

	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd())
	}
	for _, d := range diags {
		text := diag.Render(d, sources)
		if colorize {
			text = diagColor(d.Severity)(text)
		}
		fmt.Fprintln(w, text)
	}
}
