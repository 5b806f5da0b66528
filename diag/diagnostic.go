package diag

import "fmt"

// Severity classifies a Diagnostic. The zero value is Advice.
type Severity int

const (
	Advice Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Advice:
		return "advice"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler so Severity serializes as
// its lowercase name in the CLI's JSON diagnostic envelope.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Label attaches explanatory text to a span within a Diagnostic. Primary
// labels point at the crux of the problem; secondary labels add context.
type Label struct {
	Span    Span
	Text    string
	Primary bool
}

// Diagnostic is a structured, append-only report on a source span.
type Diagnostic struct {
	Severity   Severity
	Code       string
	Message    string
	Help       string
	URL        string
	Labels     []Label
	CauseChain []string
}

// WithHelp returns a copy of d with Help set, for the common builder chain
// `diag.New(...).WithHelp(...)`.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// WithURL returns a copy of d with URL set.
func (d Diagnostic) WithURL(url string) Diagnostic {
	d.URL = url
	return d
}

// WithCause appends a cause message to the chain, outermost first.
func (d Diagnostic) WithCause(cause string) Diagnostic {
	d.CauseChain = append(append([]string{}, d.CauseChain...), cause)
	return d
}

// New builds a Diagnostic with a single primary label.
func New(sev Severity, code, message string, primary Label) Diagnostic {
	primary.Primary = true
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Labels:   []Label{primary},
	}
}

// PrimaryLabel returns the first label marked Primary, or the first label
// if none are marked, or the zero Label if there are none at all.
func (d Diagnostic) PrimaryLabel() Label {
	for _, l := range d.Labels {
		if l.Primary {
			return l
		}
	}
	if len(d.Labels) > 0 {
		return d.Labels[0]
	}
	return Label{}
}
