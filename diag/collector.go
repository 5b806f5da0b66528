package diag

// Collector accumulates diagnostics across a parse or emit run. It never
// removes entries: diagnostics are values, not control flow, and the
// caller inspects the final slice once the run finishes.
type Collector struct {
	diags   []Diagnostic
	fatal   bool
	fatalAt Diagnostic
}

// Add appends a diagnostic to the collector.
func (c *Collector) Add(d Diagnostic) {
	c.diags = append(c.diags, d)
}

// Fatal records a fatal condition (only the CR-byte case in this engine)
// and appends its diagnostic. Fatal always implies Error severity.
func (c *Collector) Fatal(d Diagnostic) {
	d.Severity = Error
	c.fatal = true
	c.fatalAt = d
	c.Add(d)
}

// IsFatal reports whether Fatal has been called.
func (c *Collector) IsFatal() bool {
	return c.fatal
}

// HasErrors reports whether any collected diagnostic has Error severity.
func (c *Collector) HasErrors() bool {
	if c.fatal {
		return true
	}
	for _, d := range c.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Diagnostics returns a copy of the accumulated diagnostics in the order
// they were reported.
func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}
