// Package invocation holds the values parsed from one ffilog run.
// SPDX-License-Identifier: AGPL-3.0-or-later
package invocation

import "strings"

// Record is the invocation record. A nil field was not passed on the
// command line, which is distinct from an explicit empty value.
type Record struct {
	Text  *string
	Total *string
	P0    *string
	P1    *string
	P2    *string
	P3    *string
	Index *int
}

// Fields returns the string fields in log order: text total p0 p1 p2 p3.
func (r Record) Fields() []*string {
	return []*string{r.Text, r.Total, r.P0, r.P1, r.P2, r.P3}
}

// Line joins the fields with single spaces. Values are inserted verbatim;
// unset fields render as placeholder.
func (r Record) Line(placeholder string) string {
	fields := r.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		if f == nil {
			parts[i] = placeholder
			continue
		}
		parts[i] = *f
	}
	return strings.Join(parts, " ")
}
