// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package render prints request descriptors for people to read.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gogama/stepreq/request"
	"github.com/olekukonko/tablewriter"
)

// A Row is one named descriptor together with the timeout that would
// apply to it, as decided by a timeout policy.
type Row struct {
	Name       string
	Descriptor *request.Descriptor
	Effective  time.Duration
}

// Text writes a multi-line description of each row to w. Headers and
// query parameters are listed in the order they were first set.
func Text(w io.Writer, rows ...Row) error {
	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		d := r.Descriptor
		fmt.Fprintf(&sb, "[%s] %s %s\n", r.Name, d.Method(), d.URL())
		if q := d.QueryParams(); len(q) > 0 {
			sb.WriteString("Query Parameters:\n")
			for _, f := range q {
				fmt.Fprintf(&sb, "  %s=%s\n", f.Name, f.Value)
			}
		}
		if h := d.Headers(); len(h) > 0 {
			sb.WriteString("Headers:\n")
			for _, f := range h {
				fmt.Fprintf(&sb, "  %s: %s\n", f.Name, f.Value)
			}
		}
		if body, ok := d.Body(); ok {
			fmt.Fprintf(&sb, "Body: %s\n", body)
		}
		fmt.Fprintf(&sb, "Timeout: %s\n", timeoutText(d, r.Effective))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Table writes rows to w as a table with one line per descriptor.
func Table(w io.Writer, rows ...Row) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Method", "URL", "Headers", "Query", "Body", "Timeout"})
	for _, r := range rows {
		d := r.Descriptor
		body, _ := d.Body()
		if err := table.Append([]string{
			r.Name,
			d.Method(),
			d.URL(),
			joinFields(d.Headers(), ": "),
			joinFields(d.QueryParams(), "="),
			body,
			timeoutText(d, r.Effective),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

// timeoutText marks a timeout that came from a policy default rather
// than from the descriptor itself.
func timeoutText(d *request.Descriptor, effective time.Duration) string {
	if _, ok := d.Timeout(); ok {
		return effective.String()
	}
	return effective.String() + " (default)"
}

func joinFields(fs []request.Field, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.Name + sep + f.Value
	}
	return strings.Join(parts, "\n")
}
