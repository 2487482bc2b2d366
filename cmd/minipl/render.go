package main

import (
	"fmt"
	"strings"

	"github.com/minipl-lang/minipl/internal/diag"
)

// renderDiagnostic prints a Clang/rustc-style snippet for d against src:
// a location line, the offending source line, and a caret underline.
func renderDiagnostic(src string, d diag.Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", d.Kind(), d.Error())
	for _, label := range d.Labels() {
		line, col := lineCol(src, label.Span.Start)
		lines := strings.Split(src, "\n")
		var content string
		if line-1 >= 0 && line-1 < len(lines) {
			content = lines[line-1]
		}
		fmt.Fprintf(&b, "  --> %d:%d\n", line, col)
		fmt.Fprintf(&b, "   |\n")
		fmt.Fprintf(&b, "%2d | %s\n", line, content)
		fmt.Fprintf(&b, "   | ")
		if col > 0 && col <= len(content)+1 {
			b.WriteString(strings.Repeat(" ", col-1))
			width := label.Span.Len()
			if width < 1 {
				width = 1
			}
			b.WriteString(strings.Repeat("^", width))
		}
		b.WriteByte('\n')
		if label.Message != "" {
			fmt.Fprintf(&b, "   = %s\n", label.Message)
		}
	}
	if help := d.Help(); help != "" {
		fmt.Fprintf(&b, "   help: %s\n", help)
	}
	return b.String()
}

// lineCol converts a byte offset into a 1-indexed (line, column) pair.
func lineCol(src string, offset int) (line, col int) {
	line = 1
	col = 1
	if offset > len(src) {
		offset = len(src)
	}
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
