package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// formatCell renders a cell value for display. Floats use the shortest
// round-trip form; dates render as YYYY-MM-DD; missing cells render empty.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		if math.IsNaN(x) {
			return "NaN"
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Render writes the table as aligned plain text with a header rule, the
// shape used for terminal output.
func (t *Table) Render() string {
	if t == nil || len(t.cols) == 0 {
		return ""
	}
	widths := make([]int, len(t.cols))
	for i, c := range t.cols {
		widths[i] = len(c)
	}
	cells := make([][]string, len(t.rows))
	for ri, r := range t.rows {
		line := make([]string, len(t.cols))
		for ci, c := range t.cols {
			s := Text(r, c)
			line[ci] = s
			if len(s) > widths[ci] {
				widths[ci] = len(s)
			}
		}
		cells[ri] = line
	}
	var b strings.Builder
	writeLine := func(vals []string) {
		for i, v := range vals {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(v)
			if pad := widths[i] - len(v); pad > 0 && i < len(vals)-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteByte('\n')
	}
	writeLine(t.cols)
	rule := make([]string, len(t.cols))
	for i := range rule {
		rule[i] = strings.Repeat("-", widths[i])
	}
	writeLine(rule)
	for _, line := range cells {
		writeLine(line)
	}
	return b.String()
}
