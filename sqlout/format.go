package sqlout

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Format renders a single Go value as a SQL literal. Nil (including typed nil
// pointers) becomes NULL, booleans become lowercase literals, numbers are
// rendered bare, timestamps are quoted in a fixed layout, and strings are
// single-quoted with embedded quotes doubled. The function is pure: the same
// input always yields the same literal.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return "'" + x.Format(timeLayout) + "'"
	case *time.Time:
		if x == nil {
			return "NULL"
		}
		return Format(*x)
	case *string:
		if x == nil {
			return "NULL"
		}
		return Format(*x)
	case *int:
		if x == nil {
			return "NULL"
		}
		return Format(*x)
	case *int64:
		if x == nil {
			return "NULL"
		}
		return Format(*x)
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprint(x), "'", "''") + "'"
	}
}

// Row is a record that knows how to describe its own insertion: the target
// table, the column list, and the values in column order.
type Row interface {
	InsertRow() (table string, columns []string, values []any)
}

// Insert renders a complete two-line INSERT statement for the row. The header
// and value lines are kept separate; the artifact's consumers scan for the
// header line and read ids off the following one.
func Insert(r Row) string {
	table, columns, values := r.InsertRow()

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES\n(")
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Format(v))
	}
	b.WriteString(");\n")
	return b.String()
}
