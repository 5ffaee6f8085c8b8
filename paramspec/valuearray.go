package paramspec

import "strings"

// ValueArray is the raw content of a table-typed parameter.
type ValueArray struct {
	// TypeName is the SQL table type including its brackets, e.g. "[dbo.IdList]".
	TypeName string

	// Values are the unsplit row strings, e.g. "1,a".
	Values []string
}

// Rows decomposes each row string into a row-constructor tuple body.
// Rows that are blank after trimming are skipped. Empty column tokens become
// NULL and all other tokens are passed through unquoted.
func (a *ValueArray) Rows() []string {
	if a == nil {
		return nil
	}

	rows := make([]string, 0, len(a.Values))
	for _, raw := range a.Values {
		row := strings.TrimSpace(raw)
		if row == "" {
			continue
		}

		cols := strings.Split(row, ",")
		for i, col := range cols {
			if col == "" {
				cols[i] = "NULL"
			}
		}
		rows = append(rows, strings.Join(cols, ","))
	}
	return rows
}
