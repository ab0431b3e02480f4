package procedure

import "database/sql"

// CollectRows decodes the current result set into JSON-ready maps keyed by
// column name.  Several report procedures own their presentation schema
// outright and the API passes their rows through verbatim; this is the
// single decode point for those, so column handling (byte slices from the
// MySQL driver, NULLs) lives here and nowhere else.
func CollectRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := []map[string]any{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		m := make(map[string]any, len(cols))
		for i, c := range cols {
			switch v := vals[i].(type) {
			case []byte:
				m[c] = string(v)
			default:
				m[c] = v
			}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
