// Package csvio turns the raw CSV text the feed scrapers produce into
// ordered rows of named fields. The feeds are lenient CSV: quoted fields
// may hold commas, rows are sometimes ragged, and trailing blank lines are
// common. encoding/csv rejects that input outright, so parsing is done by
// hand and ragged rows are silently dropped instead of erroring the batch.
package csvio

import "strings"

// Row maps a header field name to the value in one data row.
type Row map[string]string

// Parse tokenizes raw CSV text. The first non-blank line supplies the
// field names; rows whose field count disagrees with the header are
// skipped. Input row order is preserved.
func Parse(raw string) []Row {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil
	}

	rawHeader := strings.Split(lines[0], ",")
	header := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		header[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	var out []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := splitFields(line)
		if len(values) != len(header) {
			// ragged row: drop it, never pad or truncate
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			row[name] = values[i]
		}
		out = append(out, row)
	}
	return out
}

// splitFields splits one line on commas, treating commas inside a
// double-quoted span as literal content. Quote characters toggle the
// quoted state and are not emitted; a doubled quote gets no special
// unescaping.
func splitFields(line string) []string {
	var values []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	values = append(values, strings.TrimSpace(cur.String()))
	return values
}
