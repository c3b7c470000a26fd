package ui

import (
	"strings"

	"github.com/five82/devlog/internal/console"
	"github.com/five82/devlog/internal/record"
)

// filterRecords keeps the records whose formatted string contains query,
// ignoring case. An empty query keeps everything. The result never aliases
// records.
func filterRecords(records []record.Record, query string) []record.Record {
	out := make([]record.Record, 0, len(records))
	if query == "" {
		return append(out, records...)
	}
	needle := strings.ToLower(query)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Formatted()), needle) {
			out = append(out, r)
		}
	}
	return out
}

func isFailure(r record.Record) bool {
	return strings.HasPrefix(r.Message, console.ErrorPrefix)
}
