package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-extractor/internal/types"
)

// allowedColumns returns the field names present in both the parsed set and
// the writable-column allowlist, in a stable order. Fields outside the
// allowlist never reach SQL text.
func allowedColumns(fields types.ParsedFieldSet) []string {
	cols := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := types.FieldLimits[name]; ok {
			cols = append(cols, name)
		}
	}
	sort.Strings(cols)
	return cols
}

func quoteColumn(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// buildUpdate assembles an UPDATE that writes only known fields, so a rerun
// with a weaker extraction cannot erase earlier values. processed_at is
// always stamped even when no attribute survived parsing.
func buildUpdate(id int, fields types.ParsedFieldSet, now time.Time) (string, []any) {
	var set []string
	var args []any

	for _, name := range allowedColumns(fields) {
		f := fields[name]
		if !f.Known || f.Value == "" {
			continue
		}
		args = append(args, f.Value)
		set = append(set, fmt.Sprintf("%s = $%d", quoteColumn(name), len(args)))
	}

	args = append(args, now)
	set = append(set, fmt.Sprintf("processed_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE candidates SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))
	return query, args
}

// buildInsert assembles an INSERT carrying every allowlisted field, with
// unknown values as SQL NULL.
func buildInsert(id int, fields types.ParsedFieldSet, now time.Time) (string, []any) {
	cols := []string{"id", "processed_at"}
	args := []any{id, now}

	for _, name := range allowedColumns(fields) {
		cols = append(cols, quoteColumn(name))
		if f := fields[name]; f.Known && f.Value != "" {
			args = append(args, f.Value)
		} else {
			args = append(args, nil)
		}
	}

	markers := make([]string, len(args))
	for i := range args {
		markers[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO candidates (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.Join(markers, ", "))
	return query, args
}
