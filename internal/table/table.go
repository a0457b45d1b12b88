// Package table implements the ordered string-cell row table the merge
// pipeline operates on: schema-checked column selection, renames, constant
// fills, multi-key left joins, and atomic CSV output.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// Table is an ordered sequence of rows under a single header. Every cell is a
// string; missing cells are empty strings. A table lives only for the
// duration of one merge invocation.
type Table struct {
	Header []string
	Rows   [][]string
}

// New returns an empty table with the given header.
func New(header ...string) *Table {
	h := make([]string, len(header))
	copy(h, header)
	return &Table{Header: h}
}

// ReadFile loads a delimiter-sniffed CSV file. Invalid UTF-8 byte sequences
// are replaced rather than rejected, and ragged rows are padded to header
// width.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	content := strings.ToValidUTF8(string(data), "�")
	content = strings.TrimPrefix(content, "\ufeff")

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = sniffDelimiter(content)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := New(header...)
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		row := make([]string, len(header))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// sniffDelimiter guesses the delimiter of a CSV-like payload, falling back to
// comma when the detector finds nothing plausible.
func sniffDelimiter(content string) rune {
	candidates := detector.New().DetectDelimiter(strings.NewReader(content), '"')
	if len(candidates) > 0 {
		return rune(candidates[0][0])
	}
	return ','
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) colIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool { return t.colIndex(name) >= 0 }

// Column returns the cells of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.colIndex(name)
	if idx < 0 {
		return nil, &MissingColumnsError{Missing: []string{name}}
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Select projects the table onto exactly the given columns, in that order.
// If any required column is absent the returned error names every missing
// column, not just the first.
func (t *Table) Select(cols ...string) (*Table, error) {
	idx := make([]int, 0, len(cols))
	var missing []string
	for _, c := range cols {
		i := t.colIndex(c)
		if i < 0 {
			missing = append(missing, c)
			continue
		}
		idx = append(idx, i)
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}
	out := New(cols...)
	out.Rows = make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		sel := make([]string, len(idx))
		for j, i := range idx {
			sel[j] = row[i]
		}
		out.Rows[r] = sel
	}
	return out, nil
}

// Rename replaces header names according to the mapping. Unknown keys are
// ignored.
func (t *Table) Rename(mapping map[string]string) {
	for i, h := range t.Header {
		if repl, ok := mapping[h]; ok {
			t.Header[i] = repl
		}
	}
}

// Drop removes the named columns where present.
func (t *Table) Drop(cols ...string) {
	drop := make(map[string]bool, len(cols))
	for _, c := range cols {
		drop[c] = true
	}
	keep := make([]int, 0, len(t.Header))
	for i, h := range t.Header {
		if !drop[h] {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.Header) {
		return
	}
	header := make([]string, len(keep))
	for j, i := range keep {
		header[j] = t.Header[i]
	}
	for r, row := range t.Rows {
		next := make([]string, len(keep))
		for j, i := range keep {
			next[j] = row[i]
		}
		t.Rows[r] = next
	}
	t.Header = header
}

// SetConstant fills the named column with a single value in every row,
// appending the column if it does not exist yet.
func (t *Table) SetConstant(name, value string) {
	idx := t.colIndex(name)
	if idx < 0 {
		t.Header = append(t.Header, name)
		for r := range t.Rows {
			t.Rows[r] = append(t.Rows[r], value)
		}
		return
	}
	for r := range t.Rows {
		t.Rows[r][idx] = value
	}
}

// TrimColumns trims surrounding whitespace from every cell of the named
// columns. Join keys are trimmed before comparison so that numeric-looking
// identifiers exported with stray padding still match.
func (t *Table) TrimColumns(cols ...string) {
	for _, c := range cols {
		idx := t.colIndex(c)
		if idx < 0 {
			continue
		}
		for r := range t.Rows {
			t.Rows[r][idx] = strings.TrimSpace(t.Rows[r][idx])
		}
	}
}

// joinKeySep separates key parts inside the composite hash-index key. Unit
// separator never occurs in spreadsheet cells.
const joinKeySep = "\x1f"

// LeftJoin returns the left-outer join of t with right on the given key
// columns. Every row of t is preserved; unmatched right columns stay empty.
// Duplicate keys on the right fan out into multiple output rows.
func (t *Table) LeftJoin(right *Table, keys ...string) (*Table, error) {
	var missing []string
	leftIdx := make([]int, len(keys))
	rightIdx := make([]int, len(keys))
	for i, k := range keys {
		if leftIdx[i] = t.colIndex(k); leftIdx[i] < 0 {
			missing = append(missing, k)
		}
		if rightIdx[i] = right.colIndex(k); rightIdx[i] < 0 {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	// Right-side payload columns: everything except the keys.
	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}
	payloadIdx := make([]int, 0, len(right.Header))
	payloadNames := make([]string, 0, len(right.Header))
	for i, h := range right.Header {
		if !keySet[h] {
			payloadIdx = append(payloadIdx, i)
			payloadNames = append(payloadNames, h)
		}
	}

	// Hash index over the right table.
	index := make(map[string][]int, len(right.Rows))
	for r, row := range right.Rows {
		k := compositeKey(row, rightIdx)
		index[k] = append(index[k], r)
	}

	out := New(append(append([]string{}, t.Header...), payloadNames...)...)
	empty := make([]string, len(payloadIdx))
	for _, row := range t.Rows {
		matches := index[compositeKey(row, leftIdx)]
		if len(matches) == 0 {
			out.Rows = append(out.Rows, concatRow(row, empty))
			continue
		}
		for _, m := range matches {
			payload := make([]string, len(payloadIdx))
			for j, i := range payloadIdx {
				payload[j] = right.Rows[m][i]
			}
			out.Rows = append(out.Rows, concatRow(row, payload))
		}
	}
	return out, nil
}

func compositeKey(row []string, idx []int) string {
	parts := make([]string, len(idx))
	for i, j := range idx {
		parts[i] = strings.TrimSpace(row[j])
	}
	return strings.Join(parts, joinKeySep)
}

func concatRow(left, right []string) []string {
	row := make([]string, 0, len(left)+len(right))
	row = append(row, left...)
	row = append(row, right...)
	return row
}

// KeyColumnsEqual reports whether the key-column projections of both tables
// are identical: same row count and same trimmed cell values in order.
func (t *Table) KeyColumnsEqual(other *Table, keys ...string) (bool, error) {
	a, err := t.Select(keys...)
	if err != nil {
		return false, err
	}
	b, err := other.Select(keys...)
	if err != nil {
		return false, err
	}
	if len(a.Rows) != len(b.Rows) {
		return false, nil
	}
	for r := range a.Rows {
		for c := range keys {
			if strings.TrimSpace(a.Rows[r][c]) != strings.TrimSpace(b.Rows[r][c]) {
				return false, nil
			}
		}
	}
	return true, nil
}

// WriteFile serializes the table as comma-delimited UTF-8 CSV at path. The
// file is written to a temp path and renamed into place so that a failed or
// interrupted write never leaves partial output behind.
func (t *Table) WriteFile(path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := safeWriteFile(path, buf.Bytes()); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// safeWriteFile writes data to a temp file and atomically renames it into place.
func safeWriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
