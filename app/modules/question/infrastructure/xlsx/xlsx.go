// Package questionxlsx reads and writes the question bank spreadsheet.
//
// Layout: a header row followed by one question per row. Recognised columns
// are category, sub_category, question, options, correct_answer, explanation
// and difficulty; options are separated by OptionSeparator.
package questionxlsx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/xuri/excelize/v2"
)

const (
	// OptionSeparator splits the options cell into answer choices.
	OptionSeparator = "|"
	// SheetName is the sheet written by Write.
	SheetName = "Questions"
)

// Header is the column order written by Write.
var Header = []string{"category", "sub_category", "question", "options", "correct_answer", "explanation", "difficulty"}

var (
	ErrNoSheets       = errors.New("xlsx file contains no sheets")
	ErrNoDataRows     = errors.New("xlsx must contain a header and at least one data row")
	ErrMissingColumns = errors.New("xlsx is missing required columns")
)

// Row is one parsed spreadsheet line. Line is 1-based and counts the header.
// The question is not validated.
type Row struct {
	Line     int
	Question questiondb.Question
}

type columns struct {
	category, subCategory, question, options, correctAnswer, explanation, difficulty int
}

// Parse reads the first sheet of an xlsx document.
func Parse(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrNoDataRows
	}

	cols := columns{
		category:      findColumn(rows[0], "category", "main_category"),
		subCategory:   findColumn(rows[0], "sub_category", "subcategory"),
		question:      findColumn(rows[0], "question"),
		options:       findColumn(rows[0], "options", "choices"),
		correctAnswer: findColumn(rows[0], "correct_answer", "answer"),
		explanation:   findColumn(rows[0], "explanation"),
		difficulty:    findColumn(rows[0], "difficulty"),
	}
	var missing []string
	for name, idx := range map[string]int{
		"category":       cols.category,
		"question":       cols.question,
		"options":        cols.options,
		"correct_answer": cols.correctAnswer,
	} {
		if idx < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		q := questiondb.Question{
			Category:      cell(row, cols.category),
			SubCategory:   optional(cell(row, cols.subCategory)),
			Question:      cell(row, cols.question),
			Options:       SplitOptions(cell(row, cols.options)),
			CorrectAnswer: cell(row, cols.correctAnswer),
			Explanation:   optional(cell(row, cols.explanation)),
			Difficulty:    strings.ToLower(cell(row, cols.difficulty)),
		}
		out = append(out, Row{Line: i + 1, Question: q})
	}
	return out, nil
}

// Write renders questions as an xlsx document in Header order.
func Write(questions []questiondb.Question) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(SheetName, 1, 1, style)
	}
	_ = f.SetColWidth(SheetName, "A", "B", 20)
	_ = f.SetColWidth(SheetName, "C", "F", 48)

	for i, q := range questions {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		cells := []interface{}{
			q.Category,
			deref(q.SubCategory),
			q.Question,
			strings.Join(q.Options, " "+OptionSeparator+" "),
			q.CorrectAnswer,
			deref(q.Explanation),
			q.Difficulty,
		}
		if err := f.SetSheetRow(SheetName, axis, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// SplitOptions splits an options cell and drops empty choices.
func SplitOptions(raw string) []string {
	parts := strings.Split(raw, OptionSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func findColumn(header []string, names ...string) int {
	for i, col := range header {
		norm := normalize(col)
		for _, name := range names {
			if norm == normalize(name) {
				return i
			}
		}
	}
	return -1
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
