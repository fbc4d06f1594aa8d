package questionxlsx

import (
	"bytes"
	"testing"

	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for idx, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, idx+1)
		require.NoError(t, err)
		cells := make([]interface{}, len(row))
		for i, val := range row {
			cells[i] = val
		}
		require.NoError(t, f.SetSheetRow(sheet, axis, &cells))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	t.Run("reads rows by header name", func(t *testing.T) {
		data := buildXLSX(t, [][]string{
			{"Question", "Category", "Sub Category", "Options", "Correct Answer", "Explanation", "Difficulty"},
			{"Which terpene smells like pine?", "Terpenes", "Aroma", "Pinene | Limonene |Myrcene", "Pinene", "", "EASY"},
			{"", "", "", "", "", "", ""},
			{"What does THC stand for?", "Cannabinoids", "", "Tetrahydrocannabinol|Cannabidiol", "Tetrahydrocannabinol", "The main psychoactive compound.", ""},
		})

		rows, err := Parse(bytes.NewReader(data))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, 2, rows[0].Line)
		assert.Equal(t, "Terpenes", rows[0].Question.Category)
		assert.Equal(t, strPtr("Aroma"), rows[0].Question.SubCategory)
		assert.Equal(t, []string{"Pinene", "Limonene", "Myrcene"}, rows[0].Question.Options)
		assert.Equal(t, "Pinene", rows[0].Question.CorrectAnswer)
		assert.Nil(t, rows[0].Question.Explanation)
		assert.Equal(t, "easy", rows[0].Question.Difficulty)

		assert.Equal(t, 4, rows[1].Line)
		assert.Nil(t, rows[1].Question.SubCategory)
		assert.Equal(t, strPtr("The main psychoactive compound."), rows[1].Question.Explanation)
	})

	t.Run("missing required columns", func(t *testing.T) {
		data := buildXLSX(t, [][]string{
			{"question", "category"},
			{"q", "c"},
		})
		_, err := Parse(bytes.NewReader(data))
		require.ErrorIs(t, err, ErrMissingColumns)
		assert.Contains(t, err.Error(), "correct_answer, options")
	})

	t.Run("header only", func(t *testing.T) {
		data := buildXLSX(t, [][]string{Header})
		_, err := Parse(bytes.NewReader(data))
		require.ErrorIs(t, err, ErrNoDataRows)
	})

	t.Run("not a spreadsheet", func(t *testing.T) {
		_, err := Parse(bytes.NewReader([]byte("category,question")))
		require.Error(t, err)
	})
}

func TestWriteThenParse(t *testing.T) {
	questions := []questiondb.Question{
		{
			ID:            1,
			Category:      "Terpenes",
			SubCategory:   strPtr("Aroma"),
			Question:      "Which terpene smells like citrus?",
			Options:       []string{"Limonene", "Pinene"},
			CorrectAnswer: "Limonene",
			Explanation:   strPtr("Also found in lemon peel."),
			Difficulty:    "medium",
		},
		{
			ID:            2,
			Category:      "Compliance",
			Question:      "Minimum purchase age?",
			Options:       []string{"18", "21", "25"},
			CorrectAnswer: "21",
			Difficulty:    "easy",
		},
	}

	data, err := Write(questions)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	require.NoError(t, f.Close())

	rows, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		want := questions[i]
		got := row.Question
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.SubCategory, got.SubCategory)
		assert.Equal(t, want.Question, got.Question)
		assert.Equal(t, want.Options, got.Options)
		assert.Equal(t, want.CorrectAnswer, got.CorrectAnswer)
		assert.Equal(t, want.Explanation, got.Explanation)
		assert.Equal(t, want.Difficulty, got.Difficulty)
	}
}

func TestSplitOptions(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitOptions(" a || b |"))
	assert.Empty(t, SplitOptions(""))
}
