package scoreservice

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
)

// Submission is one completed round as sent by the client. Numbers may
// arrive as JSON numbers or numeric strings; a value that is present but not
// numeric decodes as NaN so validation can reject it.
type Submission struct {
	// Score is the client's own count of correct answers. Nil when absent.
	Score *float64
	// TotalQuestions is the round size. Nil when absent.
	TotalQuestions *float64
	// Results is nil when the field is absent or not an array.
	Results []AnswerResult
}

// AnswerResult is one entry of Submission.Results. QuestionID is nil when the
// entry has no integer id.
type AnswerResult struct {
	QuestionID *int64
	IsCorrect  bool
}

// UnmarshalJSON decodes {score, totalQuestions, results: [{questionId, isCorrect}]}.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var raw struct {
		Score          json.RawMessage `json:"score"`
		TotalQuestions json.RawMessage `json:"totalQuestions"`
		Results        json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Score = decodeNumber(raw.Score)
	s.TotalQuestions = decodeNumber(raw.TotalQuestions)
	s.Results = nil

	var items []json.RawMessage
	if isArray(raw.Results) && json.Unmarshal(raw.Results, &items) == nil {
		s.Results = make([]AnswerResult, 0, len(items))
		for _, item := range items {
			var entry struct {
				QuestionID json.RawMessage `json:"questionId"`
				IsCorrect  json.RawMessage `json:"isCorrect"`
			}
			if err := json.Unmarshal(item, &entry); err != nil {
				s.Results = append(s.Results, AnswerResult{})
				continue
			}
			s.Results = append(s.Results, AnswerResult{
				QuestionID: decodeInteger(entry.QuestionID),
				IsCorrect:  truthy(entry.IsCorrect),
			})
		}
	}
	return nil
}

// validSubmission is a Submission that passed validation.
type validSubmission struct {
	claimed  float64
	total    int
	answers  []scoredb.Answer
	computed int
}

// validate applies the submission rules in order and returns the first
// violation.
func (s Submission) validate() (validSubmission, error) {
	if s.Score == nil || s.TotalQuestions == nil || s.Results == nil {
		return validSubmission{}, ErrInvalidSubmission
	}

	total := *s.TotalQuestions
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return validSubmission{}, ErrInvalidTotal
	}

	answers := make([]scoredb.Answer, 0, len(s.Results))
	computed := 0
	for _, r := range s.Results {
		if r.QuestionID == nil {
			continue
		}
		answers = append(answers, scoredb.Answer{QuestionID: *r.QuestionID, IsCorrect: r.IsCorrect})
		if r.IsCorrect {
			computed++
		}
	}
	if float64(len(answers)) != total {
		return validSubmission{}, ErrResultsMismatch
	}

	claimed := *s.Score
	if math.IsNaN(claimed) || math.IsInf(claimed, 0) || claimed < 0 || claimed > total {
		return validSubmission{}, ErrScoreOutOfRange
	}

	return validSubmission{
		claimed:  claimed,
		total:    len(answers),
		answers:  answers,
		computed: computed,
	}, nil
}

// Percentage returns correct/total*100 rounded to two decimals.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func decodeNumber(raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}
	nan := math.NaN()
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return &nan
	}
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			zero := 0.0
			return &zero
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return &nan
		}
		return &f
	default:
		return &nan
	}
}

func decodeInteger(raw json.RawMessage) *int64 {
	if isNull(raw) {
		return nil
	}
	f := decodeNumber(raw)
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) || *f != math.Trunc(*f) {
		return nil
	}
	if *f > math.MaxInt64 || *f < math.MinInt64 {
		return nil
	}
	id := int64(*f)
	return &id
}

func truthy(raw json.RawMessage) bool {
	if isNull(raw) {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}
