package masteryservice

import (
	"math"
	"sort"

	masterydb "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/infrastructure/repositories"
)

// subCategoryKeySep joins category and sub-category when a sub-category name
// is shared by several categories.
const subCategoryKeySep = "::"

// Summary is a user's mastery across the whole question bank.
type Summary struct {
	OverallMastery          float64            `json:"overallMastery"`
	CategoryMastery         map[string]float64 `json:"categoryMastery"`
	SubCategoryMastery      map[string]float64 `json:"subCategoryMastery"`
	TotalQuestionsAvailable int                `json:"totalQuestionsAvailable"`
	TotalUniqueCorrect      int                `json:"totalUniqueCorrect"`
}

// SubCategoryMastery is one row of the per sub-category breakdown.
type SubCategoryMastery struct {
	MainCategory string  `json:"mainCategory"`
	SubCategory  string  `json:"subCategory"`
	Mastery      float64 `json:"mastery"`
}

// Snapshot is everything mastery is computed from, read in one transaction.
type Snapshot struct {
	TotalQuestions    int
	CategoryTotals    []masterydb.GroupTotal
	SubCategoryTotals []masterydb.GroupTotal
	Correct           []masterydb.CorrectQuestion
}

type pairKey struct {
	category    string
	subCategory string
}

// ComputeSummary derives the summary from a snapshot. A question counts once
// it has been answered correctly, whatever happened afterwards.
func ComputeSummary(s Snapshot) Summary {
	summary := Summary{
		CategoryMastery:    map[string]float64{},
		SubCategoryMastery: map[string]float64{},
	}
	if s.TotalQuestions <= 0 {
		return summary
	}
	summary.TotalQuestionsAvailable = s.TotalQuestions

	seen := make(map[int64]struct{}, len(s.Correct))
	perCategory := map[string]int{}
	perPair := map[pairKey]int{}
	for _, c := range s.Correct {
		if _, dup := seen[c.QuestionID]; dup {
			continue
		}
		seen[c.QuestionID] = struct{}{}
		if c.Category != "" {
			perCategory[c.Category]++
			if c.SubCategory != nil && *c.SubCategory != "" {
				perPair[pairKey{c.Category, *c.SubCategory}]++
			}
		}
	}

	summary.TotalUniqueCorrect = len(seen)
	summary.OverallMastery = percent(len(seen), s.TotalQuestions)

	for _, t := range s.CategoryTotals {
		summary.CategoryMastery[t.Category] = percent(perCategory[t.Category], t.Total)
	}

	parents := map[string]int{}
	for _, t := range s.SubCategoryTotals {
		parents[t.SubCategory]++
	}
	for _, t := range s.SubCategoryTotals {
		key := t.SubCategory
		if parents[t.SubCategory] > 1 {
			key = t.Category + subCategoryKeySep + t.SubCategory
		}
		summary.SubCategoryMastery[key] = percent(perPair[pairKey{t.Category, t.SubCategory}], t.Total)
	}

	return summary
}

// ComputeSubCategoryBreakdown lists mastery per (category, sub-category),
// sorted by category then sub-category.
func ComputeSubCategoryBreakdown(totals []masterydb.GroupTotal, correct []masterydb.CorrectQuestion) []SubCategoryMastery {
	perPair := map[pairKey]map[int64]struct{}{}
	for _, c := range correct {
		if c.Category == "" || c.SubCategory == nil || *c.SubCategory == "" {
			continue
		}
		k := pairKey{c.Category, *c.SubCategory}
		if perPair[k] == nil {
			perPair[k] = map[int64]struct{}{}
		}
		perPair[k][c.QuestionID] = struct{}{}
	}

	out := make([]SubCategoryMastery, 0, len(totals))
	for _, t := range totals {
		out = append(out, SubCategoryMastery{
			MainCategory: t.Category,
			SubCategory:  t.SubCategory,
			Mastery:      percent(len(perPair[pairKey{t.Category, t.SubCategory}]), t.Total),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MainCategory != out[j].MainCategory {
			return out[i].MainCategory < out[j].MainCategory
		}
		return out[i].SubCategory < out[j].SubCategory
	})
	return out
}

// percent returns correct/total*100 rounded to one decimal. The result is in
// [0, 100] and is 100 only when every question in the group is correct.
func percent(correct, total int) float64 {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct >= total {
		return 100
	}
	return math.Min(math.Round(float64(correct)/float64(total)*1000)/10, 99.9)
}
