package main

import (
	"slices"
	"strings"

	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/brianvoe/gofakeit/v7"
)

var seedCategories = map[string][]string{
	"Strains":     {"Indica", "Sativa", "Hybrid"},
	"Terpenes":    {"Aroma", "Effects"},
	"Compliance":  {"Labeling", "Purchase Limits"},
	"Consumption": {"Edibles", "Inhalation", "Topicals"},
	"Products":    {"Concentrates", "Tinctures"},
}

var seedDifficulties = []string{"easy", "medium", "hard"}

// generateQuestions builds n valid questions with four distinct options.
func generateQuestions(faker *gofakeit.Faker, n int) []questiondb.Question {
	categories := make([]string, 0, len(seedCategories))
	for c := range seedCategories {
		categories = append(categories, c)
	}
	// Map order is random; sort so a fixed seed is reproducible.
	slices.Sort(categories)

	out := make([]questiondb.Question, 0, n)
	for len(out) < n {
		category := faker.RandomString(categories)
		sub := faker.RandomString(seedCategories[category])
		options := distinctWords(faker, 4)
		answer := options[faker.Number(0, len(options)-1)]
		question := strings.TrimSpace(faker.Question())
		if questionservice.ValidateInput(question, options, answer, category) != nil {
			continue
		}
		explanation := faker.Sentence(8)
		out = append(out, questiondb.Question{
			Category:      category,
			SubCategory:   &sub,
			Question:      question,
			Options:       options,
			CorrectAnswer: answer,
			Explanation:   &explanation,
			Difficulty:    faker.RandomString(seedDifficulties),
		})
	}
	return out
}

func distinctWords(faker *gofakeit.Faker, n int) []string {
	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	for len(words) < n {
		w := faker.Word()
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}
