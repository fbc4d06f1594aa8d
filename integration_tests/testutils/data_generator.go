package testutils

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	scoreservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/application"
	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
)

// DataGenerator builds realistic rows with a seeded faker.
type DataGenerator struct {
	faker *gofakeit.Faker
}

func NewTestDataGenerator(seed uint64) *DataGenerator {
	return &DataGenerator{faker: gofakeit.New(seed)}
}

// CreateUser inserts a user with a unique username and email.
func (g *DataGenerator) CreateUser(t *testing.T, env *TestEnvironment) *userdb.User {
	t.Helper()
	store := g.faker.City()
	u := &userdb.User{
		Username:      fmt.Sprintf("%s_%d", g.faker.Username(), g.faker.Number(1000, 9999)),
		Email:         fmt.Sprintf("%d_%s", g.faker.Number(1000, 9999), g.faker.Email()),
		PasswordHash:  g.faker.Password(true, true, true, false, false, 24),
		StoreLocation: &store,
	}
	if err := env.DBService.UserDB.Create(env.Ctx, nil, u); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

// QuestionSpec places n questions in one category and sub-category.
type QuestionSpec struct {
	Category    string
	SubCategory string
	Count       int
}

// CreateQuestions inserts the questions described by specs and returns them
// in insertion order with ids filled in.
func (g *DataGenerator) CreateQuestions(t *testing.T, env *TestEnvironment, specs ...QuestionSpec) []questiondb.Question {
	t.Helper()
	var questions []questiondb.Question
	for _, spec := range specs {
		for i := 0; i < spec.Count; i++ {
			options := []string{g.faker.Word() + "-a", g.faker.Word() + "-b", g.faker.Word() + "-c", g.faker.Word() + "-d"}
			q := questiondb.Question{
				Category:      spec.Category,
				Question:      g.faker.Question(),
				Options:       options,
				CorrectAnswer: options[g.faker.Number(0, len(options)-1)],
				Difficulty:    "medium",
			}
			if spec.SubCategory != "" {
				sub := spec.SubCategory
				q.SubCategory = &sub
			}
			questions = append(questions, q)
		}
	}
	if err := env.DBService.QuestionDB.InsertMany(env.Ctx, nil, questions); err != nil {
		t.Fatalf("failed to insert questions: %v", err)
	}
	return questions
}

// Submission builds a round over questionIDs where the ids in correct are
// answered correctly. The claimed score matches the results.
func Submission(questionIDs []int64, correct map[int64]bool) scoreservice.Submission {
	results := make([]scoreservice.AnswerResult, 0, len(questionIDs))
	score := 0
	for _, id := range questionIDs {
		if correct[id] {
			score++
		}
		results = append(results, scoreservice.AnswerResult{QuestionID: &id, IsCorrect: correct[id]})
	}
	claimed := float64(score)
	total := float64(len(questionIDs))
	return scoreservice.Submission{Score: &claimed, TotalQuestions: &total, Results: results}
}

// IDs returns the ids of questions.
func IDs(questions []questiondb.Question) []int64 {
	ids := make([]int64, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

// Set turns ids into a membership map.
func Set(ids ...int64) map[int64]bool {
	m := make(map[int64]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
