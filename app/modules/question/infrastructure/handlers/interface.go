package questionhandlers

import "net/http"

// Handlers serves round selection and question bank administration.
type Handlers interface {
	HandleNextRound(w http.ResponseWriter, r *http.Request)
	HandleListQuestions(w http.ResponseWriter, r *http.Request)
	HandleUpdateQuestion(w http.ResponseWriter, r *http.Request)
	HandleListCategories(w http.ResponseWriter, r *http.Request)
	HandleImport(w http.ResponseWriter, r *http.Request)
	HandleExport(w http.ResponseWriter, r *http.Request)
}
