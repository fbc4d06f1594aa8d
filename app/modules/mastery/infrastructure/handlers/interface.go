package masteryhandlers

import "net/http"

// Handlers serves the caller's mastery statistics.
type Handlers interface {
	HandleSummary(w http.ResponseWriter, r *http.Request)
	HandleSubCategoryMastery(w http.ResponseWriter, r *http.Request)
}
