package scorehandlers

import "net/http"

// Handlers serves round submission and score history.
type Handlers interface {
	HandleSubmitRound(w http.ResponseWriter, r *http.Request)
	HandleHistory(w http.ResponseWriter, r *http.Request)
	HandleHistoryChart(w http.ResponseWriter, r *http.Request)
}
