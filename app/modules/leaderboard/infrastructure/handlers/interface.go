package leaderboardhandlers

import "net/http"

// Handlers serves the Cultivated list.
type Handlers interface {
	HandleCultivated(w http.ResponseWriter, r *http.Request)
}
