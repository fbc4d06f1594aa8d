package userhandlers

import "net/http"

// Handlers serves the account endpoints.
type Handlers interface {
	HandleGetMe(w http.ResponseWriter, r *http.Request)
	HandleUpdateMe(w http.ResponseWriter, r *http.Request)
	HandleListUsers(w http.ResponseWriter, r *http.Request)
	HandleDeleteUser(w http.ResponseWriter, r *http.Request)
	HandleListLocations(w http.ResponseWriter, r *http.Request)
}
