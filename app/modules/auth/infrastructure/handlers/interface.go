package authhandlers

import "net/http"

// Handlers serves the public authentication endpoints.
type Handlers interface {
	HandleSignup(w http.ResponseWriter, r *http.Request)
	HandleSignin(w http.ResponseWriter, r *http.Request)
}
