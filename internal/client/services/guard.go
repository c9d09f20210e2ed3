// Package services contains the application services of the StudyHub client:
// the role gate, the registration verifier, and the material lifecycle
// service.
package services

import (
	"strings"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
)

// Navigation targets the role gate redirects to.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Decision is the outcome of an authorization check: either the navigation
// is allowed, or the caller must redirect to the given path. A denial is
// resolved as a redirect, never as an error.
type Decision struct {
	Allowed  bool
	Redirect string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirectTo(path string) Decision {
	return Decision{Redirect: path}
}

// Authorize decides whether identity may reach a destination guarded by the
// given role set. An empty set admits any authenticated identity.
//
// An absent identity is sent to the login entry point regardless of the
// required roles. An authenticated identity whose role is not in a non-empty
// set is sent to the home view instead: it is signed in, just not
// authorized for this destination.
//
// Pure decision function: no side effects, evaluated on every navigation
// attempt. Role comparison is case-insensitive on both sides.
func Authorize(identity *models.Identity, allowed ...models.Role) Decision {
	if identity == nil {
		return redirectTo(LoginPath)
	}
	if len(allowed) == 0 {
		return allow()
	}
	for _, role := range allowed {
		if strings.EqualFold(string(identity.Role), string(role)) {
			return allow()
		}
	}
	return redirectTo(HomePath)
}
