package auth

import "strings"

// Result is the outcome of resolving a bearer credential.
// It is either Authenticated or Rejected.
type Result interface {
	isResult()
}

type Authenticated struct {
	PrincipalID string
}

type Rejected struct {
	Reason string
}

func (Authenticated) isResult() {}
func (Rejected) isResult()      {}

func Authenticate(principalID string) Result {
	principalID = strings.TrimSpace(principalID)
	if principalID == "" {
		return Rejected{Reason: "missing principal id"}
	}
	return Authenticated{PrincipalID: principalID}
}

func Reject(reason string) Result {
	return Rejected{Reason: reason}
}

// PrincipalID returns the principal of an Authenticated result.
func PrincipalID(r Result) (string, bool) {
	a, ok := r.(Authenticated)
	if !ok {
		return "", false
	}
	return a.PrincipalID, true
}
