package usecase

import (
	"errors"
	"strings"

	"fleet-booking/internal/domain/auth"
	"fleet-booking/internal/pkg/jwt"
)

//go:generate mockgen -source=principal.go -destination=../../tests/mock/usecase/principal.go -package=usecasemock

// PrincipalResolver maps a bearer credential to an authenticated principal.
type PrincipalResolver interface {
	Resolve(credential string) auth.Result
}

type jwtPrincipalResolver struct {
	jwtService *jwt.Service
}

func NewPrincipalResolver(jwtService *jwt.Service) PrincipalResolver {
	return &jwtPrincipalResolver{
		jwtService: jwtService,
	}
}

func (r *jwtPrincipalResolver) Resolve(credential string) auth.Result {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return auth.Reject("missing credential")
	}

	claims, err := r.jwtService.ValidateToken(credential)
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return auth.Reject("token expired")
	case errors.Is(err, jwt.ErrMissingSub):
		return auth.Reject("token has no subject")
	case err != nil:
		return auth.Reject("invalid token")
	}

	return auth.Authenticate(claims.Subject)
}
