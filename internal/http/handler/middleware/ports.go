package middleware

import (
	jwtlib "github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwtlib.MapClaims, error)
}
