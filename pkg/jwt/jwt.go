package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrMissingSubject error = errors.New("token has no subject")

const RoleOperator = "operator"

type TokenInfo struct {
	Subject    string
	Role       string
	Expiration time.Duration
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":  data.Subject,
		"iat":  now.Unix(),
		"exp":  now.Add(data.Expiration).Unix(),
		"role": data.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Issue generates and signs a token in one call.
func (gen *JWTService) Issue(data TokenInfo) (string, error) {
	return gen.Sign(gen.Generate(data))
}

func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	return claims, nil
}

// Subject returns the "sub" claim of a validated token.
func Subject(claims jwt.MapClaims) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrMissingSubject
	}
	return sub, nil
}
