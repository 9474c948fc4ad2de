package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"loopdrop/internal/config"
	"loopdrop/pkg/jwt"
)

var errMissingSubject error = errors.New("-subject is required")

// IssueToken mints an operator bearer token and prints it to out.
func IssueToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(out)
	subject := fs.String("subject", "", "identity recorded in audit entries")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *subject == "" {
		return errMissingSubject
	}

	cfg, err := config.NewToken()
	if err != nil {
		return fmt.Errorf("token config: %w", err)
	}

	token, err := jwt.NewJWTService([]byte(cfg.JWTSecret)).Issue(jwt.TokenInfo{
		Subject:    *subject,
		Role:       jwt.RoleOperator,
		Expiration: *ttl,
	})
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
