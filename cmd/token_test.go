package cmd_test

import (
	"bytes"
	"os"
	"strings"

	"loopdrop/cmd"
	"loopdrop/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IssueToken", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
		saved, ok := os.LookupEnv("JWT_SECRET")
		DeferCleanup(func() {
			_ = os.Unsetenv("JWT_SECRET")
			if ok {
				_ = os.Setenv("JWT_SECRET", saved)
			}
		})
		Expect(os.Setenv("JWT_SECRET", "operator-secret")).To(Succeed())
	})

	It("prints a token for the subject", func() {
		Expect(cmd.IssueToken([]string{"-subject", "alice", "-ttl", "1h"}, out)).To(Succeed())

		claims, err := jwt.NewJWTService([]byte("operator-secret")).Validate(strings.TrimSpace(out.String()))
		Expect(err).NotTo(HaveOccurred())
		Expect(jwt.Subject(claims)).To(Equal("alice"))
		Expect(claims["role"]).To(Equal(jwt.RoleOperator))
	})

	It("requires a subject", func() {
		Expect(cmd.IssueToken(nil, out)).To(MatchError(ContainSubstring("-subject is required")))
	})

	It("requires the secret", func() {
		Expect(os.Unsetenv("JWT_SECRET")).To(Succeed())
		Expect(cmd.IssueToken([]string{"-subject", "alice"}, out)).To(MatchError(ContainSubstring("JWT_SECRET")))
	})

	It("rejects unknown flags", func() {
		Expect(cmd.IssueToken([]string{"-role", "admin"}, out)).To(HaveOccurred())
	})
})
