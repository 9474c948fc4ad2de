package jwt_test

import (
	"time"

	tokenIssuer "loopdrop/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			Subject:    "alice",
			Role:       tokenIssuer.RoleOperator,
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("signs with HS512 and validates its own tokens", func() {
		token := service.Generate(info)
		Expect(token.Method).To(Equal(jwt.SigningMethodHS512))

		signed, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["role"]).To(Equal(tokenIssuer.RoleOperator))

		sub, err := tokenIssuer.Subject(claims)
		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal("alice"))
	})

	It("rejects a token signed with another secret", func() {
		signed, err := tokenIssuer.NewJWTService([]byte("other")).Issue(info)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects an expired token", func() {
		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		signed, err := service.Issue(info)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("rejects garbage", func() {
		_, err := service.Validate("not-a-token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("requires a subject", func() {
		_, err := tokenIssuer.Subject(jwt.MapClaims{"role": "operator"})
		Expect(err).To(MatchError(tokenIssuer.ErrMissingSubject))
	})
})
