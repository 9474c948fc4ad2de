package log_test

import (
	"loopdrop/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Logger", func() {
	It("honours the configured level", func() {
		logger := log.NewZapLogger("loopdrop", zapcore.WarnLevel)
		Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
	})

	DescribeTable("ParseLevel",
		func(input string, expected zapcore.Level, fails bool) {
			lvl, err := log.ParseLevel(input)
			if fails {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(lvl).To(Equal(expected))
		},
		Entry("debug", "debug", zapcore.DebugLevel, false),
		Entry("upper case", "WARN", zapcore.WarnLevel, false),
		Entry("unknown", "verbose", zapcore.InfoLevel, true),
	)

	Describe("AttachSentry", func() {
		It("requires a dsn", func() {
			_, _, err := log.AttachSentry(log.NewZapLogger("loopdrop", zapcore.InfoLevel), log.SentryConfig{})
			Expect(err).To(MatchError(log.ErrMissingDSN))
		})

		It("rejects a malformed dsn", func() {
			_, _, err := log.AttachSentry(log.NewZapLogger("loopdrop", zapcore.InfoLevel), log.SentryConfig{DSN: "::not a dsn"})
			Expect(err).To(HaveOccurred())
		})

		It("wraps the logger", func() {
			logger, flush, err := log.AttachSentry(log.NewZapLogger("loopdrop", zapcore.InfoLevel), log.SentryConfig{
				DSN:  "https://public@sentry.example.com/1",
				Tags: map[string]string{"service": "loopdrop"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(logger).NotTo(BeNil())
			Expect(flush).NotTo(BeNil())
		})
	})
})
