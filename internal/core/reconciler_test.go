package core_test

import (
	"context"
	"errors"
	"time"

	"loopdrop/internal/core"
	"loopdrop/internal/core/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Reconciler", func() {
	var (
		fakeTarget *fake.Reconcilable
		reconciler *core.Reconciler
	)

	BeforeEach(func() {
		fakeTarget = new(fake.Reconcilable)
		reconciler = core.NewReconciler(zap.NewNop().Sugar(), fakeTarget, 10*time.Millisecond)
	})

	It("reconciles immediately and then on every tick", func() {
		stop := reconciler.Start(context.Background())
		Eventually(fakeTarget.ReconcileCallCount).Should(BeNumerically(">=", 3))
		stop()

		calls := fakeTarget.ReconcileCallCount()
		Consistently(fakeTarget.ReconcileCallCount, 50*time.Millisecond).Should(Equal(calls))
	})

	It("keeps running after a failed pass", func() {
		fakeTarget.ReconcileReturnsOnCall(0, core.ReconcileResult{}, errors.New("node unavailable"))
		fakeTarget.ReconcileReturns(core.ReconcileResult{Checked: 1, Executed: 1}, nil)

		stop := reconciler.Start(context.Background())
		defer stop()
		Eventually(fakeTarget.ReconcileCallCount).Should(BeNumerically(">=", 2))
	})

	It("returns from Run when the context ends", func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			reconciler.Run(ctx)
		}()

		Eventually(fakeTarget.ReconcileCallCount).Should(BeNumerically(">=", 1))
		cancel()
		Eventually(done).Should(BeClosed())
	})
})
