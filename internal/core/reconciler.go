package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const DefaultReconcileInterval = 30 * time.Second

//counterfeiter:generate -o fake -fake-name Reconcilable . Reconcilable
type Reconcilable interface {
	Reconcile(ctx context.Context) (ReconcileResult, error)
}

// Reconciler polls for executing distributions and settles them.
type Reconciler struct {
	logs     *zap.SugaredLogger
	target   Reconcilable
	interval time.Duration
}

func NewReconciler(logger *zap.SugaredLogger, target Reconcilable, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}
	return &Reconciler{
		logs:     logger,
		target:   target,
		interval: interval,
	}
}

// Run reconciles once immediately and then on every tick until ctx is done.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logs.Infow("reconciler stopped")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

// Start launches Run in the background. The returned function stops it and
// waits for the running pass to finish.
func (r *Reconciler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	go func() {
		defer close(done)
		r.Run(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}

func (r *Reconciler) runOnce(ctx context.Context) {
	result, err := r.target.Reconcile(ctx)
	if err != nil {
		r.logs.Errorw("reconcile distributions", "error", err)
	}
	if result.Executed > 0 || result.Reverted > 0 {
		r.logs.Infow("distributions reconciled",
			"checked", result.Checked,
			"executed", result.Executed,
			"reverted", result.Reverted,
		)
	}
}
