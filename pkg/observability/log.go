package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/transit/pkg/domain"
)

// LogHooks returns lifecycle hooks writing one record per step to logger.
// Completed steps are logged at Info, failures at Warn.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnd: func(ctx context.Context, e *domain.StepEvent) {
			logger.InfoContext(ctx, "step",
				"machine", e.MachineID,
				"from", e.From,
				"to", e.To,
				"duration", e.Duration,
			)
		},
		OnStepError: func(ctx context.Context, e *domain.StepEvent) {
			logger.WarnContext(ctx, "step failed",
				"machine", e.MachineID,
				"from", e.From,
				"error", e.Err,
			)
		},
	}
}
