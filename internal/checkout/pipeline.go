package checkout

import (
	"context"

	"go.uber.org/zap"
)

// Step is one named unit of the submission pipeline. A failing Optional step
// is logged and skipped.
type Step struct {
	Name     string
	Optional bool
	Run      func(ctx context.Context) error
}

// runSteps executes steps in order and returns the first required failure
// unwrapped, so its message reaches the visitor verbatim.
func runSteps(ctx context.Context, logger *zap.Logger, steps []Step) error {
	for _, step := range steps {
		logger.Debug("executing checkout step", zap.String("step", step.Name))
		if err := step.Run(ctx); err != nil {
			if step.Optional {
				logger.Warn("optional checkout step failed", zap.String("step", step.Name), zap.Error(err))
				continue
			}
			logger.Info("checkout step failed", zap.String("step", step.Name), zap.Error(err))
			return err
		}
	}
	return nil
}
