package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/recruitment"
)

// provisioningProcessedBy attributes sweeper-driven provisioning in the
// application record and audit trail
const provisioningProcessedBy = "system"

// provisioningSweeper picks up approved applications that have not been
// provisioned yet and runs account setup for them in batch. Each
// application is provisioned in its own transaction, so one failure never
// holds up the rest of the batch.
type provisioningSweeper struct {
	*periodic
	recruitment recruitment.Service
	batchSize   int
}

// NewProvisioningSweeper creates a sweeper that provisions approved
// applications on the given interval, at most batchSize per cycle
func NewProvisioningSweeper(interval time.Duration, svc recruitment.Service, clock adapter.Clock, batchSize int) Sweeper {
	s := &provisioningSweeper{
		recruitment: svc,
		batchSize:   batchSize,
	}
	s.periodic = newPeriodic("provisioning-sweeper", interval, clock, s.runSweepCycle)
	return s
}

func (s *provisioningSweeper) runSweepCycle(ctx context.Context) error {
	apps, err := s.recruitment.ApplicationsReadyForProcessing(ctx, s.batchSize)
	if err != nil {
		return fmt.Errorf("failed to list applications ready for processing: %w", err)
	}
	if len(apps) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}

	result, err := s.recruitment.ProcessMultipleApplications(ctx, ids, provisioningProcessedBy, nil)
	if err != nil {
		return fmt.Errorf("failed to provision approved applications: %w", err)
	}

	logger.InfoCtx(ctx, "Approved applications provisioned",
		zap.Int("provisioned", len(result.Provisioned)),
		zap.Int("failed", len(result.Failed)),
	)
	return nil
}
