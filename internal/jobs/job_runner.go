package jobs

import (
	"database/sql"

	"timeless-backend/internal/config"
	"timeless-backend/internal/logger"
)

// JobRunner coordinates the scheduled integrity audits. The audits are
// read-only: they report drift, they never mutate records.
type JobRunner struct {
	db     *sql.DB
	config *config.Config
}

func NewJobRunner(db *sql.DB, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		config: cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllAudits runs every audit once (for manual execution)
func (jr *JobRunner) RunAllAudits() {
	jr.AuditInventory()
	jr.AuditOrphanedRentals()
	jr.AuditPayments()
}
