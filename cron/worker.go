package cron

import (
	appointmentService "telemed/services/appointment"
	"telemed/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartScheduler runs the recurring maintenance jobs and returns the running
// scheduler so the caller can stop it on shutdown.
func StartScheduler(appointments appointmentService.AppointmentService) *cron.Cron {
	logger := utils.GetLogger()
	c := cron.New()

	// Sweep approved appointments whose date has passed into completed,
	// shortly after midnight each day.
	if _, err := c.AddFunc("15 0 * * *", func() {
		updated, err := appointments.CompletePastApproved()
		if err != nil {
			logger.Error("appointment completion sweep failed", zap.Error(err))
			return
		}
		if updated > 0 {
			logger.Info("appointment completion sweep finished", zap.Int64("completed", updated))
		}
	}); err != nil {
		logger.Error("failed to schedule appointment completion sweep", zap.Error(err))
	}

	c.Start()
	return c
}
