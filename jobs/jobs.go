package jobs

import (
	"context"
	"log"

	"vitalfit/services"

	"github.com/robfig/cron/v3"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily appointment expiry sweep...")
		expired := services.ExpireStaleAppointments(context.Background())
		log.Println("Expired stale appointments: ", expired)

		log.Println("Running period reminder sweep...")
		sent := services.SendPeriodReminders(context.Background())
		log.Println("Period reminders sent: ", sent)
	})

	c.Start()
}
