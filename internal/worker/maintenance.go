package worker

import (
	"context"
	"log"
	"time"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/timeutil"
	ucAppointment "github.com/medagenda/scheduler-api/internal/usecase/appointment"
)

// MaintenanceWorker drives the time-based status transitions: confirmed
// appointments whose date has passed become completed, and pending ones
// not confirmed within 24 hours of their start are auto-cancelled. It
// invokes the same lifecycle operations interactive requests use.
type MaintenanceWorker struct {
	appointments scheduling.AppointmentStore
	completeUC   *ucAppointment.CompleteAppointment
	cancelUC     *ucAppointment.AutoCancel
	interval     time.Duration
}

func NewMaintenanceWorker(
	appointments scheduling.AppointmentStore,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.AutoCancel,
	interval time.Duration,
) *MaintenanceWorker {
	return &MaintenanceWorker{
		appointments: appointments,
		completeUC:   completeUC,
		cancelUC:     cancelUC,
		interval:     interval,
	}
}

func (w *MaintenanceWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("maintenance worker started, interval %s", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("maintenance worker stopped")
			return
		case <-ticker.C:
			w.completePastAppointments(ctx)
			w.cancelStalePending(ctx)
		}
	}
}

func (w *MaintenanceWorker) completePastAppointments(ctx context.Context) {
	apps, err := w.appointments.ListConfirmedBefore(ctx, timeutil.Today())
	if err != nil {
		log.Println("maintenance: list confirmed failed:", err)
		return
	}

	for _, ap := range apps {
		if _, err := w.completeUC.Execute(ctx, ap.ID); err != nil && !httperr.IsValidation(err) {
			log.Printf("maintenance: complete %d failed: %v", ap.ID, err)
		}
	}
}

func (w *MaintenanceWorker) cancelStalePending(ctx context.Context) {
	apps, err := w.appointments.ListPending(ctx)
	if err != nil {
		log.Println("maintenance: list pending failed:", err)
		return
	}

	now := time.Now()
	for _, ap := range apps {
		start, err := timeutil.StartAsTime(ap.Date, ap.StartTime)
		if err != nil {
			continue
		}
		// unconfirmed inside the 24h window before start
		if start.Sub(now) > 24*time.Hour {
			continue
		}
		if _, err := w.cancelUC.Execute(ctx, ap.ID); err != nil && !httperr.IsValidation(err) {
			log.Printf("maintenance: auto-cancel %d failed: %v", ap.ID, err)
		}
	}
}
