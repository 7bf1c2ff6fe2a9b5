package jobs

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"context"
	"log"

	"github.com/hibiken/asynq"
)

// HandleReconcileCheckedInTask returns a handler that re-derives every
// participant's checkedIn flag from the event log. The log is the
// authoritative state; the flag is only a convenience cache that can drift
// when a best-effort refresh after a check-in/out was lost.
func HandleReconcileCheckedInTask(st store.Store) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		participants, err := st.AllParticipants(ctx)
		if err != nil {
			log.Println("❌ Reconcile: failed to fetch participants:", err)
			return err
		}
		events, err := st.AllCheckEvents(ctx)
		if err != nil {
			log.Println("❌ Reconcile: failed to fetch check events:", err)
			return err
		}

		// kind ของ event ล่าสุดต่อ participant (events เรียงตาม at อยู่แล้ว)
		latest := make(map[string]string, len(events))
		for _, ev := range events {
			latest[ev.ParticipantID] = ev.Kind
		}

		fixed := 0
		for _, p := range participants {
			actual := latest[p.ID] == models.EventCheckIn
			if p.CheckedIn == actual {
				continue
			}
			if err := st.SetParticipantCheckedIn(ctx, p.ID, actual); err != nil {
				log.Printf("⚠️ Reconcile: failed to update %s: %v", p.ID, err)
				continue
			}
			fixed++
		}

		if fixed > 0 {
			log.Printf("✅ Reconciled checkedIn flag for %d participant(s)", fixed)
		}
		return nil
	}
}
