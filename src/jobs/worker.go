package jobs

import (
	"Backend-EventEase/src/database"
	"Backend-EventEase/src/store"
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq worker and a periodic reconcile schedule in
// background goroutines. Skipped entirely when Redis is unconfigured.
func StartWorker(st store.Store) {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background jobs disabled.")
		return
	}

	redisOpt := asynq.RedisClientOpt{Addr: database.RedisURI}

	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})
	mux := asynq.NewServeMux()
	mux.Handle(TypeReconcileCheckedIn, HandleReconcileCheckedInTask(st))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()

	// reconcile ทุก 5 นาที
	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("@every 5m", NewReconcileCheckedInTask()); err != nil {
		log.Println("❌ Failed to register reconcile schedule:", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Asynq scheduler stopped:", err)
		}
	}()

	log.Println("✅ Background worker started")
}
