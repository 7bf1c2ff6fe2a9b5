package jobs

import (
	"github.com/hibiken/asynq"
)

const TypeReconcileCheckedIn = "stats:reconcile-checked-in"

// NewReconcileCheckedInTask สร้าง task สำหรับ sync cache flag กับ event log
func NewReconcileCheckedInTask() *asynq.Task {
	return asynq.NewTask(TypeReconcileCheckedIn, nil)
}
