package jobs

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleReconcileCheckedInTask(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	p1, err := st.InsertParticipant(ctx, models.Participant{
		Name: "John Doe", Email: "john@example.com", CollegeID: "CS001",
		College: "Demo University", Phone: "+1234567890",
	})
	require.NoError(t, err)
	p2, err := st.InsertParticipant(ctx, models.Participant{
		Name: "Jane Smith", Email: "jane@example.com", CollegeID: "CS002",
		College: "Demo University", Phone: "+1234567891",
	})
	require.NoError(t, err)

	// p1 เช็คอินใน log แต่ flag ใน cache หลุด (จำลอง refresh ที่หายไป)
	_, err = st.AppendCheckEvent(ctx, models.CheckEvent{
		ParticipantID: p1.ID, VolunteerID: "V1", Kind: models.EventCheckIn,
	})
	require.NoError(t, err)
	require.NoError(t, st.SetParticipantCheckedIn(ctx, p1.ID, false))

	// p2 ไม่มี event แต่ flag ค้างเป็น true
	require.NoError(t, st.SetParticipantCheckedIn(ctx, p2.ID, true))

	handler := HandleReconcileCheckedInTask(st)
	require.NoError(t, handler(ctx, NewReconcileCheckedInTask()))

	got1, err := st.FindParticipantByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.True(t, got1.CheckedIn)

	got2, err := st.FindParticipantByID(ctx, p2.ID)
	require.NoError(t, err)
	assert.False(t, got2.CheckedIn)
}
