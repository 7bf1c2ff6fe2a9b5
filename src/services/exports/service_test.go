package exports

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/services/checkin"
	"Backend-EventEase/src/store"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParticipantsXLSX(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st)
	ci := checkin.NewService(st)

	p1, err := st.InsertParticipant(ctx, models.Participant{
		Name: "Somchai Jaidee", Email: "somchai@example.com", CollegeID: "CS101",
		College: "Demo University", Phone: "+6612345678",
	})
	require.NoError(t, err)
	_, err = st.InsertParticipant(ctx, models.Participant{
		Name: "Jane Smith", Email: "jane@example.com", CollegeID: "CS102",
		College: "Demo College", Phone: "+1234567891",
	})
	require.NoError(t, err)

	_, err = ci.CheckIn(ctx, p1.ID, "V1")
	require.NoError(t, err)

	data, filename, err := svc.ParticipantsXLSX(ctx)
	require.NoError(t, err)
	assert.Contains(t, filename, "EventEase_Participants_")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Participants")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 participants

	assert.Equal(t, "Participant ID", rows[0][0])
	assert.Equal(t, "Checked In", rows[0][7])

	// participant ที่เช็คอินแล้วต้องมี Yes พร้อมเวลา
	byID := map[string][]string{}
	for _, row := range rows[1:] {
		byID[row[0]] = row
	}
	require.Contains(t, byID, p1.ID)
	assert.Equal(t, "Yes", byID[p1.ID][7])
	assert.NotEqual(t, "N/A", byID[p1.ID][8])
}

func TestVolunteersXLSX(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st)

	_, err := st.InsertVolunteer(ctx, models.Volunteer{
		Name: "Alice Johnson", Email: "alice@volunteer.com", VolunteerID: "VOL-001",
	})
	require.NoError(t, err)

	data, filename, err := svc.VolunteersXLSX(ctx)
	require.NoError(t, err)
	assert.Contains(t, filename, "EventEase_Volunteers_")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Volunteers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "VOL-001", rows[1][0])
	assert.Equal(t, "Never", rows[1][4])
}
