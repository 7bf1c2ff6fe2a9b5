package exports

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const timeLayout = "2006-01-02 15:04:05"

// Service สร้างไฟล์ Excel จาก snapshot ของข้อมูล ณ เวลาที่ export
// Exports read point-in-time snapshots, not subscriptions.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// ParticipantsXLSX exports all participants joined with their latest
// check-in event.
func (s *Service) ParticipantsXLSX(ctx context.Context) ([]byte, string, error) {
	participants, err := s.store.AllParticipants(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("fetch participants failed: %w", err)
	}
	events, err := s.store.AllCheckEvents(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("fetch check events failed: %w", err)
	}

	// map participantId -> check-in ล่าสุด (events เรียงตาม at อยู่แล้ว)
	latestCheckIn := make(map[string]models.CheckEvent)
	for _, ev := range events {
		if ev.Kind == models.EventCheckIn {
			latestCheckIn[ev.ParticipantID] = ev
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Participants"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Participant ID", "Name", "Email", "College", "College ID", "Phone", "Registered At", "Checked In", "Check-in Time"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range participants {
		checkedIn := "No"
		checkInTime := "N/A"
		if ev, ok := latestCheckIn[p.ID]; ok {
			checkedIn = "Yes"
			checkInTime = ev.At.Format(timeLayout)
		}
		values := []interface{}{
			p.ID, p.Name, p.Email, p.College, p.CollegeID, p.Phone,
			p.RegisteredAt.Format(timeLayout), checkedIn, checkInTime,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write xlsx failed: %w", err)
	}
	filename := fmt.Sprintf("EventEase_Participants_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// VolunteersXLSX exports all volunteers.
func (s *Service) VolunteersXLSX(ctx context.Context) ([]byte, string, error) {
	volunteers, err := s.store.AllVolunteers(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("fetch volunteers failed: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Volunteers"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Volunteer ID", "Name", "Email", "Registered At", "Last Login"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, v := range volunteers {
		lastLogin := "Never"
		if v.LastLogin != nil {
			lastLogin = v.LastLogin.Format(timeLayout)
		}
		values := []interface{}{
			v.VolunteerID, v.Name, v.Email, v.RegisteredAt.Format(timeLayout), lastLogin,
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write xlsx failed: %w", err)
	}
	filename := fmt.Sprintf("EventEase_Volunteers_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
