package models

import "time"

// Participant ผู้เข้าร่วมงาน
type Participant struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name" validate:"required"`
	Email        string    `bson:"email" json:"email" validate:"required,email"`
	CollegeID    string    `bson:"collegeId" json:"collegeId" validate:"required"`
	College      string    `bson:"college" json:"college" validate:"required"`
	Phone        string    `bson:"phone" json:"phone" validate:"required"`
	QRCode       string    `bson:"qrCode" json:"qrCode"` // payload ที่ encode ลงรูป QR (= ID)
	RegisteredAt time.Time `bson:"registeredAt" json:"registeredAt"`
	// CheckedIn is a convenience cache only. The CheckEvent log is the
	// authoritative source of the current status.
	CheckedIn bool `bson:"checkedIn" json:"checkedIn"`
}
