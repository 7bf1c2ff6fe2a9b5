package models

import "time"

// ประเภทของ CheckEvent
const (
	EventCheckIn  = "check-in"
	EventCheckOut = "check-out"
)

// CheckEvent บันทึกการเช็คชื่อหนึ่งครั้ง (append-only, ไม่แก้ไขหรือลบ)
// The current status of a participant is the Kind of their most recent
// event by At; no event means not checked in.
type CheckEvent struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	ParticipantID string    `bson:"participantId" json:"participantId"`
	VolunteerID   string    `bson:"volunteerId" json:"volunteerId"`
	Kind          string    `bson:"kind" json:"kind"` // "check-in" หรือ "check-out"
	At            time.Time `bson:"at" json:"at"`     // store กำหนดตอนเขียน
}
