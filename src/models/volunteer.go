package models

import "time"

// Volunteer อาสาสมัครที่ทำหน้าที่สแกน QR
type Volunteer struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Name         string     `bson:"name" json:"name" validate:"required"`
	Email        string     `bson:"email" json:"email" validate:"required,email"` // ใช้เป็น login key
	VolunteerID  string     `bson:"volunteerId" json:"volunteerId" validate:"required"`
	RegisteredAt time.Time  `bson:"registeredAt" json:"registeredAt"`
	LastLogin    *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}
