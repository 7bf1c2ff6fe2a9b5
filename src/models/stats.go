package models

// DashboardStats สถิติสำหรับหน้า admin dashboard
// Derived from Participants and CheckEvents, never persisted.
type DashboardStats struct {
	TotalRegistrations int          `json:"totalRegistrations"`
	TotalCheckedIn     int          `json:"totalCheckedIn"`
	RecentCheckIns     []CheckEvent `json:"recentCheckIns"`
}
