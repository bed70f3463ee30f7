package models

// StatusCount is one bucket of a grouped count.
type StatusCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

// AdminStats is the aggregate payload behind the admin dashboard.
type AdminStats struct {
	TotalUsers           int64         `json:"totalUsers"`
	ActiveUsers          int64         `json:"activeUsers"`
	Doctors              int64         `json:"doctors"`
	Patients             int64         `json:"patients"`
	Appointments         int64         `json:"appointments"`
	PendingAppointments  int64         `json:"pendingAppointments"`
	RecentUsers          []UserSummary `json:"recentUsers"`
	AppointmentsByStatus []StatusCount `json:"appointmentsByStatus"`
	UsersByRole          []StatusCount `json:"usersByRole"`
}
