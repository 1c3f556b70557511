package models

// ClinicStats is the aggregate view shown on the admin dashboard.
type ClinicStats struct {
	TotalRevenue         int     `json:"totalRevenue"`
	UpcomingAppointments int     `json:"upcomingAppointments"`
	ActiveClients        int     `json:"activeClients"`
	TopService           string  `json:"topService"`
	MonthlyGrowth        float64 `json:"monthlyGrowth"`
}
