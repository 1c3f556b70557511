package handlers

// HandlerBundle collects the assembled handlers for route registration.
type HandlerBundle struct {
	Booking      *BookingHandler
	Appointments *AppointmentHandler
	Services     *ServiceHandler
	Hours        *HoursHandler
	Journey      *JourneyHandler
	Settings     *SettingsHandler
	Dashboard    *DashboardHandler
	Storage      *StorageHandler
}
