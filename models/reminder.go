package models

// ReminderPayload is the task body for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClientPhone   string `json:"clientPhone"`
	Message       string `json:"message"`
}
