package models

import "time"

// AppointmentStatus is the closed set of appointment states.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid reports whether s is one of the declared statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a single booked session. Date carries no timezone; it is a
// naive "YYYY-MM-DD" calendar date and Time is an "HH:MM" slot taken from the
// weekday's working hours. The client's phone number is their durable
// identity key across appointments and journey notes.
type Appointment struct {
	ID               string            `bson:"id" json:"id"`
	ServiceID        string            `bson:"service_id" json:"serviceId"`
	ClientName       string            `bson:"client_name" json:"clientName"`
	ClientEmail      string            `bson:"client_email,omitempty" json:"clientEmail,omitempty"`
	ClientPhone      string            `bson:"client_phone" json:"clientPhone"`
	Date             string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time             string            `bson:"time" json:"time"` // "HH:MM"
	Status           AppointmentStatus `bson:"status" json:"status"`
	SpiritualInsight string            `bson:"spiritual_insight,omitempty" json:"spiritualInsight,omitempty"`
	CreatedAt        time.Time         `bson:"created_at" json:"createdAt"`
}

// AppointmentUpdate carries a partial update; nil fields are left untouched.
type AppointmentUpdate struct {
	ServiceID        *string            `json:"serviceId,omitempty"`
	ClientName       *string            `json:"clientName,omitempty"`
	ClientEmail      *string            `json:"clientEmail,omitempty"`
	ClientPhone      *string            `json:"clientPhone,omitempty"`
	Date             *string            `json:"date,omitempty"`
	Time             *string            `json:"time,omitempty"`
	Status           *AppointmentStatus `json:"status,omitempty"`
	SpiritualInsight *string            `json:"spiritualInsight,omitempty"`
}
