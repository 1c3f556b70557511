package models

import "time"

// JourneyNote is a free-text entry attached to a client by phone number,
// independent of any appointment. ClientName is a snapshot taken at write
// time, not a reference. Notes are append-only; the phone key is matched by
// exact string equality with no format normalization.
type JourneyNote struct {
	ID          string    `bson:"id" json:"id"`
	ClientPhone string    `bson:"client_phone" json:"clientPhone"`
	ClientName  string    `bson:"client_name" json:"clientName"`
	Content     string    `bson:"content" json:"content"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
