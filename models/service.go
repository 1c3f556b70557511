package models

// ServiceType is the closed set of session types the clinic offers.
type ServiceType string

const (
	ServiceDiagnosis ServiceType = "אבחון נומרולוגי אישי"
	ServiceFocused   ServiceType = "תהליך ממוקד"
	ServiceDeep      ServiceType = "תהליך עומק"
	ServicePremium   ServiceType = "פרימיום!"
)

// IsValid reports whether t is one of the declared service types.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceDiagnosis, ServiceFocused, ServiceDeep, ServicePremium:
		return true
	}
	return false
}

// Service is a bookable offering. Duration is in minutes, Price in whole
// currency units. Nothing guards against deleting a service that existing
// appointments still reference; callers resolving a dangling ServiceID fall
// back to a generic session name.
type Service struct {
	ID          string      `bson:"id" json:"id"`
	Type        ServiceType `bson:"type" json:"type"`
	Duration    int         `bson:"duration" json:"duration"`
	Price       int         `bson:"price" json:"price"`
	Description string      `bson:"description" json:"description"`
	IsActive    bool        `bson:"is_active" json:"isActive"`
	ImageURL    string      `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}
