package models

// TemplateKind names one of the four notification templates.
type TemplateKind string

const (
	TemplateConfirmation TemplateKind = "confirmation"
	TemplateCancellation TemplateKind = "cancellation"
	TemplateReminder     TemplateKind = "reminder"
	TemplatePending      TemplateKind = "pending"
)

// MessageTemplates holds the administrator-edited notification texts.
// Each template may contain the placeholder tokens {clientName}, {date},
// {time}, {serviceName} and {spiritualInsight}; substitution is purely
// textual.
type MessageTemplates struct {
	Confirmation string `bson:"confirmation" json:"confirmation"`
	Cancellation string `bson:"cancellation" json:"cancellation"`
	Reminder     string `bson:"reminder" json:"reminder"`
	Pending      string `bson:"pending" json:"pending"`
}

// Get returns the template text for kind, or "" for an unknown kind.
func (m MessageTemplates) Get(kind TemplateKind) string {
	switch kind {
	case TemplateConfirmation:
		return m.Confirmation
	case TemplateCancellation:
		return m.Cancellation
	case TemplateReminder:
		return m.Reminder
	case TemplatePending:
		return m.Pending
	}
	return ""
}

// DefaultMessageTemplates returns the clinic's stock Hebrew templates.
func DefaultMessageTemplates() MessageTemplates {
	return MessageTemplates{
		Confirmation: `שלום {clientName} היקר/ה 💕
איזה כיף! נקבע לנו מפגש של {serviceName}.

🗓️ מתי? {date}
⏰ באיזו שעה? {time}

מחכה לראותך ולצאת לדרך משותפת! ✨
רבקה לפיד.`,
		Cancellation: `שלום {clientName},
רציתי לעדכן שהמפגש שלנו ל-{serviceName} בתאריך {date} בשעה {time} בוטל לצערי.

ניתן ליצור קשר או לתאם מועד חדש דרך האתר.
יום מלא באור ושקט 🌿
רבקה.`,
		Reminder: `היי {clientName} 🌸
תזכורת באהבה - מחר ({date}) בשעה {time} אנחנו נפגשים.

מחכה לראותך!
רבקה לפיד 🤍`,
		Pending: `שלום {clientName},
קיבלתי את הבקשה באהבה למפגש {serviceName} בתאריך {date} בשעה {time}.

התור כרגע ממתין לאישור סופי ביומן שלי, העדכון יישלח ממש בקרוב! ✨
רבקה.`,
	}
}
