package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lapidclinic/models"
	"lapidclinic/utils"
)

// Deterministic fallbacks. Generation failures are absorbed here and must
// never surface to the booking or admin flow.
const (
	greetingFallback = "ברוכה הבאה למרחב של בהירות וצמיחה רגשית."
	greetingOnError  = "מחברים בין הנשמה לייעוד."
	insightFallback  = "המסע שלך לריפוי מתחיל בצעד אחד קטן. בטחי בתהליך."
	insightOnError   = "הדרך לריפוי היא מסע מקודש של גילוי עצמי."
	journalOnError   = "שבוע מלא בעשייה מבורכת בקליניקה. הלב מוביל את הדרך 🤍"
)

// AIService produces the site's short generative texts. Every method
// returns usable text unconditionally.
type AIService interface {
	DailyGreeting(ctx context.Context) string
	SpiritualInsight(ctx context.Context, serviceType models.ServiceType, clientName string) string
	WeeklyJournal(ctx context.Context, appts []models.Appointment, services []models.Service) string
}

// DefaultAIService wraps the Gemini client. A nil client (no API key)
// serves the fallbacks directly.
type DefaultAIService struct {
	client *GeminiClient
}

// NewDefaultAIService builds the service; an empty API key disables
// generation rather than failing startup.
func NewDefaultAIService(apiKey string) *DefaultAIService {
	if apiKey == "" {
		utils.GetLogger().Info("no Gemini API key configured, serving fallback texts")
		return &DefaultAIService{}
	}
	client, err := NewGeminiClient(apiKey)
	if err != nil {
		utils.GetLogger().Warn("failed to initialize Gemini client, serving fallback texts", zap.Error(err))
		return &DefaultAIService{}
	}
	return &DefaultAIService{client: client}
}

// DailyGreeting returns a one-line homepage subtitle.
func (s *DefaultAIService) DailyGreeting(ctx context.Context) string {
	if s.client == nil {
		return greetingOnError
	}
	prompt := `צור משפט אחד קצר, אלגנטי ומינימליסטי שישמש ככותרת משנה לאתר של רבקה לפיד, מטפלת רגשית ונומרולוגית.
החזר אך ורק את המשפט עצמו בעברית. אל תציע אפשרויות, אל תכתוב הקדמות, אל תשתמש במרכאות ואל תוסיף הסברים.`
	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("daily greeting generation failed", zap.Error(err))
		return greetingOnError
	}
	return cleanGreeting(text)
}

// SpiritualInsight returns a short grounding sentence for a fresh booking.
func (s *DefaultAIService) SpiritualInsight(ctx context.Context, serviceType models.ServiceType, clientName string) string {
	if s.client == nil {
		return insightOnError
	}
	prompt := fmt.Sprintf(`צור "כוונה רוחנית" אחת, קצרה מאוד, מרגיעה ומקרקעת עבור %s שקבעה כרגע מפגש מסוג %s אצל רבקה לפיד.
החזר אך ורק משפט אחד או שניים בעברית. ללא הקדמות, ללא מרכאות וללא מספרים.`, clientName, serviceType)
	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("spiritual insight generation failed", zap.Error(err))
		return insightOnError
	}
	line := firstLine(text)
	if line == "" {
		return insightFallback
	}
	return line
}

// WeeklyJournal summarizes the coming week's confirmed sessions for the
// admin journal tab.
func (s *DefaultAIService) WeeklyJournal(ctx context.Context, appts []models.Appointment, services []models.Service) string {
	if s.client == nil {
		return journalOnError
	}

	typeByID := make(map[string]models.ServiceType, len(services))
	for _, svc := range services {
		typeByID[svc.ID] = svc.Type
	}
	var lines []string
	for _, appt := range appts {
		if appt.Status != models.StatusConfirmed {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s, %s בשעה %s, %s", appt.ClientName, appt.Date, appt.Time, typeByID[appt.ServiceID]))
	}

	prompt := fmt.Sprintf(`כתבי סיכום שבועי קצר וחם, בפסקה אחת בעברית, עבור יומן הקליניקה של רבקה לפיד, על בסיס רשימת המפגשים הבאה:
%s
החזירי אך ורק את הפסקה עצמה, ללא כותרות וללא הקדמות.`, strings.Join(lines, "\n"))
	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("weekly journal generation failed", zap.Error(err))
		return journalOnError
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return journalOnError
	}
	return text
}

// cleanGreeting keeps the first line that does not look like a header, in
// case the model offers options despite instructions.
func cleanGreeting(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return greetingFallback
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.Contains(line, ":") {
			return line
		}
	}
	return text
}

func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
