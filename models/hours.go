package models

// DailyHours maps a weekday (0 = Sunday .. 6 = Saturday) to the ordered list
// of "HH:MM" slots bookable on that weekday. It is calendar-date-independent:
// a one-off closure on a single date cannot be expressed here. An absent or
// empty entry means the clinic is closed that day.
type DailyHours map[int][]string

// DefaultDailyHours returns the clinic's standard week: Sunday through
// Thursday with a midday break, Friday and Saturday closed.
func DefaultDailyHours() DailyHours {
	week := []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}
	hours := DailyHours{}
	for day := 0; day <= 4; day++ {
		slots := make([]string, len(week))
		copy(slots, week)
		hours[day] = slots
	}
	hours[5] = []string{}
	hours[6] = []string{}
	return hours
}
