package booking

import "time"

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time. All dates
// are normalized here, at the boundary, so the calendar logic below only
// ever sees whole days.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// BuildCalendar expands the inclusive range [from, to] into one entry per
// calendar day, marking a day booked iff some range in booked contains it.
// Stepping uses AddDate, not a 24h duration, so the walk stays correct
// across daylight-saving transitions. An inverted range yields an empty
// calendar.
func BuildCalendar(from, to time.Time, booked []DateRange) []AvailabilityDay {
	days := make([]AvailabilityDay, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		isBooked := false
		for _, r := range booked {
			if !r.StartDate.After(d) && !r.EndDate.Before(d) {
				isBooked = true
				break
			}
		}
		days = append(days, AvailabilityDay{Date: d.Format(DateLayout), Booked: isBooked})
	}
	return days
}
