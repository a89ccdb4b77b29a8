package book

import "time"

// windowDays is how far ahead the birthday query looks, inclusive.
const windowDays = 7

// Greeting pairs a contact with the date to congratulate them on.
type Greeting struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
}

// UpcomingBirthdays returns, in insertion order, a greeting for every contact
// whose next birthday falls within the next seven days of today, today
// included. Birthdays landing on a Saturday or Sunday shift forward to the
// following Monday. Comparisons are date-only: the time of day in today is
// ignored.
func (b *Book) UpcomingBirthdays(today time.Time) []Greeting {
	today = midnight(today)

	var out []Greeting
	for _, r := range b.Records() {
		if r.Birthday == nil {
			continue
		}

		bd := r.Birthday.Date()
		next := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = time.Date(today.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		}

		days := int(next.Sub(today).Hours() / 24)
		if days < 0 || days > windowDays {
			continue
		}

		if mondayWeekday(next) >= 5 {
			next = nextMonday(next)
		}

		out = append(out, Greeting{
			Name:               r.Name,
			CongratulationDate: next.Format("2006-01-02"),
		})
	}
	return out
}

// mondayWeekday converts Go's Sunday=0 numbering to Monday=0..Sunday=6, the
// numbering the weekend-shift check is written against.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// nextMonday shifts t forward to the following Monday. A Monday stays put,
// but callers only pass weekend dates here.
func nextMonday(t time.Time) time.Time {
	return t.AddDate(0, 0, (7-mondayWeekday(t))%7)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
