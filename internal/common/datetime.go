package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMMDDWithTime          = "2006-01-02 15:04:05"
	DateFormatYYYYMMDDHHMMSSWithoutDash = "20060102150405"
	DateFormatYYYYMMDDWithTimeAndOffset = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

// TIMEZONE
const (
	TimezoneJakarta = "Asia/Jakarta"
)

func GetLocation() *time.Location {
	loc, err := time.LoadLocation(TimezoneJakarta)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ParseStringToDatetime(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// DaysBetween returns the absolute number of whole days between two dates,
// ignoring the time-of-day component.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	at := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bt := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)

	days := int(bt.Sub(at).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
