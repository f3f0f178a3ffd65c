package validate

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateSeparator = '/'
	timeSeparator = ':'
)

// Maximum day for each month; February is refined by DaysInFebruary.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInFebruary returns 29 for Gregorian leap years and 28 otherwise.
func DaysInFebruary(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 29
	}
	return 28
}

// IsYear reports whether s is a two or four digit year.
func IsYear(s string) bool {
	if s == "" {
		return EmptyOK
	}
	return allDigits(s) && (len(s) == 2 || len(s) == 4)
}

func IsMonth(s string) bool  { return IsIntegerInRange(s, 1, 12) }
func IsDay(s string) bool    { return IsIntegerInRange(s, 1, 31) }
func IsHour(s string) bool   { return IsIntegerInRange(s, 0, 23) }
func IsMinute(s string) bool { return IsIntegerInRange(s, 0, 59) }
func IsSecond(s string) bool { return IsIntegerInRange(s, 0, 59) }

// IsDateParts reports whether year, month and day form a calendar date.
// All three parts are required.
func IsDateParts(year, month, day string) bool {
	if year == "" || month == "" || day == "" {
		return false
	}
	if !IsYear(year) || !IsMonth(month) || !IsDay(day) {
		return false
	}

	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if d > daysInMonth[m-1] {
		return false
	}
	if m == int(time.February) && d > DaysInFebruary(y) {
		return false
	}
	return true
}

// IsDate reports whether s is a MM/DD/YYYY (or MM/DD/YY) date.
func IsDate(s string) bool {
	if s == "" {
		return EmptyOK
	}
	first := strings.IndexByte(s, dateSeparator)
	last := strings.LastIndexByte(s, dateSeparator)
	if first <= 0 || first == last {
		return false
	}
	return IsDateParts(s[last+1:], s[:first], s[first+1:last])
}

// IsDateAfter reports whether date falls after ref. A MM/YYYY value, such as
// a card expiry, counts as the first day of the following month. Values
// without a '/' are rejected.
func IsDateAfter(date string, ref time.Time) bool {
	if date == "" {
		return EmptyOK
	}
	t, ok := parseSlashDate(date, ref.Location())
	return ok && t.After(ref)
}

// IsDateBefore reports whether date falls before ref, with the same MM/YYYY
// handling as IsDateAfter. A value without a month separator is a card issue
// number rather than a date and is accepted.
func IsDateBefore(date string, ref time.Time) bool {
	if date == "" {
		return EmptyOK
	}
	if strings.IndexByte(date, dateSeparator) <= 0 {
		return true
	}
	t, ok := parseSlashDate(date, ref.Location())
	return ok && t.Before(ref)
}

func IsDateAfterToday(date string) bool {
	return IsDateAfter(date, time.Now())
}

func IsDateBeforeToday(date string) bool {
	return IsDateBefore(date, time.Now())
}

// IsTimestampAfter reports whether t is after ref. The zero time never is.
func IsTimestampAfter(t, ref time.Time) bool {
	return !t.IsZero() && t.After(ref)
}

// IsTimestampBefore reports whether t is before ref. The zero time never is.
func IsTimestampBefore(t, ref time.Time) bool {
	return !t.IsZero() && t.Before(ref)
}

// parseSlashDate turns MM/DD/YYYY into midnight of that day and MM/YYYY into
// midnight of the first day of the next month. Two digit years are 20YY.
func parseSlashDate(date string, loc *time.Location) (time.Time, bool) {
	first := strings.IndexByte(date, dateSeparator)
	last := strings.LastIndexByte(date, dateSeparator)
	if first <= 0 {
		return time.Time{}, false
	}

	if first == last {
		month, year := date[:first], date[first+1:]
		if !IsDateParts(year, month, "1") {
			return time.Time{}, false
		}
		m, _ := strconv.Atoi(month)
		return time.Date(fullYear(year), time.Month(m)+1, 1, 0, 0, 0, 0, loc), true
	}

	month, day, year := date[:first], date[first+1:last], date[last+1:]
	if !IsDateParts(year, month, day) {
		return time.Time{}, false
	}
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return time.Date(fullYear(year), time.Month(m), d, 0, 0, 0, 0, loc), true
}

func fullYear(year string) int {
	y, _ := strconv.Atoi(year)
	if len(year) == 2 {
		y += 2000
	}
	return y
}

// IsTimeParts reports whether hour, minute and second form a clock time.
// All three parts are required.
func IsTimeParts(hour, minute, second string) bool {
	if hour == "" || minute == "" || second == "" {
		return false
	}
	return IsHour(hour) && IsMinute(minute) && IsSecond(second)
}

// IsTime reports whether s is HH:MM or HH:MM:SS.
func IsTime(s string) bool {
	if s == "" {
		return EmptyOK
	}
	first := strings.IndexByte(s, timeSeparator)
	last := strings.LastIndexByte(s, timeSeparator)
	if first <= 0 {
		return false
	}
	if first == last {
		return IsTimeParts(s[:first], s[first+1:], "0")
	}
	return IsTimeParts(s[:first], s[first+1:last], s[last+1:])
}
