package membercrm

import "time"

// AgeGroup is a coarse age bracket derived from a date of birth.
type AgeGroup string

const (
	AgeGroupUnknown   AgeGroup = ""
	AgeGroupUnder18   AgeGroup = "0-17"
	AgeGroup18To25    AgeGroup = "18-25"
	AgeGroup26To35    AgeGroup = "26-35"
	AgeGroup36To45    AgeGroup = "36-45"
	AgeGroup46To55    AgeGroup = "46-55"
	AgeGroup56AndOver AgeGroup = "56+"
)

func (g AgeGroup) String() string { return string(g) }

// ageGroupBounds holds the exclusive upper bound of each bracket.
var ageGroupBounds = []struct {
	below int
	group AgeGroup
}{
	{18, AgeGroupUnder18},
	{26, AgeGroup18To25},
	{36, AgeGroup26To35},
	{46, AgeGroup36To45},
	{56, AgeGroup46To55},
}

// AgeGroupOf returns the bracket containing age. Negative ages have no
// bracket.
func AgeGroupOf(age int) AgeGroup {
	if age < 0 {
		return AgeGroupUnknown
	}
	for _, b := range ageGroupBounds {
		if age < b.below {
			return b.group
		}
	}
	return AgeGroup56AndOver
}

// AgeOn returns the number of whole years between dob and now. The current
// year only counts once the birthday has been reached.
func AgeOn(dob Date, now time.Time) int {
	y, m, d := now.Date()
	age := y - dob.Year()
	if m < dob.Month() || (m == dob.Month() && d < dob.Day()) {
		age--
	}
	return age
}

// DaysUntilNext returns the number of days from now until the next
// anniversary of d's month and day. It is 0 on the day itself. Dates on
// 29 February fall on 28 February in non-leap years.
func DaysUntilNext(d Date, now time.Time) int {
	today := NewDate(now.Date())
	next := occurrence(d, today.Year())
	if next.Before(today.Time) {
		next = occurrence(d, today.Year()+1)
	}
	return int(next.Sub(today.Time).Hours() / 24)
}

func occurrence(d Date, year int) time.Time {
	day := d.Day()
	if d.Month() == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, d.Month(), day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
