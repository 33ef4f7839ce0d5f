package membercrm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeOn(t *testing.T) {
	dob := NewDate(2000, time.March, 10)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", time.Date(2024, time.March, 9, 23, 0, 0, 0, time.UTC), 23},
		{"on birthday", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), 24},
		{"earlier month", time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), 23},
		{"later month", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeOn(dob, tt.now))
		})
	}
}

func TestAgeGroupOf(t *testing.T) {
	tests := []struct {
		age  int
		want AgeGroup
	}{
		{-1, AgeGroupUnknown},
		{0, AgeGroupUnder18},
		{17, AgeGroupUnder18},
		{18, AgeGroup18To25},
		{25, AgeGroup18To25},
		{26, AgeGroup26To35},
		{35, AgeGroup26To35},
		{36, AgeGroup36To45},
		{45, AgeGroup36To45},
		{46, AgeGroup46To55},
		{55, AgeGroup46To55},
		{56, AgeGroup56AndOver},
		{101, AgeGroup56AndOver},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeGroupOf(tt.age), "age %d", tt.age)
	}
}

func TestDaysUntilNext(t *testing.T) {
	tests := []struct {
		name string
		date Date
		now  time.Time
		want int
	}{
		{
			name: "later this year",
			date: NewDate(2013, time.December, 27),
			now:  time.Date(2024, time.December, 20, 15, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "today",
			date: NewDate(2013, time.December, 27),
			now:  time.Date(2024, time.December, 27, 18, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "already passed rolls to next year",
			date: NewDate(2013, time.January, 2),
			now:  time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "leap day in a common year",
			date: NewDate(2000, time.February, 29),
			now:  time.Date(2023, time.February, 27, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "leap day in a leap year",
			date: NewDate(2000, time.February, 29),
			now:  time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilNext(tt.date, tt.now))
		})
	}
}

func TestMaritalInformation_DaysUntilAnniversary(t *testing.T) {
	now := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)

	mi := &MaritalInformation{WeddingAnniversary: Ptr(NewDate(2013, time.December, 27))}
	days, ok := mi.DaysUntilAnniversary(now)
	assert.True(t, ok)
	assert.Equal(t, 7, days)

	_, ok = (&MaritalInformation{}).DaysUntilAnniversary(now)
	assert.False(t, ok)

	var absent *MaritalInformation
	_, ok = absent.DaysUntilAnniversary(now)
	assert.False(t, ok)
}
