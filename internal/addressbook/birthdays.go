package addressbook

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gitlab.com/dirk.krummacker/assistant/internal/model"
)

// Clock returns the current time. It is replaced in tests.
type Clock interface {
	Now() time.Time
}

// systemClock reads the time of the machine.
type systemClock struct{}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}

// UpcomingBirthday is one occurrence of a contact's birthday within the requested window.
type UpcomingBirthday struct {
	Name               string `json:"name"`
	Birthday           string `json:"birthday"`
	CongratulationDate string `json:"congratulation_date"`

	occurrence time.Time
}

// Occurrence returns the date on which the birthday falls.
func (u UpcomingBirthday) Occurrence() time.Time {
	return u.occurrence
}

// GetUpcomingBirthdays parses daysAhead as a non-negative number of days and returns the birthdays
// from today up to and including today plus that many days.
func (b *AddressBook) GetUpcomingBirthdays(daysAhead string) ([]UpcomingBirthday, error) {
	days, err := strconv.Atoi(strings.TrimSpace(daysAhead))
	if err != nil || days < 0 {
		return nil, fmt.Errorf("%w: number of days must be a non-negative integer, got '%s'",
			model.ErrInvalidArgument, daysAhead)
	}
	return b.UpcomingBirthdays(days), nil
}

// UpcomingBirthdays returns every birthday occurrence within [today, today+days]. A window longer
// than a year yields one entry per occurrence. An occurrence on a Saturday or Sunday is
// congratulated on the following Monday. The result is sorted by the year of the occurrence;
// within a year the contacts keep the order in which they were added.
func (b *AddressBook) UpcomingBirthdays(days int) []UpcomingBirthday {
	now := b.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, days)

	var upcoming []UpcomingBirthday
	for _, record := range b.Records() {
		birthday, set := record.Birthday()
		if !set {
			continue
		}
		year := today.Year()
		occurrence := project(birthday, year)
		if occurrence.Before(today) {
			year++
			occurrence = project(birthday, year)
		}
		for !occurrence.After(end) {
			upcoming = append(upcoming, UpcomingBirthday{
				Name:               record.Name().String(),
				Birthday:           occurrence.Format(model.DateLayout),
				CongratulationDate: congratulationDate(occurrence).Format(model.DateLayout),
				occurrence:         occurrence,
			})
			year++
			occurrence = project(birthday, year)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].occurrence.Year() < upcoming[j].occurrence.Year()
	})
	return upcoming
}

// project returns the month and day of the birthday in the given year. 29 February falls on
// 28 February in years that are not leap years.
func project(birthday model.Birthday, year int) time.Time {
	_, month, day := birthday.Time().Date()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// isLeap reports whether February of the year has 29 days.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// congratulationDate moves a date on a weekend to the following Monday.
func congratulationDate(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}
