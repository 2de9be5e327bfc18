package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestWeekStart(t *testing.T) {
	cases := map[string]string{
		"2025-01-06": "2025-01-06", // Monday
		"2025-01-08": "2025-01-06", // Wednesday
		"2025-01-12": "2025-01-06", // Sunday belongs to the week that started Monday
		"2025-01-13": "2025-01-13",
	}
	for in, want := range cases {
		assert.Equal(t, want, WeekStart(day(in)).Format("2006-01-02"), in)
	}
}

func TestDateOf_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// 23:30 UTC on the 9th is already the 10th at UTC+7.
	instant := time.Date(2025, 1, 9, 23, 30, 0, 0, time.UTC).In(loc)
	assert.Equal(t, day("2025-01-10"), DateOf(instant))
}

func TestEachDay(t *testing.T) {
	var got []string
	err := EachDay(day("2025-01-10"), day("2025-01-12"), func(d time.Time) error {
		got = append(got, d.Format("2006-01-02"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-10", "2025-01-11", "2025-01-12"}, got)

	var count int
	require.NoError(t, EachDay(day("2025-02-28"), day("2025-03-01"), func(time.Time) error {
		count++
		return nil
	}))
	assert.Equal(t, 2, count)

	boom := errors.New("boom")
	calls := 0
	err = EachDay(day("2025-01-01"), day("2025-01-05"), func(time.Time) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestListFilter_Validate(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.NoError(t, (&ListFilter{}).Validate())
	assert.NoError(t, (&ListFilter{StartDate: s("2025-01-01"), EndDate: s("2025-01-31")}).Validate())
	assert.Error(t, (&ListFilter{StartDate: s("2025-01-01")}).Validate())
	assert.Error(t, (&ListFilter{StartDate: s("bad"), EndDate: s("2025-01-31")}).Validate())
	assert.ErrorIs(t, (&ListFilter{StartDate: s("2025-02-01"), EndDate: s("2025-01-31")}).Validate(), ErrInvalidRange)
}

func TestAdminUpdateRequest_Validate(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.NoError(t, (&AdminUpdateRequest{Status: "half-day", CheckIn: s("09:00"), CheckOut: s("13:00")}).Validate())
	assert.NoError(t, (&AdminUpdateRequest{Status: "absent"}).Validate())
	assert.Error(t, (&AdminUpdateRequest{Status: "late"}).Validate())
	assert.Error(t, (&AdminUpdateRequest{Status: "present", CheckIn: s("9am")}).Validate())
}
