package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// refNow is "now" for every test: March 15th 2017, 10:30:45 UTC.
var refNow = time.Date(2017, 3, 15, 10, 30, 45, 0, time.UTC)

func utcCalendar() engine.Gregorian {
	return engine.Gregorian{Location: time.UTC, Clock: MockClock{CurrentTime: refNow}}
}

// assertSameInstant compares instants regardless of their location pointer.
func assertSameInstant(t *testing.T, want, got time.Time) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %s, got %s", want, got)
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestGregorian_Decompose(t *testing.T) {
	cal := utcCalendar()

	tests := []struct {
		name string
		in   time.Time
		want engine.Fields
	}{
		{
			name: "AD",
			in:   time.Date(1974, 3, 16, 8, 9, 10, 0, time.UTC),
			want: engine.Fields{Era: engine.AD, Year: 1974, Month: 3, Day: 16, Hour: 8, Minute: 9, Second: 10},
		},
		{
			name: "First year AD",
			in:   time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
			want: engine.Fields{Era: engine.AD, Year: 1, Month: 1, Day: 1},
		},
		{
			name: "Astronomical year zero is 1 BC",
			in:   time.Date(0, 12, 31, 0, 0, 0, 0, time.UTC),
			want: engine.Fields{Era: engine.BC, Year: 1, Month: 12, Day: 31},
		},
		{
			name: "Deep BC",
			in:   time.Date(-1373, 3, 16, 0, 0, 0, 0, time.UTC),
			want: engine.Fields{Era: engine.BC, Year: 1374, Month: 3, Day: 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Decompose(tt.in))
		})
	}
}

func TestGregorian_Decompose_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	cal := engine.Gregorian{Location: loc}

	// 20:00 UTC on Dec 31st is already New Year in UTC+10.
	f := cal.Decompose(time.Date(1999, 12, 31, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, 2000, f.Year)
	assert.Equal(t, 1, f.Month)
	assert.Equal(t, 1, f.Day)
	assert.Equal(t, 6, f.Hour)
}

func TestGregorian_ComposeRoundTrip(t *testing.T) {
	cal := utcCalendar()

	for _, in := range []time.Time{
		time.Date(2017, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2000, 2, 29, 12, 0, 0, 0, time.UTC),
		time.Date(0, 2, 29, 0, 0, 0, 0, time.UTC), // 1 BC is a leap year.
		time.Date(-9998, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		out, err := cal.Compose(cal.Decompose(in))
		require.NoError(t, err, in.String())
		assertSameInstant(t, in, out)
	}
}

func TestGregorian_ComposeInvalid(t *testing.T) {
	cal := utcCalendar()

	tests := []struct {
		name string
		f    engine.Fields
	}{
		{"Year zero", engine.Fields{Era: engine.AD, Year: 0, Month: 1, Day: 1}},
		{"Unknown era", engine.Fields{Era: engine.Era(2), Year: 10, Month: 1, Day: 1}},
		{"Month thirteen", engine.Fields{Era: engine.AD, Year: 10, Month: 13, Day: 1}},
		{"Day zero", engine.Fields{Era: engine.AD, Year: 10, Month: 1, Day: 0}},
		{"February 30th", engine.Fields{Era: engine.AD, Year: 2016, Month: 2, Day: 30}},
		{"February 29th, 1900", engine.Fields{Era: engine.AD, Year: 1900, Month: 2, Day: 29}},
		{"April 31st", engine.Fields{Era: engine.BC, Year: 44, Month: 4, Day: 31}},
		{"Hour 24", engine.Fields{Era: engine.AD, Year: 10, Month: 1, Day: 1, Hour: 24}},
		{"Negative second", engine.Fields{Era: engine.AD, Year: 10, Month: 1, Day: 1, Second: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cal.Compose(tt.f)
			assert.ErrorIs(t, err, engine.ErrInvalidDate)
		})
	}
}

func TestGregorian_Now(t *testing.T) {
	assertSameInstant(t, refNow, utcCalendar().Now())

	// Without a clock the wall clock is used.
	before := time.Now()
	now := engine.Gregorian{}.Now()
	assert.False(t, now.Before(before.Add(-time.Second)))
}

func TestEra_String(t *testing.T) {
	assert.Equal(t, "BC", engine.BC.String())
	assert.Equal(t, "AD", engine.AD.String())
	assert.Equal(t, "Era(3)", engine.Era(3).String())
}
