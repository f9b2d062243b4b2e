package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(hour, minute int) NowFunc {
	return func() time.Time {
		return time.Date(2025, time.November, 2, hour, minute, 42, 0, time.UTC)
	}
}

func TestNewSeedsOneEntryAtCapturedTime(t *testing.T) {
	l := New(WithClock(fixedClock(9, 5)))

	require.Equal(t, 1, l.Len())
	entry, err := l.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "09:05", entry.LoginString())
	assert.Equal(t, "", entry.LogoutString())
	assert.Equal(t, "", entry.TotalTime())
	assert.True(t, entry.IsOpen())
	assert.NotEmpty(t, l.SessionID())
}

func TestNewWithoutSeedStartsEmpty(t *testing.T) {
	l := New(WithClock(fixedClock(9, 5)), WithSeed(false), WithSessionID("abc"))

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "abc", l.SessionID())
	assert.Equal(t, "09:05", l.Captured().String())
}

func TestAddEntryReusesCapturedLogin(t *testing.T) {
	calls := 0
	now := func() time.Time {
		calls++
		return time.Date(2025, time.November, 2, 8+calls, 30, 0, 0, time.UTC)
	}
	l := New(WithClock(now))

	before := l.Len()
	added := l.AddEntry()

	assert.Equal(t, before+1, l.Len())
	assert.Equal(t, "09:30", added.LoginString())
	assert.Equal(t, "", added.LogoutString())
	assert.Equal(t, "", added.TotalTime())
	assert.Equal(t, 1, calls, "clock should be sampled once at initialization")
}

func TestRecordLogoutComputesEntryAndTotal(t *testing.T) {
	l := New(WithClock(fixedClock(9, 5)))

	entry, err := l.RecordLogoutAndRecompute(0, "17:05")
	require.NoError(t, err)

	assert.Equal(t, "17:05", entry.LogoutString())
	assert.Equal(t, "8 hours and 0 minutes", entry.TotalTime())
	assert.Equal(t, Duration{Hours: 8}, l.Total())
}

func TestRecordLogoutCarriesMinuteRemainder(t *testing.T) {
	l := New(WithClock(fixedClock(9, 5)))
	l.AddEntry()

	_, err := l.RecordLogoutAndRecompute(0, "17:05")
	require.NoError(t, err)
	_, err = l.RecordLogoutAndRecompute(1, "12:50")
	require.NoError(t, err)

	total := l.Total()
	assert.Equal(t, 11, total.Hours)
	assert.Equal(t, 45, total.Minutes)
	assert.Equal(t, "11 hours and 45 minutes", total.String())
}

func TestRecordLogoutOutOfRangeLeavesLedgerUnchanged(t *testing.T) {
	l := New(WithClock(fixedClock(9, 5)))
	l.AddEntry()
	before := l.Entries()

	_, err := l.RecordLogoutAndRecompute(5, "17:00")
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.RecordLogoutAndRecompute(-1, "17:00")
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Equal(t, before, l.Entries())
	assert.True(t, l.Total().IsZero())
}

func TestRecordLogoutRejectsBadInput(t *testing.T) {
	l := New(WithClock(fixedClock(9, 5)))

	_, err := l.RecordLogoutAndRecompute(0, "five pm")
	require.ErrorIs(t, err, ErrInvalidClock)

	_, err = l.RecordLogoutAndRecompute(0, "08:00")
	require.ErrorIs(t, err, ErrLogoutBeforeLogin)

	entry, err := l.Entry(0)
	require.NoError(t, err)
	assert.True(t, entry.IsOpen())
	assert.Equal(t, "", entry.TotalTime())
}

func TestRecordLogoutEmptyReopensEntry(t *testing.T) {
	l := New(WithClock(fixedClock(9, 5)))

	_, err := l.RecordLogoutAndRecompute(0, "10:05")
	require.NoError(t, err)
	require.Equal(t, Duration{Hours: 1}, l.Total())

	entry, err := l.RecordLogoutAndRecompute(0, "")
	require.NoError(t, err)
	assert.True(t, entry.IsOpen())
	assert.Equal(t, "", entry.TotalTime())
	assert.True(t, l.Total().IsZero())
}

func TestRecordLogoutBlankReopensEntry(t *testing.T) {
	l := New(WithClock(fixedClock(9, 5)))

	_, err := l.RecordLogoutAndRecompute(0, "10:05")
	require.NoError(t, err)

	entry, err := l.RecordLogoutAndRecompute(0, "   ")
	require.NoError(t, err)
	assert.True(t, entry.IsOpen())
	assert.True(t, l.Total().IsZero())

	entry, err = l.RecordLogoutAndRecompute(0, " 11:35 ")
	require.NoError(t, err)
	assert.Equal(t, "2 hours and 30 minutes", entry.TotalTime())
}

func TestRecordLogoutOverwrite(t *testing.T) {
	l := New(WithClock(fixedClock(9, 0)))

	_, err := l.RecordLogoutAndRecompute(0, "10:00")
	require.NoError(t, err)
	entry, err := l.RecordLogoutAndRecompute(0, "12:30")
	require.NoError(t, err)

	assert.Equal(t, "3 hours and 30 minutes", entry.TotalTime())
	assert.Equal(t, Duration{Hours: 3, Minutes: 30}, l.Total())
}

func TestRemoveEntryShiftsLaterRows(t *testing.T) {
	l := New(WithClock(fixedClock(9, 0)))
	l.AddEntry()
	l.AddEntry()
	_, err := l.RecordLogoutAndRecompute(2, "11:15")
	require.NoError(t, err)

	removed, err := l.RemoveEntry(1)
	require.NoError(t, err)
	assert.True(t, removed.IsOpen())

	require.Equal(t, 2, l.Len())
	moved, err := l.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, "11:15", moved.LogoutString())
}

func TestRemoveEntryDoesNotRecompute(t *testing.T) {
	l := New(WithClock(fixedClock(9, 0)))
	_, err := l.RecordLogoutAndRecompute(0, "10:00")
	require.NoError(t, err)

	_, err = l.RemoveEntry(0)
	require.NoError(t, err)
	assert.Equal(t, Duration{Hours: 1}, l.Total())

	assert.True(t, l.Recompute().IsZero())
	assert.True(t, l.Total().IsZero())
}

func TestRemoveEntryOutOfRange(t *testing.T) {
	l := New(WithClock(fixedClock(9, 0)), WithSeed(false))

	_, err := l.RemoveEntry(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 0, l.Len())
}

func TestEntriesReturnsCopies(t *testing.T) {
	l := New(WithClock(fixedClock(9, 0)))
	_, err := l.RecordLogoutAndRecompute(0, "10:00")
	require.NoError(t, err)

	view := l.Entries()
	*view[0].Logout = Clock(0)
	view[0].Total.Hours = 99

	entry, err := l.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "10:00", entry.LogoutString())
	assert.Equal(t, "1 hours and 0 minutes", entry.TotalTime())
}

func TestSumDurationsSkipsOpenRows(t *testing.T) {
	eight := Duration{Hours: 8}
	partial := Duration{Hours: 3, Minutes: 45}
	entries := []Entry{
		{Total: &eight},
		{},
		{Total: &partial},
	}

	assert.Equal(t, Duration{Hours: 11, Minutes: 45}, SumDurations(entries))
}

func TestSumStrings(t *testing.T) {
	total, err := SumStrings([]string{"8 hours and 0 minutes", "", "3 hours and 45 minutes", "1 hour and 30 minutes"})
	require.NoError(t, err)
	assert.Equal(t, Duration{Hours: 13, Minutes: 15}, total)

	_, err = SumStrings([]string{"8 hours and 0 minutes", "banana"})
	require.ErrorIs(t, err, ErrMalformedDuration)

	_, err = SumStrings([]string{"8 hours and 0 minutes", "99999999999999999999 hours and 0 minutes"})
	require.ErrorIs(t, err, ErrMalformedDuration)

	_, err = SumStrings([]string{"153722867280912930 hours", "153722867280912930 hours"})
	require.ErrorIs(t, err, ErrMalformedDuration)
}
