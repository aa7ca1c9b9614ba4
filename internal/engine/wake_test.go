package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neosucpa/GlowMorning/internal"
)

func wokeRecord() *internal.DailyRecord {
	return &internal.DailyRecord{Date: "2024-01-10", Wake: true}
}

func TestClassifyWakeWindows(t *testing.T) {
	target := ToMinutes("06:00") // active 05:00-07:00, bedtime 22:00, ready 19:00

	tests := []struct {
		name string
		now  string
		rec  *internal.DailyRecord
		want WakeState
	}{
		{"inside window, not yet logged", "06:30", nil, StateActive},
		{"inside window, already woke", "06:30", wokeRecord(), StateSuccess},
		{"window edge start", "05:00", nil, StateActive},
		{"window edge end", "07:00", nil, StateActive},
		{"window missed", "07:10", nil, StateFail},
		{"woke earlier, after window", "10:00", wokeRecord(), StateSuccess},
		{"wind-down start", "19:00", nil, StateReady},
		{"wind-down", "19:10", nil, StateReady},
		{"past bedtime", "22:10", nil, StateSleep},
		{"small hours before window", "03:00", nil, StateSleep},
		{"just before window", "04:59", nil, StateSleep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyWake(ToMinutes(tt.now), target, tt.rec))
		})
	}
}

func TestClassifyWakeLateTargetBedtimePastMidnight(t *testing.T) {
	// A 10:00 target puts bedtime at 26:00; "now >= bedtime" can never fire
	// and late evening stays READY/FAIL territory.
	target := ToMinutes("10:00")
	assert.Equal(t, StateReady, ClassifyWake(ToMinutes("23:30"), target, nil))
	assert.Equal(t, StateFail, ClassifyWake(ToMinutes("12:00"), target, nil))
}

func TestWakeStatusCountdowns(t *testing.T) {
	settings := &internal.Settings{TargetWakeTime: "06:00", SleepDurationHours: 8}

	at := func(hhmm string) time.Time {
		mins := ToMinutes(hhmm)
		return time.Date(2024, 1, 10, mins/60, mins%60, 0, 0, time.UTC)
	}

	st := WakeStatusAt(at("06:30"), settings, nil)
	assert.Equal(t, StateActive, st.State)
	assert.Equal(t, 30, st.CountdownMinutes) // until window end

	st = WakeStatusAt(at("19:10"), settings, nil)
	assert.Equal(t, StateReady, st.State)
	assert.Equal(t, 170, st.CountdownMinutes) // until 22:00 bedtime

	st = WakeStatusAt(at("23:00"), settings, nil)
	assert.Equal(t, StateSleep, st.State)
	assert.Equal(t, 7*60, st.CountdownMinutes) // wraps to tomorrow 06:00

	assert.Equal(t, "22:00", st.Bedtime)
	assert.Equal(t, "21:00", st.RelaxTime)
}

func TestTransitionAllowed(t *testing.T) {
	assert.True(t, TransitionAllowed(StateActive, internal.VerificationPreAuth))
	assert.False(t, TransitionAllowed(StateFail, internal.VerificationPreAuth))
	assert.False(t, TransitionAllowed(StateSleep, internal.VerificationPreAuth))

	assert.True(t, TransitionAllowed(StateActive, internal.VerificationManual))
	assert.True(t, TransitionAllowed(StateFail, internal.VerificationManual))
	assert.False(t, TransitionAllowed(StateReady, internal.VerificationManual))

	assert.True(t, TransitionAllowed(StateSleep, internal.VerificationAlarm))
}

func TestAutoConfirmPatch(t *testing.T) {
	now := time.Date(2024, 1, 10, 6, 15, 0, 0, time.UTC)
	patch := AutoConfirmPatch(now)

	assert.True(t, *patch.Wake)
	assert.Equal(t, now, *patch.WakeTime)
	assert.Equal(t, internal.VerificationPreAuth, *patch.Verification)
	assert.True(t, *patch.IsSuccess)
	assert.False(t, *patch.Completed)
}

func TestManualWakePatchWindowCheck(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	target := ToMinutes("06:00")

	patch := ManualWakePatch(day, "06:45", target)
	assert.True(t, *patch.IsSuccess)
	assert.Equal(t, internal.VerificationManual, *patch.Verification)
	assert.Equal(t, 6, patch.WakeTime.Hour())
	assert.Equal(t, 45, patch.WakeTime.Minute())

	// exactly on the window edge counts
	patch = ManualWakePatch(day, "07:00", target)
	assert.True(t, *patch.IsSuccess)

	patch = ManualWakePatch(day, "07:01", target)
	assert.False(t, *patch.IsSuccess)

	patch = ManualWakePatch(day, "04:59", target)
	assert.False(t, *patch.IsSuccess)
}

func TestAlarmDismissPatchLeavesSuccessUnset(t *testing.T) {
	now := time.Date(2024, 1, 10, 6, 15, 0, 0, time.UTC)
	patch := AlarmDismissPatch(now)

	assert.True(t, *patch.Wake)
	assert.Equal(t, internal.VerificationAlarm, *patch.Verification)
	assert.Nil(t, patch.IsSuccess)
	assert.False(t, *patch.Completed)
}
