package engine

import (
	"time"

	"github.com/neosucpa/GlowMorning/internal"
)

// WakeState is the display state of the current moment relative to the
// target wake time.
type WakeState string

const (
	StateSleep   WakeState = "sleep"   // late night or before today's window
	StateReady   WakeState = "ready"   // wind-down countdown to bedtime
	StateActive  WakeState = "active"  // inside the window, awaiting the user
	StateSuccess WakeState = "success" // wake already verified today
	StateFail    WakeState = "fail"    // window missed, backfill still possible
)

// Window geometry in minutes relative to the target wake time.
const (
	activeWindowMins  = 60  // on-time band is target ± 1h
	bedtimeOffsetMins = 960 // asleep 16h after wake
	windDownMins      = 180 // wind-down starts 3h before bedtime
)

// WakeStatus is everything the presentation layer needs to render the
// current state.
type WakeStatus struct {
	State            WakeState   `json:"state"`
	Label            string      `json:"label"`
	TargetTime       string      `json:"target_time"`
	Bedtime          string      `json:"bedtime"`
	RelaxTime        string      `json:"relax_time"`
	CountdownMinutes int         `json:"countdown_minutes"`
	WakeVerified     bool        `json:"wake_verified"`
	IsSuccess        *bool       `json:"is_success,omitempty"`
}

var stateLabels = map[WakeState]string{
	StateSleep:   "Time to sleep. Your morning is waiting.",
	StateReady:   "Start winding down for bed.",
	StateActive:  "Good morning! Tap to confirm you're up.",
	StateSuccess: "You made it up on time today.",
	StateFail:    "Window missed. You can still log your wake time.",
}

// ClassifyWake places "now" into one of the five display states.
// All arguments are minutes since midnight; bedtime-derived boundaries may
// exceed 1440 and are compared unwrapped on purpose (a 10:00 target puts
// bedtime past midnight, which reads as "never tonight").
func ClassifyWake(nowMins, targetMins int, rec *internal.DailyRecord) WakeState {
	activeStart := targetMins - activeWindowMins
	activeEnd := targetMins + activeWindowMins
	bedtimeMins := targetMins + bedtimeOffsetMins
	readyStart := bedtimeMins - windDownMins

	woke := rec != nil && rec.Wake

	switch {
	case nowMins >= bedtimeMins || nowMins < activeStart:
		return StateSleep
	case nowMins >= readyStart:
		return StateReady
	case nowMins >= activeStart && nowMins <= activeEnd:
		if woke {
			return StateSuccess
		}
		return StateActive
	case woke:
		return StateSuccess
	default:
		return StateFail
	}
}

// WakeStatusAt evaluates the full view-state for the given clock reading.
func WakeStatusAt(now time.Time, settings *internal.Settings, rec *internal.DailyRecord) WakeStatus {
	nowMins := now.Hour()*60 + now.Minute()
	targetMins := ToMinutes(settings.TargetWakeTime)
	state := ClassifyWake(nowMins, targetMins, rec)

	bt := BedtimeFor(settings.TargetWakeTime, settings.SleepDurationHours)
	status := WakeStatus{
		State:      state,
		Label:      stateLabels[state],
		TargetTime: ToHHMM(targetMins),
		Bedtime:    bt.Bedtime,
		RelaxTime:  bt.RelaxTime,
	}
	if rec != nil {
		status.WakeVerified = rec.Wake
		status.IsSuccess = rec.IsSuccess
	}

	switch state {
	case StateSleep:
		// minutes until the target wake time, wrapping to tomorrow
		status.CountdownMinutes = ((targetMins - nowMins) % minutesPerDay + minutesPerDay) % minutesPerDay
	case StateReady:
		status.CountdownMinutes = targetMins + bedtimeOffsetMins - nowMins
	case StateActive:
		status.CountdownMinutes = targetMins + activeWindowMins - nowMins
	}

	return status
}

// TransitionAllowed reports whether a user-triggered wake transition is
// valid from the given state. Auto-confirm only fires inside the window;
// manual backfill is also allowed after the window is missed. Alarm
// dismissal comes from the ringing screen and is never gated on state.
func TransitionAllowed(state WakeState, vt internal.VerificationType) bool {
	switch vt {
	case internal.VerificationPreAuth:
		return state == StateActive
	case internal.VerificationManual:
		return state == StateActive || state == StateFail
	case internal.VerificationAlarm:
		return true
	}
	return false
}

// AutoConfirmPatch is the "I woke up" tap: registered at the current
// moment, on time by definition.
func AutoConfirmPatch(now time.Time) internal.RecordPatch {
	wake := true
	success := true
	completed := false
	vt := internal.VerificationPreAuth
	return internal.RecordPatch{
		Wake:         &wake,
		WakeTime:     &now,
		Verification: &vt,
		IsSuccess:    &success,
		Completed:    &completed,
	}
}

// ManualWakePatch registers a hand-entered wake time for the given day.
// On-time means within the ±1h window around the target.
func ManualWakePatch(day time.Time, hhmm string, targetMins int) internal.RecordPatch {
	mins := ToMinutes(hhmm)
	diff := mins - targetMins
	if diff < 0 {
		diff = -diff
	}
	success := diff <= activeWindowMins

	wakeAt := time.Date(day.Year(), day.Month(), day.Day(), mins/60, mins%60, 0, 0, day.Location())
	wake := true
	completed := false
	vt := internal.VerificationManual
	return internal.RecordPatch{
		Wake:         &wake,
		WakeTime:     &wakeAt,
		Verification: &vt,
		IsSuccess:    &success,
		Completed:    &completed,
	}
}

// AlarmDismissPatch records an alarm dismissal. Success is left unset and
// is evaluated against the window at render time.
func AlarmDismissPatch(now time.Time) internal.RecordPatch {
	wake := true
	completed := false
	vt := internal.VerificationAlarm
	return internal.RecordPatch{
		Wake:         &wake,
		WakeTime:     &now,
		Verification: &vt,
		Completed:    &completed,
	}
}
