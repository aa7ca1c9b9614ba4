package internal

import "time"

// DateLayout is the calendar-day key format used throughout the record store.
const DateLayout = "2006-01-02"

// VerificationType describes how a wake event was confirmed.
type VerificationType string

const (
	VerificationPreAuth VerificationType = "pre_auth" // user tapped "I woke up" inside the window
	VerificationAlarm   VerificationType = "alarm"    // user dismissed the ringing alarm
	VerificationManual  VerificationType = "manual"   // user backfilled a wake time by hand
)

// DailyRecord is one day's logged wake/journal activity, keyed by date.
// Records are created lazily on first interaction and mutated only by
// merging partial updates; they are never deleted.
type DailyRecord struct {
	Date         string           `json:"date"`
	Wake         bool             `json:"wake"`
	WakeTime     *time.Time       `json:"wake_time,omitempty"`
	Verification VerificationType `json:"verification_type,omitempty"`
	IsSuccess    *bool            `json:"is_success,omitempty"`
	MorningNote  string           `json:"morning_note,omitempty"`
	PhotoURL     string           `json:"photo_url,omitempty"`
	Completed    bool             `json:"completed"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// RecordPatch is a partial update merged into a DailyRecord. Nil fields
// leave the existing value unchanged.
type RecordPatch struct {
	Wake         *bool
	WakeTime     *time.Time
	Verification *VerificationType
	IsSuccess    *bool
	MorningNote  *string
	PhotoURL     *string
	Completed    *bool
}

// Apply merges the patch into the record.
func (r *DailyRecord) Apply(p RecordPatch) {
	if p.Wake != nil {
		r.Wake = *p.Wake
	}
	if p.WakeTime != nil {
		r.WakeTime = p.WakeTime
	}
	if p.Verification != nil {
		r.Verification = *p.Verification
	}
	if p.IsSuccess != nil {
		r.IsSuccess = p.IsSuccess
	}
	if p.MorningNote != nil {
		r.MorningNote = *p.MorningNote
	}
	if p.PhotoURL != nil {
		r.PhotoURL = *p.PhotoURL
	}
	if p.Completed != nil {
		r.Completed = *p.Completed
	}
}

// Clone returns a deep copy so snapshots handed to the engine cannot
// alias store-owned memory.
func (r *DailyRecord) Clone() *DailyRecord {
	c := *r
	if r.WakeTime != nil {
		t := *r.WakeTime
		c.WakeTime = &t
	}
	if r.IsSuccess != nil {
		b := *r.IsSuccess
		c.IsSuccess = &b
	}
	return &c
}

// Settings holds the user's configuration. It is immutable within a single
// engine evaluation and changed only through the settings endpoint.
type Settings struct {
	TargetWakeTime       string     `json:"target_wake_time"` // HH:MM, 24-hour
	SleepDurationHours   float64    `json:"sleep_duration_hours"`
	ExcludeWeekends      bool       `json:"exclude_weekends"`
	Goal                 string     `json:"goal,omitempty"`
	MorningTheme         string     `json:"morning_theme,omitempty"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	OnboardingCompleted  bool       `json:"onboarding_completed"`
	PledgeSignedAt       *time.Time `json:"pledge_signed_at,omitempty"`
}

// DefaultSettings is what a fresh install starts with.
func DefaultSettings() *Settings {
	return &Settings{
		TargetWakeTime:       "07:00",
		SleepDurationHours:   7,
		ExcludeWeekends:      false,
		NotificationsEnabled: true,
	}
}
