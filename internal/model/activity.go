package model

import "time"

// PromptUserActivity holds the two most recent days the user was active.
type PromptUserActivity struct {
	Key                  string     `json:"key"`
	LastActiveDate       *time.Time `json:"lastActiveDate,omitempty"`
	SecondLastActiveDate *time.Time `json:"secondLastActiveDate,omitempty"`
}

// NewPromptUserActivity creates an empty activity record.
func NewPromptUserActivity() *PromptUserActivity {
	return &PromptUserActivity{Key: KeyUserActivity}
}

// SetKey sets the database key for this activity record.
func (a *PromptUserActivity) SetKey(key string) {
	a.Key = key
}

// GetKey returns the database key for this activity record.
func (a *PromptUserActivity) GetKey() string {
	return a.Key
}

// Record shifts the last active day into second place and stores day as the
// most recent one.
func (a *PromptUserActivity) Record(day time.Time) {
	if a.LastActiveDate != nil {
		prev := *a.LastActiveDate
		a.SecondLastActiveDate = &prev
	}
	a.LastActiveDate = &day
}
