// Package entity contains the core business objects of the project.
package entity

import "time"

// Pin is a numeric unlock credential. It is exclusively owned by one user,
// bound to a single device, and never edited in place: callers delete and
// recreate instead.
type Pin struct {
	ID        string    `json:"id"`         // Store-assigned identifier.
	UserID    string    `json:"user_id"`    // The user who owns this PIN.
	DeviceID  string    `json:"device_id"`  // The device this PIN unlocks.
	Code      string    `json:"code"`       // 4-8 ASCII digits.
	Name      string    `json:"name"`       // Display label, at most 20 characters.
	CreatedAt time.Time `json:"created_at"` // Store-assigned creation timestamp.
}
