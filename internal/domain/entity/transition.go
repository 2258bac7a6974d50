package entity

import "fmt"

// Alert is a human-readable notification describing a device state change.
type Alert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// TransitionAlert compares a device's previous and current boolean state and
// returns the alert to emit, if any. The first observation after subscribing
// never produces an alert, so a screen mount does not trigger a notification
// storm. Pure function: no state beyond its arguments.
func TransitionAlert(kind DeviceKind, name string, previous, current, firstObservation bool) (Alert, bool) {
	if firstObservation || previous == current {
		return Alert{}, false
	}

	return Alert{
		Title: "Device update",
		Body:  fmt.Sprintf("%s is now %s", name, kind.StatusLabel(current)),
	}, true
}
