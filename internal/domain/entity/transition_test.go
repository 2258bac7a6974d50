package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionAlert(t *testing.T) {
	tests := []struct {
		name      string
		kind      DeviceKind
		device    string
		previous  bool
		current   bool
		first     bool
		wantAlert bool
		wantBody  string
	}{
		{
			name:    "first observation never notifies",
			kind:    KindDoor,
			device:  "Front door",
			current: true,
			first:   true,
		},
		{
			name:     "unchanged status never notifies",
			kind:     KindLight,
			device:   "Desk lamp",
			previous: true,
			current:  true,
		},
		{
			name:      "door opening uses OPEN",
			kind:      KindDoor,
			device:    "Front door",
			previous:  false,
			current:   true,
			wantAlert: true,
			wantBody:  "Front door is now OPEN",
		},
		{
			name:      "window closing uses CLOSED",
			kind:      KindWindow,
			device:    "Kitchen window",
			previous:  true,
			current:   false,
			wantAlert: true,
			wantBody:  "Kitchen window is now CLOSED",
		},
		{
			name:      "light turning on uses ON",
			kind:      KindLight,
			device:    "Desk lamp",
			previous:  false,
			current:   true,
			wantAlert: true,
			wantBody:  "Desk lamp is now ON",
		},
		{
			name:      "light turning off uses OFF",
			kind:      KindLight,
			device:    "Desk lamp",
			previous:  true,
			current:   false,
			wantAlert: true,
			wantBody:  "Desk lamp is now OFF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert, ok := TransitionAlert(tt.kind, tt.device, tt.previous, tt.current, tt.first)
			assert.Equal(t, tt.wantAlert, ok)
			if tt.wantAlert {
				assert.Equal(t, "Device update", alert.Title)
				assert.Equal(t, tt.wantBody, alert.Body)
			} else {
				assert.Empty(t, alert.Body)
			}
		})
	}
}

func TestStatusField(t *testing.T) {
	assert.Equal(t, FieldIsOpen, KindDoor.StatusField())
	assert.Equal(t, FieldIsOpen, KindWindow.StatusField())
	assert.Equal(t, FieldIsOn, KindLight.StatusField())
}
