package entity

import "time"

// DeviceKind discriminates the boolean status semantics of a device.
type DeviceKind string

const (
	// KindDoor is the fixed, pre-existing door singleton.
	KindDoor DeviceKind = "door"
	// KindWindow is a user-created window device.
	KindWindow DeviceKind = "window"
	// KindLight is a user-created light device.
	KindLight DeviceKind = "light"
)

// DoorDeviceID is the device id of the door singleton in the read model.
const DoorDeviceID = "door"

// Document field names shared with the remote store.
const (
	FieldType        = "type"
	FieldName        = "name"
	FieldIsOpen      = "isOpen"
	FieldIsOn        = "isOn"
	FieldLastUpdated = "lastUpdated"
	FieldUpdatedBy   = "updatedBy"
)

// Valid reports whether the kind is one of the known device kinds.
func (k DeviceKind) Valid() bool {
	switch k {
	case KindDoor, KindWindow, KindLight:
		return true
	}

	return false
}

// StatusField returns the name of the authoritative boolean field for this
// kind. Exactly one boolean field is authoritative per kind.
func (k DeviceKind) StatusField() string {
	if k == KindLight {
		return FieldIsOn
	}

	return FieldIsOpen
}

// StatusLabel returns the type-appropriate vocabulary for a boolean status:
// OPEN/CLOSED for doors and windows, ON/OFF for lights.
func (k DeviceKind) StatusLabel(status bool) string {
	if k == KindLight {
		if status {
			return "ON"
		}

		return "OFF"
	}

	if status {
		return "OPEN"
	}

	return "CLOSED"
}

// DeviceState is the local read-model of one remote device document. The
// remote store is the sole source of truth; this is a cached copy kept
// current by a live subscription.
type DeviceState struct {
	ID          string     `json:"id"`
	Kind        DeviceKind `json:"type"`
	Name        string     `json:"name"`
	Status      bool       `json:"status"`       // isOpen for door/window, isOn for light.
	LastUpdated time.Time  `json:"last_updated"` // Timestamp of the last write.
	UpdatedBy   string     `json:"updated_by"`   // Identifier of the last writer.
}
