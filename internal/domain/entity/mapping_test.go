package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeviceFromFields_MissingTypeIsDoor(t *testing.T) {
	device := DeviceFromFields("door", map[string]any{
		FieldName:   "Front door",
		FieldIsOpen: true,
	})

	assert.Equal(t, KindDoor, device.Kind)
	assert.True(t, device.Status)
}

func TestDeviceFromFields_UnknownTypeIsDoor(t *testing.T) {
	device := DeviceFromFields("door", map[string]any{
		FieldType:   "thermostat",
		FieldIsOpen: false,
	})

	assert.Equal(t, KindDoor, device.Kind)
}

func TestDeviceFromFields_LightReadsIsOn(t *testing.T) {
	now := time.Now().UTC()
	device := DeviceFromFields("d1", map[string]any{
		FieldType:        string(KindLight),
		FieldName:        "Desk lamp",
		FieldIsOn:        true,
		FieldIsOpen:      false, // stray field, must be ignored for lights
		FieldLastUpdated: now,
		FieldUpdatedBy:   "user-1",
	})

	assert.Equal(t, KindLight, device.Kind)
	assert.True(t, device.Status)
	assert.Equal(t, now, device.LastUpdated)
	assert.Equal(t, "user-1", device.UpdatedBy)
}

func TestDeviceFromFields_NameFallsBackToID(t *testing.T) {
	device := DeviceFromFields("d7", map[string]any{
		FieldType: string(KindWindow),
	})

	assert.Equal(t, "d7", device.Name)
	assert.False(t, device.Status)
}
