package entity

import "time"

// DeviceFromFields maps a raw store document onto the tagged DeviceState.
// The device kind is resolved exactly once, here at the data-mapping
// boundary, so no call site ever has to re-check which boolean field
// applies. Documents without a type field are treated as the door
// singleton, whose document predates the type discriminator.
func DeviceFromFields(id string, fields map[string]any) *DeviceState {
	kind := KindDoor
	if raw, ok := fields[FieldType].(string); ok && DeviceKind(raw).Valid() {
		kind = DeviceKind(raw)
	}

	name, _ := fields[FieldName].(string)
	if name == "" {
		name = id
	}

	status, _ := fields[kind.StatusField()].(bool)
	updatedBy, _ := fields[FieldUpdatedBy].(string)
	lastUpdated, _ := fields[FieldLastUpdated].(time.Time)

	return &DeviceState{
		ID:          id,
		Kind:        kind,
		Name:        name,
		Status:      status,
		LastUpdated: lastUpdated,
		UpdatedBy:   updatedBy,
	}
}
