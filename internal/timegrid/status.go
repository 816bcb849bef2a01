package timegrid

// Status classifies a slot for rendering and for gating the commit operation.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusSelected  Status = "selected"
)

// Resolve classifies a candidate slot. The selection check deliberately runs
// before the booked check: a slot that is both selected and booked reports
// SELECTED. Callers keep that situation from arising with
// ClearConflictingSelection, but the precedence itself is fixed here.
func Resolve(candidate TimeOfDay, booked map[TimeOfDay]struct{}, selected *TimeOfDay) Status {
	if selected != nil && *selected == candidate {
		return StatusSelected
	}
	if _, ok := booked[candidate]; ok {
		return StatusBooked
	}
	return StatusAvailable
}

// ClearConflictingSelection drops a pending selection that coincides with a
// booked slot. Selection and booked-state are mutually exclusive; this runs
// whenever the active date's booked set changes.
func ClearConflictingSelection(selected *TimeOfDay, booked map[TimeOfDay]struct{}) *TimeOfDay {
	if selected == nil {
		return nil
	}
	if _, ok := booked[*selected]; ok {
		return nil
	}
	return selected
}
