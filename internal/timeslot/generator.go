package timeslot

import (
	"fmt"
	"time"

	"go-doctor-appointment/internal/domain/entity"
)

// SlotDuration is the default length of a bookable slot
const SlotDuration = 30 * time.Minute

// GenerateTimeSlots slices schedule into SlotDuration slots
func GenerateTimeSlots(doctorID, doctorName, timezone string, schedule entity.WeeklySchedule) []entity.TimeSlot {
	return GenerateTimeSlotsWithDuration(doctorID, doctorName, timezone, schedule, SlotDuration)
}

// GenerateTimeSlotsWithDuration emits consecutive slots of the given length
// from AvailableAt while the slot end is at or before AvailableUntil. A
// trailing remainder shorter than duration is dropped. Unparsable times, an
// empty or inverted window, or a non-positive duration yield no slots.
func GenerateTimeSlotsWithDuration(doctorID, doctorName, timezone string, schedule entity.WeeklySchedule, duration time.Duration) []entity.TimeSlot {
	slots := []entity.TimeSlot{}

	step := int(duration / time.Minute)
	if step <= 0 {
		return slots
	}

	start := ParseTime(schedule.AvailableAt)
	end := ParseTime(schedule.AvailableUntil)
	if !start.Valid || !end.Valid || end.Minutes() <= start.Minutes() {
		return slots
	}

	for current := start.Minutes(); current+step <= end.Minutes(); current += step {
		slots = append(slots, entity.TimeSlot{
			ID:         SlotID(doctorID, schedule.DayOfWeek, current),
			DoctorID:   doctorID,
			DoctorName: doctorName,
			DayOfWeek:  schedule.DayOfWeek,
			StartTime:  FormatClock(current),
			EndTime:    FormatClock(current + step),
			Timezone:   timezone,
		})
	}

	return slots
}

// SlotID builds the deterministic slot identifier for a start time in minutes since midnight
func SlotID(doctorID, dayOfWeek string, startMinutes int) string {
	return fmt.Sprintf("%s_%s_%s", doctorID, dayOfWeek, FormatKey(startMinutes))
}
