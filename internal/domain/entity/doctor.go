package entity

// DoctorRaw is one ungrouped (doctor, day) record as served by the doctor source
type DoctorRaw struct {
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	DayOfWeek      string `json:"day_of_week"`
	AvailableAt    string `json:"available_at"`
	AvailableUntil string `json:"available_until"`
}

// WeeklySchedule is a doctor's opening window for one day of the week.
// Times are 12-hour clock strings such as "9:00AM".
type WeeklySchedule struct {
	DayOfWeek      string `json:"dayOfWeek"`
	AvailableAt    string `json:"availableAt"`
	AvailableUntil string `json:"availableUntil"`
}

// Doctor groups every raw record sharing a name. ID is the display name.
type Doctor struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Timezone  string           `json:"timezone"`
	Schedules []WeeklySchedule `json:"schedules"`
}

// SchedulesOn returns the schedule entries for the given day, in schedule order
func (d *Doctor) SchedulesOn(day string) []WeeklySchedule {
	var out []WeeklySchedule
	for _, s := range d.Schedules {
		if s.DayOfWeek == day {
			out = append(out, s)
		}
	}
	return out
}
