package entity

// TimeSlot is a bookable interval derived from a WeeklySchedule.
// It is never persisted; ID is "{doctorId}_{dayOfWeek}_{HH:mm}".
type TimeSlot struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	DayOfWeek  string `json:"dayOfWeek"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Timezone   string `json:"timezone"`
}
