package entity

// Appointment is a booked TimeSlot. The JSON shape is the persisted layout
// and must stay stable across releases.
type Appointment struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	SlotID     string `json:"slotId"`
	DayOfWeek  string `json:"dayOfWeek"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Timezone   string `json:"timezone"`
	BookedAt   string `json:"bookedAt"`
}

// AppointmentState is a read-only snapshot of the ledger
type AppointmentState struct {
	Appointments []Appointment `json:"appointments"`
	Loading      bool          `json:"loading"`
}

// HasSlot reports whether any appointment holds slotID
func (s AppointmentState) HasSlot(slotID string) bool {
	for _, a := range s.Appointments {
		if a.SlotID == slotID {
			return true
		}
	}
	return false
}
