package dto

type TimeSlotResponse struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Timezone   string `json:"timezone"`
	IsBooked   bool   `json:"is_booked"`
}

type TimeSlotListResponse struct {
	DoctorID  string             `json:"doctor_id"`
	DayOfWeek string             `json:"day_of_week"`
	Slots     []TimeSlotResponse `json:"slots"`
	Total     int                `json:"total"`
}
