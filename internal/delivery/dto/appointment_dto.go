package dto

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	SlotID   string `json:"slot_id" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	SlotID     string `json:"slot_id"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Timezone   string `json:"timezone"`
	BookedAt   string `json:"booked_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Loading      bool                  `json:"loading"`
}

type CancelAppointmentResponse struct {
	ID string `json:"id"`
}
