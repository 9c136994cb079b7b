package dto

// Response DTOs

type WeeklyScheduleResponse struct {
	DayOfWeek      string `json:"day_of_week"`
	AvailableAt    string `json:"available_at"`
	AvailableUntil string `json:"available_until"`
}

type DoctorResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Timezone  string                   `json:"timezone"`
	Schedules []WeeklyScheduleResponse `json:"schedules"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DaySectionResponse is one schedule entry of a doctor with its slots
type DaySectionResponse struct {
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	Slots    []TimeSlotResponse `json:"slots"`
}

type DoctorDetailResponse struct {
	Doctor   DoctorResponse       `json:"doctor"`
	Sections []DaySectionResponse `json:"sections"`
}
