package converter

import (
	"go-doctor-appointment/internal/delivery/dto"
	"go-doctor-appointment/internal/domain/entity"
)

// TimeSlotToResponse converts a TimeSlot entity to TimeSlotResponse DTO
func TimeSlotToResponse(slot entity.TimeSlot, isBooked bool) dto.TimeSlotResponse {
	return dto.TimeSlotResponse{
		ID:         slot.ID,
		DoctorID:   slot.DoctorID,
		DoctorName: slot.DoctorName,
		DayOfWeek:  slot.DayOfWeek,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Timezone:   slot.Timezone,
		IsBooked:   isBooked,
	}
}

// TimeSlotsToResponses marks each slot whose id is in booked
func TimeSlotsToResponses(slots []entity.TimeSlot, booked map[string]struct{}) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		_, isBooked := booked[slot.ID]
		responses[i] = TimeSlotToResponse(slot, isBooked)
	}
	return responses
}
