package converter

import (
	"go-doctor-appointment/internal/delivery/dto"
	"go-doctor-appointment/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:         appointment.ID,
		DoctorID:   appointment.DoctorID,
		DoctorName: appointment.DoctorName,
		SlotID:     appointment.SlotID,
		DayOfWeek:  appointment.DayOfWeek,
		StartTime:  appointment.StartTime,
		EndTime:    appointment.EndTime,
		Timezone:   appointment.Timezone,
		BookedAt:   appointment.BookedAt,
	}
}

// AppointmentStateToResponse converts a ledger snapshot to AppointmentListResponse DTO
func AppointmentStateToResponse(state entity.AppointmentState) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, len(state.Appointments))
	for i := range state.Appointments {
		responses[i] = *AppointmentToResponse(&state.Appointments[i])
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
		Loading:      state.Loading,
	}
}
