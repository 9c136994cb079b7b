package handler

import (
	"errors"
	"net/http"

	"go-doctor-appointment/internal/converter"
	"go-doctor-appointment/internal/delivery/dto"
	"go-doctor-appointment/internal/usecase"
	"go-doctor-appointment/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase      usecase.DoctorUsecase
	appointmentUsecase usecase.AppointmentUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, appointmentUsecase usecase.AppointmentUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase:      doctorUsecase,
		appointmentUsecase: appointmentUsecase,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		writeSourceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	})
}

// RefreshDoctors is the manual retry after a failed catalog load
func (h *DoctorHandler) RefreshDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.RefreshDoctors(r.Context())
	if err != nil {
		writeSourceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctors refreshed successfully", &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	})
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["id"]

	doctor, sections, err := h.doctorUsecase.DoctorAvailability(r.Context(), doctorID)
	if err != nil {
		writeSourceError(w, err)
		return
	}

	booked := h.appointmentUsecase.BookedSlotIDs()
	detail := &dto.DoctorDetailResponse{
		Doctor:   *converter.DoctorToResponse(doctor),
		Sections: make([]dto.DaySectionResponse, len(sections)),
	}
	for i, section := range sections {
		detail.Sections[i] = dto.DaySectionResponse{
			Title:    section.Title,
			Subtitle: section.Subtitle,
			Slots:    converter.TimeSlotsToResponses(section.Slots, booked),
		}
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", detail)
}

func (h *DoctorHandler) GetDoctorSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["id"]
	day := r.URL.Query().Get("day")
	if day == "" {
		response.ValidationError(w, map[string]string{"day": "day is required"})
		return
	}

	slots, err := h.doctorUsecase.SlotsFor(r.Context(), doctorID, day)
	if err != nil {
		writeSourceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", &dto.TimeSlotListResponse{
		DoctorID:  doctorID,
		DayOfWeek: day,
		Slots:     converter.TimeSlotsToResponses(slots, h.appointmentUsecase.BookedSlotIDs()),
		Total:     len(slots),
	})
}

// writeSourceError maps catalog errors; anything else is a 500
func writeSourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found.")
	case errors.Is(err, usecase.ErrDoctorSourceUnavailable):
		response.Error(w, http.StatusBadGateway, "Failed to load doctors.", map[string]bool{"retryable": true})
	default:
		response.InternalServerError(w, "Failed to get doctors")
	}
}
