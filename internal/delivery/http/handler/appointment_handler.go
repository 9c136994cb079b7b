package handler

import (
	"errors"
	"net/http"

	"go-doctor-appointment/internal/converter"
	"go-doctor-appointment/internal/delivery/dto"
	"go-doctor-appointment/internal/usecase"
	"go-doctor-appointment/pkg/response"
	"go-doctor-appointment/pkg/validator"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	doctorUsecase      usecase.DoctorUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		doctorUsecase:      doctorUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	state := h.appointmentUsecase.State()
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", converter.AppointmentStateToResponse(state))
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.doctorUsecase.FindSlot(r.Context(), req.DoctorID, req.SlotID)
	if err != nil {
		if errors.Is(err, usecase.ErrSlotNotFound) {
			response.NotFound(w, "Time slot not found")
			return
		}
		writeSourceError(w, err)
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), *slot)
	if err != nil {
		var dup *usecase.DuplicateSlotError
		if errors.As(err, &dup) {
			response.Error(w, http.StatusConflict, usecase.DuplicateSlotMessage, map[string]string{"slot_id": dup.SlotID})
			return
		}
		response.InternalServerError(w, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", converter.AppointmentToResponse(appointment))
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	id, err := h.appointmentUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", &dto.CancelAppointmentResponse{ID: id})
}
