package converter

import (
	"sort"
	"strings"

	"go-doctor-appointment/internal/delivery/dto"
	"go-doctor-appointment/internal/domain/entity"
)

// dayOrder is the calendar-week index used to sort schedules
var dayOrder = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// DayIndex returns the Monday-based index of day, or 7 for an unknown name
func DayIndex(day string) int {
	if idx, ok := dayOrder[day]; ok {
		return idx
	}
	return len(dayOrder)
}

// GroupDoctors folds raw records into one Doctor per distinct name, in
// first-seen order. The first record seen for a name fixes its timezone.
func GroupDoctors(raw []entity.DoctorRaw) []entity.Doctor {
	doctors := make([]entity.Doctor, 0)
	index := make(map[string]int)

	for _, item := range raw {
		i, ok := index[item.Name]
		if !ok {
			doctors = append(doctors, entity.Doctor{
				ID:        item.Name,
				Name:      item.Name,
				Timezone:  item.Timezone,
				Schedules: []entity.WeeklySchedule{},
			})
			i = len(doctors) - 1
			index[item.Name] = i
		}

		doctors[i].Schedules = append(doctors[i].Schedules, entity.WeeklySchedule{
			DayOfWeek:      item.DayOfWeek,
			AvailableAt:    strings.TrimSpace(item.AvailableAt),
			AvailableUntil: strings.TrimSpace(item.AvailableUntil),
		})
	}

	for i := range doctors {
		schedules := doctors[i].Schedules
		sort.SliceStable(schedules, func(a, b int) bool {
			return DayIndex(schedules[a].DayOfWeek) < DayIndex(schedules[b].DayOfWeek)
		})
	}

	return doctors
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	schedules := make([]dto.WeeklyScheduleResponse, len(doctor.Schedules))
	for i, s := range doctor.Schedules {
		schedules[i] = dto.WeeklyScheduleResponse{
			DayOfWeek:      s.DayOfWeek,
			AvailableAt:    s.AvailableAt,
			AvailableUntil: s.AvailableUntil,
		}
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Timezone:  doctor.Timezone,
		Schedules: schedules,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
