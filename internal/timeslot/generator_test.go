package timeslot

import (
	"testing"
	"time"

	"go-doctor-appointment/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedule(day, at, until string) entity.WeeklySchedule {
	return entity.WeeklySchedule{DayOfWeek: day, AvailableAt: at, AvailableUntil: until}
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots("dr-who", "Dr Who", "Europe/London", schedule("Monday", "9:00AM", "10:30AM"))
	require.Len(t, slots, 3)

	want := [][2]string{{"9:00AM", "9:30AM"}, {"9:30AM", "10:00AM"}, {"10:00AM", "10:30AM"}}
	for i, w := range want {
		assert.Equal(t, w[0], slots[i].StartTime)
		assert.Equal(t, w[1], slots[i].EndTime)
		assert.Equal(t, "dr-who", slots[i].DoctorID)
		assert.Equal(t, "Dr Who", slots[i].DoctorName)
		assert.Equal(t, "Monday", slots[i].DayOfWeek)
		assert.Equal(t, "Europe/London", slots[i].Timezone)
	}
	assert.Equal(t, "dr-who_Monday_09:00", slots[0].ID)
	assert.Equal(t, "dr-who_Monday_10:00", slots[2].ID)
}

func TestGenerateTimeSlotsSingleUnit(t *testing.T) {
	slots := GenerateTimeSlots("d", "D", "UTC", schedule("Friday", "1:00PM", "1:30PM"))
	require.Len(t, slots, 1)
	assert.Equal(t, "d_Friday_13:00", slots[0].ID)
	assert.Equal(t, "1:00PM", slots[0].StartTime)
	assert.Equal(t, "1:30PM", slots[0].EndTime)
}

func TestGenerateTimeSlotsDropsPartialTail(t *testing.T) {
	slots := GenerateTimeSlots("d", "D", "UTC", schedule("Monday", "9:00AM", "10:15AM"))
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00AM", slots[1].EndTime)

	slots = GenerateTimeSlots("d", "D", "UTC", schedule("Monday", "9:00AM", "9:15AM"))
	assert.Empty(t, slots)
}

func TestGenerateTimeSlotsEmpty(t *testing.T) {
	tests := map[string]entity.WeeklySchedule{
		"equal":        schedule("Monday", "9:00AM", "9:00AM"),
		"inverted":     schedule("Monday", "5:00PM", "9:00AM"),
		"bad open":     schedule("Monday", "nine", "9:00AM"),
		"bad close":    schedule("Monday", "9:00AM", ""),
		"missing both": schedule("Monday", "", ""),
	}

	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			slots := GenerateTimeSlots("d", "D", "UTC", s)
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerateTimeSlotsID(t *testing.T) {
	slots := GenerateTimeSlots("test-doctor", "Test Doctor", "UTC", schedule("Tuesday", "8:00AM", "9:00AM"))
	require.Len(t, slots, 2)
	assert.Equal(t, "test-doctor_Tuesday_08:00", slots[0].ID)
	assert.Equal(t, "test-doctor_Tuesday_08:30", slots[1].ID)
}

func TestGenerateTimeSlotsUniqueIDs(t *testing.T) {
	slots := GenerateTimeSlots("d", "D", "UTC", schedule("Sunday", "12:00AM", "11:30PM"))
	require.Len(t, slots, 47)

	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		_, dup := seen[s.ID]
		assert.False(t, dup, "duplicate slot id %s", s.ID)
		seen[s.ID] = struct{}{}
	}
	assert.Equal(t, "d_Sunday_00:00", slots[0].ID)
	assert.Equal(t, "12:00AM", slots[0].StartTime)
	assert.Equal(t, "11:30PM", slots[46].EndTime)
}

func TestGenerateTimeSlotsWithDuration(t *testing.T) {
	slots := GenerateTimeSlotsWithDuration("d", "D", "UTC", schedule("Monday", "9:00AM", "10:00AM"), 15*time.Minute)
	require.Len(t, slots, 4)
	assert.Equal(t, "9:45AM", slots[3].StartTime)

	assert.Empty(t, GenerateTimeSlotsWithDuration("d", "D", "UTC", schedule("Monday", "9:00AM", "10:00AM"), 0))
}
