package common

import (
	"bytes"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateWeekImage(t *testing.T) {
	items := []model.ScheduleItem{
		{DayOfWeek: "monday", TimeStart: "09:00", TimeEnd: "10:30", Subject: "Математика"},
		{DayOfWeek: "monday", TimeStart: "11:00", TimeEnd: "12:00", Subject: "Физика"},
		{DayOfWeek: "friday", TimeStart: "14:00", TimeEnd: "15:30", Subject: "Химия"},
	}

	img, err := GenerateWeekImage(items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic), "output must be a PNG")
}

// Пустое расписание тоже рисуется: сетка с диапазоном часов по умолчанию
func TestGenerateWeekImageNoItems(t *testing.T) {
	img, err := GenerateWeekImage(nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"09:30", 570, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"0930", 0, false},
		{"ab:cd", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseMinutes(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCalculateHourRange(t *testing.T) {
	items := []model.ScheduleItem{
		{TimeStart: "09:00", TimeEnd: "10:30"},
		{TimeStart: "14:00", TimeEnd: "16:00"},
	}

	hours := calculateHourRange(items)
	// Паддинг в один час с каждой стороны, 10:30 округляется вверх
	assert.Equal(t, 8, hours.start)
	assert.Equal(t, 17, hours.end)
	assert.Equal(t, 10, hours.total)
}

func TestCalculateHourRangeDefaults(t *testing.T) {
	hours := calculateHourRange(nil)
	assert.Equal(t, defaultMinHour-hourPaddingTop, hours.start)
	assert.Equal(t, defaultMaxHour+hourPaddingBot, hours.end)
}

func TestGroupItemsByDay(t *testing.T) {
	items := []model.ScheduleItem{
		{ID: 1, DayOfWeek: "monday"},
		{ID: 2, DayOfWeek: "monday"},
		{ID: 3, DayOfWeek: "sunday"},
	}

	byDay := groupItemsByDay(items)
	assert.Len(t, byDay[model.Monday], 2)
	assert.Len(t, byDay[model.Sunday], 1)
	assert.Empty(t, byDay[model.Tuesday])
}
