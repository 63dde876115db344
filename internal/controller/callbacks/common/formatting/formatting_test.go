package formatting

import (
	"strings"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestPluralizeLessons(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "занятие"},
		{2, "занятия"},
		{4, "занятия"},
		{5, "занятий"},
		{10, "занятий"},
		{11, "занятий"},
		{12, "занятий"},
		{21, "занятие"},
		{22, "занятия"},
		{25, "занятий"},
		{100, "занятий"},
		{101, "занятие"},
		{111, "занятий"},
		{0, "занятий"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PluralizeLessons(tt.count), "count=%d", tt.count)
	}
}

func TestFormatScheduleItem(t *testing.T) {
	item := &model.ScheduleItem{
		TimeStart:   "09:00",
		TimeEnd:     "10:30",
		Subject:     "Математика",
		Description: "Контрольная работа",
	}

	text := FormatScheduleItem(item, 1)
	assert.Contains(t, text, "1. 🕒 09:00-10:30")
	assert.Contains(t, text, "📚 Математика")
	assert.Contains(t, text, "📝 Контрольная работа")
}

func TestFormatScheduleItemWithoutDescription(t *testing.T) {
	item := &model.ScheduleItem{
		TimeStart: "09:00",
		TimeEnd:   "10:30",
		Subject:   "Математика",
	}

	text := FormatScheduleItem(item, 2)
	assert.Contains(t, text, "2. 🕒 09:00-10:30")
	assert.NotContains(t, text, "📝")
}

func TestFormatItemButtonLabel(t *testing.T) {
	item := &model.ScheduleItem{
		DayOfWeek: "monday",
		TimeStart: "09:00",
		Subject:   "Математика",
	}
	assert.Equal(t, "Математика (Пн 09:00)", FormatItemButtonLabel(item))
}

func TestFormatDayScheduleEmpty(t *testing.T) {
	text := FormatDaySchedule(model.Wednesday, nil)
	assert.Equal(t, "📭 На Среда занятий нет", text)
}

func TestFormatDaySchedule(t *testing.T) {
	items := []model.ScheduleItem{
		{TimeStart: "09:00", TimeEnd: "10:00", Subject: "Математика"},
		{TimeStart: "11:00", TimeEnd: "12:00", Subject: "Физика"},
	}

	text := FormatDaySchedule(model.Monday, items)
	assert.True(t, strings.HasPrefix(text, "📅 Понедельник:"))
	assert.Contains(t, text, "1. 🕒 09:00-10:00")
	assert.Contains(t, text, "2. 🕒 11:00-12:00")
}

func TestFormatStatisticsEmpty(t *testing.T) {
	stats := &service.Statistics{Total: 0, ByDay: map[model.Day]int{}}
	assert.Equal(t, "📊 У вас пока нет занятий в расписании", FormatStatistics(stats))
}

// Дни выводятся в порядке недели несмотря на порядок в map
func TestFormatStatisticsDayOrder(t *testing.T) {
	stats := &service.Statistics{
		Total: 4,
		ByDay: map[model.Day]int{
			model.Friday: 1,
			model.Monday: 2,
			model.Sunday: 1,
		},
	}

	text := FormatStatistics(stats)
	assert.Contains(t, text, "Всего занятий: 4")
	assert.Contains(t, text, "• Понедельник: 2 занятия")
	assert.Contains(t, text, "• Пятница: 1 занятие")
	assert.Contains(t, text, "• Воскресенье: 1 занятие")
	assert.NotContains(t, text, "Вторник")

	monday := strings.Index(text, "Понедельник")
	friday := strings.Index(text, "Пятница")
	sunday := strings.Index(text, "Воскресенье")
	assert.Less(t, monday, friday)
	assert.Less(t, friday, sunday)
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Предмет", FieldLabel(model.FieldSubject))
	assert.Equal(t, "Время начала", FieldLabel(model.FieldTimeStart))
	assert.Equal(t, "Время окончания", FieldLabel(model.FieldTimeEnd))
	assert.Equal(t, "Описание", FieldLabel(model.FieldDescription))
	assert.Equal(t, "unknown", FieldLabel("unknown"))
}
