package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// FormatScheduleItem форматирует одно занятие для отправки отдельным сообщением
func FormatScheduleItem(item *model.ScheduleItem, index int) string {
	text := fmt.Sprintf(
		"%d. 🕒 %s-%s\n"+
			"   📚 %s",
		index,
		item.TimeStart,
		item.TimeEnd,
		item.Subject,
	)
	if item.Description != "" {
		text += fmt.Sprintf("\n   📝 %s", item.Description)
	}
	return text
}

// FormatItemButtonLabel форматирует подпись кнопки выбора занятия
// Например: "Математика (Пн 09:00)"
func FormatItemButtonLabel(item *model.ScheduleItem) string {
	day := model.Day(item.DayOfWeek)
	return fmt.Sprintf("%s (%s %s)", item.Subject, day.ShortLabel(), item.TimeStart)
}

// FormatDaySchedule форматирует все занятия одного дня одним блоком
func FormatDaySchedule(day model.Day, items []model.ScheduleItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("📭 На %s занятий нет", day.Label())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 %s:\n", day.Label()))
	for i := range items {
		sb.WriteString("\n")
		sb.WriteString(FormatScheduleItem(&items[i], i+1))
	}
	return sb.String()
}

// FormatCreatedItem форматирует подтверждение созданного занятия
func FormatCreatedItem(day model.Day, timeStart, timeEnd, subject string) string {
	return fmt.Sprintf(
		"✅ Занятие успешно добавлено!\n"+
			"📅 День: %s\n"+
			"⏰ Время: %s-%s\n"+
			"📚 Предмет: %s",
		day.Label(), timeStart, timeEnd, subject,
	)
}
