package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

// FormatStatistics форматирует статистику занятий пользователя.
// Дни выводятся в порядке недели, дни без занятий пропускаются.
func FormatStatistics(stats *service.Statistics) string {
	if stats.Total == 0 {
		return "📊 У вас пока нет занятий в расписании"
	}

	var sb strings.Builder
	sb.WriteString("📊 Ваша статистика:\n\n")
	sb.WriteString(fmt.Sprintf("📈 Всего занятий: %d\n\n", stats.Total))

	for _, day := range model.WeekDays {
		count := stats.ByDay[day]
		if count == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("• %s: %d %s\n", day.Label(), count, PluralizeLessons(count)))
	}

	return sb.String()
}
