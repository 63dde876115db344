package model

// Day - внутренний код дня недели, в таком виде день хранится на сервере
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// WeekDays - все дни недели в порядке Пн-Вс
var WeekDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayLabels = map[Day]string{
	Monday:    "Понедельник",
	Tuesday:   "Вторник",
	Wednesday: "Среда",
	Thursday:  "Четверг",
	Friday:    "Пятница",
	Saturday:  "Суббота",
	Sunday:    "Воскресенье",
}

var dayShortLabels = map[Day]string{
	Monday:    "Пн",
	Tuesday:   "Вт",
	Wednesday: "Ср",
	Thursday:  "Чт",
	Friday:    "Пт",
	Saturday:  "Сб",
	Sunday:    "Вс",
}

// ParseDayLabel преобразует русское название дня в код.
// Принимает только 7 фиксированных названий с клавиатуры.
func ParseDayLabel(label string) (Day, bool) {
	for day, l := range dayLabels {
		if l == label {
			return day, true
		}
	}
	return "", false
}

// Label возвращает русское название дня
func (d Day) Label() string {
	if label, ok := dayLabels[d]; ok {
		return label
	}
	return string(d)
}

// ShortLabel возвращает краткое русское название дня (Пн, Вт, ...)
func (d Day) ShortLabel() string {
	if label, ok := dayShortLabels[d]; ok {
		return label
	}
	return "?"
}

// Valid проверяет что код дня входит в закрытое множество из 7 значений
func (d Day) Valid() bool {
	_, ok := dayLabels[d]
	return ok
}
