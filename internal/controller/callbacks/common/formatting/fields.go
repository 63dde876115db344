package formatting

import "github.com/Freeeeeet/timetable_bot/internal/model"

// FieldLabel возвращает русское название редактируемого поля
func FieldLabel(field string) string {
	switch field {
	case model.FieldSubject:
		return "Предмет"
	case model.FieldTimeStart:
		return "Время начала"
	case model.FieldTimeEnd:
		return "Время окончания"
	case model.FieldDescription:
		return "Описание"
	}
	return field
}

// FieldHint возвращает подсказку для ввода нового значения поля
func FieldHint(field string) string {
	switch field {
	case model.FieldSubject:
		return "📚 Введите новое название предмета:"
	case model.FieldTimeStart:
		return "⏰ Введите новое время начала (HH:MM):"
	case model.FieldTimeEnd:
		return "⏰ Введите новое время окончания (HH:MM):"
	case model.FieldDescription:
		return "📝 Введите новое описание:"
	}
	return "Введите новое значение:"
}
