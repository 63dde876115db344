package model

import "time"

type ScheduleItem struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	DayOfWeek   string    `json:"day_of_week"`
	TimeStart   string    `json:"time_start"` // "HH:MM", 24-часовой формат
	TimeEnd     string    `json:"time_end"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Редактируемые поля занятия. День недели через редактирование не меняется.
const (
	FieldSubject     = "subject"
	FieldTimeStart   = "time_start"
	FieldTimeEnd     = "time_end"
	FieldDescription = "description"
)

// IsEditableField проверяет что поле можно менять через диалог редактирования
func IsEditableField(field string) bool {
	switch field {
	case FieldSubject, FieldTimeStart, FieldTimeEnd, FieldDescription:
		return true
	}
	return false
}
