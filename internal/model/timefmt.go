package model

import "regexp"

// Время занятия вводится строкой в формате HH:MM с ведущим нулём.
// Диапазон 00:00-23:59, "9:00" или "24:00" не принимаются.
var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTime проверяет строку времени на соответствие формату HH:MM
func IsValidTime(s string) bool {
	return timeRe.MatchString(s)
}
