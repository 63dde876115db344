package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayLabel(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		want   Day
		wantOK bool
	}{
		{name: "monday", label: "Понедельник", want: Monday, wantOK: true},
		{name: "sunday", label: "Воскресенье", want: Sunday, wantOK: true},
		{name: "lowercase is rejected", label: "понедельник", wantOK: false},
		{name: "short label is rejected", label: "Пн", wantOK: false},
		{name: "internal code is rejected", label: "monday", wantOK: false},
		{name: "empty", label: "", wantOK: false},
		{name: "garbage", label: "Каникулы", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := ParseDayLabel(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, day)
			}
		})
	}
}

// Каждый день недели должен иметь уникальную подпись,
// разбираемую обратно в тот же код
func TestDayLabelRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, day := range WeekDays {
		label := day.Label()
		require.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true

		parsed, ok := ParseDayLabel(label)
		require.True(t, ok, "label %q must parse", label)
		assert.Equal(t, day, parsed)
	}
}

func TestDayValid(t *testing.T) {
	for _, day := range WeekDays {
		assert.True(t, day.Valid(), "day %q", day)
	}
	assert.False(t, Day("someday").Valid())
	assert.False(t, Day("").Valid())
	assert.False(t, Day("Понедельник").Valid())
}

func TestDayShortLabel(t *testing.T) {
	assert.Equal(t, "Пн", Monday.ShortLabel())
	assert.Equal(t, "Вс", Sunday.ShortLabel())
	assert.Equal(t, "?", Day("someday").ShortLabel())
}
