package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"12:05", true},
		{"19:45", true},
		{"23:59", true},

		{"24:00", false},
		{"25:00", false},
		{"12:60", false},
		{"9:00", false}, // час без ведущего нуля
		{"9:5", false},
		{"09:5", false},
		{"0930", false},
		{"09-30", false},
		{"09:30:00", false},
		{" 09:30", false},
		{"09:30 ", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTime(tt.input))
		})
	}
}

func TestIsEditableField(t *testing.T) {
	assert.True(t, IsEditableField(FieldSubject))
	assert.True(t, IsEditableField(FieldTimeStart))
	assert.True(t, IsEditableField(FieldTimeEnd))
	assert.True(t, IsEditableField(FieldDescription))

	assert.False(t, IsEditableField("day_of_week"))
	assert.False(t, IsEditableField("id"))
	assert.False(t, IsEditableField(""))
}
