package keyboard

import (
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// Подписи кнопок главного меню (reply клавиатура)
const (
	BtnShowSchedule = "Показать расписание"
	BtnExport       = "Экспорт расписания"
	BtnCreate       = "Добавить занятие"
	BtnDelete       = "Удалить занятие"
	BtnEdit         = "Редактировать занятие"
	BtnHelp         = "Помощь и список команд"
	BtnStatistics   = "Статистика"
	BtnMainMenu     = "Главное меню"
	BtnCancel       = "❌ Отмена"
)

// MainMenu возвращает reply клавиатуру главного меню
func MainMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: BtnShowSchedule}, {Text: BtnExport}},
			{{Text: BtnCreate}, {Text: BtnDelete}},
			{{Text: BtnEdit}},
			{{Text: BtnHelp}},
			{{Text: BtnStatistics}},
		},
		ResizeKeyboard:        true,
		InputFieldPlaceholder: "Выберите пункт меню.",
	}
}

// Days возвращает reply клавиатуру выбора дня недели
func Days() *models.ReplyKeyboardMarkup {
	rows := make([][]models.KeyboardButton, 0, len(model.WeekDays)+1)
	for _, day := range model.WeekDays {
		rows = append(rows, []models.KeyboardButton{{Text: day.Label()}})
	}
	rows = append(rows, []models.KeyboardButton{{Text: BtnMainMenu}})

	return &models.ReplyKeyboardMarkup{
		Keyboard:              rows,
		ResizeKeyboard:        true,
		InputFieldPlaceholder: "Выберите день недели.",
	}
}

// Cancel возвращает reply клавиатуру с единственной кнопкой отмены
func Cancel() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: BtnCancel}},
		},
		ResizeKeyboard: true,
	}
}
