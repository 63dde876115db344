package state

// UserState - текущий шаг диалога пользователя
type UserState string

const (
	StateNone UserState = "" // Нет активного диалога

	// Создание занятия: линейная цепочка из 5 шагов
	StateCreateDay         UserState = "create_day"
	StateCreateTimeStart   UserState = "create_time_start"
	StateCreateTimeEnd     UserState = "create_time_end"
	StateCreateSubject     UserState = "create_subject"
	StateCreateDescription UserState = "create_description"

	// Редактирование занятия
	StateEditChoosingItem  UserState = "edit_choosing_item"
	StateEditChoosingField UserState = "edit_choosing_field"
	StateEditEnteringValue UserState = "edit_entering_value"
	StateEditConfirm       UserState = "edit_confirm"

	// Удаление занятия
	StateDeleteChoosingItem UserState = "delete_choosing_item"
	StateDeleteConfirm      UserState = "delete_confirm"
)

// Ключи временных данных диалогов
const (
	KeyDay       = "day"
	KeyTimeStart = "time_start"
	KeyTimeEnd   = "time_end"
	KeySubject   = "subject"
	KeyItemID    = "item_id"
	KeyEditField = "field_to_edit"
	KeyEditValue = "new_value"
)

// UserData хранит шаг диалога и накопленные данные пользователя
type UserData struct {
	State UserState
	Data  map[string]interface{}
}
