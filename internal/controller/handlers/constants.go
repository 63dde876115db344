package handlers

// SkipDescription - ввод этого значения на шаге описания оставляет описание пустым
const SkipDescription = "-"
