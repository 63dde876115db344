package common

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Константы размеров и отступов
const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 100
	leftLabelsWidth = 80
	dayPaddingX     = 8
	minItemHeight   = 14.0
	itemBorderRad   = 6.0
	totalDays       = 7
	hourPaddingTop  = 1
	hourPaddingBot  = 1
	defaultMinHour  = 8
	defaultMaxHour  = 20
)

// Константы шрифтов
const (
	titleFontSize     = 25.0
	dayFontSize       = 24.0
	hourLabelFontSize = 18.0
	itemFontSize      = 16.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}
	itemColor      = color.RGBA{133, 193, 85, 220}
	itemTextColor  = color.RGBA{20, 24, 28, 230}
)

var (
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func init() {
	// Ошибки парсинга встроенных шрифтов игнорируются:
	// loadFont в этом случае откатывается на basicfont
	regularFont, _ = opentype.Parse(goregular.TTF)
	boldFont, _ = opentype.Parse(gobold.TTF)
}

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// loadFont устанавливает шрифт нужного размера, с fallback на basicfont
func loadFont(dc *gg.Context, size float64, bold bool) {
	f := regularFont
	if bold {
		f = boldFont
	}
	if f != nil {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// GenerateWeekImage рисует недельную сетку занятий пользователя
func GenerateWeekImage(items []model.ScheduleItem) ([]byte, error) {
	itemsByDay := groupItemsByDay(items)
	hours := calculateHourRange(items)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := (imageWidth - leftLabelsWidth) / totalDays
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawTitle(dc)
	drawHourLabels(dc, hours, cellHeight)
	drawDays(dc, itemsByDay, hours, dayWidth, dayHeight, cellHeight)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}

// groupItemsByDay группирует занятия по дням недели
func groupItemsByDay(items []model.ScheduleItem) map[model.Day][]model.ScheduleItem {
	byDay := make(map[model.Day][]model.ScheduleItem)
	for _, item := range items {
		day := model.Day(item.DayOfWeek)
		byDay[day] = append(byDay[day], item)
	}
	return byDay
}

// parseMinutes переводит "HH:MM" в минуты от полуночи
func parseMinutes(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// calculateHourRange определяет диапазон часов для отображения
func calculateHourRange(items []model.ScheduleItem) hourRange {
	minHour := 24
	maxHour := 0

	for _, item := range items {
		if start, ok := parseMinutes(item.TimeStart); ok {
			if start/60 < minHour {
				minHour = start / 60
			}
		}
		if end, ok := parseMinutes(item.TimeEnd); ok {
			endH := end / 60
			if end%60 > 0 {
				endH++
			}
			if endH > maxHour {
				maxHour = endH
			}
		}
	}

	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 24 {
		endHour = 24
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour + 1,
	}
}

// drawTitle рисует заголовок изображения
func drawTitle(dc *gg.Context) {
	loadFont(dc, titleFontSize, true)
	dc.SetColor(textColor)
	dc.DrawStringAnchored("Расписание на неделю", float64(imageWidth)/2, float64(headerHeight)/4, 0.5, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, false)
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx < hours.total; hIdx++ {
		actualHour := hours.start + hIdx
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		label := fmt.Sprintf("%02d:00", actualHour)
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)

		dc.SetColor(hourLineColor)
		dc.DrawLine(float64(leftLabelsWidth), y, float64(imageWidth), y)
		dc.SetLineWidth(0.5)
		dc.Stroke()
		dc.SetColor(hourLabelColor)
	}
}

// drawDays рисует колонки дней недели с занятиями
func drawDays(dc *gg.Context, itemsByDay map[model.Day][]model.ScheduleItem, hours hourRange, dayWidth, dayHeight int, cellHeight float64) {
	for dayIndex, day := range model.WeekDays {
		x := float64(leftLabelsWidth + dayIndex*dayWidth)

		// Фон колонки: чередование светлых оттенков
		if dayIndex%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, float64(headerHeight), float64(dayWidth), float64(dayHeight))
		dc.Fill()

		// Название дня
		loadFont(dc, dayFontSize, true)
		dc.SetColor(textColor)
		dc.DrawStringAnchored(day.ShortLabel(), x+float64(dayWidth)/2, float64(headerHeight)*0.75, 0.5, 0.5)

		for i := range itemsByDay[day] {
			drawItem(dc, &itemsByDay[day][i], x, hours, cellHeight, dayWidth)
		}
	}
}

// drawItem рисует одно занятие в колонке дня
func drawItem(dc *gg.Context, item *model.ScheduleItem, dayX float64, hours hourRange, cellHeight float64, dayWidth int) {
	startMin, ok := parseMinutes(item.TimeStart)
	if !ok {
		return
	}
	endMin, ok := parseMinutes(item.TimeEnd)
	if !ok || endMin <= startMin {
		// time_start < time_end сервером не гарантируется,
		// такие занятия рисуем блоком минимальной высоты
		endMin = startMin + 30
	}

	minutesFromTop := float64(startMin - hours.start*60)
	y := float64(headerHeight) + minutesFromTop/60.0*cellHeight
	h := float64(endMin-startMin) / 60.0 * cellHeight
	if h < minItemHeight {
		h = minItemHeight
	}

	x := dayX + dayPaddingX
	w := float64(dayWidth) - 2*dayPaddingX

	dc.SetColor(itemColor)
	dc.DrawRoundedRectangle(x, y, w, h, itemBorderRad)
	dc.Fill()

	loadFont(dc, itemFontSize, false)
	dc.SetColor(itemTextColor)
	label := fmt.Sprintf("%s-%s %s", item.TimeStart, item.TimeEnd, item.Subject)
	dc.DrawStringAnchored(truncateLabel(dc, label, w-8), x+4, y+h/2, 0, 0.5)
}

// truncateLabel обрезает подпись занятия под ширину блока
func truncateLabel(dc *gg.Context, label string, maxWidth float64) string {
	w, _ := dc.MeasureString(label)
	if w <= maxWidth {
		return label
	}
	runes := []rune(label)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		w, _ = dc.MeasureString(string(runes) + "…")
		if w <= maxWidth {
			return string(runes) + "…"
		}
	}
	return "…"
}
