package viz

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(canvasTop, canvasLeft)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(statsWidth)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Italic(true)

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	StatusRecording = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Blink(true)

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))

	menuTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuIdle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

// GradientText colors each rune of text on a line between two hex colors.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		r := sr + int(t*float64(er-sr))
		g := sg + int(t*float64(eg-sg))
		b := sb + int(t*float64(eb-sb))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// ProgressBar renders percent in [0, 1] as a bar of width cells.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case percent > 0.8:
		return SparkHigh.Render(bar)
	case percent > 0.4:
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}

// SparklineChart renders the last width values as a one-line sparkline.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var result strings.Builder
	for _, v := range values {
		norm := (v - lo) / rng
		idx := max(0, min(len(chars)-1, int(norm*float64(len(chars)-1))))
		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(SparkHigh.Render(c))
		case norm > 0.3:
			result.WriteString(SparkMid.Render(c))
		default:
			result.WriteString(SparkLow.Render(c))
		}
	}
	return result.String()
}

func toggle(on bool) string {
	if on {
		return onStyle.Render("on")
	}
	return offStyle.Render("off")
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func hexColor(r, g, b int) string {
	clampByte := func(v int) int { return max(0, min(255, v)) }
	return "#" + hexByte(clampByte(r)) + hexByte(clampByte(g)) + hexByte(clampByte(b))
}

func hexByte(v int) string {
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}

func rgba(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
