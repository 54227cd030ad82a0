package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/wanderer/internal/config"
	"github.com/san-kum/wanderer/internal/physics"
)

var presetInfo = map[string]string{
	"default": "steady drift, shy of the pointer",
	"fast":    "quick, jumpy, random bounces",
	"slow":    "lazy glide with friction",
	"chaotic": "gravity, wild spins, bolts away",
	"calm":    "ignores the pointer entirely",
}

// menu picks a preset and boundary behavior, then hands over to a Model.
type menu struct {
	presets  []string
	cursor   int
	behavior int
	opts     Options
	started  bool
	live     Model
	size     *tea.WindowSizeMsg
	err      error
}

func newMenu(opts Options) menu {
	return menu{presets: config.ListPresets(), opts: opts}
}

func (m menu) Init() tea.Cmd { return nil }

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.started {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = &msg
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m menu) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	behaviors := physics.EdgeBehaviors()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(len(m.presets)-1, m.cursor+1)
	case "left", "h":
		m.behavior = (m.behavior + len(behaviors) - 1) % len(behaviors)
	case "right", "l":
		m.behavior = (m.behavior + 1) % len(behaviors)
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m menu) start() (tea.Model, tea.Cmd) {
	name := m.presets[m.cursor]
	cfg := config.GetPreset(name)
	cfg.Behavior.BoundaryBehavior = physics.EdgeBehaviors()[m.behavior]

	opts := m.opts
	opts.Preset = name
	live, err := NewModel(*cfg, opts)
	if err != nil {
		m.err = err
		return m, nil
	}
	if m.size != nil {
		next, _ := live.Update(*m.size)
		live = next.(Model)
	}
	m.live, m.started = live, true
	return m, live.Init()
}

func (m menu) View() string {
	if m.started {
		return m.live.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("WANDERER") + "\n    " + menuSubtle.Render("a mover that keeps its distance") + "\n    " + menuSubtle.Render("─────────────────────────") + "\n\n")
	for i, name := range m.presets {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-10s", name)), menuDesc.Render(presetInfo[name])))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", menuIdle.Render(fmt.Sprintf("%-10s", name)), menuSubtle.Render(presetInfo[name])))
		}
	}

	b.WriteString(fmt.Sprintf("\n    %s %s\n", menuSubtle.Render("boundary"), menuSelected.Render("◂ "+string(physics.EdgeBehaviors()[m.behavior])+" ▸")))
	if m.err != nil {
		b.WriteString("\n    " + noticeStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuIdle.Render(" preset  ") + menuKey.Render("h/l") + menuIdle.Render(" boundary  ") + menuKey.Render("enter") + menuIdle.Render(" start  ") + menuKey.Render("q") + menuIdle.Render(" quit") + "\n")
	return b.String()
}

// RunMenu shows the preset picker, then the live view.
func RunMenu(opts Options) error {
	final, err := tea.NewProgram(newMenu(opts), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if mm, ok := final.(menu); ok && mm.started {
		mm.live.mover.Stop()
	}
	return err
}
