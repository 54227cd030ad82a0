package viz

import (
	"fmt"
	"image"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wanderer/internal/config"
	"github.com/san-kum/wanderer/internal/dynamo"
	"github.com/san-kum/wanderer/internal/metrics"
	"github.com/san-kum/wanderer/internal/perturb"
	"github.com/san-kum/wanderer/internal/physics"
	"github.com/san-kum/wanderer/internal/sim"
	"go.uber.org/zap"
)

const (
	statsWidth = 46
	// canvasLeft and canvasTop are the screen cell of the canvas origin.
	canvasLeft, canvasTop = 2, 1
	minCols, minRows      = 16, 6
	trailLength           = 120
	historyCapacity       = 300
	flashFrames           = 8
	snapshotFile          = "wanderer.svg"
	recordingFile         = "wanderer.gif"
)

type TickMsg time.Time

type Options struct {
	Preset string
	// Scale is how many container pixels one braille dot covers.
	Scale     float64
	MoverSize float64
	// Seed fixes the random source. Zero draws from the global source.
	Seed   int64
	Logger *zap.Logger
}

func DefaultOptions() Options {
	return Options{Preset: "default", Scale: 4, MoverSize: 24}
}

// Model is the live terminal view of a single mover. The terminal mouse is
// the pointer and the canvas is the container.
type Model struct {
	cfg     config.Config
	opts    Options
	mover   *sim.Mover
	stage   *Stage
	pointer *sim.PointerTracker
	counter *metrics.Counter

	cols, rows int
	canvas     *Canvas
	trail      []dynamo.Vec2
	speeds     []float64

	running   bool
	showHelp  bool
	recording bool
	frames    []*image.Paletted
	notice    string

	zoom        float64
	hovered     bool
	spinPhase   float64
	wallFlash   int
	escapeFlash int
}

func NewModel(cfg config.Config, opts Options) (Model, error) {
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m := Model{
		opts:    opts,
		stage:   &Stage{},
		pointer: sim.NewPointerTracker(),
		counter: metrics.NewCounter(),
		cols:    minCols,
		rows:    minRows,
		running: true,
		zoom:    1,
	}
	m.canvas = NewCanvas(m.cols, m.rows)
	if err := m.rebuild(cfg); err != nil {
		return Model{}, err
	}
	return m, nil
}

// rebuild replaces the mover with a fresh, unplaced one.
func (m *Model) rebuild(cfg config.Config) error {
	opts := []sim.Option{
		sim.WithContainer(m.stage),
		sim.WithPointer(m.pointer),
		sim.WithSink(m.counter),
		sim.WithLogger(m.opts.Logger),
	}
	if m.opts.MoverSize > 0 {
		opts = append(opts, sim.WithSize(m.opts.MoverSize, m.opts.MoverSize))
	}
	if m.opts.Seed != 0 {
		opts = append(opts, sim.WithSource(dynamo.NewSeeded(m.opts.Seed)))
	}

	mover, err := sim.New(cfg, opts...)
	if err != nil {
		return err
	}
	if m.mover != nil {
		m.mover.Stop()
	}
	m.mover = mover
	m.cfg = mover.Config()
	m.counter.Reset()
	m.trail = m.trail[:0]
	m.speeds = m.speeds[:0]
	m.zoom, m.spinPhase = 1, 0
	return nil
}

// Mover exposes the simulated element, mainly for tests.
func (m Model) Mover() *sim.Mover { return m.mover }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		m.pointAt(msg.X, msg.Y)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.running {
			m.observe(m.mover.Tick())
		}
		m.animate()
		m.draw()
		if m.recording {
			m.frames = append(m.frames, m.canvas.Image(8, 16, rgba(CurrentTheme.Mover)))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.recording {
			m.saveGIF()
		}
		m.mover.Stop()
		return *m, tea.Quit
	case " ":
		m.running = !m.running
	case "r":
		if err := m.rebuild(m.cfg); err != nil {
			m.notice = err.Error()
		}
	case "p":
		m.nextPreset()
	case "b":
		m.reconfigure(func(c *config.Config) {
			c.Behavior.BoundaryBehavior = nextBehavior(c.Behavior.BoundaryBehavior)
		})
	case "v":
		m.reconfigure(func(c *config.Config) { c.Behavior.EnableGravity = !c.Behavior.EnableGravity })
	case "f":
		m.reconfigure(func(c *config.Config) { c.Behavior.EnableFriction = !c.Behavior.EnableFriction })
	case "o":
		m.reconfigure(func(c *config.Config) { c.Visual.EnableHoverEffects = !c.Visual.EnableHoverEffects })
	case "e":
		m.reconfigure(func(c *config.Config) {
			c.Advanced.EnablePerformanceMode = !c.Advanced.EnablePerformanceMode
		})
		m.trail = m.trail[:0]
	case "t":
		nextTheme()
	case "s":
		m.saveSVG()
	case "g":
		if m.recording {
			m.saveGIF()
		} else {
			m.recording, m.frames = true, nil
			m.notice = "recording"
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return *m, nil
}

func (m *Model) reconfigure(fn func(*config.Config)) {
	if err := m.mover.Reconfigure(fn); err != nil {
		m.notice = err.Error()
		return
	}
	m.cfg = m.mover.Config()
}

func (m *Model) nextPreset() {
	names := config.ListPresets()
	next := names[0]
	for i, name := range names {
		if name == m.opts.Preset {
			next = names[(i+1)%len(names)]
			break
		}
	}
	preset := config.GetPreset(next)
	m.reconfigure(func(c *config.Config) { *c = *preset })
	m.opts.Preset = next
	m.notice = "preset " + next
}

func nextBehavior(b physics.EdgeBehavior) physics.EdgeBehavior {
	all := physics.EdgeBehaviors()
	for i, e := range all {
		if e == b {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (m *Model) resize(width, height int) {
	m.cols = max(minCols, width-statsWidth-2*canvasLeft-2)
	m.rows = max(minRows, height-2*canvasTop-1)
	m.canvas = NewCanvas(m.cols, m.rows)
	w, h := m.canvas.Dots()
	m.stage.Resize(float64(w)*m.opts.Scale, float64(h)*m.opts.Scale)
}

// pointAt maps a screen cell to the center of that cell in container pixels.
// Cells off the canvas clear the pointer.
func (m *Model) pointAt(x, y int) {
	col, row := x-canvasLeft, y-canvasTop
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		m.pointer.Clear()
		return
	}
	s := m.opts.Scale
	m.pointer.Set(float64(col*2+1)*s, float64(row*4+2)*s)
}

func (m *Model) observe(events []sim.Event) {
	w, h := m.mover.Size()
	for _, e := range events {
		switch e.Kind {
		case sim.WallCollision:
			m.wallFlash = flashFrames
		case sim.MouseCollision:
			m.escapeFlash = flashFrames
		case sim.PositionChanged:
			if !m.cfg.Advanced.EnablePerformanceMode {
				m.trail = append(m.trail, dynamo.Vec2{X: e.Position.X + w/2, Y: e.Position.Y + h/2})
				if len(m.trail) > trailLength {
					m.trail = m.trail[1:]
				}
			}
			m.speeds = append(m.speeds, m.mover.State().Velocity.Magnitude())
			if len(m.speeds) > historyCapacity {
				m.speeds = m.speeds[1:]
			}
		}
	}
}

// spinDuration is the displayed spin period. Without spin variation the
// indicator keeps the initial cadence whatever the mover draws.
func (m *Model) spinDuration(st sim.MoverState) float64 {
	if !m.cfg.Rotation.EnableSpinVariation {
		return perturb.InitialSpinDuration
	}
	return st.SpinDuration
}

// animate advances the presentation-only state by one frame.
func (m *Model) animate() {
	dt := m.cfg.FrameInterval().Seconds()
	st := m.mover.State()

	if spin := m.spinDuration(st); m.running && m.cfg.Rotation.EnableRotation && spin > 0 {
		m.spinPhase = math.Mod(m.spinPhase+2*math.Pi*dt/spin, 2*math.Pi)
	}

	m.hovered = false
	if p, ok := m.pointer.Pointer(); ok && st.Initialized {
		w, h := m.mover.Size()
		m.hovered = p.X >= st.Position.X && p.X <= st.Position.X+w &&
			p.Y >= st.Position.Y && p.Y <= st.Position.Y+h
	}
	target := 1.0
	if m.hovered && m.cfg.Visual.EnableHoverEffects {
		target = m.cfg.Visual.HoverScale
	}
	m.zoom = approach(m.zoom, target, math.Abs(m.cfg.Visual.HoverScale-1)*dt/m.cfg.Visual.TransitionDuration)

	m.wallFlash = max(0, m.wallFlash-1)
	m.escapeFlash = max(0, m.escapeFlash-1)
}

// approach moves v towards target by at most step. A non-finite or
// non-positive step jumps straight to target.
func approach(v, target, step float64) float64 {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return target
	}
	if math.Abs(target-v) <= step {
		return target
	}
	if target > v {
		return v + step
	}
	return v - step
}

func (m *Model) dot(px float64) int {
	return int(math.Round(px / m.opts.Scale))
}

func (m *Model) draw() {
	m.canvas.Clear()
	w, h := m.canvas.Dots()
	m.canvas.StrokeRect(0, 0, w-1, h-1)

	st := m.mover.State()
	if !st.Initialized {
		return
	}

	jump := math.Max(float64(w), float64(h)) * m.opts.Scale / 2
	for i := 1; i < len(m.trail); i++ {
		a, b := m.trail[i-1], m.trail[i]
		if dynamo.Distance(a.X, a.Y, b.X, b.Y) > jump {
			continue
		}
		m.canvas.DrawLine(m.dot(a.X), m.dot(a.Y), m.dot(b.X), m.dot(b.Y))
	}

	mw, mh := m.mover.Size()
	cx, cy := st.Position.X+mw/2, st.Position.Y+mh/2
	hw, hh := mw*m.zoom/2, mh*m.zoom/2
	m.canvas.StrokeRect(m.dot(cx-hw), m.dot(cy-hh), m.dot(cx+hw), m.dot(cy+hh))

	if m.cfg.Rotation.EnableRotation {
		r := math.Min(hw, hh) * 0.8
		m.canvas.DrawLine(m.dot(cx), m.dot(cy), m.dot(cx+r*math.Cos(m.spinPhase)), m.dot(cy+r*math.Sin(m.spinPhase)))
	}
}

func (m *Model) saveSVG() {
	if err := os.WriteFile(snapshotFile, []byte(m.canvas.SVG(4, string(CurrentTheme.Mover))), 0644); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = "saved " + snapshotFile
}

func (m Model) canvasColor() lipgloss.Color {
	switch {
	case m.escapeFlash > 0:
		return CurrentTheme.Escape
	case m.wallFlash > 0:
		return CurrentTheme.Wall
	}
	return CurrentTheme.Mover
}

func (m Model) View() string {
	canvasView := canvasStyle.Foreground(m.canvasColor()).Render(m.canvas.String())

	st := m.mover.State()
	var s strings.Builder
	s.WriteString(GradientText("WANDERER", CurrentTheme.Mover, CurrentTheme.Accent) + "  " + m.cfg.Visual.Glyph + "\n")

	status := StatusRunning.Render("RUNNING")
	switch {
	case m.mover.Stopped():
		status = StatusPaused.Render("STOPPED")
	case !st.Initialized:
		status = StatusPaused.Render("WAITING")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}
	if m.recording {
		status += "  " + StatusRecording.Render("● REC")
	}
	s.WriteString(status + "\n\n")

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Preset", m.opts.Preset)
	row("Position", st.Position.String())
	row("Velocity", fmt.Sprintf("(%.2f, %.2f)", st.Velocity.DX, st.Velocity.DY))
	row("Speed", fmt.Sprintf("%.2f px/tick", st.Velocity.Magnitude()))
	row("Spin", fmt.Sprintf("%.2fs", m.spinDuration(st)))
	row("Boundary", string(m.cfg.Behavior.BoundaryBehavior))
	row("Tick", fmt.Sprintf("%d", st.Tick))
	s.WriteString("\n")

	row("Gravity", toggle(m.cfg.Behavior.EnableGravity))
	row("Friction", toggle(m.cfg.Behavior.EnableFriction))
	row("Hover", toggle(m.cfg.Visual.EnableHoverEffects))
	row("Perf mode", toggle(m.cfg.Advanced.EnablePerformanceMode))
	s.WriteString("\n")

	row("Walls", fmt.Sprintf("%d", m.counter.Count(sim.WallCollision)))
	row("Escapes", fmt.Sprintf("%d", m.counter.Count(sim.MouseCollision)))
	if m.cfg.Pointer.Enabled && m.cfg.Pointer.ThrottleDelay > 0 {
		ready := float64(time.Since(st.LastEscape)) / float64(m.cfg.Pointer.ThrottleDelay)
		row("Throttle", ProgressBar(math.Min(ready, 1), 16))
	}
	row("Speed", SparklineChart(m.speeds, 24))

	if len(m.speeds) > 1 {
		chart := asciigraph.Plot(m.speeds, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("speed"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.notice != "" {
		s.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause R:Reset P:Preset B:Edge\nV:Gravity F:Friction O:Hover E:Perf\nT:Theme S:Snapshot G:Record ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Mouse    - Chase the mover          ║
║  Space    - Pause/Resume             ║
║  R        - Restart from placement   ║
║  P        - Next preset              ║
║  B        - Next boundary behavior   ║
║  V / F    - Toggle gravity/friction  ║
║  O        - Toggle hover effect      ║
║  E        - Toggle performance mode  ║
║  S        - Save SVG snapshot        ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts a full-screen live view and blocks until it quits.
func Run(cfg config.Config, opts Options) error {
	m, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if lm, ok := final.(Model); ok {
		lm.mover.Stop()
	}
	m.mover.Stop()
	return err
}
