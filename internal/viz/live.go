package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/physlab/internal/acoustics"
	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/mech"
	"github.com/san-kum/physlab/internal/sim"
	"github.com/san-kum/physlab/internal/storage"
)

const (
	canvasCols      = 72
	canvasRows      = 22
	historyCapacity = 600
	frameDt         = 1.0 / 60.0
)

type TickMsg time.Time

// Model drives the interactive view for either experiment. It advances
// the Atwood simulation one frame per tick and re-renders the apparatus
// on a braille canvas with a stats sidebar.
type Model struct {
	experimentName string
	cfg            *config.Config
	store          *storage.Store

	// atwood state
	runner *sim.Runner
	frame  sim.Frame

	// resonance state
	airLength float64
	phase     float64

	canvas   *Canvas
	running  bool
	history  []float64
	trail    []float64 // recent cart positions
	params   map[string]float64
	keys     []string
	selected int
	showHelp bool
	lastLog  string
}

// NewModel builds the live view for the named experiment.
func NewModel(experimentName string, cfg *config.Config, store *storage.Store) Model {
	m := Model{
		experimentName: experimentName,
		cfg:            cfg,
		store:          store,
		canvas:         NewCanvas(canvasCols, canvasRows),
		running:        true,
		history:        make([]float64, 0, historyCapacity),
		trail:          make([]float64, 0, 100),
		params:         make(map[string]float64),
	}

	switch experimentName {
	case "resonance":
		m.params["frequency_hz"] = cfg.Resonance.FrequencyHz
		m.params["diameter_m"] = cfg.Resonance.TubeDiameterM
		m.params["temp_c"] = cfg.Resonance.TempC
		m.airLength = cfg.Resonance.AirLengthM
		if m.airLength <= 0 {
			m.airLength = m.targetLength() * 0.75
		}
	default:
		m.params["mass_table"] = cfg.Atwood.MassTableKg
		m.params["mass_hanging"] = cfg.Atwood.MassHangingKg
		m.params["mu"] = cfg.Atwood.Mu
		m.params["gravity"] = cfg.Atwood.Gravity
		m.runner = sim.New(cfg.MechParams())
		m.frame = sim.Frame{Velocity: cfg.Atwood.InitVelocity}
	}

	for k := range m.params {
		m.keys = append(m.keys, k)
	}
	sort.Strings(m.keys)

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			if len(m.keys) > 0 {
				m.selected = (m.selected + 1) % len(m.keys)
			}
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "left", "h":
			m.movePiston(-0.002)
		case "right", "l":
			m.movePiston(0.002)
		case "f":
			if m.experimentName == "atwood" {
				m.cfg.Atwood.FrictionOn = !m.cfg.Atwood.FrictionOn
				m.syncAtwoodParams()
			}
		case "t":
			m.logTrial()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	switch m.experimentName {
	case "resonance":
		m.phase += 2 * math.Pi * frameDt * 2 // slow visual oscillation
		m.pushHistory(m.strength())
	default:
		m.frame = m.runner.Step(m.frame.Position, m.frame.Velocity, m.frame.T, frameDt)
		m.pushHistory(m.frame.Velocity)
		m.trail = append(m.trail, m.frame.Position)
		if len(m.trail) > 100 {
			m.trail = m.trail[1:]
		}
	}
}

func (m *Model) pushHistory(v float64) {
	m.history = append(m.history, v)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) reset() {
	m.history = m.history[:0]
	m.trail = m.trail[:0]
	m.lastLog = ""
	if m.experimentName == "atwood" {
		m.frame = sim.Frame{Velocity: m.cfg.Atwood.InitVelocity}
	}
}

func (m *Model) adjustParam(factor float64) {
	if len(m.keys) == 0 {
		return
	}
	key := m.keys[m.selected]
	m.params[key] *= factor
	switch m.experimentName {
	case "resonance":
		m.cfg.Resonance.FrequencyHz = m.params["frequency_hz"]
		m.cfg.Resonance.TubeDiameterM = m.params["diameter_m"]
		m.cfg.Resonance.TempC = m.params["temp_c"]
	default:
		m.cfg.Atwood.MassTableKg = m.params["mass_table"]
		m.cfg.Atwood.MassHangingKg = m.params["mass_hanging"]
		m.cfg.Atwood.Mu = m.params["mu"]
		m.cfg.Atwood.Gravity = m.params["gravity"]
		m.syncAtwoodParams()
	}
}

func (m *Model) syncAtwoodParams() {
	if m.runner != nil {
		m.runner.SetParams(m.cfg.MechParams())
	}
}

func (m *Model) movePiston(delta float64) {
	if m.experimentName != "resonance" {
		return
	}
	m.airLength += delta
	if m.airLength < 0 {
		m.airLength = 0
	}
}

func (m *Model) logTrial() {
	if m.store == nil {
		m.lastLog = "no data directory"
		return
	}
	var trial experiment.Trial
	switch m.experimentName {
	case "resonance":
		trial = experiment.NewResonanceTrial(
			m.cfg.Resonance.FrequencyHz, m.cfg.Resonance.TubeDiameterM,
			m.airLength, m.targetLength())
	default:
		p := m.cfg.MechParams()
		trial = experiment.NewAtwoodTrial(p, m.cfg.Atwood.TargetM,
			mech.ResolveFromRest(p, m.cfg.Atwood.TargetM))
	}
	logged, err := m.store.AppendTrial(trial)
	if err != nil {
		m.lastLog = "log failed: " + err.Error()
		return
	}
	m.lastLog = fmt.Sprintf("logged trial #%d", logged.ID)
}

func (m *Model) speedOfSound() float64 {
	return acoustics.SpeedOfSoundFromTemp(m.cfg.Resonance.TempC)
}

func (m *Model) targetLength() float64 {
	return acoustics.FirstHarmonicAirLength(
		m.cfg.Resonance.FrequencyHz, m.speedOfSound(), m.cfg.Resonance.TubeDiameterM)
}

func (m *Model) strength() float64 {
	return acoustics.ResonanceStrength(m.airLength, m.targetLength())
}

func (m Model) View() string {
	m.canvas.Clear()
	var stats string
	if m.experimentName == "resonance" {
		m.drawTube()
		stats = m.resonanceStats()
	} else {
		m.drawAtwood()
		stats = m.atwoodStats()
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `  space  pause/resume      tab    next parameter
  up/dn  tune parameter    l/h    move piston (resonance)
  f      toggle friction   t      log trial
  r      reset             q      quit`

// drawAtwood renders table, cart, pulley, and hanging mass. The cart's
// travel and the hanging mass drop both follow frame.Position.
func (m *Model) drawAtwood() {
	w, h := m.canvas.DotWidth(), m.canvas.DotHeight()
	tableY := h / 3
	pulleyX := w - 16

	// table surface and leg
	m.canvas.Line(4, tableY, pulleyX, tableY)
	m.canvas.Line(8, tableY, 8, h-4)
	m.canvas.Line(pulleyX-6, tableY, pulleyX-6, h-4)

	// cart position wraps the visible track so long runs stay on screen
	track := float64(pulleyX - 24)
	toTrack := func(pos float64) int {
		px := math.Mod(pos*30, track)
		if px < 0 {
			px += track
		}
		return 10 + int(px)
	}
	cartX := toTrack(m.frame.Position)
	px := float64(cartX - 10)

	for dy := 2; dy <= 8; dy++ {
		m.canvas.Line(cartX, tableY-dy, cartX+12, tableY-dy)
	}

	// rope: cart to pulley, then down to the hanging mass
	m.canvas.Line(cartX+12, tableY-5, pulleyX, tableY-5)
	m.canvas.Blob(pulleyX+2, tableY-4, 2)

	drop := tableY + 6 + int(px/2)
	if drop > h-8 {
		drop = h - 8
	}
	m.canvas.Line(pulleyX+4, tableY-2, pulleyX+4, drop)
	m.canvas.Blob(pulleyX+4, drop+3, 3)

	for _, pos := range m.trail {
		m.canvas.Set(toTrack(pos)+6, tableY-10)
	}
}

// drawTube renders the closed tube, the piston at the current air-column
// length, and a standing-wave envelope whose amplitude tracks strength.
func (m *Model) drawTube() {
	w, h := m.canvas.DotWidth(), m.canvas.DotHeight()
	top, bottom := h/4, 3*h/4
	mid := (top + bottom) / 2
	left, right := 6, w-10

	m.canvas.Line(left, top, right, top)
	m.canvas.Line(left, bottom, right, bottom)
	m.canvas.Line(left, top, left, bottom) // closed end

	// piston position scaled against twice the target length
	span := 2 * m.targetLength()
	if span <= 0 {
		span = 1
	}
	frac := m.airLength / span
	if frac > 1 {
		frac = 1
	}
	pistonX := left + int(frac*float64(right-left-2))
	m.canvas.Line(pistonX, top, pistonX, bottom)
	m.canvas.Line(pistonX+1, top, pistonX+1, bottom)

	// quarter-wave envelope inside the air column: antinode at the open
	// (piston) end, node at the closed end
	amp := m.strength() * float64(bottom-top) / 2 * 0.9
	for x := left + 1; x < pistonX; x++ {
		u := float64(x-left) / float64(pistonX-left)
		env := amp * math.Sin(u*math.Pi/2) * math.Cos(m.phase)
		m.canvas.Set(x, mid-int(env))
		m.canvas.Set(x, mid+int(env))
	}
}

func (m Model) atwoodStats() string {
	f := m.frame.Forces
	var s strings.Builder
	s.WriteString(headerStyle.Render("HALF-ATWOOD") + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("velocity"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2f s", m.frame.T))
	row("Position", fmt.Sprintf("%.3f m", m.frame.Position))
	row("Velocity", fmt.Sprintf("%.3f m/s", m.frame.Velocity))
	row("Accel", fmt.Sprintf("%.3f m/s²", f.Acceleration))
	row("Tension", fmt.Sprintf("%.2f N", f.Tension))
	row("Friction", fmt.Sprintf("%.2f N", f.FrictionSigned))
	row("Net force", fmt.Sprintf("%.2f N", f.NetForce))
	row("Mode", string(f.Mode))
	fr := "off"
	if m.cfg.Atwood.FrictionOn {
		fr = "on"
	}
	row("Friction sw", fr)

	s.WriteString(m.paramLines())
	s.WriteString(m.footer())
	return s.String()
}

func (m Model) resonanceStats() string {
	target := m.targetLength()
	strength := m.strength()
	band := acoustics.QualityBand(strength)

	var s strings.Builder
	s.WriteString(headerStyle.Render("RESONANCE TUBE") + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("strength"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Speed (air)", fmt.Sprintf("%.1f m/s", m.speedOfSound()))
	row("Target L", fmt.Sprintf("%.4f m", target))
	row("Air column", fmt.Sprintf("%.4f m", m.airLength))
	row("Inferred v", fmt.Sprintf("%.1f m/s", acoustics.InferredSpeed(
		m.cfg.Resonance.FrequencyHz, m.airLength, m.cfg.Resonance.TubeDiameterM)))

	s.WriteString("\n" + labelStyle.Render("Strength") + Meter(strength, 20, band.Class) + "\n")
	s.WriteString(labelStyle.Render("Band") + BandStyle(band.Class).Render(band.Label) + "\n")

	s.WriteString(m.paramLines())
	s.WriteString(m.footer())
	return s.String()
}

func (m Model) statusLine() string {
	if m.running {
		return "RUNNING"
	}
	return "PAUSED"
}

func (m Model) paramLines() string {
	var s strings.Builder
	s.WriteString("\nPARAMETERS\n")
	for i, k := range m.keys {
		line := fmt.Sprintf("%-14s %.3f", k, m.params[k])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	return s.String()
}

func (m Model) footer() string {
	out := helpStyle.Render("\n──────────────────────\nSP:Pause R:Reset T:Log Q:Quit ?:Help")
	if m.lastLog != "" {
		out += "\n" + loggedStyle.Render(m.lastLog)
	}
	return out
}
