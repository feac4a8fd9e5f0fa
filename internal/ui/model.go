package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nerrad567/netinv/internal/device"
	"github.com/nerrad567/netinv/internal/infrastructure/config"
	"github.com/nerrad567/netinv/internal/infrastructure/logging"
)

// mode selects which screen the UI is on.
type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
	modeFilter
)

// Model is the bubbletea model for the inventory UI.
//
// The list screen shows the (filtered, sorted) inventory and dispatches all
// registry operations from key presses; the form screen adds or edits a
// device; the confirm screen guards removal.
type Model struct {
	ctx context.Context
	reg *device.Registry
	log *logging.Logger

	path   string
	brands []string

	mode    mode
	styles  styles
	devices []device.Device
	cursor  int

	sortKey device.SortKey
	filter  device.Query

	filterInput textinput.Model
	form        *form
	confirmName string

	message string
	isError bool

	width  int
	height int
}

// New creates the UI model. The registry should already be loaded; the path
// is where save and reload operate.
func New(ctx context.Context, reg *device.Registry, cfg *config.Config, log *logging.Logger) Model {
	fi := textinput.New()
	fi.Placeholder = "name contains..."
	fi.Width = 24
	fi.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorCyan))

	m := Model{
		ctx:         ctx,
		reg:         reg,
		log:         log.With("component", "ui"),
		path:        cfg.Inventory.Path,
		brands:      cfg.UI.Brands,
		styles:      newStyles(),
		sortKey:     device.SortKey(cfg.UI.Sort),
		filterInput: fi,
	}
	m.refresh()
	return m
}

// Run starts the UI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, reg *device.Registry, cfg *config.Config, log *logging.Logger) error {
	p := tea.NewProgram(New(ctx, reg, cfg, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the visible device list from the registry, applying the
// active filter and sort. The cursor is clamped to the new bounds.
func (m *Model) refresh() {
	m.devices = m.reg.Filter(m.filter)
	sortDevices(m.devices, m.sortKey)
	if m.cursor >= len(m.devices) {
		m.cursor = len(m.devices) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// sortDevices orders a device slice by the given key. Sorting is stable so
// insertion order is the tie-break, matching Registry.List.
func sortDevices(devices []device.Device, key device.SortKey) {
	switch key {
	case device.SortByKind:
		sort.SliceStable(devices, func(i, j int) bool { return devices[i].Kind < devices[j].Kind })
	case device.SortByStatus:
		sort.SliceStable(devices, func(i, j int) bool { return devices[i].Status < devices[j].Status })
	}
}

// selected returns the device under the cursor, or nil when the list is
// empty.
//
// Row operations dispatch by name, and name-addressed registry operations
// act on the first match in insertion order. With duplicate names the first
// duplicate is affected, which may not be the row under the cursor.
func (m *Model) selected() *device.Device {
	if len(m.devices) == 0 {
		return nil
	}
	return &m.devices[m.cursor]
}

// say sets the info message line.
func (m *Model) say(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.isError = false
}

// fail sets the error message line.
func (m *Model) fail(err error) {
	m.message = err.Error()
	m.isError = true
	m.log.Error("operation failed", "error", err)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeFilter:
			return m.updateFilter(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.devices)-1 {
			m.cursor++
		}

	case "a":
		m.form = newForm(m.brands)
		m.mode = modeForm
		m.message = ""
		return m, textinput.Blink

	case "e":
		if d := m.selected(); d != nil {
			m.form = newEditForm(d, m.brands)
			m.mode = modeForm
			m.message = ""
			return m, textinput.Blink
		}

	case "x":
		if d := m.selected(); d != nil {
			m.confirmName = d.Name
			m.mode = modeConfirm
		}

	case "c":
		if d := m.selected(); d != nil {
			if err := m.reg.Connect(d.Name); err != nil {
				m.fail(err)
			} else {
				m.say("%s connected", d.Name)
			}
			m.refresh()
		}
	case "d":
		if d := m.selected(); d != nil {
			if err := m.reg.Disconnect(d.Name); err != nil {
				m.fail(err)
			} else {
				m.say("%s disconnected", d.Name)
			}
			m.refresh()
		}

	case "s":
		if err := m.reg.Save(m.ctx, m.path); err != nil {
			m.fail(err)
		} else {
			m.say("saved %d devices to %s", m.reg.Count(), m.path)
		}

	case "r":
		skipped, err := m.reg.Load(m.ctx, m.path)
		if err != nil {
			m.fail(err)
		} else if skipped > 0 {
			m.say("loaded %d devices from %s (%d malformed lines skipped)", m.reg.Count(), m.path, skipped)
		} else {
			m.say("loaded %d devices from %s", m.reg.Count(), m.path)
		}
		m.refresh()

	case "/":
		m.mode = modeFilter
		m.filterInput.SetValue(m.filter.Name)
		m.filterInput.Focus()
		return m, textinput.Blink

	case "f":
		m.filter.Kind = cycleKind(m.filter.Kind)
		m.refresh()
	case "o":
		m.filter.Status = cycleStatus(m.filter.Status)
		m.refresh()
	case "t":
		m.sortKey = cycleSort(m.sortKey)
		m.refresh()

	case "esc":
		m.filter = device.Query{}
		m.message = ""
		m.refresh()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.mode = modeList
		m.form = nil
		return m, nil
	}

	d, cmd := m.form.update(msg)
	if d == nil {
		return m, cmd
	}

	var err error
	if m.form.editing {
		err = m.reg.Update(m.form.originalName, d)
	} else {
		err = m.reg.Add(d)
	}
	if err != nil {
		m.form.err = err
		return m, nil
	}

	if m.form.editing {
		m.say("updated %s", d.Name)
	} else {
		m.say("added %s", d.Name)
	}
	m.mode = modeList
	m.form = nil
	m.refresh()
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.reg.Remove(m.confirmName); err != nil {
			m.fail(err)
		} else {
			m.say("removed %s", m.confirmName)
		}
		m.mode = modeList
		m.confirmName = ""
		m.refresh()
	case "n", "N", "esc":
		m.mode = modeList
		m.confirmName = ""
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		if msg.Type == tea.KeyEsc {
			m.filterInput.SetValue("")
		}
		m.filter.Name = m.filterInput.Value()
		m.filterInput.Blur()
		m.mode = modeList
		m.refresh()
		return m, nil
	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.filter.Name = m.filterInput.Value()
		m.refresh()
		return m, cmd
	}
}

// cycleKind rotates the kind filter through all → router → switch → server.
func cycleKind(k device.Kind) device.Kind {
	switch k {
	case "":
		return device.KindRouter
	case device.KindRouter:
		return device.KindSwitch
	case device.KindSwitch:
		return device.KindServer
	default:
		return ""
	}
}

// cycleStatus rotates the status filter through all → connected → disconnected.
func cycleStatus(s device.Status) device.Status {
	switch s {
	case "":
		return device.StatusConnected
	case device.StatusConnected:
		return device.StatusDisconnected
	default:
		return ""
	}
}

// cycleSort rotates the sort key through none → kind → status.
func cycleSort(k device.SortKey) device.SortKey {
	switch k {
	case device.SortByKind:
		return device.SortByStatus
	case device.SortByStatus:
		return device.SortNone
	default:
		return device.SortByKind
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch m.mode {
	case modeForm:
		body = m.form.view(m.styles)
	case modeConfirm:
		body = m.viewConfirm()
	default:
		body = m.viewList()
	}
	return m.styles.app.Render(body)
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Remove Device") + "\n\n")
	b.WriteString(fmt.Sprintf("Remove %q from the inventory?\n\n", m.confirmName))
	b.WriteString(m.styles.help.Render("y → remove | n/Esc → cancel"))
	return b.String()
}

func (m Model) viewList() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render("netinv — network device inventory") + "\n\n")

	// Filter bar
	var parts []string
	if m.mode == modeFilter {
		parts = append(parts, "name: "+m.filterInput.View())
	} else if m.filter.Name != "" {
		parts = append(parts, fmt.Sprintf("name: %q", m.filter.Name))
	}
	if m.filter.Kind != "" {
		parts = append(parts, "kind: "+string(m.filter.Kind))
	}
	if m.filter.Status != "" {
		parts = append(parts, "status: "+string(m.filter.Status))
	}
	if m.sortKey == device.SortByKind || m.sortKey == device.SortByStatus {
		parts = append(parts, "sort: "+string(m.sortKey))
	}
	if len(parts) > 0 {
		b.WriteString(s.label.Render("Filters") + "  " + strings.Join(parts, "  ") + "\n\n")
	}

	// Table
	header := fmt.Sprintf("  %-8s %-20s %-16s %-13s %-16s %-12s %-12s",
		"KIND", "NAME", "IP ADDRESS", "STATUS", "EXTRA", "BRAND", "MODEL")
	b.WriteString(s.header.Render(header) + "\n")

	if len(m.devices) == 0 {
		b.WriteString(s.help.Render("  (no devices — press 'a' to add one)") + "\n")
	}
	for i, d := range m.devices {
		status := string(d.Status)
		if d.Status == device.StatusConnected {
			status = m.styles.connected.Render(" " + status + " ")
		} else {
			status = m.styles.disconnected.Render(" " + status + " ")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		row := fmt.Sprintf("%s%-8s %-20s %-16s %s %-16s %-12s %-12s",
			cursor, d.Kind, truncate(d.Name, 20), d.IPAddress,
			padStatus(status, string(d.Status)), truncate(d.Extra(), 16),
			truncate(d.Brand, 12), truncate(d.Model, 12))
		if i == m.cursor {
			row = s.rowSelected.Render(row)
		} else {
			row = s.row.Render(row)
		}
		b.WriteString(row + "\n")
	}

	// Status bar + message
	stats := m.reg.GetStats()
	b.WriteString("\n" + s.statusBar.Render(fmt.Sprintf(
		"%d devices (%d connected) — %d routers, %d switches, %d servers",
		stats.Total, stats.Connected,
		stats.ByKind[device.KindRouter], stats.ByKind[device.KindSwitch], stats.ByKind[device.KindServer],
	)) + "\n")

	if m.message != "" {
		if m.isError {
			b.WriteString(s.errMessage.Render(m.message) + "\n")
		} else {
			b.WriteString(s.message.Render(m.message) + "\n")
		}
	}

	b.WriteString("\n" + s.help.Render(
		"a add | e edit | x remove | c connect | d disconnect | s save | r reload\n"+
			"/ filter name | f filter kind | o filter status | t sort | Esc clear | q quit"))
	return b.String()
}

// truncate shortens a string to fit a column, counting runes so multibyte
// text is never cut mid-character.
func truncate(v string, max int) string {
	r := []rune(v)
	if len(r) <= max {
		return v
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// padStatus pads a styled status cell to the 13-character column using the
// unstyled text length, since ANSI codes confuse %-13s.
func padStatus(styled, plain string) string {
	// the styled cell carries one space of padding each side
	if n := 13 - (len(plain) + 2); n > 0 {
		return styled + strings.Repeat(" ", n)
	}
	return styled
}
