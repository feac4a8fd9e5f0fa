package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nerrad567/netinv/internal/device"
)

// Form field indexes. Index 0 is the kind selector; the rest are text inputs.
const (
	fieldKind = iota
	fieldName
	fieldIP
	fieldBrand
	fieldModel
	fieldExtra
	fieldCount
)

// form is the add/edit dialog. The kind selector drives the label and
// interpretation of the variant field; editing an existing device keeps its
// kind fixed, as the original position in the inventory and the status are
// preserved on submit.
type form struct {
	editing      bool
	originalName string

	kinds   []device.Kind
	kindIdx int

	inputs []textinput.Model
	focus  int

	brands []string
	err    error
}

// newForm creates an empty add form.
func newForm(brands []string) *form {
	f := &form{
		kinds:  device.AllKinds(),
		brands: brands,
		inputs: make([]textinput.Model, fieldCount-1),
	}

	placeholders := []string{"core-router-01", "192.168.1.1", "Cisco", "ISR4431", ""}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Width = 32
		in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorCyan))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorComment))
		f.inputs[i] = in
	}

	f.focus = fieldKind
	return f
}

// newEditForm creates a form pre-filled from an existing device.
func newEditForm(d *device.Device, brands []string) *form {
	f := newForm(brands)
	f.editing = true
	f.originalName = d.Name

	for i, k := range f.kinds {
		if k == d.Kind {
			f.kindIdx = i
		}
	}

	f.inputs[fieldName-1].SetValue(d.Name)
	f.inputs[fieldIP-1].SetValue(d.IPAddress)
	f.inputs[fieldBrand-1].SetValue(d.Brand)
	f.inputs[fieldModel-1].SetValue(d.Model)
	f.inputs[fieldExtra-1].SetValue(d.Extra())

	// Kind is fixed while editing; start on the first text field.
	f.focus = fieldName
	f.inputs[fieldName-1].Focus()

	return f
}

// kind returns the currently selected variant.
func (f *form) kind() device.Kind {
	return f.kinds[f.kindIdx]
}

// extraLabel names the variant field for the selected kind.
func (f *form) extraLabel() string {
	switch f.kind() {
	case device.KindRouter:
		return "Ports"
	case device.KindSwitch:
		return "VLANs"
	default:
		return "Primary service"
	}
}

// next moves focus to the following field, wrapping around.
func (f *form) next() {
	f.setFocus((f.focus + 1) % fieldCount)
}

// prev moves focus to the preceding field, wrapping around.
func (f *form) prev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *form) setFocus(target int) {
	if f.editing && target == fieldKind {
		// Kind cannot change on edit; skip past the selector.
		if f.focus == fieldName {
			target = fieldExtra
		} else {
			target = fieldName
		}
	}

	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = target
	if f.focus > fieldKind {
		f.inputs[f.focus-1].Focus()
	}
}

// update handles one key message. It returns the constructed device when the
// form is submitted, or nil while editing continues.
func (f *form) update(msg tea.KeyMsg) (*device.Device, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		f.next()
		return nil, textinput.Blink
	case tea.KeyShiftTab, tea.KeyUp:
		f.prev()
		return nil, textinput.Blink
	case tea.KeyLeft, tea.KeyRight:
		if f.focus == fieldKind {
			if msg.Type == tea.KeyRight {
				f.kindIdx = (f.kindIdx + 1) % len(f.kinds)
			} else {
				f.kindIdx = (f.kindIdx + len(f.kinds) - 1) % len(f.kinds)
			}
			return nil, nil
		}
	case tea.KeyEnter:
		if f.focus == fieldExtra {
			d, err := f.build()
			if err != nil {
				f.err = err
				return nil, nil
			}
			return d, nil
		}
		f.next()
		return nil, textinput.Blink
	}

	if f.focus > fieldKind {
		var cmd tea.Cmd
		f.inputs[f.focus-1], cmd = f.inputs[f.focus-1].Update(msg)
		return nil, cmd
	}
	return nil, nil
}

// build constructs and validates the device from the form fields.
func (f *form) build() (*device.Device, error) {
	name := strings.TrimSpace(f.inputs[fieldName-1].Value())
	ip := strings.TrimSpace(f.inputs[fieldIP-1].Value())
	extra := strings.TrimSpace(f.inputs[fieldExtra-1].Value())

	var (
		d   *device.Device
		err error
	)
	switch f.kind() {
	case device.KindRouter, device.KindSwitch:
		var n int
		n, err = strconv.Atoi(extra)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q is not a number", device.ErrInvalidCount, f.extraLabel(), extra)
		}
		if f.kind() == device.KindRouter {
			d, err = device.NewRouter(name, ip, n)
		} else {
			d, err = device.NewSwitch(name, ip, n)
		}
	case device.KindServer:
		d, err = device.NewServer(name, ip, extra)
	}
	if err != nil {
		return nil, err
	}

	d.Brand = strings.TrimSpace(f.inputs[fieldBrand-1].Value())
	d.Model = strings.TrimSpace(f.inputs[fieldModel-1].Value())
	return d, nil
}

// view renders the form.
func (f *form) view(s styles) string {
	var b strings.Builder

	title := "Add Device"
	if f.editing {
		title = "Edit Device: " + f.originalName
	}
	b.WriteString(s.title.Render(title) + "\n\n")

	// Kind selector
	kindLine := "  "
	for i, k := range f.kinds {
		label := string(k)
		if i == f.kindIdx {
			label = "[" + label + "]"
			if f.focus == fieldKind {
				label = s.title.Render(label)
			} else {
				label = s.label.Render(label)
			}
		} else {
			label = s.help.Render(" " + label + " ")
		}
		kindLine += label + " "
	}
	b.WriteString(s.label.Render("Kind:") + "\n" + kindLine + "\n\n")

	labels := []string{"Name", "IP address", "Brand", "Model", f.extraLabel()}
	for i, in := range f.inputs {
		b.WriteString(s.label.Render(labels[i]+":") + "\n")
		b.WriteString(in.View() + "\n")
		if i == fieldBrand-1 && len(f.brands) > 0 {
			b.WriteString(s.help.Render("  e.g. "+strings.Join(f.brands, ", ")) + "\n")
		}
	}

	if f.err != nil {
		b.WriteString("\n" + s.errMessage.Render("Error: "+f.err.Error()) + "\n")
	}

	b.WriteString("\n" + s.help.Render("Enter → next/submit | Tab/↑↓ → move | ←/→ → kind | Esc → cancel"))
	return b.String()
}
