// Package tui implementa el cliente de terminal del árbol de categorías.
// El modelo solo guarda estado transitorio de presentación (set de nodos
// expandidos, modal abierto, padre seleccionado, línea de error); el estado
// de dominio vive en el servidor y se vuelve a traer completo tras cada
// mutación.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/Categorias-api/internal/domain/entity"
	"github.com/jhoicas/Categorias-api/internal/domain/tree"
)

type mode int

const (
	modeBrowse mode = iota
	modeForm          // modal de alta/edición
	modeConfirmDelete
)

// row es una fila visible del árbol: categoría + profundidad + afordancia.
type row struct {
	cat         *entity.Category
	depth       int
	hasChildren bool
	expanded    bool
}

// Mensajes del ciclo de la TUI.
type (
	categoriesLoadedMsg []*entity.Category
	mutationDoneMsg     struct{}
	apiErrorMsg         struct{ err error }
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 2)
)

// Model es el modelo bubbletea del navegador de categorías.
type Model struct {
	client *Client

	cats     []*entity.Category
	rows     []row
	cursor   int
	expanded map[string]bool // por defecto todo colapsado

	mode       mode
	input      textinput.Model
	formParent *string          // padre seleccionado al agregar subcategoría
	editing    *entity.Category // categoría en edición (nil = alta)

	errText string
	loading bool
}

// NewModel construye el modelo inicial (colapsado, sin modal).
func NewModel(client *Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Nombre de la categoría"
	ti.CharLimit = 200
	return Model{
		client:   client,
		expanded: make(map[string]bool),
		input:    ti,
		loading:  true,
	}
}

// Init dispara la carga inicial.
func (m Model) Init() tea.Cmd {
	return m.fetchCmd()
}

// ──────────────────────────────────────────────────────────────────────────────
// Comandos (acceso a la API fuera del event loop)
// ──────────────────────────────────────────────────────────────────────────────

func (m Model) fetchCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		cats, err := client.Categories(context.Background())
		if err != nil {
			return apiErrorMsg{err}
		}
		return categoriesLoadedMsg(cats)
	}
}

func (m Model) saveCmd(name string) tea.Cmd {
	client := m.client
	editing := m.editing
	parent := m.formParent
	return func() tea.Msg {
		var err error
		if editing != nil {
			// Update siempre reenvía ambos campos; el padre no cambia desde la TUI.
			err = client.Update(context.Background(), editing.ID, name, editing.ParentID)
		} else {
			err = client.Create(context.Background(), name, parent)
		}
		if err != nil {
			return apiErrorMsg{err}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.Delete(context.Background(), id); err != nil {
			return apiErrorMsg{err}
		}
		return mutationDoneMsg{}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Update procesa mensajes de teclado y resultados de la API.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		m.cats = msg
		m.loading = false
		m.rebuildRows()
		return m, nil

	case mutationDoneMsg:
		// Tras cualquier mutación se vuelve a traer la lista completa.
		m.mode = modeBrowse
		m.errText = ""
		m.loading = true
		return m, m.fetchCmd()

	case apiErrorMsg:
		// El mensaje del servidor se muestra textual; el estado previo queda igual.
		m.errText = msg.err.Error()
		m.loading = false
		if m.mode == modeConfirmDelete {
			m.mode = modeBrowse
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "enter", " ":
		// Una hoja no tiene toggle: la tecla no hace nada.
		if r, ok := m.currentRow(); ok && r.hasChildren {
			m.expanded[r.cat.ID] = !m.expanded[r.cat.ID]
			m.rebuildRows()
		}

	case "n":
		m.openForm(nil, nil)
		return m, textinput.Blink

	case "a":
		if r, ok := m.currentRow(); ok {
			parentID := r.cat.ID
			m.openForm(&parentID, nil)
			return m, textinput.Blink
		}

	case "e":
		if r, ok := m.currentRow(); ok {
			m.openForm(nil, r.cat)
			return m, textinput.Blink
		}

	case "d":
		if _, ok := m.currentRow(); ok {
			m.mode = modeConfirmDelete
		}

	case "r":
		m.loading = true
		return m, m.fetchCmd()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.errText = ""
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.errText = "el nombre es requerido"
			return m, nil
		}
		return m, m.saveCmd(name)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if r, ok := m.currentRow(); ok {
			return m, m.deleteCmd(r.cat.ID)
		}
		m.mode = modeBrowse
	default:
		m.mode = modeBrowse
	}
	return m, nil
}

// openForm prepara el modal: editing en nil es alta (con padre opcional).
func (m *Model) openForm(parentID *string, editing *entity.Category) {
	m.mode = modeForm
	m.formParent = parentID
	m.editing = editing
	m.errText = ""
	if editing != nil {
		m.input.SetValue(editing.Name)
	} else {
		m.input.SetValue("")
	}
	m.input.CursorEnd()
	m.input.Focus()
}

// rebuildRows recalcula las filas visibles desde la lista plana y el set de
// expandidos, y acota el cursor.
func (m *Model) rebuildRows() {
	m.rows = visibleRows(m.cats, m.expanded)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// visibleRows aplana el bosque en filas, descendiendo solo por nodos
// expandidos. Puro: no toca el modelo.
func visibleRows(cats []*entity.Category, expanded map[string]bool) []row {
	var rows []row
	var walk func(nodes []*tree.Node, depth int)
	walk = func(nodes []*tree.Node, depth int) {
		for _, n := range nodes {
			r := row{
				cat:         n.Category,
				depth:       depth,
				hasChildren: !n.IsLeaf(),
				expanded:    expanded[n.Category.ID],
			}
			rows = append(rows, r)
			if r.hasChildren && r.expanded {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(tree.Build(cats), 0)
	return rows
}

// ──────────────────────────────────────────────────────────────────────────────
// View
// ──────────────────────────────────────────────────────────────────────────────

// View dibuja el árbol, o el modal cuando está abierto.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Categorías"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("cargando...") + "\n")
	case len(m.rows) == 0:
		b.WriteString(dimStyle.Render("sin categorías; presiona 'n' para crear la primera") + "\n")
	default:
		for i, r := range m.rows {
			b.WriteString(m.renderRow(r, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.mode == modeForm {
		b.WriteString("\n" + m.renderForm() + "\n")
	}
	if m.mode == modeConfirmDelete {
		if r, ok := m.currentRow(); ok {
			b.WriteString("\n" + errorStyle.Render(
				fmt.Sprintf("¿Eliminar %q? (y/n)", r.cat.Name)) + "\n")
		}
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+m.errText) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render(
		"↑/↓ mover · enter expandir/colapsar · n nueva raíz · a subcategoría · e editar · d eliminar · r recargar · q salir"))
	return b.String()
}

// renderRow dibuja una fila: sangría por nivel, toggle solo si tiene hijas
// (una hoja lleva espacio en blanco en lugar de afordancia).
func (m Model) renderRow(r row, selected bool) string {
	indent := strings.Repeat("  ", r.depth)
	toggle := " "
	if r.hasChildren {
		if r.expanded {
			toggle = "▾"
		} else {
			toggle = "▸"
		}
	}
	line := fmt.Sprintf("%s%s %s", indent, toggle, r.cat.Name)
	if selected {
		return cursorStyle.Render("> " + line)
	}
	return "  " + line
}

func (m Model) renderForm() string {
	title := "Nueva categoría raíz"
	switch {
	case m.editing != nil:
		title = fmt.Sprintf("Editar %q", m.editing.Name)
	case m.formParent != nil:
		if parent := m.findCat(*m.formParent); parent != nil {
			title = fmt.Sprintf("Nueva subcategoría de %q", parent.Name)
		} else {
			title = "Nueva subcategoría"
		}
	}
	body := title + "\n\n" + m.input.View() + "\n\n" + dimStyle.Render("enter guardar · esc cancelar")
	return modalStyle.Render(body)
}

func (m Model) findCat(id string) *entity.Category {
	for _, c := range m.cats {
		if c.ID == id {
			return c
		}
	}
	return nil
}
