package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Categorias-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func cat(id, name string, parentID *string) *entity.Category {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &entity.Category{ID: id, Name: name, ParentID: parentID, CreatedAt: now, UpdatedAt: now}
}

func ptr(s string) *string { return &s }

func loadedModel(cats ...*entity.Category) Model {
	m := NewModel(NewClient("http://localhost:5000"))
	next, _ := m.Update(categoriesLoadedMsg(cats))
	return next.(Model)
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filas visibles y expand/colapse
// ──────────────────────────────────────────────────────────────────────────────

func TestVisibleRows_ColapsadoPorDefecto(t *testing.T) {
	m := loadedModel(
		cat("1", "Women", nil),
		cat("2", "Clothing", ptr("1")),
	)

	// Con todo colapsado solo se ve la raíz.
	require.Len(t, m.rows, 1)
	assert.Equal(t, "Women", m.rows[0].cat.Name)
	assert.True(t, m.rows[0].hasChildren)
	assert.False(t, m.rows[0].expanded)
}

func TestToggle_ExpandeYColapsa(t *testing.T) {
	m := loadedModel(
		cat("1", "Women", nil),
		cat("2", "Clothing", ptr("1")),
	)

	m = press(m, "enter")
	require.Len(t, m.rows, 2, "expandir la raíz debe mostrar la hija")
	assert.Equal(t, "Clothing", m.rows[1].cat.Name)
	assert.Equal(t, 1, m.rows[1].depth)

	m = press(m, "enter")
	assert.Len(t, m.rows, 1, "colapsar vuelve a ocultar la hija")
}

func TestToggle_EnHojaNoHaceNada(t *testing.T) {
	m := loadedModel(cat("1", "Men", nil))

	m = press(m, "enter")
	assert.Len(t, m.rows, 1)
	assert.False(t, m.expanded["1"], "una hoja no tiene estado de expansión")
}

func TestRenderRow_HojaSinAfordanciaDeToggle(t *testing.T) {
	m := loadedModel(
		cat("1", "Women", nil),
		cat("2", "Clothing", ptr("1")),
		cat("3", "Men", nil),
	)

	conHijas := m.renderRow(m.rows[0], false)
	assert.Contains(t, conHijas, "▸", "nodo con hijas colapsado muestra ▸")

	hoja := m.renderRow(m.rows[1], false) // Men
	assert.NotContains(t, hoja, "▸")
	assert.NotContains(t, hoja, "▾")
}

func TestNavegacion_CursorAcotado(t *testing.T) {
	m := loadedModel(cat("1", "Women", nil), cat("2", "Men", nil))

	m = press(m, "k")
	assert.Equal(t, 0, m.cursor, "subir en el tope no mueve el cursor")

	m = press(m, "j")
	assert.Equal(t, 1, m.cursor)
	m = press(m, "j")
	assert.Equal(t, 1, m.cursor, "bajar en el fondo no mueve el cursor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Modal
// ──────────────────────────────────────────────────────────────────────────────

func TestModal_AltaDeRaiz(t *testing.T) {
	m := loadedModel(cat("1", "Women", nil))

	m = press(m, "n")
	assert.Equal(t, modeForm, m.mode)
	assert.Nil(t, m.formParent, "alta de raíz no lleva padre")
	assert.Nil(t, m.editing)
}

func TestModal_AltaDeSubcategoriaTomaPadreDelCursor(t *testing.T) {
	m := loadedModel(cat("1", "Women", nil))

	m = press(m, "a")
	assert.Equal(t, modeForm, m.mode)
	require.NotNil(t, m.formParent)
	assert.Equal(t, "1", *m.formParent)
}

func TestModal_EdicionPrecargaElNombre(t *testing.T) {
	m := loadedModel(cat("1", "Women", nil))

	m = press(m, "e")
	assert.Equal(t, modeForm, m.mode)
	require.NotNil(t, m.editing)
	assert.Equal(t, "Women", m.input.Value())
}

func TestModal_EscCancelaSinMutar(t *testing.T) {
	m := loadedModel(cat("1", "Women", nil))

	m = press(m, "e")
	m = press(m, "esc")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Len(t, m.rows, 1, "cancelar no toca el árbol")
}

func TestModal_NombreVacioNoEnvia(t *testing.T) {
	m := loadedModel(cat("1", "Women", nil))

	m = press(m, "n") // input vacío
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Nil(t, cmd, "sin nombre no debe dispararse ninguna petición")
	assert.Equal(t, modeForm, m.mode, "el modal sigue abierto para corregir")
	assert.NotEmpty(t, m.errText)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado y errores de API
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_PideConfirmacionYCancelaConCualquierTecla(t *testing.T) {
	m := loadedModel(cat("1", "Women", nil))

	m = press(m, "d")
	assert.Equal(t, modeConfirmDelete, m.mode)

	m = press(m, "x")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Len(t, m.rows, 1, "cancelar la confirmación no borra nada")
}

func TestApiError_SeMuestraTextualYElEstadoQuedaIntacto(t *testing.T) {
	m := loadedModel(
		cat("1", "Women", nil),
		cat("2", "Clothing", ptr("1")),
	)
	m = press(m, "enter") // expandir

	next, _ := m.Update(apiErrorMsg{err: assertError("Cannot delete category with children")})
	m = next.(Model)

	assert.Equal(t, "Cannot delete category with children", m.errText)
	assert.Len(t, m.rows, 2, "el árbol visible no cambia ante un error")
}

// assertError error de prueba con mensaje fijo.
type assertError string

func (e assertError) Error() string { return string(e) }
