package dto

import "time"

// SaveCategoryRequest entrada para crear o actualizar una categoría.
// ParentID ausente o null significa categoría raíz. Create y Update comparten
// el mismo cuerpo: Update siempre sobreescribe name y parent_id (no hay
// actualización parcial; el cliente reenvía ambos campos).
type SaveCategoryRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

// CategoryResponse salida de una categoría (representación plana).
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryTreeNode salida anidada: una categoría con sus hijas directas.
// Children vacío indica hoja.
type CategoryTreeNode struct {
	CategoryResponse
	Children []CategoryTreeNode `json:"children"`
}

// MessageResponse cuerpo de confirmación simple (ej. borrado).
type MessageResponse struct {
	Message string `json:"message"`
}
