package entity

import "time"

// Category representa un nodo del árbol de categorías.
// ParentID en nil significa categoría raíz (nivel superior).
type Category struct {
	ID        string
	Name      string
	ParentID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
