// Package tree construye la vista anidada del árbol de categorías a partir
// de la lista plana persistida. Todas las funciones son puras: mismo input,
// mismo output, sin estado interno. La vista anidada es efímera y se
// reconstruye en cada llamada; nunca se persiste.
package tree

import "github.com/jhoicas/Categorias-api/internal/domain/entity"

// Node empareja una categoría con sus hijas directas. Una hoja tiene
// Children vacío.
type Node struct {
	Category *entity.Category
	Children []*Node
}

// IsLeaf indica si el nodo no tiene subcategorías.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Roots devuelve las categorías sin padre, preservando el orden de entrada
// (que a su vez es el orden de creación que entrega el repositorio).
func Roots(cats []*entity.Category) []*entity.Category {
	var roots []*entity.Category
	for _, c := range cats {
		if c.IsRoot() {
			roots = append(roots, c)
		}
	}
	return roots
}

// Children devuelve las hijas directas de parentID, preservando el orden de
// entrada.
func Children(cats []*entity.Category, parentID string) []*entity.Category {
	var children []*entity.Category
	for _, c := range cats {
		if c.ParentID != nil && *c.ParentID == parentID {
			children = append(children, c)
		}
	}
	return children
}

// HasChildren indica si alguna categoría de la lista referencia a id como
// padre.
func HasChildren(cats []*entity.Category, id string) bool {
	for _, c := range cats {
		if c.ParentID != nil && *c.ParentID == id {
			return true
		}
	}
	return false
}

// Build anida la lista plana en un bosque de nodos, una raíz por categoría
// sin padre. La recursión termina porque la relación padre-hijo es un árbol;
// ante datos corruptos (ciclos) el set de visitados corta la expansión en
// lugar de recursar infinitamente.
func Build(cats []*entity.Category) []*Node {
	visited := make(map[string]bool, len(cats))
	var forest []*Node
	for _, root := range Roots(cats) {
		forest = append(forest, buildNode(cats, root, visited))
	}
	return forest
}

func buildNode(cats []*entity.Category, cat *entity.Category, visited map[string]bool) *Node {
	visited[cat.ID] = true
	node := &Node{Category: cat}
	for _, child := range Children(cats, cat.ID) {
		if visited[child.ID] {
			continue
		}
		node.Children = append(node.Children, buildNode(cats, child, visited))
	}
	return node
}

// WouldCycle determina si asignar newParentID como padre de id convertiría a
// id en su propio ancestro. Camina la cadena de ancestros desde el padre
// propuesto; el auto-padre es el caso degenerado. El set de vistos protege
// contra cadenas ya corruptas.
func WouldCycle(cats []*entity.Category, id, newParentID string) bool {
	byID := make(map[string]*entity.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	seen := make(map[string]bool)
	current := newParentID
	for current != "" {
		if current == id {
			return true
		}
		if seen[current] {
			return false
		}
		seen[current] = true
		parent, ok := byID[current]
		if !ok || parent.ParentID == nil {
			return false
		}
		current = *parent.ParentID
	}
	return false
}
