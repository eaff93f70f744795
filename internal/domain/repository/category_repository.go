package repository

import "github.com/jhoicas/Categorias-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve (nil, nil) cuando el id no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	CountByParent(parentID string) (int, error)
	Delete(id string) error
}
