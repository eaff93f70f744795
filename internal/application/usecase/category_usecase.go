package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Categorias-api/internal/application/dto"
	"github.com/jhoicas/Categorias-api/internal/domain"
	"github.com/jhoicas/Categorias-api/internal/domain/entity"
	"github.com/jhoicas/Categorias-api/internal/domain/repository"
	"github.com/jhoicas/Categorias-api/internal/domain/tree"
)

// CategoryUseCase aplica las reglas de dominio del árbol de categorías antes
// de delegar en el store: nombre requerido, padre existente, sin ciclos y
// sin borrado con hijas.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías en orden ascendente de creación.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Tree devuelve la vista anidada, reconstruida desde la lista plana en cada
// llamada.
func (uc *CategoryUseCase) Tree() ([]dto.CategoryTreeNode, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toTreeNodes(tree.Build(list)), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Create crea una categoría. ParentID ausente significa raíz; si viene, debe
// resolver a una categoría existente.
func (uc *CategoryUseCase) Create(in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	name, parentID, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update sobreescribe name y parent_id de forma incondicional (sin
// actualización parcial) y refresca updated_at. Rechaza el nuevo padre si
// convertiría a la categoría en su propio ancestro.
func (uc *CategoryUseCase) Update(id string, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	name, parentID, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	if parentID != nil {
		list, err := uc.repo.List()
		if err != nil {
			return nil, err
		}
		if tree.WouldCycle(list, id, *parentID) {
			return nil, domain.ErrCycle
		}
	}
	category.Name = name
	category.ParentID = parentID
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. Falla si no existe o si alguna otra la
// referencia como padre.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	children, err := uc.repo.CountByParent(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.ErrHasChildren
	}
	return uc.repo.Delete(id)
}

// validate aplica las reglas compartidas de create/update: nombre no vacío
// tras recortar espacios y padre existente cuando se indica.
func (uc *CategoryUseCase) validate(in dto.SaveCategoryRequest) (string, *string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.ParentID == nil || *in.ParentID == "" {
		return name, nil, nil
	}
	parent, err := uc.repo.GetByID(*in.ParentID)
	if err != nil {
		return "", nil, err
	}
	if parent == nil {
		return "", nil, fmt.Errorf("%w: parent_id no existe", domain.ErrInvalidInput)
	}
	parentID := *in.ParentID
	return name, &parentID, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toTreeNodes(nodes []*tree.Node) []dto.CategoryTreeNode {
	out := make([]dto.CategoryTreeNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, dto.CategoryTreeNode{
			CategoryResponse: *toCategoryResponse(n.Category),
			Children:         toTreeNodes(n.Children),
		})
	}
	return out
}
