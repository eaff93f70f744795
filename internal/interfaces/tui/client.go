package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Categorias-api/internal/application/dto"
	"github.com/jhoicas/Categorias-api/internal/domain/entity"
)

// Client consume la API REST de categorías desde el cliente de terminal.
// Ninguna petición se reintenta: un fallo se muestra al usuario tal cual y
// el estado previo queda intacto.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient construye el cliente apuntando a baseURL (ej. http://localhost:5000).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Categories trae la lista plana completa (orden de creación).
func (c *Client) Categories(ctx context.Context) ([]*entity.Category, error) {
	var out []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	cats := make([]*entity.Category, 0, len(out))
	for _, r := range out {
		cats = append(cats, &entity.Category{
			ID:        r.ID,
			Name:      r.Name,
			ParentID:  r.ParentID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return cats, nil
}

// Create crea una categoría; parentID en nil crea una raíz.
func (c *Client) Create(ctx context.Context, name string, parentID *string) error {
	in := dto.SaveCategoryRequest{Name: name, ParentID: parentID}
	return c.do(ctx, http.MethodPost, "/api/categories", in, nil)
}

// Update sobreescribe name y parent_id de la categoría id.
func (c *Client) Update(ctx context.Context, id, name string, parentID *string) error {
	in := dto.SaveCategoryRequest{Name: name, ParentID: parentID}
	return c.do(ctx, http.MethodPut, "/api/categories/"+id, in, nil)
}

// Delete elimina la categoría id (el servidor rechaza si tiene subcategorías).
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil)
}

// do ejecuta la petición y decodifica la respuesta. En error HTTP devuelve el
// message del servidor textual, para mostrarlo sin reformatear.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("serializar petición: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("armar petición: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("llamar API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("API respondió %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}
