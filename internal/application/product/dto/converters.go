package dto

import (
	"licensehub/internal/domain/product"
	"licensehub/internal/shared/services/markdown"
)

// ProductConverter renders descriptions while converting entities.
type ProductConverter struct {
	renderer markdown.Renderer
}

func NewProductConverter(renderer markdown.Renderer) *ProductConverter {
	return &ProductConverter{renderer: renderer}
}

func (c *ProductConverter) ToResponse(p *product.Product) *ProductResponse {
	if p == nil {
		return nil
	}

	resp := &ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
	if c.renderer != nil {
		// a description that fails to render is still returned as source
		if rendered, err := c.renderer.ToHTMLSanitized(p.Description()); err == nil {
			resp.DescriptionHTML = rendered
		}
	}
	return resp
}
