// Package product holds the Product aggregate: a licensable piece of software.
package product

import (
	"strings"
	"time"
)

type Product struct {
	id          uint
	name        string
	description string // markdown
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(name, description string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	return &Product{
		name:        name,
		description: strings.TrimSpace(description),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProduct(id uint, name, description string, createdAt, updatedAt time.Time) (*Product, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return &Product{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Product) ID() uint             { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrInvalidID
	}
	p.id = id
	return nil
}

// Update applies the non-nil fields.
func (p *Product) Update(name, description *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrNameRequired
		}
		p.name = trimmed
	}
	if description != nil {
		p.description = strings.TrimSpace(*description)
	}
	p.updatedAt = time.Now()
	return nil
}
