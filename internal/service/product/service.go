// Package product validates admin catalog mutations before they reach
// persistence. Reads go through the catalog snapshot, not this service.
package product

import (
	"context"
	"errors"
	"strings"

	"github.com/talipby/koroglu-site/internal/domain"
	productrepo "github.com/talipby/koroglu-site/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the writable product fields for create and update.
type Input struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	PriceCents     int64   `json:"priceCents"`
	WholesaleCents int64   `json:"wholesaleCents"`
	Image          string  `json:"image"`
	Description    string  `json:"description"`
	InStock        bool    `json:"inStock"`
	MinOrder       float64 `json:"minOrder"`
	Unit           string  `json:"unit"`
	Origin         string  `json:"origin"`
	NutritionInfo  string  `json:"nutritionInfo"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return errors.New("category required")
	}
	if in.PriceCents < 0 || in.WholesaleCents < 0 {
		return errors.New("prices must be non-negative")
	}
	if in.MinOrder <= 0 {
		return errors.New("minOrder must be positive")
	}
	return nil
}

func (in Input) toDomain() domain.Product {
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "kg"
	}
	return domain.Product{
		Name:           strings.TrimSpace(in.Name),
		Category:       strings.TrimSpace(in.Category),
		PriceCents:     in.PriceCents,
		WholesaleCents: in.WholesaleCents,
		Image:          strings.TrimSpace(in.Image),
		Description:    in.Description,
		InStock:        in.InStock,
		MinOrder:       in.MinOrder,
		Unit:           unit,
		Origin:         strings.TrimSpace(in.Origin),
		NutritionInfo:  in.NutritionInfo,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in.toDomain())
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := in.toDomain()
	p.ID = id
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("id required")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}
