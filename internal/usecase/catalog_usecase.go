package usecase

import (
	"context"
	"errors"
	"strings"

	"pharma_express/internal/domain/entities"
	"pharma_express/internal/usecase/interfaces"
)

var ErrInvalidCategory = errors.New("invalid category name")

// ICatalogUseCase exposes the remote drug catalog grouped for display.

type ICatalogUseCase interface {
	Categories(ctx context.Context) ([]entities.Category, error)
	MedicinesByCategory(ctx context.Context, category string) ([]entities.CatalogItem, error)
	Sections(ctx context.Context) ([]entities.DrugSection, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogGateway
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogGateway) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) Categories(ctx context.Context) ([]entities.Category, error) {
	return u.catalog.Categories(ctx)
}

func (u *CatalogUseCase) MedicinesByCategory(ctx context.Context, category string) ([]entities.CatalogItem, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrInvalidCategory
	}
	return u.catalog.MedicinesByCategory(ctx, category)
}

// Sections fetches every category's medicines and groups them in the order
// the categories endpoint reported them.
func (u *CatalogUseCase) Sections(ctx context.Context) ([]entities.DrugSection, error) {
	categories, err := u.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}

	var items []entities.CatalogItem
	for _, c := range categories {
		meds, err := u.catalog.MedicinesByCategory(ctx, c.Name)
		if err != nil {
			return nil, err
		}
		items = append(items, meds...)
	}
	return entities.GroupByCategory(items), nil
}
