package response

import "pharma_express/internal/domain/entities"

type CategoryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func FromCategories(categories []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{Name: c.Name, Description: c.Description})
	}
	return out
}

type MedicineResponse struct {
	ID       int     `json:"id"`
	Code     string  `json:"code,omitempty"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Dosage   string  `json:"dosage,omitempty"`
	Size     string  `json:"size,omitempty"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

func FromCatalogItem(it entities.CatalogItem) MedicineResponse {
	return MedicineResponse{
		ID:       it.ID,
		Code:     it.Code,
		Name:     it.Name,
		Brand:    it.Brand,
		Dosage:   it.Dosage,
		Size:     it.Size,
		Price:    it.Price,
		Category: it.Category,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []MedicineResponse {
	out := make([]MedicineResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCatalogItem(it))
	}
	return out
}

type SectionResponse struct {
	Category string             `json:"category"`
	Items    []MedicineResponse `json:"items"`
}

func FromSections(sections []entities.DrugSection) []SectionResponse {
	out := make([]SectionResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, SectionResponse{
			Category: s.Category,
			Items:    FromCatalogItems(s.Items),
		})
	}
	return out
}
