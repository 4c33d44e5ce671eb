package entities

// CatalogItem is a drug from the remote catalog. Immutable once loaded.
type CatalogItem struct {
	ID       int
	Code     string
	Name     string
	Brand    string
	Dosage   string
	Size     string
	Price    float64
	Category string
}

// Category is a drug category from the remote catalog.
type Category struct {
	Name        string
	Description string
}

// DrugSection groups catalog items under their category for display.
type DrugSection struct {
	Category string
	Items    []CatalogItem
}

// GroupByCategory builds display sections preserving first-seen category
// order. Items without a category land in "Uncategorized".
func GroupByCategory(items []CatalogItem) []DrugSection {
	index := make(map[string]int)
	var sections []DrugSection
	for _, it := range items {
		cat := it.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		i, ok := index[cat]
		if !ok {
			i = len(sections)
			index[cat] = i
			sections = append(sections, DrugSection{Category: cat})
		}
		sections[i].Items = append(sections[i].Items, it)
	}
	return sections
}
