package medapi

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"pharma_express/internal/domain/entities"
)

// The remote API is inconsistent about key names and value types across
// deployments: ids arrive as numbers or numeric strings, medicine lists as
// id lists, object lists or comma-joined strings, and several keys have
// legacy aliases. The helpers here fold all of that into entities.

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// pickID reads "id" with "pk" as fallback.
func pickID(m map[string]any) int {
	if id, ok := asInt(m["id"]); ok {
		return id
	}
	if id, ok := asInt(m["pk"]); ok {
		return id
	}
	return 0
}

func pickString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// parseMedicineIDs folds the medicine field aliases (medicinas > meds >
// items) and value shapes into a sorted id list. Unparseable elements are
// skipped, never fatal.
func parseMedicineIDs(m map[string]any) []int {
	var raw any
	for _, k := range []string{"medicinas", "meds", "items"} {
		if v, ok := m[k]; ok && v != nil {
			raw = v
			break
		}
	}

	var ids []int
	switch v := raw.(type) {
	case []any:
		for _, el := range v {
			switch e := el.(type) {
			case map[string]any:
				if id := pickID(e); id != 0 {
					ids = append(ids, id)
				}
			default:
				if id, ok := asInt(e); ok {
					ids = append(ids, id)
				}
			}
		}
	case string:
		for _, part := range strings.Split(v, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}

// parseCreatedAt reads the creation date aliases (create_date > fecha_pedido
// > created_at) and keeps only the date part of an ISO timestamp. A value
// that does not look like YYYY-MM-DD yields a zero time.
func parseCreatedAt(m map[string]any) time.Time {
	raw := pickString(m, "create_date", "fecha_pedido", "created_at")
	if len(raw) < 10 {
		return time.Time{}
	}
	datePart := raw[:10]
	if datePart[4] != '-' || datePart[7] != '-' {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseOrder normalizes one order body.
func parseOrder(m map[string]any) entities.Order {
	if len(m) == 0 {
		return entities.Order{}
	}
	o := entities.Order{
		ID:          pickID(m),
		MedicineIDs: parseMedicineIDs(m),
		Status:      entities.OrderStatus(pickString(m, "status", "estado")),
		CreatedAt:   parseCreatedAt(m),
		UserName:    asString(m["user_name"]),
	}
	if uid, ok := asInt(m["user"]); ok {
		o.UserID = uid
	} else if uid, ok := asInt(m["user_id"]); ok {
		o.UserID = uid
	}
	if cost, ok := asFloat(m["costototal"]); ok {
		o.TotalCost = cost
	}
	if meds, ok := m["medicinas"].([]any); ok {
		for _, el := range meds {
			med, ok := el.(map[string]any)
			if !ok {
				continue
			}
			o.Medicines = append(o.Medicines, entities.OrderMedicine{
				ID:          pickID(med),
				Name:        asString(med["nombre"]),
				Description: asString(med["descripcion"]),
				Category:    asString(med["categoria"]),
			})
		}
	}
	return o
}

// parseCatalogItem normalizes one drug body from the assignment or catalog
// endpoints.
func parseCatalogItem(m map[string]any) entities.CatalogItem {
	item := entities.CatalogItem{
		ID:     pickID(m),
		Code:   asString(m["code"]),
		Name:   asString(m["nombre"]),
		Brand:  asString(m["nombremarca"]),
		Dosage: asString(m["dosis"]),
		Size:   asString(m["tamano"]),
	}
	if price, ok := asFloat(m["costototal"]); ok {
		item.Price = price
	}
	switch cat := m["categoria"].(type) {
	case map[string]any:
		item.Category = asString(cat["nombre"])
	case string:
		item.Category = cat
	}
	return item
}
