package medapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pharma_express/internal/domain/entities"
	"pharma_express/internal/usecase/interfaces"
)

// CatalogGateway implements the category, medicine and benefit-plan
// endpoints.
type CatalogGateway struct {
	client *Client
}

var _ interfaces.ICatalogGateway = (*CatalogGateway)(nil)

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) Categories(ctx context.Context) ([]entities.Category, error) {
	raw, _, err := g.client.do(ctx, http.MethodGet, "categorias/", nil, nil, "categories")
	if err != nil {
		return nil, err
	}

	var body []map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: categories: %v", ErrMalformedResponse, err)
	}

	categories := make([]entities.Category, 0, len(body))
	for _, m := range body {
		categories = append(categories, entities.Category{
			Name:        asString(m["nombre"]),
			Description: asString(m["descripcion"]),
		})
	}
	return categories, nil
}

func (g *CatalogGateway) MedicinesByCategory(ctx context.Context, category string) ([]entities.CatalogItem, error) {
	q := url.Values{"name": {category}}
	raw, _, err := g.client.do(ctx, http.MethodGet, "medicinas/by_category_name/", q, nil, "medicines_by_category")
	if err != nil {
		return nil, err
	}

	var body []map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: medicines: %v", ErrMalformedResponse, err)
	}

	items := make([]entities.CatalogItem, 0, len(body))
	for _, m := range body {
		it := parseCatalogItem(m)
		if it.Category == "" {
			it.Category = category
		}
		items = append(items, it)
	}
	return items, nil
}

// UserInformation resolves the profile and plan. The backend accepts the
// email as the user_id query value.
func (g *CatalogGateway) UserInformation(ctx context.Context, email string) (entities.UserInformation, error) {
	q := url.Values{"user_id": {email}}
	raw, _, err := g.client.do(ctx, http.MethodGet, "usuariosplanes/get_user_information/", q, nil, "user_information")
	if err != nil {
		return entities.UserInformation{}, err
	}

	var body struct {
		UserID          int     `json:"user_id"`
		UserName        string  `json:"user_name"`
		ShippingAddress string  `json:"shipping_address"`
		MonthlyBudget   float64 `json:"user_monthly_budget"`
		HealthPlan      *struct {
			ID            int     `json:"id"`
			Name          string  `json:"name"`
			Description   string  `json:"description"`
			MonthlyBudget float64 `json:"monthly_budget"`
			Insurance     *struct {
				Name        string `json:"name"`
				Description string `json:"description"`
				Email       string `json:"email"`
				Address     string `json:"address"`
				Phone       string `json:"phone"`
				IDNumber    string `json:"insurance_id_number"`
			} `json:"health_insurance"`
		} `json:"health_plan"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return entities.UserInformation{}, fmt.Errorf("%w: user information: %v", ErrMalformedResponse, err)
	}

	info := entities.UserInformation{
		UserID:          body.UserID,
		UserName:        body.UserName,
		ShippingAddress: body.ShippingAddress,
		MonthlyBudget:   body.MonthlyBudget,
	}
	if body.HealthPlan != nil {
		plan := &entities.HealthPlan{
			ID:            body.HealthPlan.ID,
			Name:          body.HealthPlan.Name,
			Description:   body.HealthPlan.Description,
			MonthlyBudget: body.HealthPlan.MonthlyBudget,
		}
		if body.HealthPlan.Insurance != nil {
			plan.Insurance = &entities.Insurance{
				Name:        body.HealthPlan.Insurance.Name,
				Description: body.HealthPlan.Insurance.Description,
				Email:       body.HealthPlan.Insurance.Email,
				Address:     body.HealthPlan.Insurance.Address,
				Phone:       body.HealthPlan.Insurance.Phone,
				IDNumber:    body.HealthPlan.Insurance.IDNumber,
			}
		}
		info.HealthPlan = plan
	}
	return info, nil
}

func (g *CatalogGateway) AssignmentsByPlan(ctx context.Context, planID int) ([]int, error) {
	q := url.Values{"plan_salud": {strconv.Itoa(planID)}}
	raw, _, err := g.client.do(ctx, http.MethodGet, "asignacionmensual/get_asignaciones_por_plan_salud/", q, nil, "assignments_by_plan")
	if err != nil {
		return nil, err
	}

	var body []map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: assignments: %v", ErrMalformedResponse, err)
	}

	ids := make([]int, 0, len(body))
	for _, m := range body {
		if id := pickID(m); id != 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// MonthlyAssignment resolves the asignación mensual: budget ceiling and
// insurance come from the nested plan_salud object, the drug list from
// "drugs".
func (g *CatalogGateway) MonthlyAssignment(ctx context.Context, assignmentID int) (entities.MonthlyAssignment, error) {
	q := url.Values{"id": {strconv.Itoa(assignmentID)}}
	raw, _, err := g.client.do(ctx, http.MethodGet, "asignacionmensual/get_asignacion_mensual/", q, nil, "monthly_assignment")
	if err != nil {
		return entities.MonthlyAssignment{}, err
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return entities.MonthlyAssignment{}, fmt.Errorf("%w: monthly assignment: %v", ErrMalformedResponse, err)
	}

	a := entities.MonthlyAssignment{ID: pickID(body)}
	if a.ID == 0 {
		a.ID = assignmentID
	}
	if plan, ok := body["plan_salud"].(map[string]any); ok {
		if budget, ok := asFloat(plan["presupuesto_mensual"]); ok {
			a.Budget = budget
		}
		if seguro := asString(plan["seguro_medico"]); seguro != "" {
			a.InsuranceName = seguro
		}
	}
	if drugs, ok := body["drugs"].([]any); ok {
		for _, el := range drugs {
			m, ok := el.(map[string]any)
			if !ok {
				continue
			}
			a.Drugs = append(a.Drugs, parseCatalogItem(m))
		}
	}
	return a, nil
}
