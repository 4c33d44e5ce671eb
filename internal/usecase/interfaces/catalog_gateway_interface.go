package interfaces

import (
	"context"

	"pharma_express/internal/domain/entities"
)

// ICatalogGateway abstracts the remote catalog and benefit-plan endpoints.
type ICatalogGateway interface {
	Categories(ctx context.Context) ([]entities.Category, error)
	MedicinesByCategory(ctx context.Context, category string) ([]entities.CatalogItem, error)
	UserInformation(ctx context.Context, email string) (entities.UserInformation, error)
	AssignmentsByPlan(ctx context.Context, planID int) ([]int, error)
	MonthlyAssignment(ctx context.Context, assignmentID int) (entities.MonthlyAssignment, error)
}
