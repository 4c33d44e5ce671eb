package usecase

import (
	"context"
	"errors"
	"log"

	"pharma_express/internal/domain/entities"
	"pharma_express/internal/usecase/interfaces"
)

var ErrNoUserInformation = errors.New("no user information for email")

// IAssignmentUseCase runs the benefit-screen orchestration: profile lookup,
// phase resolution, monthly assignment resolution and selection-set priming.

type IAssignmentUseCase interface {
	Resolve(ctx context.Context, sessionID, email string) (entities.AssignmentDetail, error)
}

type AssignmentUseCase struct {
	catalog   interfaces.ICatalogGateway
	lifecycle IOrderLifecycleUseCase
	selection ISelectionUseCase
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(catalog interfaces.ICatalogGateway, lifecycle IOrderLifecycleUseCase, selection ISelectionUseCase) *AssignmentUseCase {
	return &AssignmentUseCase{catalog: catalog, lifecycle: lifecycle, selection: selection}
}

// Resolve assembles the assignment screen for one session.
//
// The user profile supplies the plan-level budget and insurance as a first
// cut; the monthly assignment, when reachable, overrides both and supplies
// the drug list. A month already completed skips every assignment fetch:
// nothing is selectable until next month, so the extra calls buy nothing.
// Assignment lookups degrade softly, the profile-level budget stands in.
func (u *AssignmentUseCase) Resolve(ctx context.Context, sessionID, email string) (entities.AssignmentDetail, error) {
	info, err := u.catalog.UserInformation(ctx, email)
	if err != nil {
		log.Printf("[assignment][usecase] user information failed email=%s err=%v", email, err)
		return entities.AssignmentDetail{}, err
	}
	if info.UserID == 0 {
		return entities.AssignmentDetail{}, ErrNoUserInformation
	}

	detail := entities.AssignmentDetail{UserName: info.UserName}
	if info.HealthPlan != nil {
		detail.Budget = info.HealthPlan.MonthlyBudget
		if info.HealthPlan.Insurance != nil {
			detail.InsuranceName = info.HealthPlan.Insurance.Name
		}
	}

	phase, err := u.lifecycle.ResolveCurrentPhase(ctx, info.UserID)
	if err != nil {
		return entities.AssignmentDetail{}, err
	}
	detail.Phase = phase

	if phase.Kind == entities.PhaseMonthCompleted {
		log.Printf("[assignment][usecase] month completed user_id=%d; skipping assignment fetch", info.UserID)
		return detail, nil
	}

	if info.HealthPlan != nil && info.HealthPlan.ID != 0 {
		if a, ok := u.monthlyAssignment(ctx, info.HealthPlan.ID); ok {
			if a.Budget > 0 {
				detail.Budget = a.Budget
			}
			if a.InsuranceName != "" {
				detail.InsuranceName = a.InsuranceName
			}
			detail.Sections = entities.GroupByCategory(a.Drugs)
		}
	}

	u.selection.Ensure(sessionID, detail.Budget)
	if len(detail.Sections) > 0 {
		var items []entities.CatalogItem
		for _, s := range detail.Sections {
			items = append(items, s.Items...)
		}
		u.selection.LoadCatalog(sessionID, items)
	}
	if phase.Kind == entities.PhaseInProgress && phase.Order != nil && len(phase.Order.MedicineIDs) > 0 {
		u.selection.Rehydrate(sessionID, phase.Order.MedicineIDs)
	}

	return detail, nil
}

// monthlyAssignment resolves the plan's first assignment. Both lookups are
// soft failures for the screen as a whole.
func (u *AssignmentUseCase) monthlyAssignment(ctx context.Context, planID int) (entities.MonthlyAssignment, bool) {
	ids, err := u.catalog.AssignmentsByPlan(ctx, planID)
	if err != nil {
		log.Printf("[assignment][usecase] assignments by plan failed plan_id=%d err=%v", planID, err)
		return entities.MonthlyAssignment{}, false
	}
	if len(ids) == 0 {
		log.Printf("[assignment][usecase] no assignments for plan_id=%d", planID)
		return entities.MonthlyAssignment{}, false
	}

	a, err := u.catalog.MonthlyAssignment(ctx, ids[0])
	if err != nil {
		log.Printf("[assignment][usecase] monthly assignment failed id=%d err=%v", ids[0], err)
		return entities.MonthlyAssignment{}, false
	}
	return a, true
}
