package usecase

import (
	"context"
	"errors"
	"testing"

	"pharma_express/internal/domain/entities"
	mock_interfaces "pharma_express/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func userInfoFixture() entities.UserInformation {
	return entities.UserInformation{
		UserID:   9,
		UserName: "Ana",
		HealthPlan: &entities.HealthPlan{
			ID:            3,
			Name:          "Plan Oro",
			MonthlyBudget: 80,
			Insurance:     &entities.Insurance{Name: "Seguro Sur"},
		},
	}
}

func TestAssignmentUseCase_Resolve(t *testing.T) {
	t.Run("user information error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		uc := NewAssignmentUseCase(catalog, nil, nil)

		catalog.EXPECT().UserInformation(gomock.Any(), "a@b.com").Return(entities.UserInformation{}, errors.New("backend down"))

		if _, err := uc.Resolve(context.Background(), "sess-1", "a@b.com"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		uc := NewAssignmentUseCase(catalog, nil, nil)

		catalog.EXPECT().UserInformation(gomock.Any(), "a@b.com").Return(entities.UserInformation{}, nil)

		if _, err := uc.Resolve(context.Background(), "sess-1", "a@b.com"); !errors.Is(err, ErrNoUserInformation) {
			t.Fatalf("expected ErrNoUserInformation, got %v", err)
		}
	})

	t.Run("month completed skips assignment fetches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		orders := mock_interfaces.NewMockIOrderGateway(ctrl)
		lifecycle := NewOrderLifecycleUseCase(orders)
		selection := NewSelectionUseCase()
		uc := NewAssignmentUseCase(catalog, lifecycle, selection)

		catalog.EXPECT().UserInformation(gomock.Any(), "a@b.com").Return(userInfoFixture(), nil)
		orders.EXPECT().History(gomock.Any(), 9).Return([]entities.Order{
			{ID: 1, Status: entities.OrderStatusCompleted, CreatedAt: lifecycle.now()},
		}, nil)
		// No AssignmentsByPlan / MonthlyAssignment expectations.

		detail, err := uc.Resolve(context.Background(), "sess-1", "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Phase.Kind != entities.PhaseMonthCompleted {
			t.Fatalf("expected month completed, got %q", detail.Phase.Kind)
		}
		if detail.Budget != 80 || detail.InsuranceName != "Seguro Sur" {
			t.Fatalf("expected profile budget/insurance, got %+v", detail)
		}
		if len(detail.Sections) != 0 {
			t.Fatalf("expected no sections, got %d", len(detail.Sections))
		}
	})

	t.Run("assignment overrides budget and primes selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		orders := mock_interfaces.NewMockIOrderGateway(ctrl)
		lifecycle := NewOrderLifecycleUseCase(orders)
		selection := NewSelectionUseCase()
		uc := NewAssignmentUseCase(catalog, lifecycle, selection)

		catalog.EXPECT().UserInformation(gomock.Any(), "a@b.com").Return(userInfoFixture(), nil)
		orders.EXPECT().History(gomock.Any(), 9).Return(nil, nil)
		orders.EXPECT().InProgress(gomock.Any(), 9).Return(entities.Order{
			ID: 42, Status: entities.OrderStatusInProgress, MedicineIDs: []int{11},
		}, nil)
		catalog.EXPECT().AssignmentsByPlan(gomock.Any(), 3).Return([]int{5, 6}, nil)
		catalog.EXPECT().MonthlyAssignment(gomock.Any(), 5).Return(entities.MonthlyAssignment{
			ID:            5,
			Budget:        100,
			InsuranceName: "Seguro Norte",
			Drugs: []entities.CatalogItem{
				{ID: 11, Name: "Ibuprofeno", Price: 30, Category: "Analgesicos"},
				{ID: 12, Name: "Loratadina", Price: 20, Category: "Antialergicos"},
			},
		}, nil)

		detail, err := uc.Resolve(context.Background(), "sess-1", "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Budget != 100 || detail.InsuranceName != "Seguro Norte" {
			t.Fatalf("expected assignment overrides, got %+v", detail)
		}
		if len(detail.Sections) != 2 {
			t.Fatalf("expected 2 sections, got %d", len(detail.Sections))
		}
		if detail.Phase.Kind != entities.PhaseInProgress || detail.Phase.Order == nil || detail.Phase.Order.ID != 42 {
			t.Fatalf("unexpected phase: %+v", detail.Phase)
		}

		snap, ok := selection.Snapshot("sess-1")
		if !ok {
			t.Fatalf("expected selection session")
		}
		if snap.Budget != 100 {
			t.Fatalf("expected budget 100, got %v", snap.Budget)
		}
		if len(snap.SelectedIDs) != 1 || snap.SelectedIDs[0] != 11 {
			t.Fatalf("expected rehydrated selection [11], got %v", snap.SelectedIDs)
		}
		if snap.Total != 30 || snap.Remaining != 70 {
			t.Fatalf("unexpected totals: %+v", snap)
		}
	})

	t.Run("assignment lookup failure degrades to profile budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		orders := mock_interfaces.NewMockIOrderGateway(ctrl)
		lifecycle := NewOrderLifecycleUseCase(orders)
		selection := NewSelectionUseCase()
		uc := NewAssignmentUseCase(catalog, lifecycle, selection)

		catalog.EXPECT().UserInformation(gomock.Any(), "a@b.com").Return(userInfoFixture(), nil)
		orders.EXPECT().History(gomock.Any(), 9).Return(nil, nil)
		orders.EXPECT().InProgress(gomock.Any(), 9).Return(entities.Order{}, nil)
		catalog.EXPECT().AssignmentsByPlan(gomock.Any(), 3).Return(nil, errors.New("backend down"))

		detail, err := uc.Resolve(context.Background(), "sess-1", "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Budget != 80 {
			t.Fatalf("expected profile budget 80, got %v", detail.Budget)
		}
		if detail.Phase.Kind != entities.PhaseNoOrder {
			t.Fatalf("expected no order, got %q", detail.Phase.Kind)
		}

		snap, ok := selection.Snapshot("sess-1")
		if !ok || snap.Budget != 80 {
			t.Fatalf("expected selection primed at 80, got %+v ok=%v", snap, ok)
		}
	})
}
