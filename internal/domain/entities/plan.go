package entities

// Insurance is the health insurance carrier attached to a plan.
type Insurance struct {
	Name        string
	Description string
	Email       string
	Address     string
	Phone       string
	IDNumber    string
}

// HealthPlan carries the plan-level monthly budget ceiling.
type HealthPlan struct {
	ID            int
	Name          string
	Description   string
	MonthlyBudget float64
	Insurance     *Insurance
}

// UserInformation is the profile record returned by the remote system for a
// signed-in user, resolved by email lookup.
type UserInformation struct {
	UserID          int
	UserName        string
	ShippingAddress string
	MonthlyBudget   float64
	HealthPlan      *HealthPlan
}

// MonthlyAssignment is the asignación mensual: the monthly benefit record
// carrying the budget ceiling and the eligible drug list for a plan.
type MonthlyAssignment struct {
	ID            int
	Budget        float64
	InsuranceName string
	Drugs         []CatalogItem
}

// AssignmentDetail is the fully resolved benefit screen state: who the user
// is, which phase their current month is in, the effective budget ceiling and
// the eligible drugs grouped for display.
type AssignmentDetail struct {
	UserName      string
	InsuranceName string
	Budget        float64
	Phase         Phase
	Sections      []DrugSection
}

// Registration is the payload for creating a new remote account.
type Registration struct {
	Name     string
	Username string
	Email    string
	Password string
	Policy   bool
}
