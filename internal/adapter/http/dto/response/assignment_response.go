package response

import "pharma_express/internal/domain/entities"

type AssignmentResponse struct {
	UserName      string             `json:"user_name"`
	InsuranceName string             `json:"insurance_name,omitempty"`
	Budget        float64            `json:"budget"`
	Phase         PhaseResponse      `json:"phase"`
	Sections      []SectionResponse  `json:"sections"`
	Selection     *SelectionResponse `json:"selection,omitempty"`
}

func FromAssignmentDetail(d entities.AssignmentDetail) AssignmentResponse {
	return AssignmentResponse{
		UserName:      d.UserName,
		InsuranceName: d.InsuranceName,
		Budget:        d.Budget,
		Phase:         FromPhase(d.Phase),
		Sections:      FromSections(d.Sections),
	}
}
