package contract

// RegistrationCreatedResponse carries the id of a newly created registration.
type RegistrationCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// RegistrationSummary is one line of the registration listing, enriched with
// the derived valuation.
type RegistrationSummary struct {
	ID                   int      `json:"id"`
	Name                 *string  `json:"name"`
	CPF                  *string  `json:"cpf"`
	RG                   *string  `json:"rg"`
	Phone                *string  `json:"phone"`
	Email                *string  `json:"email"`
	Address              string   `json:"address"`
	PropertyRegistration *string  `json:"inscricao_imobiliaria"`
	TotalArea            *float64 `json:"total_area"`
	BuiltArea            *float64 `json:"built_area"`
	FamilyIncome         *float64 `json:"family_income"`
	LandValue            float64  `json:"land_value"`
	ConstructionValue    float64  `json:"construction_value"`
	TotalValue           float64  `json:"total_value"`
	EstimatedTax         float64  `json:"estimated_tax"`
	ReurbCategory        string   `json:"reurb_category"`
}
