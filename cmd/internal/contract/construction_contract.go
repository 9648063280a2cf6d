package contract

// ConstructionRequest attaches a construction to a registration. Areas accept
// numbers or numeric strings; anything unparsable is stored as null.
type ConstructionRequest struct {
	TotalArea any     `json:"area_total"`
	BuiltArea any     `json:"area_construida"`
	Usage     *string `json:"uso" validate:"omitempty,max=50"`
	Standard  *string `json:"padrao" validate:"omitempty,max=50"`
	Type      *string `json:"tipo" validate:"omitempty,max=50"`
}

type ConstructionResponse struct {
	ID        int      `json:"id"`
	TotalArea *float64 `json:"area_total"`
	BuiltArea *float64 `json:"area_construida"`
	Usage     *string  `json:"uso"`
	Standard  *string  `json:"padrao"`
	Type      *string  `json:"tipo"`
}
