package entity

// Construction is one building on a registered property. It has no life
// outside its parent Registration.
type Construction struct {
	ID             int      `gorm:"primaryKey" json:"id"`
	RegistrationID int      `gorm:"column:cadastro_id;not null;index" json:"cadastro_id"`
	TotalArea      *float64 `gorm:"column:area_total" json:"area_total"`
	BuiltArea      *float64 `gorm:"column:area_construida" json:"area_construida"`
	Usage          *string  `gorm:"column:uso;size:50" json:"uso"`
	Standard       *string  `gorm:"column:padrao;size:50" json:"padrao"`
	Type           *string  `gorm:"column:tipo;size:50" json:"tipo"`
}

func (Construction) TableName() string {
	return "construcoes"
}
