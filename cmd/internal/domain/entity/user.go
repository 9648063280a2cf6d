package entity

type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleUser          Role = "User"
)

// User is an account allowed to sign in to the registry frontend.
type User struct {
	ID           int    `gorm:"primaryKey"`
	Name         string `gorm:"column:nome;size:100;not null"`
	LoginName    string `gorm:"column:usuario;size:50;not null;uniqueIndex"`
	PasswordHash string `gorm:"column:senha;size:255;not null"`
	Role         Role   `gorm:"column:acesso;size:20;not null;default:User"`
}

func (User) TableName() string {
	return "usuarios"
}

func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}
