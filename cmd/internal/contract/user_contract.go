package contract

type CreateUserRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	LoginName string `json:"login_name" validate:"required,min=2,max=50,nospaces"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	Role      string `json:"role" validate:"required,oneof=Administrator User"`
}

// UpdateUserRequest replaces name, login and role. Password is only changed
// when a non-empty value is sent.
type UpdateUserRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	LoginName string `json:"login_name" validate:"required,min=2,max=50,nospaces"`
	Password  string `json:"password" validate:"omitempty,min=6,max=72"`
	Role      string `json:"role" validate:"required,oneof=Administrator User"`
}

type UserLoginRequest struct {
	LoginName string `json:"login_name" validate:"required,max=50"`
	Password  string `json:"password" validate:"required,max=72"`
}

type UserLoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type UserResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	LoginName string `json:"login_name"`
	Role      string `json:"role"`
}
