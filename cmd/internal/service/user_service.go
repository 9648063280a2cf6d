package service

import (
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/domain/policy"
	"reurb/cmd/internal/utils"
	"reurb/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	FindAll() ([]*entity.User, error)
	FindByID(id int) (*entity.User, error)
	FindByLogin(login string) (*entity.User, error)
	ExistsByLogin(login string, exceptID int) (bool, error)
	Save(user *entity.User) error
	Delete(user *entity.User) error
}

// TokenIssuer signs the session token returned on login.
type TokenIssuer interface {
	Issue(user *entity.User) (string, error)
}

type UserService struct {
	UserRepo   UserRepository
	Validate   *validator.Validate
	Tokens     TokenIssuer
	UserPolicy *policy.UserPolicy
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokens TokenIssuer, userPolicy *policy.UserPolicy) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		Validate:   validate,
		Tokens:     tokens,
		UserPolicy: userPolicy,
	}
}

func (u *UserService) Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindByLogin(req.LoginName)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	// Same answer for unknown logins and wrong passwords
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apierror.InvalidCredentialsError
	}

	token, err := u.Tokens.Issue(user)
	if err != nil {
		log.Errorf("failed to issue token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.UserLoginResponse{
		Success: true,
		Role:    string(user.Role),
		Token:   token,
		Message: "Login successful",
	}, nil
}

func (u *UserService) GetUsers() ([]*contract.UserResponse, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch users: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user)
	}
	return resp, nil
}

func (u *UserService) GetUser(id int) (*contract.UserResponse, apierror.ErrorResponse) {
	user, apierr := u.fetchByID(id)
	if apierr != nil {
		return nil, apierr
	}
	return toUserResponse(user), nil
}

func (u *UserService) CreateUser(req *contract.CreateUserRequest) (*contract.SuccessResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if apierr := u.checkLoginAvailable(req.LoginName, 0); apierr != nil {
		return nil, apierr
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	user := &entity.User{
		Name:         req.Name,
		LoginName:    req.LoginName,
		PasswordHash: hash,
		Role:         entity.Role(req.Role),
	}

	if err = u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.NewPersistenceError(err)
	}
	return contract.NewSuccess("User created successfully"), nil
}

// UpdateUser replaces name, login and role of the target account. The
// password hash only changes when a new password is sent.
func (u *UserService) UpdateUser(actor *utils.TokenData, id int, req *contract.UpdateUserRequest) (*contract.SuccessResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	target, apierr := u.fetchByID(id)
	if apierr != nil {
		return nil, apierr
	}

	newRole := entity.Role(req.Role)
	if perr := u.UserPolicy.CanUpdateRole(actor.UserID, target, newRole); perr != nil {
		return nil, perr
	}

	if apierr = u.checkLoginAvailable(req.LoginName, target.ID); apierr != nil {
		return nil, apierr
	}

	target.Name = req.Name
	target.LoginName = req.LoginName
	target.Role = newRole
	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			log.Errorf("failed to hash password: %v", err)
			return nil, apierror.InternalServerError
		}
		target.PasswordHash = hash
	}

	if err := u.UserRepo.Save(target); err != nil {
		log.Errorf("actor %d failed to update user %d: %v", actor.UserID, id, err)
		return nil, apierror.NewPersistenceError(err)
	}
	return contract.NewSuccess("User updated successfully"), nil
}

func (u *UserService) DeleteUser(actor *utils.TokenData, id int) (*contract.SuccessResponse, apierror.ErrorResponse) {
	target, apierr := u.fetchByID(id)
	if apierr != nil {
		return nil, apierr
	}

	if perr := u.UserPolicy.CanDeleteUser(actor.UserID, target); perr != nil {
		return nil, perr
	}

	if err := u.UserRepo.Delete(target); err != nil {
		log.Errorf("failed to delete user %d: %v", target.ID, err)
		return nil, apierror.NewPersistenceError(err)
	}
	return contract.NewSuccess("User deleted successfully"), nil
}

func (u *UserService) fetchByID(id int) (*entity.User, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to find user (%d) by id: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}
	return user, nil
}

func (u *UserService) checkLoginAvailable(login string, exceptID int) apierror.ErrorResponse {
	taken, err := u.UserRepo.ExistsByLogin(login, exceptID)
	if err != nil {
		log.Errorf("failed to check if login %q is taken: %v", login, err)
		return apierror.InternalServerError
	}

	if taken {
		return apierror.LoginTakenError
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		LoginName: user.LoginName,
		Role:      string(user.Role),
	}
}
