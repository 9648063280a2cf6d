package handler

import (
	"net/http"
	"reurb/cmd/internal/contract"
	"reurb/cmd/internal/utils"
	"reurb/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse)
	GetUsers() ([]*contract.UserResponse, apierror.ErrorResponse)
	GetUser(id int) (*contract.UserResponse, apierror.ErrorResponse)
	CreateUser(req *contract.CreateUserRequest) (*contract.SuccessResponse, apierror.ErrorResponse)
	UpdateUser(actor *utils.TokenData, id int, req *contract.UpdateUserRequest) (*contract.SuccessResponse, apierror.ErrorResponse)
	DeleteUser(actor *utils.TokenData, id int) (*contract.SuccessResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) CreateLogin(c echo.Context) error {
	var req contract.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) GetUsers(c echo.Context) error {
	users, apierr := u.UserService.GetUsers()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, users)
}

func (u *DefaultUserRoute) GetUser(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := u.UserService.GetUser(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req contract.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.CreateUser(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (u *DefaultUserRoute) UpdateUser(c echo.Context) error {
	actor, cerr := utils.GetClaimsFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.UpdateUser(actor, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) DeleteUser(c echo.Context) error {
	actor, cerr := utils.GetClaimsFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := u.UserService.DeleteUser(actor, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
