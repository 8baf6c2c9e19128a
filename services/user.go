package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"video-sharing/database/db"
	"video-sharing/models"
	"video-sharing/utils"
)

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	DefaultDomain = "default"
)

// RoleGranter is the slice of the casbin enforcer the user service needs.
type RoleGranter interface {
	AddRoleForUser(user string, role string, domain ...string) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, input models.UserRegistrationRequest) (models.User, error)
	Login(ctx context.Context, input models.LoginRequest) (models.LoginResponse, error)
	GetUser(ctx context.Context, uid uuid.UUID) (models.User, error)
	GetChannel(ctx context.Context, username string) (models.PublicUser, error)
	UpdateUser(ctx context.Context, uid uuid.UUID, input models.UpdateUserRequest) (models.User, error)
}

type user struct {
	db           db.Querier
	tokenManager utils.TokenManager
	roles        RoleGranter
}

func NewUser(q db.Querier, tm utils.TokenManager, roles RoleGranter) UserService {
	return &user{
		db:           q,
		tokenManager: tm,
		roles:        roles,
	}
}

func (u *user) Register(ctx context.Context, arg models.UserRegistrationRequest) (models.User, error) {
	params := fmt.Sprintf("username: %v, email: %v", arg.Username, arg.Email)
	if err := arg.Validate(); err != nil {
		return models.User{}, models.NewError(models.KindValidation, "invalid input data", err).
			WithDescription(err.Error()).AddParams(params)
	}
	hash, err := utils.HashPassword(arg.Password)
	if err != nil {
		return models.User{}, err
	}
	created, err := u.db.CreateUser(ctx, db.CreateUserParams{
		ID:        uuid.New(),
		Username:  arg.Username,
		FirstName: arg.FirstName,
		LastName:  arg.LastName,
		Email:     arg.Email,
		Password:  hash,
	})
	if err != nil {
		return models.User{}, models.IdentifyDbError(err).AddParams(params)
	}
	if u.roles != nil {
		if _, err := u.roles.AddRoleForUser(created.ID.String(), RoleUser, DefaultDomain); err != nil {
			return models.User{}, models.Internal("failed to grant role", err).AddParams(params)
		}
	}

	created.Password = ""
	return convertDbUserToModelUser(created), nil
}

func (u *user) Login(ctx context.Context, arg models.LoginRequest) (models.LoginResponse, error) {
	params := fmt.Sprintf("email: %v", arg.Email)
	if err := arg.Validate(); err != nil {
		return models.LoginResponse{}, models.NewError(models.KindValidation, "invalid input data", err).
			AddParams(params)
	}
	foundUser, err := u.db.GetUserByEmail(ctx, arg.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.LoginResponse{}, models.NewError(models.KindUnauthorized, "invalid email or password",
			models.ErrInvalidEmailOrPassword).AddParams(params)
	}
	if err != nil {
		return models.LoginResponse{}, models.IdentifyDbError(err).AddParams(params)
	}
	if !utils.CheckPassword(foundUser.Password, arg.Password) {
		return models.LoginResponse{}, models.NewError(models.KindUnauthorized, "invalid email or password",
			models.ErrInvalidEmailOrPassword).AddParams(params)
	}
	token, err := u.tokenManager.CreateToken(utils.NewPayload(foundUser.ID))
	if err != nil {
		return models.LoginResponse{}, err
	}
	foundUser.Password = ""

	return models.LoginResponse{Token: token, User: convertDbUserToModelUser(foundUser)}, nil
}

func (u *user) GetUser(ctx context.Context, uid uuid.UUID) (models.User, error) {
	found, err := u.db.GetUser(ctx, uid)
	if err != nil {
		return models.User{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("uid: %v", uid))
	}
	found.Password = ""
	return convertDbUserToModelUser(found), nil
}

func (u *user) GetChannel(ctx context.Context, username string) (models.PublicUser, error) {
	channel, err := u.db.GetChannel(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.PublicUser{}, models.NotFound(models.EntityUser).AddParams(username)
	}
	if err != nil {
		return models.PublicUser{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("username: %v", username))
	}
	return convertChannel(channel), nil
}

func (u *user) UpdateUser(ctx context.Context, uid uuid.UUID, input models.UpdateUserRequest) (models.User, error) {
	params := fmt.Sprintf("uid: %v", uid)
	if err := input.Validate(); err != nil {
		return models.User{}, models.NewError(models.KindValidation, "invalid input data", err).
			WithDescription(err.Error()).AddParams(params)
	}
	updated, err := u.db.UpdateUser(ctx, db.UpdateUserParams{
		ID:        uid,
		FirstName: text(input.FirstName),
		LastName:  text(input.LastName),
		Username:  text(input.Username),
		IconPath:  text(input.IconPath),
	})
	if err != nil {
		return models.User{}, models.IdentifyDbError(err).AddParams(params)
	}
	updated.Password = ""
	return convertDbUserToModelUser(updated), nil
}
