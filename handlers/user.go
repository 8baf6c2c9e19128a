package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-sharing/models"
	"video-sharing/services"
	"video-sharing/validation"
)

type User interface {
	RegisterUser(c *gin.Context)
	LoginUser(c *gin.Context)
	GetChannel(c *gin.Context)
	Me(c *gin.Context)
	UpdateMe(c *gin.Context, req models.UpdateUserRequest)
}

type user struct {
	userService services.UserService
}

func NewUser(us services.UserService) User {
	return &user{
		userService: us,
	}
}

var UpdateMeRules = []validation.Rule[models.UpdateUserRequest]{
	validation.MustExistOne(
		validation.F("first_name", func(r models.UpdateUserRequest) *string { return r.FirstName }),
		validation.F("last_name", func(r models.UpdateUserRequest) *string { return r.LastName }),
		validation.F("username", func(r models.UpdateUserRequest) *string { return r.Username }),
		validation.F("icon_path", func(r models.UpdateUserRequest) *string { return r.IconPath }),
	),
}

// RegisterUser registers a new user.
// @Summary Register a new user
// @Description Register a new user with the input payload
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user  body    models.UserRegistrationRequest  true  "User payload"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Router /v1/auth/register [post]
func (u *user) RegisterUser(c *gin.Context) {
	var urr models.UserRegistrationRequest
	if err := c.ShouldBindJSON(&urr); err != nil {
		fail(c, models.NewError(models.KindValidation, "failed to bind request data", err))
		return
	}
	usr, err := u.userService.Register(c.Request.Context(), urr)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, usr)
}

// LoginUser logs in a user.
// @Summary Login a user
// @Description Login a user with the input payload
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user  body    models.LoginRequest  true  "User payload"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /v1/auth/login [post]
func (u *user) LoginUser(c *gin.Context) {
	var lr models.LoginRequest
	if err := c.ShouldBindJSON(&lr); err != nil {
		fail(c, models.NewError(models.KindValidation, "failed to bind request data", err))
		return
	}
	res, err := u.userService.Login(c.Request.Context(), lr)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, res)
}

// GetChannel returns the public profile of a user.
// @Summary Get a channel
// @Tags users
// @Produce  json
// @Param   username  path  string  true  "Username"
// @Success 200 {object} models.PublicUser
// @Failure 404 {object} map[string]string
// @Router /v1/users/{username} [get]
func (u *user) GetChannel(c *gin.Context) {
	channel, err := u.userService.GetChannel(c.Request.Context(), c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, channel)
}

// @Summary Own profile
// @Tags users
// @Produce  json
// @Success 200 {object} models.User
// @Router /v1/me [get]
// @Security BearerAuth
func (u *user) Me(c *gin.Context) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	usr, err := u.userService.GetUser(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, usr)
}

// @Summary Update own profile
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user  body  models.UpdateUserRequest  true  "Fields to change"
// @Success 200 {object} models.User
// @Router /v1/me [patch]
// @Security BearerAuth
func (u *user) UpdateMe(c *gin.Context, req models.UpdateUserRequest) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	usr, err := u.userService.UpdateUser(c.Request.Context(), uid, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, usr)
}
