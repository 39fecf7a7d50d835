package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

// UserHandler exposes user account management. All routes sit behind the gate.
type UserHandler struct {
	service ports.UserService
	log     zerolog.Logger
}

func NewUserHandler(service ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

type userRequest struct {
	FirstName string `json:"nombre"    validate:"required"`
	LastName  string `json:"apellido"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"`
	Country   string `json:"pais"`
	City      string `json:"ciudad"`
	Address   string `json:"direccion"`
	Phone     string `json:"telefono"`
	Role      string `json:"rol"       validate:"required,oneof=Client Administrator"`
	IsActive  bool   `json:"is_active"`
	Image     string `json:"imagen"`
}

func (r userRequest) toInput() ports.UserInput {
	return ports.UserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Country:   r.Country,
		City:      r.City,
		Address:   r.Address,
		Phone:     r.Phone,
		Role:      r.Role,
		IsActive:  r.IsActive,
		Image:     r.Image,
	}
}

func (h *UserHandler) bind(c echo.Context) (userRequest, error) {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

// List handles GET /usuarios.
//
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /usuarios/:id.
//
// @Summary      Get a user
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /usuarios.
//
// @Summary      Create a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /usuarios [post]
func (h *UserHandler) Create(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	h.log.Info().Str("actor", actor(c)).Str("user_id", user.ID).Msg("user created via api")
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /usuarios/:id. An empty password keeps the current one.
//
// @Summary      Update a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "User id"
// @Param        body  body      userRequest  true  "User"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /usuarios/:id.
//
// @Summary      Delete a user
// @Tags         usuarios
// @Security     BearerAuth
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	h.log.Info().Str("actor", actor(c)).Str("user_id", c.Param("id")).Msg("user deleted via api")
	return c.NoContent(http.StatusNoContent)
}
