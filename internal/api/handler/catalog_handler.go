package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

// CatalogHandler exposes categories and products.
type CatalogHandler struct {
	categories ports.CategoryService
	products   ports.ProductService
}

func NewCatalogHandler(categories ports.CategoryService, products ports.ProductService) *CatalogHandler {
	return &CatalogHandler{categories: categories, products: products}
}

type categoryRequest struct {
	Name        string `json:"nombre"      validate:"required"`
	Description string `json:"descripcion"`
}

type productRequest struct {
	Name        string  `json:"nombre"      validate:"required"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"      validate:"gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Category    string  `json:"categoria"   validate:"required"`
	IsActive    bool    `json:"is_active"`
	Image       string  `json:"imagen"`
}

func (r productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    r.Category,
		IsActive:    r.IsActive,
		Image:       r.Image,
	}
}

// ListCategories handles GET /categorias.
//
// @Summary      List categories
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Category
// @Failure      401  {object}  map[string]string
// @Router       /categorias [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	cats, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	if cats == nil {
		cats = []*domain.Category{}
	}
	return c.JSON(http.StatusOK, cats)
}

// CreateCategory handles POST /categorias.
//
// @Summary      Create a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /categorias [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cat, err := h.categories.Create(c.Request().Context(), ports.CategoryInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

// DeleteCategory handles DELETE /categorias/:id.
//
// @Summary      Delete a category
// @Tags         categorias
// @Security     BearerAuth
// @Param        id   path  string  true  "Category id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /categorias/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.categories.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListProducts handles GET /productos?categoria=.
//
// @Summary      List products
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        categoria  query     string  false  "Category name filter"
// @Success      200        {array}   domain.Product
// @Failure      401        {object}  map[string]string
// @Router       /productos [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.products.List(c.Request().Context(), c.QueryParam("categoria"))
	if err != nil {
		return err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /productos/:id.
//
// @Summary      Get a product
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /productos/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	p, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// CreateProduct handles POST /productos.
//
// @Summary      Create a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /productos [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p, err := h.products.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /productos/:id.
//
// @Summary      Update a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /productos/{id} [put]
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p, err := h.products.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteProduct handles DELETE /productos/:id.
//
// @Summary      Delete a product
// @Tags         productos
// @Security     BearerAuth
// @Param        id   path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /productos/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
