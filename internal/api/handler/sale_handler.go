package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiendadmin/catalog-admin/internal/api/metrics"
	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

// SaleHandler handles sale registration and dispatch tracking.
type SaleHandler struct {
	service ports.SaleService
	metrics *metrics.Metrics
}

func NewSaleHandler(service ports.SaleService, m *metrics.Metrics) *SaleHandler {
	return &SaleHandler{service: service, metrics: m}
}

type createSaleRequest struct {
	UserID    string `json:"id_usuario"  validate:"required"`
	ProductID string `json:"id_producto" validate:"required"`
	Quantity  int    `json:"cantidad"    validate:"gt=0"`
}

type dispatchRequest struct {
	Status string `json:"despachado" validate:"required"`
}

// List handles GET /ventas?despachado=.
//
// @Summary      List sales
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        despachado  query     string  false  "Dispatch status filter (Despachado | No Despachado)"
// @Success      200         {array}   domain.Sale
// @Failure      400         {object}  map[string]string
// @Router       /ventas [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context(), c.QueryParam("despachado"))
	if err != nil {
		return err
	}
	if sales == nil {
		sales = []*domain.Sale{}
	}
	return c.JSON(http.StatusOK, sales)
}

// Create handles POST /ventas. A repeated Idempotency-Key returns the
// original sale with 200 instead of 201.
//
// @Summary      Register a sale
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createSaleRequest  true   "Sale"
// @Success      201              {object}  domain.Sale
// @Success      200              {object}  domain.Sale
// @Failure      400              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /ventas [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.service.Create(c.Request().Context(), ports.SaleInput{
		UserID:         req.UserID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}
	h.metrics.ObserveSale(res.AlreadyExisted)

	status := http.StatusCreated
	if res.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, res.Sale)
}

// SetDispatch handles PUT /ventas/:id/despacho.
//
// @Summary      Update dispatch status
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Sale id"
// @Param        body  body      dispatchRequest  true  "Dispatch status"
// @Success      200   {object}  domain.Sale
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /ventas/{id}/despacho [put]
func (h *SaleHandler) SetDispatch(c echo.Context) error {
	var req dispatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sale, err := h.service.SetDispatchStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}
