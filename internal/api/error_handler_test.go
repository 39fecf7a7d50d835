package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		code   int
		detail string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrForbidden, http.StatusForbidden, "only administrators can log in"},
		{domain.ErrMissingCredential, http.StatusUnauthorized, "missing bearer token"},
		{domain.ErrExpiredCredential, http.StatusUnauthorized, "session expired, log in again"},
		{fmt.Errorf("%w: token is malformed", domain.ErrMalformedCredential), http.StatusUnauthorized, "invalid token"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrCategoryExists, http.StatusConflict, "category already exists"},
		{fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalidInput), http.StatusBadRequest, "invalid input: quantity must be greater than 0"},
		{echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{errors.New("mongo exploded"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%v: invalid json: %v", tc.err, err)
		}
		if body["detail"] != tc.detail {
			t.Fatalf("%v: expected detail %q, got %q", tc.err, tc.detail, body["detail"])
		}
		if tc.code == http.StatusUnauthorized && rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
			t.Fatalf("%v: expected WWW-Authenticate header", tc.err)
		}
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected committed status to be kept, got %d", rec.Code)
	}
}
