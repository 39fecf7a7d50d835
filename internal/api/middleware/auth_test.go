package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tiendadmin/catalog-admin/internal/api/metrics"
	"github.com/tiendadmin/catalog-admin/internal/core/domain"
	"github.com/tiendadmin/catalog-admin/internal/infrastructure/token"
)

func newCodec(t *testing.T, minutes int) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(token.Config{Secret: "secret", Algorithm: "HS256", LifetimeMinutes: minutes})
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return codec
}

func issue(t *testing.T, codec *token.Codec, role domain.Role) string {
	t.Helper()
	signed, err := codec.Issue(domain.Claims{
		domain.ClaimIdentity: "alice@example.com",
		domain.ClaimRole:     string(role),
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runGate(t *testing.T, gate *Gate, header string) (called bool, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := gate.Middleware()(func(c echo.Context) error {
		called = true
		claims, ok := ClaimsFrom(c)
		if !ok {
			t.Fatalf("claims not set")
		}
		if claims.Identity() != "alice@example.com" {
			t.Fatalf("identity not set: %v", claims)
		}
		return c.NoContent(http.StatusOK)
	})
	return called, handler(c)
}

func TestGate_ValidToken(t *testing.T) {
	codec := newCodec(t, 30)
	gate := NewGate(codec, nil)

	called, err := runGate(t, gate, "Bearer "+issue(t, codec, domain.RoleAdministrator))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestGate_DoesNotCheckRole(t *testing.T) {
	codec := newCodec(t, 30)
	gate := NewGate(codec, nil)

	called, err := runGate(t, gate, "Bearer "+issue(t, codec, domain.RoleClient))
	if err != nil || !called {
		t.Fatalf("expected client token to pass the gate, err=%v called=%v", err, called)
	}
}

func TestGate_SchemeIsCaseInsensitive(t *testing.T) {
	codec := newCodec(t, 30)
	gate := NewGate(codec, nil)

	called, err := runGate(t, gate, "bearer "+issue(t, codec, domain.RoleAdministrator))
	if err != nil || !called {
		t.Fatalf("expected lowercase scheme to be accepted, err=%v", err)
	}
}

func TestGate_MissingCredential(t *testing.T) {
	gate := NewGate(newCodec(t, 30), nil)

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer    ", "Basic dXNlcjpwYXNz", "abc"} {
		called, err := runGate(t, gate, header)
		if called {
			t.Fatalf("header %q: should not reach next", header)
		}
		if !errors.Is(err, domain.ErrMissingCredential) {
			t.Fatalf("header %q: expected ErrMissingCredential, got %v", header, err)
		}
	}
}

func TestGate_MalformedToken(t *testing.T) {
	gate := NewGate(newCodec(t, 30), nil)

	called, err := runGate(t, gate, "Bearer not-a-token")
	if called {
		t.Fatalf("should not reach next")
	}
	if !errors.Is(err, domain.ErrMalformedCredential) {
		t.Fatalf("expected ErrMalformedCredential, got %v", err)
	}
}

func TestGate_ForeignSignature(t *testing.T) {
	other, err := token.NewCodec(token.Config{Secret: "other", Algorithm: "HS256", LifetimeMinutes: 30})
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	gate := NewGate(newCodec(t, 30), nil)

	_, err = runGate(t, gate, "Bearer "+issue(t, other, domain.RoleAdministrator))
	if !errors.Is(err, domain.ErrMalformedCredential) {
		t.Fatalf("expected ErrMalformedCredential, got %v", err)
	}
}

func TestGate_ExpiredToken(t *testing.T) {
	expired := newCodec(t, -1)
	gate := NewGate(expired, nil)

	called, err := runGate(t, gate, "Bearer "+issue(t, expired, domain.RoleAdministrator))
	if called {
		t.Fatalf("should not reach next")
	}
	if !errors.Is(err, domain.ErrExpiredCredential) {
		t.Fatalf("expected ErrExpiredCredential, got %v", err)
	}
}

func TestGate_Authorize(t *testing.T) {
	codec := newCodec(t, 30)
	gate := NewGate(codec, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, codec, domain.RoleAdministrator))

	claims, err := gate.Authorize(req)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if claims.Role() != domain.RoleAdministrator {
		t.Fatalf("unexpected role: %v", claims.Role())
	}
	if _, ok := claims[domain.ClaimExpiration]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestGate_RecordsDecisions(t *testing.T) {
	codec := newCodec(t, 30)
	m := metrics.New(prometheus.NewRegistry())
	gate := NewGate(codec, m)

	_, _ = runGate(t, gate, "Bearer "+issue(t, codec, domain.RoleAdministrator))
	_, _ = runGate(t, gate, "")
	_, _ = runGate(t, gate, "Bearer junk")

	for outcome, want := range map[string]float64{
		metrics.OutcomeSuccess:   1,
		metrics.OutcomeMissing:   1,
		metrics.OutcomeMalformed: 1,
		metrics.OutcomeExpired:   0,
	} {
		if got := testutil.ToFloat64(m.GateDecisionsTotal.WithLabelValues(outcome)); got != want {
			t.Fatalf("outcome %s: expected %v, got %v", outcome, want, got)
		}
	}
}

func TestClaimsFrom_Absent(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if _, ok := ClaimsFrom(c); ok {
		t.Fatalf("expected no claims")
	}
}
