package token

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendadmin/catalog-admin/internal/core/domain"
)

func newTestCodec(t *testing.T, minutes int) *Codec {
	t.Helper()
	c, err := NewCodec(Config{Secret: "test-secret", Algorithm: "HS256", LifetimeMinutes: minutes})
	require.NoError(t, err)
	return c
}

func adminClaims() domain.Claims {
	return domain.Claims{
		domain.ClaimIdentity: "admin@example.com",
		domain.ClaimRole:     string(domain.RoleAdministrator),
	}
}

func TestNewCodec_RejectsBadConfig(t *testing.T) {
	_, err := NewCodec(Config{Secret: "", Algorithm: "HS256", LifetimeMinutes: 5})
	assert.Error(t, err)

	_, err = NewCodec(Config{Secret: "s", Algorithm: "RS256", LifetimeMinutes: 5})
	assert.Error(t, err)

	_, err = NewCodec(Config{Secret: "s", Algorithm: "nope", LifetimeMinutes: 5})
	assert.Error(t, err)

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		_, err = NewCodec(Config{Secret: "s", Algorithm: alg, LifetimeMinutes: 5})
		assert.NoError(t, err, alg)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t, 30)
	in := adminClaims()
	in["extra"] = "kept"

	before := time.Now()
	tok, err := c.Issue(in)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := c.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", out.Identity())
	assert.Equal(t, domain.RoleAdministrator, out.Role())
	assert.Equal(t, "kept", out["extra"])
	assert.Len(t, out, len(in)+1)

	exp, ok := out[domain.ClaimExpiration].(float64)
	require.True(t, ok, "exp should decode as a number")
	expected := before.Add(30 * time.Minute).Unix()
	assert.InDelta(t, expected, int64(exp), 2)
}

func TestCodec_IssueDoesNotMutateInput(t *testing.T) {
	c := newTestCodec(t, 30)
	in := adminClaims()
	in[domain.ClaimExpiration] = int64(1)

	_, err := c.Issue(in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), in[domain.ClaimExpiration])
	assert.Len(t, in, 3)
}

func TestCodec_IssueOverwritesExpiration(t *testing.T) {
	c := newTestCodec(t, 30)
	in := adminClaims()
	in[domain.ClaimExpiration] = int64(1)

	tok, err := c.Issue(in)
	require.NoError(t, err)

	out, err := c.Verify(tok)
	require.NoError(t, err)
	assert.Greater(t, out[domain.ClaimExpiration].(float64), float64(time.Now().Unix()))
}

func TestCodec_ExpiredToken(t *testing.T) {
	for _, minutes := range []int{0, -1, -60} {
		c := newTestCodec(t, minutes)
		tok, err := c.Issue(adminClaims())
		require.NoError(t, err)

		_, err = c.Verify(tok)
		assert.ErrorIs(t, err, domain.ErrExpiredCredential, "lifetime %d", minutes)
		assert.NotErrorIs(t, err, domain.ErrMalformedCredential)
	}
}

func TestCodec_ExpiresWithClock(t *testing.T) {
	c := newTestCodec(t, 10)
	start := time.Now()
	c.now = func() time.Time { return start }

	tok, err := c.Issue(adminClaims())
	require.NoError(t, err)

	_, err = c.Verify(tok)
	require.NoError(t, err)

	c.now = func() time.Time { return start.Add(11 * time.Minute) }
	_, err = c.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrExpiredCredential)
}

const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

func TestCodec_TamperedSignature(t *testing.T) {
	c := newTestCodec(t, 30)
	tok, err := c.Issue(adminClaims())
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	for i := range sig {
		tampered := append([]byte(nil), sig...)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}
		bad := parts[0] + "." + parts[1] + "." + string(tampered)

		_, err := c.Verify(bad)
		assert.ErrorIs(t, err, domain.ErrMalformedCredential, "byte %d", i)
	}
}

func TestCodec_TamperedLastSignatureCharacter(t *testing.T) {
	c := newTestCodec(t, 30)
	tok, err := c.Issue(adminClaims())
	require.NoError(t, err)

	last := tok[len(tok)-1]
	for _, r := range base64URLAlphabet {
		if byte(r) == last {
			continue
		}
		bad := tok[:len(tok)-1] + string(r)

		_, err := c.Verify(bad)
		assert.ErrorIs(t, err, domain.ErrMalformedCredential, "%q -> %q", last, r)
	}
}

func TestCodec_TamperedExpiredTokenIsMalformed(t *testing.T) {
	c := newTestCodec(t, -1)
	tok, err := c.Issue(adminClaims())
	require.NoError(t, err)

	_, err = c.Verify(tok[:len(tok)-5] + "AAAAA")
	assert.ErrorIs(t, err, domain.ErrMalformedCredential)
}

func TestCodec_RejectsForeignTokens(t *testing.T) {
	c := newTestCodec(t, 30)
	exp := time.Now().Add(time.Hour).Unix()

	other, err := NewCodec(Config{Secret: "other-secret", Algorithm: "HS256", LifetimeMinutes: 30})
	require.NoError(t, err)
	wrongKey, err := other.Issue(adminClaims())
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"identity": "admin@example.com", "role": "Administrator", "exp": exp,
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"identity": "admin@example.com", "role": "Administrator", "exp": exp,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"wrong key":       wrongKey,
		"wrong algorithm": wrongAlg,
		"alg none":        unsigned,
		"garbage":         "not-a-token",
		"empty":           "",
		"two segments":    "abc.def",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.Verify(tok)
			assert.ErrorIs(t, err, domain.ErrMalformedCredential)
		})
	}
}

func TestCodec_RequiredClaims(t *testing.T) {
	c := newTestCodec(t, 30)
	exp := time.Now().Add(time.Hour).Unix()
	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return s
	}

	cases := map[string]jwt.MapClaims{
		"no exp":      {"identity": "admin@example.com", "role": "Administrator"},
		"no identity": {"role": "Administrator", "exp": exp},
		"no role":     {"identity": "admin@example.com", "exp": exp},
		"bad exp":     {"identity": "admin@example.com", "role": "Administrator", "exp": "tomorrow"},
	}
	for name, claims := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.Verify(sign(claims))
			assert.ErrorIs(t, err, domain.ErrMalformedCredential)
		})
	}
}

func TestCodec_ConcurrentUse(t *testing.T) {
	c := newTestCodec(t, 30)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := c.Issue(adminClaims())
			if err != nil {
				errs <- err
				return
			}
			if _, err := c.Verify(tok); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent issue/verify: %v", err)
	}
}
