package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/testcase-service/internal/auth"
	"github.com/spec-kit/testcase-service/internal/domain"
)

const testSecret = "unit-test-secret"

func testIdentity() domain.Identity {
	return domain.Identity{
		ID:    "user-1",
		Email: "jane@example.com",
		Name:  "Jane Doe",
		Role:  domain.RoleQA,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)

	token, expiresAt, err := codec.Issue(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	identity := codec.Verify(token)
	require.NotNil(t, identity)
	require.Equal(t, testIdentity(), *identity)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	other := auth.NewTokenCodec("a-different-secret", time.Hour)

	token, _, err := other.Issue(testIdentity())
	require.NoError(t, err)

	require.Nil(t, codec.Verify(token))
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)

	token, _, err := codec.Issue(testIdentity())
	require.NoError(t, err)

	// Flip a byte in the payload segment; the signature no longer matches.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	require.Nil(t, codec.Verify(string(tampered)))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)

	claims := &auth.Claims{
		User: testIdentity(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	require.Nil(t, codec.Verify(token))
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c"} {
		require.Nil(t, codec.Verify(input), "input %q", input)
	}
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	claims := &auth.Claims{
		User: testIdentity(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.Nil(t, codec.Verify(noneToken))

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	require.Nil(t, codec.Verify(hs512Token))
}

func TestVerifyRejectsIncompleteIdentity(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	claims := &auth.Claims{
		User: domain.Identity{ID: "user-1", Role: domain.RoleQA},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	require.Nil(t, codec.Verify(token))
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	identity := testIdentity()
	identity.Role = domain.Role("SUPERUSER")
	claims := &auth.Claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	require.Nil(t, codec.Verify(token))
}
