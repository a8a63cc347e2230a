package auth

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-server/internal/models"
)

const testSecret = "test-secret"

func testUser(role models.Role, canCreate, canModify bool) *models.User {
	u := &models.User{
		Name:                  "Test User",
		Email:                 "test@salon.local",
		Role:                  role,
		CanCreateAppointments: canCreate,
		CanModifyAppointments: canModify,
	}
	u.ID = "user-123"
	return u
}

func TestTokenRoundTrip(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleHairdresser} {
		for _, canCreate := range []bool{true, false} {
			for _, canModify := range []bool{true, false} {
				name := fmt.Sprintf("%s_create=%v_modify=%v", role, canCreate, canModify)
				t.Run(name, func(t *testing.T) {
					user := testUser(role, canCreate, canModify)

					token, err := IssueToken(user, testSecret)
					require.NoError(t, err)
					require.NotEmpty(t, token)

					claims, err := DecodeToken(token, testSecret)
					require.NoError(t, err)

					assert.Equal(t, user.ID, claims.UserID)
					assert.Equal(t, user.Email, claims.Email)
					assert.Equal(t, role, claims.Role)
					assert.Equal(t, canCreate, claims.CanCreateAppointments)
					assert.Equal(t, canModify, claims.CanModifyAppointments)
				})
			}
		}
	}
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	token, err := IssueToken(testUser(models.RoleHairdresser, true, false), testSecret)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Any single-character mutation of the payload segment must invalidate
	// the signature. The final character is skipped: its trailing bits fall
	// outside the decoded bytes in unpadded base64.
	payload := parts[1]
	for i := 0; i < len(payload)-1; i += 7 {
		mutated := []byte(payload)
		if mutated[i] != 'A' {
			mutated[i] = 'A'
		} else {
			mutated[i] = 'B'
		}
		forged := parts[0] + "." + string(mutated) + "." + parts[2]
		_, err := DecodeToken(forged, testSecret)
		assert.Error(t, err, "mutation at offset %d accepted", i)
	}
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	token, err := IssueToken(testUser(models.RoleAdmin, true, true), testSecret)
	require.NoError(t, err)
	parts := strings.Split(token, ".")

	cases := map[string]string{
		"empty":             "",
		"one segment":       parts[1],
		"two segments":      parts[0] + "." + parts[1],
		"four segments":     token + ".extra",
		"garbage":           "not-a-token",
		"missing signature": parts[0] + "." + parts[1] + ".",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeToken(tok, testSecret)
			assert.Error(t, err)
		})
	}
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken(testUser(models.RoleAdmin, true, true), testSecret)
	require.NoError(t, err)

	_, err = DecodeToken(token, "other-secret")
	assert.Error(t, err)
}
