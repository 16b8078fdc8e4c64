// AngelaMos | 2026
// dto_test.go

package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersParams_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", 0, 0, 1, 10},
		{"negative page", -3, 25, 1, 25},
		{"limit clamped to cap", 2, 500, 2, 100},
		{"limit at cap kept", 1, 100, 1, 100},
		{"in range untouched", 4, 50, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ListUsersParams{Page: tt.page, Limit: tt.limit}
			p.Normalize()

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestListUsersParams_Offset(t *testing.T) {
	p := ListUsersParams{Page: 3, Limit: 10}
	p.Normalize()

	assert.Equal(t, 20, p.Offset())

	p = ListUsersParams{Page: 1, Limit: 10}
	p.Normalize()
	assert.Equal(t, 0, p.Offset())
}

func TestUpdateUserRequest_Empty(t *testing.T) {
	var req UpdateUserRequest
	assert.True(t, req.Empty())

	name := "Sam"
	req.FirstName = &name
	assert.False(t, req.Empty())
}

func TestUpdateUserRequest_FalseIsPresent(t *testing.T) {
	// Deactivating a user sends {"isActive": false}; the zero value must
	// still count as a field to update.
	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"isActive": false}`), &req))

	assert.False(t, req.Empty())
	require.NotNil(t, req.IsActive)
	assert.False(t, *req.IsActive)
}

func TestUpdateUserRequest_AbsentKeysStayNil(t *testing.T) {
	var req UpdateUserRequest
	require.NoError(
		t,
		json.Unmarshal([]byte(`{"email": "new@example.com"}`), &req),
	)

	require.NotNil(t, req.Email)
	assert.Equal(t, "new@example.com", *req.Email)
	assert.Nil(t, req.Username)
	assert.Nil(t, req.Role)
	assert.Nil(t, req.IsActive)
}

func TestToUserResponse_OmitsPasswordHash(t *testing.T) {
	u := &User{
		ID:           5,
		Email:        "jo@example.com",
		Username:     "jo",
		PasswordHash: "$argon2id$...",
		Role:         RoleEmployee,
		IsActive:     true,
	}

	raw, err := json.Marshal(ToUserResponse(u))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "argon2id")
	assert.NotContains(t, string(raw), "password")
}
