// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/inventory-api/internal/auth"
	"github.com/carterperez-dev/inventory-api/internal/core"
)

func authCreateParams(email string) auth.CreateUserParams {
	return auth.CreateUserParams{
		Email:        email,
		Username:     "someone",
		PasswordHash: "$argon2id$...",
		Role:         RoleEmployee,
	}
}

type stubRepo struct {
	user *User
	err  error

	created    *User
	emailAsked string
}

func (s *stubRepo) Create(ctx context.Context, user *User) error {
	if s.err != nil {
		return s.err
	}
	user.ID = 1
	s.created = user
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubRepo) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	s.emailAsked = email
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubRepo) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubRepo) Update(
	ctx context.Context,
	id int64,
	patch UpdateUserRequest,
) (*User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubRepo) SoftDelete(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubRepo) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return nil, 0, s.err
}

func TestGetByEmail_Lowercases(t *testing.T) {
	repo := &stubRepo{user: &User{ID: 1, Email: "jo@example.com"}}
	svc := NewService(repo)

	_, err := svc.GetByEmail(context.Background(), "Jo@Example.COM")

	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", repo.emailAsked)
}

func TestCreate_LowercasesEmail(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), authCreateParams("MiXeD@Example.com"))

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "mixed@example.com", repo.created.Email)
}

func TestGetMe_RequiresIdentity(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, err := svc.GetMe(context.Background(), 0)

	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestCanDeleteUser_SelfDelete(t *testing.T) {
	svc := NewService(&stubRepo{})

	err := svc.CanDeleteUser(context.Background(), 7, 7)

	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestCanDeleteUser_AdminTarget(t *testing.T) {
	repo := &stubRepo{user: &User{ID: 2, Role: RoleAdmin}}
	svc := NewService(repo)

	err := svc.CanDeleteUser(context.Background(), 1, 2)

	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestCanDeleteUser_RegularTarget(t *testing.T) {
	repo := &stubRepo{user: &User{ID: 2, Role: RoleEmployee}}
	svc := NewService(repo)

	assert.NoError(t, svc.CanDeleteUser(context.Background(), 1, 2))
}

func TestCanDeleteUser_MissingTarget(t *testing.T) {
	repo := &stubRepo{err: core.ErrNotFound}
	svc := NewService(repo)

	err := svc.CanDeleteUser(context.Background(), 1, 404)

	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCreateUser_HashesAndPreservesRole(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	user, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:     "New@Example.com",
		Username:  "newhire",
		Password:  "correct-horse-battery",
		FirstName: "New",
		LastName:  "Hire",
		Role:      RoleManager,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, RoleManager, user.Role)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
	assert.NotContains(t, user.PasswordHash, "correct-horse-battery")
}

func TestCreateUser_RejectsUnknownRole(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "new@example.com",
		Username: "newhire",
		Password: "correct-horse-battery",
		Role:     "superadmin",
	})

	require.Error(t, err)
	assert.True(t, core.IsAppError(err))
	assert.Nil(t, repo.created)
}

func TestUpdateUser_RejectsUnknownRole(t *testing.T) {
	svc := NewService(&stubRepo{user: &User{ID: 3}})

	bogus := "root"
	_, err := svc.UpdateUser(context.Background(), 3, UpdateUserRequest{
		Role: &bogus,
	})

	require.Error(t, err)
	assert.True(t, core.IsAppError(err))
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleManager, RoleEmployee} {
		assert.True(t, ValidRole(role), role)
	}
	for _, role := range []string{"", "Admin", "superadmin", "ADMIN "} {
		assert.False(t, ValidRole(role), role)
	}
}
