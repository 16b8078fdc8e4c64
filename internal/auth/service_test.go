// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/inventory-api/internal/core"
)

type stubUserProvider struct {
	user      *UserInfo
	getErr    error
	createErr error

	created *CreateUserParams
}

func (s *stubUserProvider) GetByEmail(
	ctx context.Context,
	email string,
) (*UserInfo, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.user, nil
}

func (s *stubUserProvider) GetByID(
	ctx context.Context,
	id int64,
) (*UserInfo, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.user, nil
}

func (s *stubUserProvider) Create(
	ctx context.Context,
	params CreateUserParams,
) (*UserInfo, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &params
	return &UserInfo{
		ID:       42,
		Email:    params.Email,
		Username: params.Username,
		Role:     params.Role,
	}, nil
}

func newTestService(t *testing.T, provider UserProvider) *Service {
	t.Helper()

	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)
	return NewService(manager, provider)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin_Success(t *testing.T) {
	provider := &stubUserProvider{user: &UserInfo{
		ID:           7,
		Email:        "jo@example.com",
		Username:     "jo",
		PasswordHash: hashOf(t, "correct horse"),
		Role:         "employee",
	}}
	svc := newTestService(t, provider)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jo@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Positive(t, resp.Token.ExpiresIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	provider := &stubUserProvider{user: &UserInfo{
		ID:           7,
		Email:        "jo@example.com",
		PasswordHash: hashOf(t, "correct horse"),
	}}
	svc := newTestService(t, provider)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jo@example.com",
		Password: "battery staple",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	provider := &stubUserProvider{getErr: core.ErrNotFound}
	svc := newTestService(t, provider)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "anything",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_AlwaysEmployee(t *testing.T) {
	provider := &stubUserProvider{}
	svc := newTestService(t, provider)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Username: "newbie",
		Password: "a long enough password",
	})

	require.NoError(t, err)
	require.NotNil(t, provider.created)
	assert.Equal(t, "employee", provider.created.Role)
	assert.Equal(t, "employee", resp.User.Role)
	assert.NotEmpty(t, resp.Token.AccessToken)
}

func TestRegister_HashesPassword(t *testing.T) {
	provider := &stubUserProvider{}
	svc := newTestService(t, provider)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Username: "newbie",
		Password: "a long enough password",
	})

	require.NoError(t, err)
	require.NotNil(t, provider.created)
	assert.NotEqual(t, "a long enough password", provider.created.PasswordHash)
	assert.Contains(t, provider.created.PasswordHash, "$argon2id$")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	provider := &stubUserProvider{createErr: core.ErrDuplicateKey}
	svc := newTestService(t, provider)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Username: "taken",
		Password: "a long enough password",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRefresh_DeactivatedUser(t *testing.T) {
	// A soft-deleted user reads back as not-found, which must invalidate
	// the refresh rather than surface a 404.
	provider := &stubUserProvider{getErr: core.ErrNotFound}
	svc := newTestService(t, provider)

	_, err := svc.Refresh(context.Background(), 7)

	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestRefresh_IssuesNewToken(t *testing.T) {
	provider := &stubUserProvider{user: &UserInfo{
		ID:    7,
		Email: "jo@example.com",
		Role:  "manager",
	}}
	svc := newTestService(t, provider)

	resp, err := svc.Refresh(context.Background(), 7)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "manager", resp.User.Role)
}
