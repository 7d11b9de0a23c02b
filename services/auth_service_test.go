package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Emeenent14/omniverse/models"
	"github.com/Emeenent14/omniverse/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUserNotFound = errors.New("user not found")

type fakeUserStore struct {
	nextID   int
	users    map[int]*models.User
	profiles map[int]*models.UserProfile
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		nextID:   1,
		users:    map[int]*models.User{},
		profiles: map[int]*models.UserProfile{},
	}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return &models.ValidationError{Field: "email", Message: "A user with this email already exists."}
		}
		if existing.Username == user.Username {
			return &models.ValidationError{Field: "username", Message: "A user with this username already exists."}
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) CreateProfile(_ context.Context, profile *models.UserProfile) error {
	profile.ID = profile.UserID
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errUserNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id int) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserWithProfile(_ context.Context, userID int) (*models.UserWithProfile, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, &models.NotFoundError{Resource: "user"}
	}
	result := &models.UserWithProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
	if profile, ok := f.profiles[userID]; ok {
		result.Bio = profile.Bio
		result.Location = profile.Location
		result.AvatarURL = profile.AvatarURL
	}
	return result, nil
}

func (f *fakeUserStore) GetProfile(_ context.Context, userID int) (*models.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, &models.NotFoundError{Resource: "profile"}
	}
	return profile, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, profile *models.UserProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID int, hashedPassword string) error {
	user, ok := f.users[userID]
	if !ok {
		return errUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func registerRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "correct-horse",
		Password2: "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := NewAuthServiceWithStore(store)

	result, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ada", result.User.Username)

	// stored password is hashed, never plaintext
	user := store.users[result.User.ID]
	assert.NotEqual(t, "correct-horse", user.Password)

	claims, err := utils.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	login, err := svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthServiceWithStore(newFakeUserStore())

	req := registerRequest()
	req.Password2 = "something-else"

	_, err := svc.Register(ctx, req)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password", validationErr.Field)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthServiceWithStore(newFakeUserStore())

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Username = "ada2"
	_, err = svc.Register(ctx, req)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthServiceWithStore(newFakeUserStore())

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthServiceWithStore(newFakeUserStore())

	result, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	userID := result.User.ID

	err = svc.ChangePassword(ctx, userID, models.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-password-1",
	})
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "old_password", validationErr.Field)

	err = svc.ChangePassword(ctx, userID, models.ChangePasswordRequest{
		OldPassword: "correct-horse",
		NewPassword: "new-password-1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "new-password-1"})
	require.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthServiceWithStore(newFakeUserStore())

	result, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, result.User.ID, models.UpdateProfileRequest{
		Bio:      "Collector of engines",
		Location: "London",
	})
	require.NoError(t, err)
	assert.Equal(t, "Collector of engines", updated.Bio)
	assert.Equal(t, "London", updated.Location)
}
