package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Emeenent14/omniverse/config"
	"github.com/Emeenent14/omniverse/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := config.DB.QueryRow(ctx, query,
		user.Username, user.Email, user.Password, user.FirstName, user.LastName, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		field := "email"
		if strings.Contains(pgErr.ConstraintName, "username") {
			field = "username"
		}
		return &models.ValidationError{Field: field, Message: "A user with this " + field + " already exists."}
	}
	return err
}

func (r *UserRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, bio, location, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		profile.UserID, profile.Bio, profile.Location, profile.AvatarURL, now, now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, password, first_name, last_name, created_at, updated_at
		FROM users WHERE email = $1
	`
	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, username, email, password, first_name, last_name, created_at, updated_at
		FROM users WHERE id = $1
	`
	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	query := `
		SELECT u.id, u.username, u.email, u.first_name, u.last_name, u.created_at,
		       COALESCE(p.bio, ''), COALESCE(p.location, ''), COALESCE(p.avatar_url, '')
		FROM users u
		LEFT JOIN user_profiles p ON u.id = p.user_id
		WHERE u.id = $1
	`
	user := &models.UserWithProfile{}
	err := config.DB.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.CreatedAt, &user.Bio, &user.Location, &user.AvatarURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetProfile(ctx context.Context, userID int) (*models.UserProfile, error) {
	query := `
		SELECT id, user_id, bio, location, avatar_url, created_at, updated_at
		FROM user_profiles WHERE user_id = $1
	`
	profile := &models.UserProfile{}
	err := config.DB.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.Bio, &profile.Location,
		&profile.AvatarURL, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "profile"}
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
		UPDATE user_profiles SET bio = $1, location = $2, avatar_url = $3, updated_at = $4
		WHERE user_id = $5
	`
	_, err := config.DB.Exec(ctx, query,
		profile.Bio, profile.Location, profile.AvatarURL, time.Now(), profile.UserID,
	)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`,
		hashedPassword, time.Now(), userID,
	)
	return err
}
