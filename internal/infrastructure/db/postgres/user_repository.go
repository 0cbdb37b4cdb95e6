package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

const userColumns = "id, username, email, password_hash, is_vip, is_admin, created_at"

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Unique violations on username or email map to
// the corresponding domain errors.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (username, email, password_hash, is_vip, is_admin)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.IsVip, user.IsAdmin)

	out, err := scanUser(row)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = $1", username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE " + where

	out, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return out, nil
}

// List returns all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsVip, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// Update applies the non-nil patch fields and returns the updated record.
func (r *UserRepository) Update(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	sets := []string{}
	args := []any{}

	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.IsVip != nil {
		add("is_vip", *patch.IsVip)
	}
	if patch.IsAdmin != nil {
		add("is_admin", *patch.IsAdmin)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), userColumns)

	out, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return out, nil
}

// GrantVip sets the VIP flag. Idempotent: re-granting returns the current row.
func (r *UserRepository) GrantVip(ctx context.Context, id int64) (*domain.User, error) {
	query := "UPDATE users SET is_vip = TRUE WHERE id = $1 RETURNING " + userColumns

	out, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("grant vip: %w", err)
	}
	return out, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsVip, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// mapUniqueViolation translates a PostgreSQL unique violation on the users
// table to a domain error, or returns nil when err is something else.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return domain.ErrEmailTaken
	}
	return domain.ErrUsernameTaken
}
