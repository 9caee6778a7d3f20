package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepository{db: db}
}

// Create implements profile.ProfileRepository. Email and employee code are
// unique; the violated constraint decides which sentinel comes back.
func (r *profileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	q := r.db.Pool

	query := `
		INSERT INTO profiles (id, full_name, email, password_hash, role, employee_code, department)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		p.FullName,
		p.Email,
		p.PasswordHash,
		p.Role,
		p.EmployeeCode,
		p.Department,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			if strings.Contains(pgErr.ConstraintName, "employee_code") {
				return profile.Profile{}, profile.ErrEmployeeCodeExists
			}
			return profile.Profile{}, profile.ErrEmailExists
		}
		return profile.Profile{}, fmt.Errorf("%w: create profile: %v", database.ErrStoreUnavailable, err)
	}

	return p, nil
}

// GetByID implements profile.ProfileRepository.
func (r *profileRepository) GetByID(ctx context.Context, id string) (profile.Profile, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail implements profile.ProfileRepository.
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (profile.Profile, error) {
	return r.getBy(ctx, "email", email)
}

func (r *profileRepository) getBy(ctx context.Context, column, value string) (profile.Profile, error) {
	q := r.db.Pool

	query := fmt.Sprintf(`
		SELECT id, full_name, email, password_hash, role, employee_code, department, created_at, updated_at
		FROM profiles
		WHERE %s = $1
		LIMIT 1
	`, column)

	var p profile.Profile
	err := q.QueryRow(ctx, query, value).Scan(
		&p.ID, &p.FullName, &p.Email, &p.PasswordHash, &p.Role,
		&p.EmployeeCode, &p.Department, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("%w: get profile: %v", database.ErrStoreUnavailable, err)
	}

	return p, nil
}

// List implements profile.ProfileRepository.
func (r *profileRepository) List(ctx context.Context, role *profile.Role) ([]profile.Profile, error) {
	q := r.db.Pool

	query := `
		SELECT id, full_name, email, password_hash, role, employee_code, department, created_at, updated_at
		FROM profiles
	`

	var args []interface{}
	if role != nil {
		query += " WHERE role = $1"
		args = append(args, *role)
	}
	query += " ORDER BY full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list profiles: %v", database.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var profiles []profile.Profile
	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(
			&p.ID, &p.FullName, &p.Email, &p.PasswordHash, &p.Role,
			&p.EmployeeCode, &p.Department, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan profile: %v", database.ErrStoreUnavailable, err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate profiles: %v", database.ErrStoreUnavailable, err)
	}

	return profiles, nil
}

// Update implements profile.ProfileRepository. Only the non-nil fields of the
// request are written; role and employee code have no update path at all.
func (r *profileRepository) Update(ctx context.Context, id string, upd profile.UpdateProfileRequest) error {
	q := r.db.Pool

	var setClauses []string
	var args []interface{}
	argPos := 1

	addSet := func(clause string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf(clause, argPos))
		args = append(args, value)
		argPos++
	}

	if upd.FullName != nil {
		addSet("full_name = $%d", *upd.FullName)
	}
	if upd.Email != nil {
		addSet("email = $%d", *upd.Email)
	}
	if upd.Department != nil {
		addSet("department = $%d", *upd.Department)
	}

	if len(setClauses) == 0 {
		return profile.ErrNoUpdatableFields
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argPos)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return profile.ErrEmailExists
		}
		return fmt.Errorf("%w: update profile: %v", database.ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}

	return nil
}

// CountByRole implements profile.ProfileRepository.
func (r *profileRepository) CountByRole(ctx context.Context, role profile.Role) (int, error) {
	q := r.db.Pool

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: count profiles: %v", database.ErrStoreUnavailable, err)
	}

	return count, nil
}
