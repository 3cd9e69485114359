package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, name, username, password, role, created_by, active_status, created_at`

// Create persiste una nueva cuenta y asigna el id generado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (name, username, password, role, created_by, active_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.db.QueryRow(context.Background(), query,
		user.Name, user.Username, user.PasswordHash, user.Role, user.CreatedBy, user.ActiveStatus,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// users_username_key o users_single_super_admin
			if user.Role == entity.RoleSuperAdmin {
				return domain.ErrSuperAdminExists
			}
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByUsername obtiene una cuenta por username (cualquier rol).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, username), "get user by username")
}

// GetByIDAndRole obtiene una cuenta solo si id y rol coinciden.
func (r *UserRepo) GetByIDAndRole(id int64, role string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND role = $2`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id, role), "get user by id and role")
}

// ExistsByRole indica si existe al menos una cuenta con el rol dado.
func (r *UserRepo) ExistsByRole(role string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`, role,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by role: %w", err)
	}
	return exists, nil
}

// ListByRole lista las cuentas de un rol, más recientes primero.
func (r *UserRepo) ListByRole(role string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY id`
	rows, err := r.db.Query(context.Background(), query, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedBy, &u.ActiveStatus, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza nombre, username y hash de password.
func (r *UserRepo) Update(user *entity.User) error {
	query := `UPDATE users SET name = $2, username = $3, password = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Username, user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateStatus fija el estado Active/Blocked de una cuenta.
func (r *UserRepo) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET active_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	return nil
}

// DeleteByRole borra la cuenta solo si id y rol coinciden; devuelve filas afectadas.
func (r *UserRepo) DeleteByRole(id int64, role string) (int64, error) {
	tag, err := r.db.Exec(context.Background(),
		`DELETE FROM users WHERE id = $1 AND role = $2`, id, role)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedBy, &u.ActiveStatus, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
