package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/dbx"
	"github.com/mcorbu/shelterdesk/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (*sql.DB or *sql.Tx)
// over the SQLite store.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) FindCredential(ctx context.Context, email string) (*models.Credential, error) {
	query := `SELECT email, salt, verifier FROM users WHERE email = ?`

	cred := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&cred.Email, &cred.Salt, &cred.Verifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

func (r *SQLiteRepository) InsertCredential(ctx context.Context, cred *models.Credential) error {
	query := `INSERT INTO users (email, salt, verifier) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, cred.Email, cred.Salt, cred.Verifier); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) FindProfile(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT firstname, lastname, dateofbirth, livingconditions, petexperience, motivation, phonenumber
		 FROM users WHERE email = ?`

	var firstname, lastname, dateofbirth, livingconditions, petexperience, motivation, phonenumber sql.NullString
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&firstname, &lastname, &dateofbirth, &livingconditions, &petexperience, &motivation, &phonenumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profileFromNulls(firstname, lastname, dateofbirth, livingconditions, petexperience, motivation, phonenumber), nil
}

func (r *SQLiteRepository) UpdateProfile(ctx context.Context, email string, profile *models.Profile) error {
	query := `UPDATE users SET firstname = ?, lastname = ?, dateofbirth = ?, livingconditions = ?,
		 petexperience = ?, motivation = ?, phonenumber = ? WHERE email = ?`

	res, err := r.db.ExecContext(ctx, query,
		profile.FirstName, profile.LastName, dateToColumn(profile.DateOfBirth),
		profile.LivingConditions, profile.PetExperience, profile.Motivation, profile.PhoneNumber,
		email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
