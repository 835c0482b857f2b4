// Package credentials provides storage for user credentials and profile
// fields, backed by the relational store.
package credentials

import (
	"context"
	"database/sql"
	"time"

	"github.com/mcorbu/shelterdesk/internal/models"
)

// Repository is the storage contract consumed by the credential store.
type Repository interface {
	FindCredential(ctx context.Context, email string) (*models.Credential, error)
	InsertCredential(ctx context.Context, cred *models.Credential) error
	FindProfile(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, email string, profile *models.Profile) error
}

// dateLayout is the ISO date format used for the dateofbirth column.
const dateLayout = "2006-01-02"

// profileFromNulls builds a Profile from nullable columns. When every column
// is NULL or empty, the account has credentials but no profile yet and nil
// is returned.
func profileFromNulls(firstname, lastname, dateofbirth, livingconditions, petexperience, motivation, phonenumber sql.NullString) *models.Profile {
	empty := true
	for _, v := range []sql.NullString{firstname, lastname, dateofbirth, livingconditions, petexperience, motivation, phonenumber} {
		if v.Valid && v.String != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}

	p := &models.Profile{
		FirstName:        firstname.String,
		LastName:         lastname.String,
		LivingConditions: livingconditions.String,
		PetExperience:    petexperience.String,
		Motivation:       motivation.String,
		PhoneNumber:      phonenumber.String,
	}
	if dateofbirth.Valid && dateofbirth.String != "" {
		if d, err := time.Parse(dateLayout, dateofbirth.String); err == nil {
			p.DateOfBirth = d
		}
	}
	return p
}

// dateToColumn converts a profile birth date to its column representation.
// The zero time maps to NULL.
func dateToColumn(d time.Time) any {
	if d.IsZero() {
		return nil
	}
	return d.Format(dateLayout)
}
