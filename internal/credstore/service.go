// Package credstore verifies and registers user credentials. Secrets are
// never stored or compared in clear form: each credential keeps a random
// salt and an argon2id-derived verifier, and checks use constant-time
// comparison.
package credstore

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/logging"
	"github.com/mcorbu/shelterdesk/internal/models"
	"github.com/mcorbu/shelterdesk/internal/repositories/credentials"
)

const saltLength = 32

// deriveVerifier computes the argon2id key for a secret under the given salt.
func deriveVerifier(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, 1, 64*1024, 4, 32)
}

// Service wraps the credentials repository with hashing and verification.
type Service struct {
	repo credentials.Repository
	log  logging.Logger
}

// NewService constructs a Service over the given repository.
func NewService(repo credentials.Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log.With("component", "credstore")}
}

// Verify reports whether a credential with the given identifier exists and
// the secret matches its stored verifier. An unknown identifier is false,
// never an error; only an unreachable store yields one.
func (s *Service) Verify(ctx context.Context, email, secret string) (bool, error) {
	cred, err := s.repo.FindCredential(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	candidate := deriveVerifier(secret, cred.Salt)
	return subtle.ConstantTimeCompare(cred.Verifier, candidate) == 1, nil
}

// Register creates a credential with a fresh random salt. Registering an
// identifier that already exists fails with ErrDuplicateIdentifier.
func (s *Service) Register(ctx context.Context, email, secret string) error {
	_, err := s.repo.FindCredential(ctx, email)
	if err == nil {
		return common.ErrDuplicateIdentifier
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	salt := common.RandBytes(saltLength)
	cred := &models.Credential{
		Email:    email,
		Salt:     salt,
		Verifier: deriveVerifier(secret, salt),
	}

	if err := s.repo.InsertCredential(ctx, cred); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	s.log.Info(ctx, "credential registered", "identifier", email)
	return nil
}

// FetchProfile returns the stored profile fields for an identifier, or nil
// when the account has no profile values yet.
func (s *Service) FetchProfile(ctx context.Context, email string) (*models.Profile, error) {
	profile, err := s.repo.FindProfile(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return profile, nil
}

// SaveProfile persists profile fields to the store. This is the explicit
// second half of a profile update; mutating the in-memory session is the
// session manager's separate concern.
func (s *Service) SaveProfile(ctx context.Context, email string, profile *models.Profile) error {
	if err := s.repo.UpdateProfile(ctx, email, profile); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}
