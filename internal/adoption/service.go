// Package adoption coordinates the two halves of an adoption request: the
// row in the store and the rendered document on disk. The row is canonical;
// the document follows it. Submission inserts the row first and renders
// second, cancellation deletes the file first and removes the row second, so
// the only reachable inconsistency is a row whose document is missing.
package adoption

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/document"
	"github.com/mcorbu/shelterdesk/internal/logging"
	"github.com/mcorbu/shelterdesk/internal/models"
	"github.com/mcorbu/shelterdesk/internal/repositories/requests"
	"github.com/mcorbu/shelterdesk/internal/session"
)

// timeNow is a seam for deterministic document names in tests.
var timeNow = time.Now

// Mismatch is one row whose document is absent from disk, found by Reconcile.
type Mismatch struct {
	UserEmail    string
	AnimalID     int64
	DocumentPath string
}

// Service implements submission, cancellation and lookup of adoption
// requests. One request per (requester, animal) pair; the check is made here,
// not in the store.
type Service struct {
	repo     requests.Repository
	renderer document.Renderer
	docRoot  string
	log      logging.Logger
}

func NewService(repo requests.Repository, renderer document.Renderer, docRoot string, log logging.Logger) *Service {
	return &Service{repo: repo, renderer: renderer, docRoot: docRoot, log: log}
}

// Submit files an adoption request for the animal on behalf of the session
// holder. The row is inserted before the document is rendered; a render
// failure leaves the row in place and reports ErrRenderFailed.
func (s *Service) Submit(ctx context.Context, sess *session.Session, animal models.Animal) error {
	if sess == nil {
		return common.ErrNoActiveSession
	}

	exists, err := s.repo.Exists(ctx, sess.Email, animal.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	if exists {
		return common.ErrDuplicateRequest
	}

	dir := filepath.Join(s.docRoot, animal.Code)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	now := timeNow()
	name := fmt.Sprintf("%d_%s_adoption-request.txt", now.UnixMilli(), uuid.NewString()[:8])
	path := filepath.Join(dir, name)

	req := &models.AdoptionRequest{UserEmail: sess.Email, AnimalID: animal.ID, DocumentPath: path}
	if err := s.repo.Insert(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	doc := document.Request{
		RequesterEmail: sess.Email,
		Requester:      sess.Profile,
		Animal:         animal,
		SubmittedAt:    now,
	}
	if err := s.renderer.Render(path, doc); err != nil {
		// The row stays: it carries the canonical path and the document
		// can be produced later from it.
		s.log.Warn(ctx, "adoption request document not rendered",
			"email", sess.Email, "animal", animal.Code, "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrRenderFailed, err)
	}

	s.log.Info(ctx, "adoption request submitted",
		"email", sess.Email, "animal", animal.Code, "path", path)
	return nil
}

// Cancel withdraws the session holder's request for the animal. The document
// is deleted before the row; a document already missing from disk is not an
// error.
func (s *Service) Cancel(ctx context.Context, sess *session.Session, animal models.Animal) error {
	if sess == nil {
		return common.ErrNoActiveSession
	}

	path, err := s.repo.FindPath(ctx, sess.Email, animal.ID)
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrNoSuchRequest
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := s.repo.Delete(ctx, sess.Email, animal.ID); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	s.log.Info(ctx, "adoption request cancelled", "email", sess.Email, "animal", animal.Code)
	return nil
}

// Exists reports whether the requester already has a request for the animal.
func (s *Service) Exists(ctx context.Context, email string, animalID int64) (bool, error) {
	exists, err := s.repo.Exists(ctx, email, animalID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return exists, nil
}

// Reconcile scans every stored row and reports those whose document is
// missing from disk. It only surfaces mismatches; repairing them is left to
// the operator.
func (s *Service) Reconcile(ctx context.Context) ([]Mismatch, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	var mismatches []Mismatch
	for _, row := range rows {
		if _, err := os.Stat(row.DocumentPath); errors.Is(err, fs.ErrNotExist) {
			mismatches = append(mismatches, Mismatch{
				UserEmail:    row.UserEmail,
				AnimalID:     row.AnimalID,
				DocumentPath: row.DocumentPath,
			})
		}
	}
	return mismatches, nil
}
