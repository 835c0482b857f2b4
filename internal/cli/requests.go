package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/models"
)

func (a *App) lookupAnimal(ctx context.Context, code string) (*models.Animal, bool) {
	animal, err := a.catalog.GetByCode(ctx, code)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Fprintf(a.out, "No animal with code %s.\n", code)
		return nil, false
	}
	if err != nil {
		fmt.Fprintf(a.out, "Catalog unavailable: %s\n", err.Error())
		return nil, false
	}
	return animal, true
}

// adopt submits an adoption request for the animal with the given code.
func (a *App) adopt(ctx context.Context, code string) error {
	animal, ok := a.lookupAnimal(ctx, code)
	if !ok {
		return nil
	}

	err := a.adoption.Submit(ctx, a.sessions.Current(), *animal)
	switch {
	case errors.Is(err, common.ErrNoActiveSession):
		fmt.Fprintln(a.out, "Log in first.")
	case errors.Is(err, common.ErrDuplicateRequest):
		fmt.Fprintf(a.out, "You already have a request for %s.\n", code)
	case errors.Is(err, common.ErrRenderFailed):
		fmt.Fprintln(a.out, "Request recorded, but the document could not be written.")
	case err != nil:
		return err
	default:
		fmt.Fprintf(a.out, "Adoption request for %s submitted.\n", code)
	}
	return nil
}

// cancelRequest withdraws the session holder's request for the animal with
// the given code.
func (a *App) cancelRequest(ctx context.Context, code string) error {
	animal, ok := a.lookupAnimal(ctx, code)
	if !ok {
		return nil
	}

	err := a.adoption.Cancel(ctx, a.sessions.Current(), *animal)
	switch {
	case errors.Is(err, common.ErrNoActiveSession):
		fmt.Fprintln(a.out, "Log in first.")
	case errors.Is(err, common.ErrNoSuchRequest):
		fmt.Fprintf(a.out, "You have no request for %s.\n", code)
	case err != nil:
		return err
	default:
		fmt.Fprintf(a.out, "Adoption request for %s cancelled.\n", code)
	}
	return nil
}

// listRequests prints the session holder's pending requests.
func (a *App) listRequests(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	animals, err := a.catalog.List(ctx)
	if err != nil {
		return err
	}

	count := 0
	for _, animal := range animals {
		requested, err := a.adoption.Exists(ctx, a.sessions.Identifier(), animal.ID)
		if err != nil {
			return err
		}
		if requested {
			fmt.Fprintf(a.out, "%-10s %-8s %s\n", animal.Code, animal.Species, animal.Breed)
			count++
		}
	}
	if count == 0 {
		fmt.Fprintln(a.out, "No pending requests.")
	}
	return nil
}

// reconcile reports stored requests whose document is missing from disk.
func (a *App) reconcile(ctx context.Context) error {
	mismatches, err := a.adoption.Reconcile(ctx)
	if err != nil {
		return err
	}
	if len(mismatches) == 0 {
		fmt.Fprintln(a.out, "All request documents are present.")
		return nil
	}
	for _, m := range mismatches {
		fmt.Fprintf(a.out, "missing document: %s (requester %s, animal %d)\n", m.DocumentPath, m.UserEmail, m.AnimalID)
	}
	return nil
}
