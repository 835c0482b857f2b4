package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mcorbu/shelterdesk/internal/models"
)

// listAnimals prints the roster. When logged in, animals the session holder
// already requested are marked.
func (a *App) listAnimals(ctx context.Context) error {
	animals, err := a.catalog.List(ctx)
	if err != nil {
		return err
	}
	if len(animals) == 0 {
		fmt.Fprintln(a.out, "No animals in the catalog yet.")
		return nil
	}

	for _, animal := range animals {
		marker := ""
		if a.isLoggedIn() {
			requested, err := a.adoption.Exists(ctx, a.sessions.Identifier(), animal.ID)
			if err != nil {
				return err
			}
			if requested {
				marker = " [requested]"
			}
		}
		fmt.Fprintf(a.out, "%-10s %-8s %-12s age %-3d %-8s %s%s\n",
			animal.Code, animal.Species, animal.Breed, animal.Age, animal.Size, animal.Description, marker)
	}
	return nil
}

// addAnimal interactively registers a new animal in the catalog.
func (a *App) addAnimal(ctx context.Context) error {
	animal, err := a.promptAnimal()
	if err != nil {
		return err
	}

	if err := a.catalog.Add(ctx, animal); err != nil {
		fmt.Fprintf(a.out, "Animal not added: %s\n", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Added %s (id %d).\n", animal.Code, animal.ID)
	return nil
}

func (a *App) promptAnimal() (*models.Animal, error) {
	animal := &models.Animal{}

	var err error
	if animal.Code, err = getSimpleText(a.reader, "Animal code (e.g. DOG-001)", a.out); err != nil {
		return nil, err
	}
	if animal.Species, err = getSimpleText(a.reader, "Species", a.out); err != nil {
		return nil, err
	}
	if animal.Breed, err = getSimpleText(a.reader, "Breed", a.out); err != nil {
		return nil, err
	}

	age, err := getSimpleText(a.reader, "Age (years)", a.out)
	if err != nil {
		return nil, err
	}
	if animal.Age, err = strconv.Atoi(age); err != nil {
		return nil, fmt.Errorf("age must be a number: %w", err)
	}

	if animal.Gender, err = getSimpleText(a.reader, "Gender", a.out); err != nil {
		return nil, err
	}
	if animal.Size, err = getSimpleText(a.reader, "Size", a.out); err != nil {
		return nil, err
	}
	if animal.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return nil, err
	}
	if animal.ImagePath, err = getSimpleText(a.reader, "Image path (optional)", a.out); err != nil {
		return nil, err
	}

	return animal, nil
}
