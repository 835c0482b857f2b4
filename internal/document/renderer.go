// Package document renders adoption request paperwork to the local
// filesystem. Rendering is best-effort: a failed write may leave a partial
// file at the destination, which callers treat as absent.
package document

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mcorbu/shelterdesk/internal/models"
)

// unknown is printed for profile fields the requester has not filled in.
const unknown = "?"

// Request carries everything a rendered document shows.
type Request struct {
	RequesterEmail string
	Requester      models.Profile
	Animal         models.Animal
	SubmittedAt    time.Time
}

// Renderer writes a human-readable adoption request document to path.
type Renderer interface {
	Render(path string, req Request) error
}

// TextRenderer renders the fixed plain-text layout.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(path string, req Request) error {
	var b strings.Builder

	b.WriteString("ADOPTION REQUEST\n")
	b.WriteString("================\n\n")
	fmt.Fprintf(&b, "Submitted: %s\n\n", req.SubmittedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("Requester\n")
	b.WriteString("---------\n")
	fmt.Fprintf(&b, "Name:              %s %s\n", orUnknown(req.Requester.FirstName), orUnknown(req.Requester.LastName))
	fmt.Fprintf(&b, "Email:             %s\n", orUnknown(req.RequesterEmail))
	fmt.Fprintf(&b, "Phone:             %s\n", orUnknown(req.Requester.PhoneNumber))
	fmt.Fprintf(&b, "Date of birth:     %s\n", dateOrUnknown(req.Requester.DateOfBirth))
	fmt.Fprintf(&b, "Living conditions: %s\n", orUnknown(req.Requester.LivingConditions))
	fmt.Fprintf(&b, "Pet experience:    %s\n", orUnknown(req.Requester.PetExperience))
	fmt.Fprintf(&b, "Motivation:        %s\n\n", orUnknown(req.Requester.Motivation))

	b.WriteString("Animal\n")
	b.WriteString("------\n")
	fmt.Fprintf(&b, "Code:        %s\n", req.Animal.Code)
	fmt.Fprintf(&b, "Species:     %s\n", req.Animal.Species)
	fmt.Fprintf(&b, "Breed:       %s\n", req.Animal.Breed)
	fmt.Fprintf(&b, "Age:         %d\n", req.Animal.Age)
	fmt.Fprintf(&b, "Gender:      %s\n", req.Animal.Gender)
	fmt.Fprintf(&b, "Size:        %s\n", req.Animal.Size)
	fmt.Fprintf(&b, "Description: %s\n", req.Animal.Description)
	b.WriteString(imageNote(req.Animal.ImagePath))
	b.WriteString("\n")

	b.WriteString("Thank you for choosing to adopt. A shelter volunteer will contact\n")
	b.WriteString("you to arrange a meeting with the animal.\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func imageNote(imagePath string) string {
	if imagePath == "" {
		return "Photo:       no photo on file\n"
	}
	if _, err := os.Stat(imagePath); err != nil {
		return fmt.Sprintf("Photo:       %s (file not found)\n", imagePath)
	}
	return fmt.Sprintf("Photo:       %s\n", imagePath)
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

func dateOrUnknown(t time.Time) string {
	if t.IsZero() {
		return unknown
	}
	return t.Format("2006-01-02")
}
