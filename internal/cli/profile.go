package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mcorbu/shelterdesk/internal/models"
	"github.com/mcorbu/shelterdesk/internal/session"
)

const dateLayout = "2006-01-02"

// showProfile prints the session holder's profile. Unset fields show as "?".
func (a *App) showProfile(ctx context.Context) error {
	fmt.Fprintln(a.out, "Profile")
	fmt.Fprintf(a.out, "  Email:             %s\n", a.sessions.Identifier())
	fmt.Fprintf(a.out, "  First name:        %s\n", a.sessions.FirstName())
	fmt.Fprintf(a.out, "  Last name:         %s\n", a.sessions.LastName())

	dob := session.Unknown
	if d := a.sessions.DateOfBirth(); !d.IsZero() {
		dob = d.Format(dateLayout)
	}
	fmt.Fprintf(a.out, "  Date of birth:     %s\n", dob)
	fmt.Fprintf(a.out, "  Phone:             %s\n", a.sessions.PhoneNumber())
	fmt.Fprintf(a.out, "  Living conditions: %s\n", a.sessions.LivingConditions())
	fmt.Fprintf(a.out, "  Pet experience:    %s\n", a.sessions.PetExperience())
	fmt.Fprintf(a.out, "  Motivation:        %s\n", a.sessions.Motivation())
	return nil
}

// editProfile walks every profile field, keeping the current value on empty
// input, then saves the result to the store and the active session.
func (a *App) editProfile(ctx context.Context) error {
	current := a.sessions.Current()
	if current == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	profile := current.Profile

	var err error
	if profile.FirstName, err = GetOptionalText(a.reader, "First name", profile.FirstName, a.out); err != nil {
		return err
	}
	if profile.LastName, err = GetOptionalText(a.reader, "Last name", profile.LastName, a.out); err != nil {
		return err
	}

	currentDob := ""
	if !profile.DateOfBirth.IsZero() {
		currentDob = profile.DateOfBirth.Format(dateLayout)
	}
	dob, err := GetOptionalText(a.reader, "Date of birth (YYYY-MM-DD)", currentDob, a.out)
	if err != nil {
		return err
	}
	if dob != "" {
		parsed, perr := time.Parse(dateLayout, dob)
		if perr != nil {
			fmt.Fprintln(a.out, "Date not recognized, keeping the previous value.")
		} else {
			profile.DateOfBirth = parsed
		}
	}

	if profile.PhoneNumber, err = GetOptionalText(a.reader, "Phone", profile.PhoneNumber, a.out); err != nil {
		return err
	}
	if profile.LivingConditions, err = GetOptionalText(a.reader, "Living conditions", profile.LivingConditions, a.out); err != nil {
		return err
	}
	if profile.PetExperience, err = GetOptionalText(a.reader, "Pet experience", profile.PetExperience, a.out); err != nil {
		return err
	}
	if profile.Motivation, err = GetOptionalText(a.reader, "Motivation", profile.Motivation, a.out); err != nil {
		return err
	}

	if err := a.saveProfile(ctx, current.Email, profile); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Profile saved.")
	return nil
}

func (a *App) saveProfile(ctx context.Context, email string, profile models.Profile) error {
	if err := a.creds.SaveProfile(ctx, email, &profile); err != nil {
		return err
	}
	return a.sessions.UpdateProfile(profile)
}
