package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/palace/internal/client/models"
	"github.com/dmitrijs2005/palace/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errNotSignedIn = errors.New("not signed in")

func (a *App) report(res services.Result) error {
	if res.Success {
		return nil
	}
	a.println("Error:", res.Error)
	return res.Err
}

// Signup prompts for the account details and creates the account.
func (a *App) Signup(ctx context.Context) error {
	var form models.SignupForm

	prompts := []struct {
		text string
		dst  *string
	}{
		{"Enter email", &form.Email},
		{"Enter first name", &form.FirstName},
		{"Enter last name", &form.LastName},
		{"Enter gender (male/female)", &form.Gender},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.text, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	form.Password = password
	form.Gender = strings.ToLower(form.Gender)

	return a.report(a.session.Signup(ctx, form))
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	return a.report(a.session.Login(ctx, email, password))
}

// Me prints the signed-in account.
func (a *App) Me(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated() || snap.User == nil {
		a.println("Not signed in")
		return errNotSignedIn
	}

	u := snap.User
	a.println("Name:   ", u.FullName())
	a.println("Email:  ", u.Email)
	a.println("Gender: ", u.Gender)
	a.println("Regions:", formatRegions(u.SubscribedRegions))
	return nil
}

// Regions shows the subscribed regions, or replaces them with args.
// "none" clears the list.
func (a *App) Regions(ctx context.Context, args []string) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated() || snap.User == nil {
		a.println("Not signed in")
		return errNotSignedIn
	}

	if len(args) == 0 {
		a.println("Regions:", formatRegions(snap.User.SubscribedRegions))
		return nil
	}

	regions := []string{}
	if !(len(args) == 1 && args[0] == "none") {
		for _, r := range args {
			regions = append(regions, strings.ToLower(strings.Trim(r, ",")))
		}
	}

	if err := a.report(a.session.UpdateSubscribedRegions(ctx, regions)); err != nil {
		return err
	}
	a.println("Regions:", formatRegions(a.session.Snapshot().User.SubscribedRegions))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}

// DeleteAccount asks for confirmation and deletes the account.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete your account? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		a.println("Cancelled")
		return nil
	}
	return a.report(a.session.DeleteAccount(ctx))
}

func formatRegions(regions []string) string {
	if len(regions) == 0 {
		return "(none)"
	}
	return strings.Join(regions, ", ")
}
