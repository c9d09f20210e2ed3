package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/client"
)

// getSimpleText, getPassword, and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var confirm = Confirm

// Login prompts the user for credentials and tries to authenticate.
//
// On success the identity is persisted to the session store, the admin view
// is enabled or disabled to match the role, and the material catalog is
// fetched. A rejected login leaves the current session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	ident, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable: %s", err.Error())
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	if err := a.session.Set(ctx, ident); err != nil {
		log.Printf("error saving session: %v", err)
	}
	a.materials.SetAdminView(ident.IsAdmin())
	if err := a.materials.Refresh(ctx); err != nil {
		log.Printf("error loading materials: %v", err)
	}

	log.Printf("Login successful")
	return nil
}

// Logout clears the persisted session and drops the bearer token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.client.SetToken("")
	a.materials.SetAdminView(false)
	fmt.Println("Logged out")
	return nil
}

// Register walks the user through account creation: name and email first,
// then a verification code delivered to that email, then password and terms.
// Typing "resend" at the code prompt requests another code, subject to the
// resend cooldown. The verification state is abandoned when the flow ends,
// whatever the outcome.
func (a *App) Register(ctx context.Context) error {
	defer a.register.Abandon()

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.register.RequestCode(ctx, email); err != nil {
		log.Printf("error sending verification code: %s", err.Error())
		return err
	}
	fmt.Println("Verification code sent to", email)

	code, err := getSimpleText(a.reader, "Enter verification code (or 'resend')", os.Stdout)
	if err != nil {
		return err
	}
	for code == "resend" {
		if remaining := a.register.CooldownRemaining(); remaining > 0 {
			fmt.Printf("Please wait %d seconds before requesting another code\n", remaining)
		} else if err := a.register.RequestCode(ctx, email); err != nil {
			log.Printf("error sending verification code: %s", err.Error())
		} else {
			fmt.Println("Verification code re-sent to", email)
		}
		code, err = getSimpleText(a.reader, "Enter verification code (or 'resend')", os.Stdout)
		if err != nil {
			return err
		}
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	agreed, err := confirm(a.reader, "Accept the terms and conditions?", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.register.Submit(ctx, name, email, code, string(password), agreed)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println(msg)
	return nil
}

// WhoAmI prints the identity behind the current session, if any.
func (a *App) WhoAmI() error {
	ident := a.session.Current()
	if ident == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", ident.Name, ident.Email, ident.Role)
	return nil
}
