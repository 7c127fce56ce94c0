package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/iudanet/plantkeeper/internal/client/auth"
	"github.com/iudanet/plantkeeper/internal/client/storage"
	"github.com/iudanet/plantkeeper/pkg/api"
)

// RegisterFlags значения флагов команды register
type RegisterFlags struct {
	Passwords
	Email       string
	DisplayName string
	ZipCode     string
}

func (c *Cli) runRegister(ctx context.Context, flags RegisterFlags) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	email, err := c.readRequired(flags.Email, "Email: ")
	if err != nil {
		return err
	}

	password, err := c.getPassword(flags.Passwords, "Password (min 8 chars, at least one digit): ")
	if err != nil {
		return err
	}

	// Подтверждение нужно только при интерактивном вводе
	if os.Getenv(PasswordEnv) == "" && flags.FromArgs == "" && flags.FromFile == "" {
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	displayName, err := c.readRequired(flags.DisplayName, "Display name: ")
	if err != nil {
		return err
	}

	zip, err := c.readRequired(flags.ZipCode, "Zip code: ")
	if err != nil {
		return err
	}

	session, err := c.authService.Register(ctx, auth.RegisterInput{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
		ZipCode:     zip,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Welcome, %s!\n", session.DisplayName)
	c.io.Printf("User ID: %s\n", session.UserID)

	return nil
}

// LoginFlags значения флагов команды login
type LoginFlags struct {
	Passwords
	Email string
}

func (c *Cli) runLogin(ctx context.Context, flags LoginFlags) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.readRequired(flags.Email, "Email: ")
	if err != nil {
		return err
	}

	password, err := c.getPassword(flags.Passwords, "Password: ")
	if err != nil {
		return err
	}

	session, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as %s <%s>\n", session.DisplayName, session.Email)

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(ctx); err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			c.io.Println("You are not logged in.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session and cached garden have been deleted.")

	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	session, err := c.authService.Current(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'plantkeeper login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email:        %s\n", session.Email)
	c.io.Printf("Display name: %s\n", session.DisplayName)
	c.io.Printf("Zip code:     %s\n", session.ZipCode)

	expiresAt := time.Unix(session.ExpiresAt, 0)
	if remaining := expiresAt.Sub(c.now()); remaining > 0 {
		c.io.Printf("Access token expires in %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Access token expired, it will be refreshed on the next request.")
	}

	return nil
}

// ProfileFlags значения флагов команды profile; nil означает "не менять"
type ProfileFlags struct {
	DisplayName *string
	ZipCode     *string
}

func (c *Cli) runProfile(ctx context.Context, flags ProfileFlags) error {
	var (
		user *api.UserResponse
		err  error
	)

	if flags.DisplayName != nil || flags.ZipCode != nil {
		user, err = c.authService.UpdateProfile(ctx, api.UpdateProfileRequest{
			DisplayName: flags.DisplayName,
			ZipCode:     flags.ZipCode,
		})
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		c.io.Println("✓ Profile updated")
	} else {
		user, err = c.authService.Profile(ctx)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
	}

	c.io.Println("=== Profile ===")
	c.io.Printf("Email:        %s\n", user.Email)
	c.io.Printf("Display name: %s\n", user.DisplayName)
	c.io.Printf("Zip code:     %s\n", user.ZipCode)

	return nil
}

func (c *Cli) runZone(ctx context.Context, zip string) error {
	zone, err := c.zone.Zone(ctx, zip)
	if err != nil {
		return fmt.Errorf("zone lookup failed: %w", err)
	}

	c.io.Printf("Zip code %s is in USDA hardiness zone %d\n", zone.ZipCode, zone.Zone)
	return nil
}
