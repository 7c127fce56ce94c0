package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/iudanet/plantkeeper/internal/client/auth"
	"github.com/iudanet/plantkeeper/internal/client/iocli"
	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/pkg/api"
)

//go:generate moq -out garden_mock.go . Garden
//go:generate moq -out reminders_mock.go . Reminders

// PasswordEnv переменная окружения с паролем аккаунта
const PasswordEnv = "PLANTKEEPER_PASSWORD"

// Garden операции над кэшем сада, нужные командам
type Garden interface {
	Get(ctx context.Context) ([]models.SavedPlant, error)
	Refresh(ctx context.Context) error
	Peek() ([]models.SavedPlant, bool)
	Add(ctx context.Context, p models.NewPlant) (*models.SavedPlant, error)
	Update(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error)
	Remove(ctx context.Context, id int64) error
	MarkWatered(ctx context.Context, id int64) (*models.SavedPlant, error)
	SetCoverPhoto(ctx context.Context, id int64, imageData string) error
	Photos(ctx context.Context, plantID int64) ([]models.Photo, error)
	AddPhoto(ctx context.Context, plantID int64, p models.NewPhoto) (*models.Photo, error)
	DeletePhoto(ctx context.Context, plantID, photoID int64) error
}

// Reminders операции планировщика напоминаний
type Reminders interface {
	DefaultTime(ctx context.Context) (models.TimeOfDay, error)
	SetDefaultTime(ctx context.Context, tod models.TimeOfDay) error
	Reconcile(ctx context.Context, plants []models.SavedPlant) error
	Items(plants []models.SavedPlant) []models.ReminderItem
}

// ZoneLookup определяет зону зимостойкости по почтовому индексу
type ZoneLookup interface {
	Zone(ctx context.Context, zipCode string) (*api.ZoneResponse, error)
}

// AlarmClock запускает доставку напоминаний в foreground режиме
type AlarmClock interface {
	Start()
	Stop(ctx context.Context) error
}

// Passwords источники пароля для login/register
type Passwords struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io          iocli.IO
	authService auth.Service
	garden      Garden
	reminders   Reminders
	zone        ZoneLookup
	alarms      AlarmClock
	logger      *slog.Logger
	now         func() time.Time
}

func New(io iocli.IO, authService auth.Service, garden Garden, reminders Reminders, zone ZoneLookup, alarms AlarmClock, logger *slog.Logger) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		garden:      garden,
		reminders:   reminders,
		zone:        zone,
		alarms:      alarms,
		logger:      logger,
		now:         time.Now,
	}
}

// getPassword retrieves the account password with priority:
// 1. Environment variable PLANTKEEPER_PASSWORD
// 2. File specified in --password-file
// 3. Command-line parameter --password
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(passwords Passwords, prompt string) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// readRequired запрашивает значение, если оно не передано флагом
func (c *Cli) readRequired(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}
