package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"text/template"

	"github.com/iudanet/plantkeeper/internal/client/api"
	"github.com/iudanet/plantkeeper/internal/models"
)

// PlantFlags значения флагов add/update. В update nil означает "не менять".
type PlantFlags struct {
	CommonName     *string
	ScientificName *string
	Nickname       *string
	Notes          *string
	Watering       *string
	Sunlight       *string
	Cycle          *string
	CareLevel      *string
	Frequency      *int
	Remind         *bool
	PlantID        int64
}

func (c *Cli) runGardenList(ctx context.Context) error {
	plants, err := c.garden.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load garden: %w", err)
	}

	c.io.Println("=== My Garden ===")
	c.io.Println()

	if len(plants) == 0 {
		c.io.Println("Your garden is empty.")
		c.io.Println()
		c.io.Println("Use 'plantkeeper garden add' to add your first plant.")
		return nil
	}

	c.io.Printf("Found %d plant(s):\n", len(plants))
	c.io.Println()

	for i, p := range plants {
		c.io.Printf("%d. %s\n", i+1, p.DisplayName())
		c.io.Printf("   ID:    %d\n", p.ID)
		if p.ScientificName != "" {
			c.io.Printf("   Latin: %s\n", p.ScientificName)
		}
		if p.HasReminder() {
			item := models.ReminderItem{Plant: p, DaysUntilDue: models.DaysUntilDue(p, c.now())}
			c.io.Printf("   Water: %s\n", item.StatusText())
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runGardenShow(ctx context.Context, id int64) error {
	plant, err := c.findPlant(ctx, id)
	if err != nil {
		return err
	}

	tmpl, err := template.New("plant").Parse(plantTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return tmpl.Execute(c.io, newPlantView(*plant))
}

func (c *Cli) runGardenAdd(ctx context.Context, flags PlantFlags) error {
	p := models.NewPlant{
		PlantID:               flags.PlantID,
		CommonName:            deref(flags.CommonName),
		ScientificName:        deref(flags.ScientificName),
		Nickname:              nonEmpty(flags.Nickname),
		Notes:                 nonEmpty(flags.Notes),
		WateringFrequencyDays: flags.Frequency,
	}
	if flags.Remind != nil {
		p.WateringReminderEnabled = *flags.Remind
	}
	if p.PlantID == 0 {
		p.Watering = nonEmpty(flags.Watering)
		p.Sunlight = nonEmpty(flags.Sunlight)
		p.Cycle = nonEmpty(flags.Cycle)
		p.CareLevel = nonEmpty(flags.CareLevel)
	}

	plant, err := c.garden.Add(ctx, p)
	if err != nil {
		if errors.Is(err, api.ErrConflict) {
			return err
		}
		return fmt.Errorf("failed to add plant: %w", err)
	}

	c.io.Println("✓ Plant added!")
	c.io.Printf("ID: %d\n", plant.ID)
	c.io.Printf("Name: %s\n", plant.DisplayName())

	return nil
}

func (c *Cli) runGardenUpdate(ctx context.Context, id int64, flags PlantFlags) error {
	update := buildUpdate(flags)

	plant, err := c.garden.Update(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}

	c.io.Printf("✓ Plant %d updated (%s)\n", plant.ID, update.Kind())
	return nil
}

// buildUpdate выбирает вариант обновления: custom, если задано хоть одно поле custom растения
func buildUpdate(flags PlantFlags) models.PlantUpdate {
	common := models.CatalogPlantUpdate{
		Nickname:                flags.Nickname,
		Notes:                   flags.Notes,
		WateringFrequencyDays:   flags.Frequency,
		WateringReminderEnabled: flags.Remind,
	}

	if flags.CommonName == nil && flags.ScientificName == nil && flags.Watering == nil &&
		flags.Sunlight == nil && flags.Cycle == nil && flags.CareLevel == nil {
		return common
	}

	return models.CustomPlantUpdate{
		CommonName:         flags.CommonName,
		ScientificName:     flags.ScientificName,
		Watering:           flags.Watering,
		Sunlight:           flags.Sunlight,
		Cycle:              flags.Cycle,
		CareLevel:          flags.CareLevel,
		CatalogPlantUpdate: common,
	}
}

func (c *Cli) runGardenRemove(ctx context.Context, id int64) error {
	if err := c.garden.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove plant: %w", err)
	}

	c.io.Printf("✓ Plant %d removed from your garden\n", id)
	return nil
}

func (c *Cli) runGardenWater(ctx context.Context, id int64) error {
	plant, err := c.garden.MarkWatered(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to mark plant as watered: %w", err)
	}

	c.io.Printf("✓ %s watered\n", plant.DisplayName())
	if plant.HasReminder() {
		item := models.ReminderItem{Plant: *plant, DaysUntilDue: models.DaysUntilDue(*plant, c.now())}
		c.io.Printf("Next watering: %s\n", item.StatusText())
	}

	return nil
}

func (c *Cli) runGardenCover(ctx context.Context, id int64, path string) error {
	dataURI, err := readImage(path)
	if err != nil {
		return err
	}

	if err := c.garden.SetCoverPhoto(ctx, id, dataURI); err != nil {
		return fmt.Errorf("failed to set cover photo: %w", err)
	}

	c.io.Printf("✓ Cover photo of plant %d updated\n", id)
	return nil
}

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Synchronizing garden with server...")

	if err := c.garden.Refresh(ctx); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	plants, _ := c.garden.Peek()
	c.io.Printf("✓ Garden synchronized: %d plant(s)\n", len(plants))
	return nil
}

func (c *Cli) findPlant(ctx context.Context, id int64) (*models.SavedPlant, error) {
	plants, err := c.garden.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load garden: %w", err)
	}
	for i := range plants {
		if plants[i].ID == id {
			return &plants[i], nil
		}
	}
	return nil, fmt.Errorf("plant %d not found in your garden", id)
}

// readImage читает файл и кодирует его в data URI
func readImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("image file %s is empty", path)
	}
	if len(data) > models.MaxImageBytes {
		return "", fmt.Errorf("image is too large, maximum size is 5 MB")
	}

	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
