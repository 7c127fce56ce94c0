package cli

import (
	"context"
	"fmt"
	"text/template"

	"github.com/iudanet/plantkeeper/internal/models"
)

func (c *Cli) runPhotosList(ctx context.Context, plantID int64) error {
	photos, err := c.garden.Photos(ctx, plantID)
	if err != nil {
		return fmt.Errorf("failed to list photos: %w", err)
	}

	if len(photos) == 0 {
		c.io.Printf("Plant %d has no photos yet.\n", plantID)
		return nil
	}

	tmpl, err := template.New("photos").Parse(photosTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return tmpl.Execute(c.io, newPhotoViews(photos))
}

func (c *Cli) runPhotosAdd(ctx context.Context, plantID int64, path, caption string) error {
	dataURI, err := readImage(path)
	if err != nil {
		return err
	}

	photo := models.NewPhoto{ImageData: dataURI}
	if caption != "" {
		photo.Caption = &caption
	}

	created, err := c.garden.AddPhoto(ctx, plantID, photo)
	if err != nil {
		return fmt.Errorf("failed to upload photo: %w", err)
	}

	c.io.Printf("✓ Photo %d added to plant %d\n", created.ID, plantID)
	return nil
}

func (c *Cli) runPhotosDelete(ctx context.Context, plantID, photoID int64) error {
	if err := c.garden.DeletePhoto(ctx, plantID, photoID); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	c.io.Printf("✓ Photo %d deleted\n", photoID)
	return nil
}
