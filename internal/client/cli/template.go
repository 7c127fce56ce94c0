package cli

import (
	"time"

	"github.com/iudanet/plantkeeper/internal/models"
)

const plantTemplate = `
=== {{.Name}} ===

ID:          {{.ID}}
Kind:        {{.Kind}}
{{- if .ScientificName }}
Scientific:  {{.ScientificName}}
{{- end}}
{{- if .CommonName }}
Common name: {{.CommonName}}
{{- end}}
Added:       {{.AddedAt}}
Watered:     {{.LastWatered}}
Reminder:    {{.Reminder}}
{{- if .Watering }}
Watering:    {{.Watering}}
{{- end}}
{{- if .Sunlight }}
Sunlight:    {{.Sunlight}}
{{- end}}
{{- if .Cycle }}
Cycle:       {{.Cycle}}
{{- end}}
{{- if .CareLevel }}
Care level:  {{.CareLevel}}
{{- end}}
{{- if .HasThumbnail }}
Cover photo: set
{{- end}}
{{- if .Notes }}

Notes:
---
{{.Notes}}
---
{{- end}}
`

const photosTemplate = `
=== Photos ({{len .}}) ===
{{range .}}
#{{.ID}}  {{.TakenAt}}  {{.Size}} bytes
{{- if .Caption }}  "{{.Caption}}"{{end}}
{{- end}}
`

// plantView плоское представление растения для шаблона
type plantView struct {
	Name           string
	Kind           string
	CommonName     string
	ScientificName string
	AddedAt        string
	LastWatered    string
	Reminder       string
	Watering       string
	Sunlight       string
	Cycle          string
	CareLevel      string
	Notes          string
	ID             int64
	HasThumbnail   bool
}

func newPlantView(p models.SavedPlant) plantView {
	v := plantView{
		ID:             p.ID,
		Name:           p.DisplayName(),
		ScientificName: p.ScientificName,
		AddedAt:        p.AddedAt.Local().Format(time.DateOnly),
		LastWatered:    "never",
		Reminder:       "off",
		Watering:       deref(p.Watering),
		Sunlight:       deref(p.Sunlight),
		Cycle:          deref(p.Cycle),
		CareLevel:      deref(p.CareLevel),
		Notes:          deref(p.Notes),
		HasThumbnail:   deref(p.ThumbnailURL) != "",
	}

	if p.IsCustom() {
		v.Kind = "custom"
	} else {
		v.Kind = "catalog #" + formatInt(p.PlantID)
	}
	if v.Name != p.CommonName {
		v.CommonName = p.CommonName
	}
	if p.LastWateredAt != nil {
		v.LastWatered = p.LastWateredAt.Local().Format(time.DateTime)
	}
	if p.HasReminder() {
		v.Reminder = models.ReminderItem{Plant: p}.FrequencyText()
	}

	return v
}

type photoView struct {
	TakenAt string
	Caption string
	ID      int64
	Size    int
}

func newPhotoViews(photos []models.Photo) []photoView {
	views := make([]photoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, photoView{
			ID:      p.ID,
			TakenAt: p.TakenAt.Local().Format(time.DateTime),
			Caption: deref(p.Caption),
			Size:    len(p.ImageData),
		})
	}
	return views
}
