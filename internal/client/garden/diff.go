package garden

import (
	"reflect"
	"time"

	"github.com/iudanet/plantkeeper/internal/models"
)

// Diff описывает разницу между двумя снимками сада по ID растений
type Diff struct {
	Added   []int64
	Updated []int64
	Removed []int64
}

// Empty сообщает, что снимки совпадают
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Updated) == 0 && len(d.Removed) == 0
}

// Change передается подписчикам после каждого изменения снимка
type Change struct {
	// Plants новый список (копия)
	Plants []models.SavedPlant
	Diff   Diff
}

// ComputeDiff сравнивает снимки. Порядок ID следует порядку в next (Added, Updated)
// и в prev (Removed).
func ComputeDiff(prev, next []models.SavedPlant) Diff {
	var d Diff

	old := make(map[int64]models.SavedPlant, len(prev))
	for _, p := range prev {
		old[p.ID] = p
	}

	seen := make(map[int64]struct{}, len(next))
	for _, p := range next {
		seen[p.ID] = struct{}{}
		was, ok := old[p.ID]
		switch {
		case !ok:
			d.Added = append(d.Added, p.ID)
		case !samePlant(was, p):
			d.Updated = append(d.Updated, p.ID)
		}
	}

	for _, p := range prev {
		if _, ok := seen[p.ID]; !ok {
			d.Removed = append(d.Removed, p.ID)
		}
	}

	return d
}

// samePlant сравнивает растения; моменты времени сравниваются по значению, а не по зоне
func samePlant(a, b models.SavedPlant) bool {
	if !a.AddedAt.Equal(b.AddedAt) || !sameTime(a.LastWateredAt, b.LastWateredAt) {
		return false
	}
	a.AddedAt = b.AddedAt
	a.LastWateredAt, b.LastWateredAt = nil, nil
	return reflect.DeepEqual(a, b)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
