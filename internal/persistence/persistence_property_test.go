package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/Chandra-Moulii/project-planner/internal/database"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

func genBoard(t *rapid.T, label string) models.Board {
	at := time.Unix(rapid.Int64Range(0, 2_000_000_000).Draw(t, label+"_at"), 0).UTC()
	b := models.Board{
		ID:          rapid.StringMatching(`[a-f0-9]{8}`).Draw(t, label+"_id"),
		Name:        rapid.StringN(4, 50, -1).Draw(t, label+"_name"),
		Description: rapid.String().Draw(t, label+"_desc"),
		CreatedAt:   at,
		EditedAt:    at,
	}

	names := append([]string{}, models.ReservedColumns...)
	extra := rapid.IntRange(0, 3).Draw(t, label+"_extra")
	for i := range extra {
		names = append(names, fmt.Sprintf("extra%d", i))
	}
	for ci, name := range names {
		col := models.Column{
			ID:        fmt.Sprintf("%s-c%d", b.ID, ci),
			Name:      name,
			Color:     rapid.SampledFrom(models.DefaultPalette).Draw(t, label+"_color"),
			Collapsed: rapid.Bool().Draw(t, label+"_collapsed"),
			Tasks:     []models.Task{},
		}
		n := rapid.IntRange(0, 4).Draw(t, label+"_tasks")
		for ti := range n {
			col.Tasks = append(col.Tasks, models.Task{
				ID:          fmt.Sprintf("%s-t%d-%d", b.ID, ci, ti),
				Name:        rapid.StringN(4, 50, -1).Draw(t, label+"_task_name"),
				Description: rapid.String().Draw(t, label+"_task_desc"),
				State:       name,
				CreatedAt:   at,
				EditedAt:    at,
			})
		}
		b.TotalTasks += n
		b.Columns = append(b.Columns, col)
	}
	return b
}

// Persisting, loading and persisting again writes identical bytes.
func TestProperty_PersistRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		n := rapid.IntRange(0, 3).Draw(t, "boards")
		snap := models.Snapshot{Boards: []models.Board{}, Preferences: models.DefaultPreferences()}
		for i := range n {
			snap.Boards = append(snap.Boards, genBoard(t, fmt.Sprintf("b%d", i)))
		}

		kv := database.NewMemoryStore()
		a := New(kv, nil)
		if err := a.Persist(ctx, snap); err != nil {
			t.Fatalf("persist: %v", err)
		}
		first, _, _ := kv.Get(ctx, string(KeyBoards))

		loaded, err := a.Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if err := a.Persist(ctx, loaded); err != nil {
			t.Fatalf("re-persist: %v", err)
		}
		second, _, _ := kv.Get(ctx, string(KeyBoards))

		if first != second {
			t.Fatalf("round trip changed stored boards:\n%s\n%s", first, second)
		}
	})
}
