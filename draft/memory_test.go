package draft_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mbolis/quick-forms/draft"
	"github.com/mbolis/quick-forms/model"
)

func TestMemoryStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()

	d := draft.Draft{
		Answers: map[int]model.Value{
			0: model.TextValue("partial"),
			1: model.ListValue("A"),
		},
		Email: "a@b.co",
	}
	if err := store.Save(ctx, 7, d); err != nil {
		t.Fatalf("save: %s", err)
	}

	got, found, err := store.Load(ctx, 7)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}

	// drafts are keyed by form
	if _, found, _ := store.Load(ctx, 8); found {
		t.Error("draft leaked across forms")
	}

	if err := store.Clear(ctx, 7); err != nil {
		t.Fatalf("clear: %s", err)
	}
	if _, found, _ := store.Load(ctx, 7); found {
		t.Error("draft survived clear")
	}

	// clearing a missing draft is a no-op
	if err := store.Clear(ctx, 7); err != nil {
		t.Errorf("clear of missing draft: %s", err)
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(formID int) {
			defer wg.Done()
			d := draft.Draft{Email: "x@y.co"}
			if err := store.Save(ctx, formID, d); err != nil {
				t.Errorf("save %d: %s", formID, err)
			}
			if _, found, err := store.Load(ctx, formID); err != nil || !found {
				t.Errorf("load %d: found=%v err=%v", formID, found, err)
			}
		}(i)
	}
	wg.Wait()
}
