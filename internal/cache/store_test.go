package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/crypsidex/digest-bot/pkg/models"
)

func TestNewStoreNeverNil(t *testing.T) {
	s := NewStore()

	snap := s.Load()
	if snap == nil {
		t.Fatal("expected non-nil snapshot from fresh store")
	}
	if snap.HasData() {
		t.Error("fresh store must report no data")
	}
}

func TestPublishReplacesSnapshot(t *testing.T) {
	s := NewStore()

	first := &models.Snapshot{UpdatedAt: time.Now()}
	s.Publish(first)
	if s.Load() != first {
		t.Error("expected first published snapshot")
	}

	second := &models.Snapshot{UpdatedAt: time.Now()}
	s.Publish(second)
	if s.Load() != second {
		t.Error("expected second published snapshot")
	}
}

// Readers must always observe a fully consistent generation: the item count
// encodes the generation, so a torn read would show a mismatch.
func TestStoreConcurrentReaders(t *testing.T) {
	s := NewStore()

	const generations = 200
	const readers = 8

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := s.Load()
				if snap == nil {
					t.Error("reader observed nil snapshot")
					return
				}
				for i, item := range snap.Items {
					want := snap.UpdatedAt.Format(time.RFC3339Nano) + "/" + strconv.Itoa(i)
					if item.OriginalText != want {
						t.Errorf("torn snapshot: expected %q, got %q", want, item.OriginalText)
						return
					}
				}
			}
		}()
	}

	for g := 1; g <= generations; g++ {
		ts := time.Now().Add(time.Duration(g) * time.Millisecond).UTC()
		items := make([]models.Item, g%5+1)
		for i := range items {
			items[i] = models.Item{OriginalText: ts.Format(time.RFC3339Nano) + "/" + strconv.Itoa(i)}
		}
		s.Publish(&models.Snapshot{Items: items, UpdatedAt: ts})
	}

	close(stop)
	wg.Wait()
}
