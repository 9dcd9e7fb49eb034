package engine

import (
	"os"
	"testing"
)

func TestCacheLoadsOnce(t *testing.T) {
	path := writeTempCSV(t, `ID,Year,Primary Type,Latitude,Longitude
1,2019,THEFT,41.8,-87.6
`)

	loads := 0
	cache := NewCache(path, func(p string) (*Store, error) {
		loads++
		return Load(p)
	})

	first, err := cache.GetOrLoad()
	if err != nil {
		t.Fatal(err)
	}
	second, err := cache.GetOrLoad()
	if err != nil {
		t.Fatal(err)
	}

	if loads != 1 {
		t.Errorf("expected a single load, got %d", loads)
	}
	if first != second {
		t.Error("unchanged file must return the cached store")
	}
}

func TestCacheReloadsOnContentChange(t *testing.T) {
	path := writeTempCSV(t, `ID,Year,Primary Type,Latitude,Longitude
1,2019,THEFT,41.8,-87.6
`)

	cache := NewCache(path, nil)
	first, err := cache.GetOrLoad()
	if err != nil {
		t.Fatal(err)
	}
	if first.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", first.NumRows())
	}

	appended := `ID,Year,Primary Type,Latitude,Longitude
1,2019,THEFT,41.8,-87.6
2,2020,BATTERY,41.9,-87.7
`
	if err := os.WriteFile(path, []byte(appended), 0o644); err != nil {
		t.Fatal(err)
	}

	second, err := cache.GetOrLoad()
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Error("changed file must invalidate the cache")
	}
	if second.NumRows() != 2 {
		t.Errorf("expected 2 rows after reload, got %d", second.NumRows())
	}
}
