package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"slices"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCollection(t *testing.T, db *sqlite.DB, name string) *docindex.Collection {
	t.Helper()
	svc := sqlite.NewCollectionService(db)
	c := &docindex.Collection{Name: name, Source: name + "/search_index.js"}
	require.NoError(t, svc.CreateCollection(context.Background(), c))
	return c
}

func TestEntryService_CreateEntries(t *testing.T) {
	t.Parallel()

	t.Run("stores entries in order and updates count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		c := createTestCollection(t, db, "gridkit")
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		entries := []*docindex.Entry{
			{Location: "#b", Page: "Home", Title: "B", Text: "second letter", Category: docindex.CategorySection},
			{Location: "#a", Page: "Home", Title: "A", Text: "", Category: docindex.CategoryPage},
			{Location: "#c", Page: "API", Title: "C", Text: "f(x)", Category: docindex.CategoryFunction},
		}
		require.NoError(t, svc.CreateEntries(ctx, c.ID, entries))

		found, err := svc.FindEntries(ctx, docindex.EntryFilter{CollectionID: &c.ID})
		require.NoError(t, err)
		assert.Equal(t, entries, found)

		updated, err := sqlite.NewCollectionService(db).FindCollectionByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.EntryCount)
	})

	t.Run("appends after existing entries", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		c := createTestCollection(t, db, "gridkit")
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateEntries(ctx, c.ID, []*docindex.Entry{
			{Location: "#1", Title: "First", Category: docindex.CategorySection},
		}))
		require.NoError(t, svc.CreateEntries(ctx, c.ID, []*docindex.Entry{
			{Location: "#2", Title: "Second", Category: docindex.CategorySection},
		}))

		found, err := svc.FindEntries(ctx, docindex.EntryFilter{CollectionID: &c.ID})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "First", found[0].Title)
		assert.Equal(t, "Second", found[1].Title)
	})

	t.Run("returns ENOTFOUND for unknown collection", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		err := svc.CreateEntries(context.Background(), "nonexistent-id", []*docindex.Entry{
			{Location: "#a", Title: "A", Category: docindex.CategorySection},
		})
		require.Error(t, err)
		assert.Equal(t, docindex.ENOTFOUND, docindex.ErrorCode(err))
	})

	t.Run("rejects invalid entries without writing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		c := createTestCollection(t, db, "gridkit")
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		err := svc.CreateEntries(ctx, c.ID, []*docindex.Entry{
			{Location: "#a", Title: "A", Category: docindex.CategorySection},
			{Location: "#b", Category: docindex.CategorySection},
		})
		require.Error(t, err)
		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
		assert.Contains(t, docindex.ErrorMessage(err), "entry 1")

		found, err := svc.FindEntries(ctx, docindex.EntryFilter{CollectionID: &c.ID})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (*sqlite.EntryService, *docindex.Collection, *docindex.Collection) {
		t.Helper()
		db := setupTestDB(t)
		c1 := createTestCollection(t, db, "one")
		c2 := createTestCollection(t, db, "two")
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		var entries []*docindex.Entry
		for i := 0; i < 5; i++ {
			category := docindex.CategorySection
			if i%2 == 1 {
				category = docindex.CategoryPage
			}
			entries = append(entries, &docindex.Entry{
				Location: "#",
				Page:     "Home",
				Title:    fmt.Sprintf("Entry %d", i),
				Category: category,
			})
		}
		entries[4].Location = "#last"
		require.NoError(t, svc.CreateEntries(ctx, c1.ID, entries))
		require.NoError(t, svc.CreateEntries(ctx, c2.ID, []*docindex.Entry{
			{Location: "#other", Title: "Other", Category: docindex.CategoryType},
		}))
		return svc, c1, c2
	}

	t.Run("filters by collection", func(t *testing.T) {
		t.Parallel()

		svc, _, c2 := seed(t)

		found, err := svc.FindEntries(context.Background(), docindex.EntryFilter{CollectionID: &c2.ID})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Other", found[0].Title)
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		svc, c1, _ := seed(t)
		category := docindex.CategoryPage

		found, err := svc.FindEntries(context.Background(), docindex.EntryFilter{CollectionID: &c1.ID, Category: &category})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Entry 1", found[0].Title)
		assert.Equal(t, "Entry 3", found[1].Title)
	})

	t.Run("filters by location", func(t *testing.T) {
		t.Parallel()

		svc, c1, _ := seed(t)
		location := "#last"

		found, err := svc.FindEntries(context.Background(), docindex.EntryFilter{CollectionID: &c1.ID, Location: &location})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Entry 4", found[0].Title)
	})

	t.Run("paginates in insertion order", func(t *testing.T) {
		t.Parallel()

		svc, c1, _ := seed(t)

		found, err := svc.FindEntries(context.Background(), docindex.EntryFilter{CollectionID: &c1.ID, Offset: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Entry 1", found[0].Title)
		assert.Equal(t, "Entry 2", found[1].Title)
	})
}

func TestEntryService_RoundTripsGeneratedIndex(t *testing.T) {
	t.Parallel()

	payload, err := os.ReadFile("../testdata/search_index.js")
	require.NoError(t, err)
	parsed, err := docindex.ParseEntries(payload)
	require.NoError(t, err)

	db := setupTestDB(t)
	c := createTestCollection(t, db, "gridkit")
	svc := sqlite.NewEntryService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateEntries(ctx, c.ID, parsed))
	stored, err := svc.FindEntries(ctx, docindex.EntryFilter{CollectionID: &c.ID})
	require.NoError(t, err)

	loaded, err := docindex.Load(payload)
	require.NoError(t, err)
	assert.Equal(t, slices.Collect(loaded.All()), slices.Collect(docindex.NewIndex(stored).All()))
}
