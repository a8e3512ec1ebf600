package store

import (
	"os"
	"path/filepath"
	"testing"

	"rsharma/phonepe-csv/internal/models"
	"rsharma/phonepe-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsFirstRun(t *testing.T) {
	s := NewCategoryStore(filepath.Join(t.TempDir(), "mappings.yaml"), "", nil)

	mappings, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, mappings)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	s := NewCategoryStore(path, "", nil)

	require.NoError(t, s.Save(map[string]string{
		"john doe":      "Rent",
		"zomato online": "Food",
	}))

	mappings, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"john doe":      "Rent",
		"zomato online": "Food",
	}, mappings)
}

func TestSave_MergesWithExistingEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	s := NewCategoryStore(path, "", nil)

	require.NoError(t, s.Save(map[string]string{"john doe": "Rent"}))

	// A second save with a disjoint map must not delete the first entry,
	// and an overlapping key is upserted.
	require.NoError(t, s.Save(map[string]string{
		"jane doe": "Gifts",
		"john doe": "Salary",
	}))

	mappings, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"john doe": "Salary",
		"jane doe": "Gifts",
	}, mappings)
}

func TestSave_EmptyMapLeavesDiskUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	s := NewCategoryStore(path, "", nil)

	require.NoError(t, s.Save(map[string]string{"john doe": "Rent"}))
	require.NoError(t, s.Save(map[string]string{}))

	mappings, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"john doe": "Rent"}, mappings)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "mappings.yaml")
	s := NewCategoryStore(path, "", nil)

	require.NoError(t, s.Save(map[string]string{"john doe": "Rent"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a\n- map\n"), 0600))

	s := NewCategoryStore(path, "", nil)
	_, err := s.Load()
	require.Error(t, err)

	var storeErr *parsererror.StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "load", storeErr.Op)
}

func TestLoad_EmptyFileYieldsEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0600))

	s := NewCategoryStore(path, "", nil)
	mappings, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, mappings)
	assert.Empty(t, mappings)
}

func TestLoadCategories_MissingFileYieldsNoRules(t *testing.T) {
	s := NewCategoryStore("", filepath.Join(t.TempDir(), "categories.yaml"), nil)

	rules, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadCategories_TopLevelKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := `categories:
  - name: Rent
    keywords:
      - landlord
      - lease
  - name: Food
    keywords:
      - dominos
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s := NewCategoryStore("", path, nil)
	rules, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryRule{
		{Name: "Rent", Keywords: []string{"landlord", "lease"}},
		{Name: "Food", Keywords: []string{"dominos"}},
	}, rules)
}

func TestLoadCategories_BareList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := `- name: Rent
  keywords:
    - landlord
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s := NewCategoryStore("", path, nil)
	rules, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryRule{
		{Name: "Rent", Keywords: []string{"landlord"}},
	}, rules)
}
