package store

import (
	"rsharma/phonepe-csv/internal/models"
)

// MockCategoryStore is an in-memory store implementation for tests.
type MockCategoryStore struct {
	Mappings   map[string]string
	Categories []models.CategoryRule

	// Error flags for testing error conditions
	LoadError           error
	SaveError           error
	LoadCategoriesError error

	SaveCalls int
}

// Load returns a copy of the mock mappings.
func (m *MockCategoryStore) Load() (map[string]string, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	result := make(map[string]string, len(m.Mappings))
	for k, v := range m.Mappings {
		result[k] = v
	}
	return result, nil
}

// Save upserts entries into the mock mappings.
func (m *MockCategoryStore) Save(mappings map[string]string) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	if m.Mappings == nil {
		m.Mappings = make(map[string]string)
	}
	for k, v := range mappings {
		m.Mappings[k] = v
	}
	return nil
}

// LoadCategories returns the mock category rules.
func (m *MockCategoryStore) LoadCategories() ([]models.CategoryRule, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}
