package categorizer

import (
	"rsharma/phonepe-csv/internal/models"
)

// CategoryStoreInterface defines the persistence contract the engine
// needs. Implemented by store.CategoryStore and store.MockCategoryStore.
type CategoryStoreInterface interface {
	Load() (map[string]string, error)
	Save(mappings map[string]string) error
	LoadCategories() ([]models.CategoryRule, error)
}
