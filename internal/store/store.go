// Package store persists the learned name-category map and loads optional
// category seed rules. The durable layout is a YAML map from normalized
// counterparty name to category name, one file, no schema versioning.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"rsharma/phonepe-csv/internal/logging"
	"rsharma/phonepe-csv/internal/models"
	"rsharma/phonepe-csv/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// CategoryStore manages loading and saving of categorization data.
type CategoryStore struct {
	MappingsFile   string
	CategoriesFile string

	logger logging.Logger
}

// NewCategoryStore creates a store backed by the given files. Empty paths
// fall back to the default filenames resolved against standard locations.
func NewCategoryStore(mappingsFile, categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		MappingsFile:   mappingsFile,
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "phonepe-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads the name-category map from durable storage. A missing file is
// a normal first run and yields an empty map, not an error.
func (s *CategoryStore) Load() (map[string]string, error) {
	filename := s.MappingsFile
	if filename == "" {
		filename = "mappings.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Name-category mappings file not found, starting empty",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return map[string]string{}, nil
		}
		return nil, &parsererror.StoreError{Op: "load", Path: filename, Err: err}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &parsererror.StoreError{Op: "load", Path: filePath, Err: err}
	}

	mappings := map[string]string{}
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, &parsererror.StoreError{Op: "load", Path: filePath,
			Err: fmt.Errorf("error parsing mappings: %w", err)}
	}
	if mappings == nil {
		mappings = map[string]string{}
	}

	s.logger.Debug("Loaded name-category mappings",
		logging.Field{Key: logging.FieldCount, Value: len(mappings)},
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return mappings, nil
}

// Save upserts every entry of the given map into durable storage. Entries
// already on disk but absent from the argument are left untouched; there
// is no deletion path. The write is synchronous: Save does not return
// before the data is flushed, so a correction survives a crash that
// immediately follows a user edit.
func (s *CategoryStore) Save(mappings map[string]string) error {
	filename := s.MappingsFile
	if filename == "" {
		filename = "mappings.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil && err != os.ErrNotExist {
		return &parsererror.StoreError{Op: "save", Path: filename, Err: err}
	}
	if err == os.ErrNotExist {
		if filepath.IsAbs(filename) {
			filePath = filename
		} else {
			filePath = filepath.Join("database", filename)
		}
	}

	// Merge with whatever is already on disk so that Save never deletes
	// entries written by an earlier session.
	merged := map[string]string{}
	if data, err := os.ReadFile(filePath); err == nil {
		if err := yaml.Unmarshal(data, &merged); err != nil {
			return &parsererror.StoreError{Op: "save", Path: filePath,
				Err: fmt.Errorf("error parsing existing mappings: %w", err)}
		}
		if merged == nil {
			merged = map[string]string{}
		}
	}
	for name, category := range mappings {
		merged[name] = category
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return &parsererror.StoreError{Op: "save", Path: filePath,
			Err: fmt.Errorf("error creating directory: %w", err)}
	}

	data, err := yaml.Marshal(merged)
	if err != nil {
		return &parsererror.StoreError{Op: "save", Path: filePath,
			Err: fmt.Errorf("error marshaling mappings: %w", err)}
	}

	if err := s.writeSync(filePath, data); err != nil {
		return &parsererror.StoreError{Op: "save", Path: filePath, Err: err}
	}

	s.logger.Debug("Saved name-category mappings",
		logging.Field{Key: logging.FieldCount, Value: len(merged)},
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return nil
}

// writeSync writes data and fsyncs before returning. The file handle is
// scoped to this call and released on every exit path.
func (s *CategoryStore) writeSync(filePath string, data []byte) error {
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("error opening mappings file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close mappings file",
				logging.Field{Key: logging.FieldFile, Value: filePath})
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("error writing mappings: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("error syncing mappings: %w", err)
	}
	return nil
}

// LoadCategories loads category seed rules from the optional categories
// file. A missing file is not an error; callers fall back to the built-in
// defaults.
func (s *CategoryStore) LoadCategories() ([]models.CategoryRule, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.CategoryRule{}, nil
		}
		return nil, &parsererror.StoreError{Op: "load", Path: filename, Err: err}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &parsererror.StoreError{Op: "load", Path: filePath, Err: err}
	}

	// Preferred layout: top-level "categories:" key.
	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err == nil && len(config.Categories) > 0 {
		s.logger.Debug("Loaded category rules",
			logging.Field{Key: logging.FieldCount, Value: len(config.Categories)},
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return config.Categories, nil
	}

	// Fallback: bare list of rules.
	var rules []models.CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, &parsererror.StoreError{Op: "load", Path: filePath,
			Err: fmt.Errorf("error parsing categories: %w", err)}
	}
	return rules, nil
}
