// Package categorizer classifies transactions by counterparty name using
// two tables it owns for the duration of a session:
//  1. the name-category map, an exact-match table persisted across runs
//  2. the keyword ruleset, an ordered category-to-keywords table seeded
//     with defaults and grown by learning from user corrections
package categorizer

import (
	"strings"
	"sync"

	"rsharma/phonepe-csv/internal/logging"
	"rsharma/phonepe-csv/internal/models"
)

// Engine owns the keyword ruleset and the name-category map and performs
// categorization and learning over them.
type Engine struct {
	rules   []models.CategoryRule // scan order: defaults first, then creation order
	ruleIdx map[string]int        // category name -> index into rules
	nameMap map[string]string     // normalized name -> category

	mu      sync.RWMutex
	isDirty bool // nameMap has unpersisted changes
	store   CategoryStoreInterface
	logger  logging.Logger
}

// NewEngine creates an Engine seeded with the default keyword table,
// extended by any category rules the store provides, and populated with
// the persisted name-category map. A store that cannot be read is a hard
// failure: continuing without the learned mappings would silently forget
// every past correction.
func NewEngine(store CategoryStoreInterface, logger logging.Logger) (*Engine, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	e := &Engine{
		rules:   models.DefaultCategoryRules(),
		ruleIdx: make(map[string]int),
		nameMap: make(map[string]string),
		store:   store,
		logger:  logger,
	}
	for i, rule := range e.rules {
		e.ruleIdx[rule.Name] = i
	}

	seeded, err := store.LoadCategories()
	if err != nil {
		return nil, err
	}
	for _, rule := range seeded {
		e.mergeRule(rule)
	}

	mappings, err := store.Load()
	if err != nil {
		return nil, err
	}
	for name, category := range mappings {
		e.nameMap[models.NormalizeName(name)] = category
	}

	e.logger.Debug("Categorization engine initialized",
		logging.Field{Key: "rules", Value: len(e.rules)},
		logging.Field{Key: "mappings", Value: len(e.nameMap)})
	return e, nil
}

// mergeRule folds a seed rule into the ruleset, creating the category if
// needed and appending any keywords not already present.
func (e *Engine) mergeRule(rule models.CategoryRule) {
	idx, ok := e.ruleIdx[rule.Name]
	if !ok {
		e.rules = append(e.rules, models.CategoryRule{Name: rule.Name})
		idx = len(e.rules) - 1
		e.ruleIdx[rule.Name] = idx
	}
	for _, keyword := range rule.Keywords {
		e.addKeyword(idx, strings.ToLower(keyword))
	}
}

// addKeyword appends a keyword to a rule unless it is already there,
// preserving first-seen order.
func (e *Engine) addKeyword(idx int, keyword string) {
	for _, existing := range e.rules[idx].Keywords {
		if existing == keyword {
			return
		}
	}
	e.rules[idx].Keywords = append(e.rules[idx].Keywords, keyword)
}

// Categorize returns the category for a counterparty name. The exact-match
// name map has highest priority; otherwise the keyword ruleset is scanned
// in its fixed order and the first rule with any keyword appearing as a
// substring of the normalized name wins. First match, not best match:
// predictability over precision. No match falls back to Other.
//
// The operation is pure and may be repeated on the same input without
// side effects.
func (e *Engine) Categorize(name string) string {
	normalized := models.NormalizeName(name)

	e.mu.RLock()
	defer e.mu.RUnlock()

	if category, ok := e.nameMap[normalized]; ok {
		return category
	}

	for _, rule := range e.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return rule.Name
			}
		}
	}
	return models.CategoryOther
}

// CategorizeAll assigns a category to every transaction in the batch,
// overwriting any previous assignment.
func (e *Engine) CategorizeAll(transactions []models.Transaction) {
	for i := range transactions {
		transactions[i].Category = e.Categorize(transactions[i].Name)
	}
}

// Learn records one user correction: the counterparty name now maps to
// newCategory, the category exists in the ruleset, and every whitespace
// token of the normalized name becomes a keyword of that category.
// Idempotent under repeated identical input. Keyword sets only grow; no
// learning step ever removes a keyword within a session.
func (e *Engine) Learn(name, newCategory string) {
	normalized := models.NormalizeName(name)

	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.ruleIdx[newCategory]
	if !ok {
		e.rules = append(e.rules, models.CategoryRule{Name: newCategory})
		idx = len(e.rules) - 1
		e.ruleIdx[newCategory] = idx
	}

	e.nameMap[normalized] = newCategory
	e.isDirty = true

	for _, token := range strings.Fields(normalized) {
		e.addKeyword(idx, token)
	}

	e.logger.Debug("Learned category mapping",
		logging.Field{Key: logging.FieldName, Value: name},
		logging.Field{Key: logging.FieldCategory, Value: newCategory})
}

// SaveMappings persists the name-category map if it has been modified.
// A persistence failure propagates to the caller: it is the only hard
// failure mode of the engine.
func (e *Engine) SaveMappings() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.isDirty {
		return nil
	}
	if err := e.store.Save(e.nameMap); err != nil {
		return err
	}
	e.isDirty = false
	return nil
}

// Rules returns a copy of the keyword ruleset in scan order.
func (e *Engine) Rules() []models.CategoryRule {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rules := make([]models.CategoryRule, len(e.rules))
	for i, rule := range e.rules {
		rules[i] = models.CategoryRule{
			Name:     rule.Name,
			Keywords: append([]string(nil), rule.Keywords...),
		}
	}
	return rules
}

// NameMap returns a copy of the name-category map.
func (e *Engine) NameMap() map[string]string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	mappings := make(map[string]string, len(e.nameMap))
	for k, v := range e.nameMap {
		mappings[k] = v
	}
	return mappings
}
