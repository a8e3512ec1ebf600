package models

// CategoryRule maps a category name to the lowercase keyword tokens used
// for substring-based classification. Keyword order is irrelevant for
// matching but preserved so behavior stays reproducible.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the top-level structure of a category seed file.
type CategoriesConfig struct {
	Categories []CategoryRule `yaml:"categories"`
}

// CategoryOther is the fallback category assigned when neither the name
// map nor any keyword rule matches. Its keyword set is empty.
const CategoryOther = "Other"

// Default category names.
const (
	CategoryFood          = "Food"
	CategoryGroceries     = "Groceries"
	CategoryRechargeBill  = "Recharge/Bill"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryTransport     = "Transport"
	CategoryEducation     = "Education"
	CategoryHealth        = "Health"
)

// DefaultCategoryRules returns the seed keyword table. The slice order is
// the scan order of the keyword matcher, so it must stay stable. A fresh
// copy is returned on every call; the engine mutates its own copy.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Name: CategoryFood, Keywords: []string{"zomato", "swiggy", "restaurant", "pizza"}},
		{Name: CategoryGroceries, Keywords: []string{"d-mart", "big bazaar", "grocery"}},
		{Name: CategoryRechargeBill, Keywords: []string{"recharge", "electricity", "mobile", "water"}},
		{Name: CategoryShopping, Keywords: []string{"amazon", "flipkart", "myntra"}},
		{Name: CategoryEntertainment, Keywords: []string{"netflix", "hotstar", "spotify"}},
		{Name: CategoryTransport, Keywords: []string{"uber", "ola", "fuel", "metro"}},
		{Name: CategoryEducation, Keywords: []string{"institute", "college", "fees"}},
		{Name: CategoryHealth, Keywords: []string{"pharmacy", "hospital", "clinic"}},
		{Name: CategoryOther, Keywords: []string{}},
	}
}
