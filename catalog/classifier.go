package catalog

import (
	"regexp"

	"github.com/raushankrgupta/eco-packaging/models"
)

// Rule assigns Category to any product name its Pattern matches
type Rule struct {
	Category models.Category
	Pattern  *regexp.Regexp
}

// Matches checks if the rule applies to the given product name
func (r Rule) Matches(name string) bool {
	return r.Pattern.MatchString(name)
}

// Evaluated in order. A name can match several rules ("Hair Oil" hits food before
// cosmetics); the first one wins.
var rules = []Rule{
	{
		Category: models.CategoryElectronics,
		Pattern:  regexp.MustCompile(`(?i)(Smartphone|Laptop|Tablet|Camera|Gaming|Power|Router|Keyboard|Mouse|Monitor|Printer|Drive|Headphones|Speaker|Smartwatch)`),
	},
	{
		Category: models.CategoryFood,
		Pattern:  regexp.MustCompile(`(?i)(Coffee|Tea|Chocolate|Granola|Fruits|Nuts|Pasta|Cookies|Chips|Bars|Spices|Honey|Jam|Oil|Powder)`),
	},
	{
		Category: models.CategoryCosmetics,
		Pattern:  regexp.MustCompile(`(?i)(Cream|Shampoo|Perfume|Lipstick|Foundation|Mask|Serum|Lotion|Sunscreen|Oil|Wash|Shadow|Mascara|Polish)`),
	},
	{
		Category: models.CategoryClothing,
		Pattern:  regexp.MustCompile(`(?i)(shirt|Jeans|Dress|Sweater|Jacket|Socks|Underwear|Scarf|Gloves|Hat|Shoes|Belt|Bag|Swimwear|Activewear)`),
	},
}

// DefaultCategory is assigned when no rule matches
const DefaultCategory = models.CategoryToys

// Classify returns the category of the first rule matching name
func Classify(name string) models.Category {
	for _, r := range rules {
		if r.Matches(name) {
			return r.Category
		}
	}
	return DefaultCategory
}
