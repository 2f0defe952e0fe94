package catalog

import (
	"strings"

	"github.com/raushankrgupta/eco-packaging/models"
)

// Catalog is the read-only product table, keyed by lowercase display name.
// It has no mutating methods once built.
type Catalog struct {
	products map[string]models.Product
	names    []string
}

// Build generates a fresh catalog with a clock-seeded generator
func Build() *Catalog {
	return NewGenerator().Generate()
}

func (c *Catalog) add(p models.Product) {
	key := Key(p.Name)
	if _, exists := c.products[key]; exists {
		return
	}
	c.products[key] = p
	c.names = append(c.names, p.Name)
}

// Key normalizes a query or display name into a table key
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup finds a product by case-insensitive exact name
func (c *Catalog) Lookup(name string) (models.Product, bool) {
	p, ok := c.products[Key(name)]
	if !ok {
		return models.Product{}, false
	}
	return p.Clone(), true
}

// Names returns the display names in seed order, for autocomplete
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns every record in seed order
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.products[Key(name)].Clone())
	}
	return out
}
