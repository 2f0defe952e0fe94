package catalog

// SeedNames is the built-in product list the catalog is generated from
var SeedNames = []string{
	// Electronics
	"Smartphone", "Laptop", "Tablet", "Smartwatch", "Headphones", "Speaker", "Camera", "Gaming Console",
	"Power Bank", "Router", "Keyboard", "Mouse", "Monitor", "Printer", "External Hard Drive",
	// Food
	"Organic Coffee", "Premium Tea", "Chocolate Bar", "Granola", "Dried Fruits", "Nuts", "Pasta",
	"Cookies", "Chips", "Energy Bars", "Spices", "Honey", "Jam", "Olive Oil", "Protein Powder",
	// Cosmetics
	"Face Cream", "Shampoo", "Perfume", "Lipstick", "Foundation", "Face Mask", "Serum",
	"Body Lotion", "Sunscreen", "Hair Oil", "Face Wash", "Hand Cream", "Eye Shadow", "Mascara", "Nail Polish",
	// Clothing
	"T-shirt", "Jeans", "Dress", "Sweater", "Jacket", "Socks", "Underwear", "Scarf",
	"Gloves", "Hat", "Shoes", "Belt", "Bag", "Swimwear", "Activewear",
	// Toys
	"Action Figure", "Board Game", "Puzzle", "Stuffed Animal", "Building Blocks", "Art Set",
	"Remote Control Car", "Educational Toy", "Doll", "Card Game",
}
