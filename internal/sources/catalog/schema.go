package catalog

// SeedFile represents the top-level structure of the seed catalog YAML.
type SeedFile struct {
	Listings []SeedListing `yaml:"listings"`
}

// SeedListing contains the seller-supplied fields of one starter listing.
// Ids and timestamps are assigned by the store on insert, never by the file.
type SeedListing struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Category    string  `yaml:"category,omitempty"`
	Image       string  `yaml:"image,omitempty"`
}
