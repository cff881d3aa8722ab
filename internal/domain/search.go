package domain

import "strings"

// Search filters a materialized collection of listings.
//
// A listing is kept iff:
//   - term is empty, OR its title or description contains term
//     case-insensitively, AND
//   - category is CategoryAll, OR the listing's category equals it exactly.
//
// The term is matched as given, whitespace included; only its case is
// folded. Input order is preserved. Cost is one linear scan, which is fine
// at the catalog sizes this store targets.
func Search(listings []*Listing, term, category string) []*Listing {
	term = strings.ToLower(term)

	matched := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		if !matchTerm(l, term) {
			continue
		}
		if category != CategoryAll && l.Category != category {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}

func matchTerm(l *Listing, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Description), term)
}
