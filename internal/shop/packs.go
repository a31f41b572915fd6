package shop

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// newPackType builds the shop entry for a pack key such as "charizard".
func newPackType(key string, price int) domain.PackType {
	title := titleCaser.String(key)
	return domain.PackType{
		Key:         key,
		Name:        PackNamePrefix + title,
		DisplayName: title + PackDisplaySuffix,
		Image:       fmt.Sprintf(PackImagePattern, key),
		Price:       price,
	}
}

// DefaultPackTypes returns the cosmetic pack variants. Variants share one
// card pool and odds; only name and artwork differ.
func DefaultPackTypes(price int) []domain.PackType {
	keys := []string{domain.PackTypeCharizard, domain.PackTypeBlastoise, domain.PackTypeBulbasaur}
	out := make([]domain.PackType, 0, len(keys))
	for _, k := range keys {
		out = append(out, newPackType(k, price))
	}
	return out
}

// findPackType matches by key, name or display name, ignoring case.
func findPackType(types []domain.PackType, query string) (domain.PackType, bool) {
	query = strings.TrimSpace(query)
	for _, t := range types {
		if strings.EqualFold(t.Key, query) || strings.EqualFold(t.Name, query) || strings.EqualFold(t.DisplayName, query) {
			return t, true
		}
	}
	return domain.PackType{}, false
}
