package registry

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/justcarpets/mcc-reporting-api/internal/domain"
)

// countryAccounts binds each storefront region to the Google Ads customer
// ID that reports on it. The set is fixed at build time; adding a region
// is a code change, which is intentional.
var countryAccounts = map[string]string{
	"NL":          "5756290882",
	"BE":          "5735473691",
	"DE":          "1946606314",
	"DK":          "8921136631",
	"ES":          "4748902087",
	"FI":          "8470338623",
	"FR (Ravann)": "2846016798",
	"FR (Tapis)":  "7539242704",
	"IT":          "8472162607",
	"NO":          "3581636329",
	"PL":          "8467590750",
	"SE":          "8463558543",
	"EU":          "6542318847",
	"UK":          "8163355443",
}

var customerIDPattern = regexp.MustCompile(`^\d+$`)

var ErrUnknownRegion = fmt.Errorf("unknown region")

// Registry is the immutable set of selectable regional accounts.
type Registry struct {
	entries []domain.RegistryEntry
	byLabel map[string]domain.RegistryEntry
}

// New builds the registry from the static mapping. It fails when an entry
// violates the registry invariants (non-empty label, numeric customer ID)
// so a bad edit is caught at startup, not at query time.
func New() (*Registry, error) {
	return newFromMap(countryAccounts)
}

func newFromMap(accounts map[string]string) (*Registry, error) {
	r := &Registry{
		entries: make([]domain.RegistryEntry, 0, len(accounts)),
		byLabel: make(map[string]domain.RegistryEntry, len(accounts)),
	}

	for label, id := range accounts {
		if label == "" {
			return nil, fmt.Errorf("registry entry with empty label (account %q)", id)
		}

		if !customerIDPattern.MatchString(id) {
			return nil, fmt.Errorf("registry entry %q has non-numeric account ID %q", label, id)
		}

		entry := domain.RegistryEntry{Label: label, AccountID: id}
		r.entries = append(r.entries, entry)
		r.byLabel[label] = entry
	}

	// Map iteration order is random; the selection control needs a stable
	// order.
	sort.Slice(r.entries, func(i, j int) bool {
		return r.entries[i].Label < r.entries[j].Label
	})

	return r, nil
}

// Entries returns the selectable accounts in label order.
func (r *Registry) Entries() []domain.RegistryEntry {
	entries := make([]domain.RegistryEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Lookup resolves a region label to its registry entry.
func (r *Registry) Lookup(label string) (domain.RegistryEntry, error) {
	entry, ok := r.byLabel[label]
	if !ok {
		return domain.RegistryEntry{}, fmt.Errorf("%w: %q", ErrUnknownRegion, label)
	}

	return entry, nil
}
