package match

// Catalog holds the two read-only Homebrew name lists for the duration
// of a scan. Construction dedupes while preserving first-seen order, so
// "first match" in the equivalence search is deterministic: it means
// first in the order the catalog source produced. An empty cask list is
// a valid catalog (casks are unavailable on Linux).
type Catalog struct {
	formulae []string
	casks    []string
}

// NewCatalog builds a catalog from the raw formula and cask name lists.
// Duplicates after the first occurrence are dropped; order is kept.
func NewCatalog(formulae, casks []string) *Catalog {
	return &Catalog{
		formulae: dedupe(formulae),
		casks:    dedupe(casks),
	}
}

// Formulae returns the formula names in catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Formulae() []string {
	return c.formulae
}

// Casks returns the cask names in catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Casks() []string {
	return c.casks
}

// Entries returns the names for the given package type.
func (c *Catalog) Entries(t PackageType) []string {
	if t == Cask {
		return c.casks
	}
	return c.formulae
}

// FormulaCount returns the number of distinct formulae.
func (c *Catalog) FormulaCount() int {
	return len(c.formulae)
}

// CaskCount returns the number of distinct casks.
func (c *Catalog) CaskCount() int {
	return len(c.casks)
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
