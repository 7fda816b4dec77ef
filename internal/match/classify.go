package match

import "strings"

// Classify decides whether an installed application is brew-managed
// and, if not, whether the catalog carries a plausible substitute.
//
// Stage 1 checks ownership against the catalog named by the app's
// origin category only. Three equality tests are tried per entry:
// lowercase exact, hyphen-stripped on both sides, and hyphen-stripped
// catalog name vs space-stripped app name. A hit marks the record
// owned and skips the equivalence search entirely.
//
// Stage 2 searches for an equivalent by hyphenated key, casks before
// formulae (GUI apps are more likely mirrored by casks). Within a
// catalog the first entry in catalog order wins; the four tests per
// entry are exact key equality, hyphen-stripped equality, and
// substring containment in either direction. Containment deliberately
// over-matches: a reviewable candidate beats a silent miss.
func Classify(app App, cat *Catalog) Record {
	rec := Record{Name: app.Name, Path: app.Path}

	if t, ok := matchOwned(app, cat); ok {
		rec.Owned = true
		rec.OwnedType = t
		return rec
	}

	key := HyphenKey(app.Name)
	for _, t := range []PackageType{Cask, Formula} {
		for _, entry := range cat.Entries(t) {
			if equivalent(key, entry) {
				rec.Equivalence = EquivalenceFound
				rec.Equivalent = entry
				return rec
			}
		}
	}

	rec.Equivalence = EquivalenceNone
	return rec
}

// matchOwned runs the stage-1 ownership tests against the origin
// category's catalog.
func matchOwned(app App, cat *Catalog) (PackageType, bool) {
	name := strings.ToLower(app.Name)
	for _, entry := range cat.Entries(app.Origin) {
		lower := strings.ToLower(entry)
		switch {
		case lower == name:
			return app.Origin, true
		case stripHyphens(lower) == stripHyphens(name):
			return app.Origin, true
		case stripHyphens(lower) == strings.ReplaceAll(name, " ", ""):
			return app.Origin, true
		}
	}
	return "", false
}

// equivalent runs the stage-2 tests for a single catalog entry against
// the app's hyphenated key.
func equivalent(key, entry string) bool {
	lower := strings.ToLower(entry)
	switch {
	case lower == key:
		return true
	case stripHyphens(lower) == stripHyphens(key):
		return true
	case strings.Contains(lower, key):
		return true
	case strings.Contains(key, lower):
		return true
	}
	return false
}
