package match

// PackageType identifies which side of the Homebrew catalog a name
// belongs to: "formula" for CLI-oriented packages, "cask" for GUI
// applications.
type PackageType string

const (
	Formula PackageType = "formula"
	Cask    PackageType = "cask"
)

// Equivalence is the three-valued outcome of the equivalence search.
// NotEvaluated distinguishes "never searched" (e.g. the app is already
// brew-managed) from "searched and nothing found".
type Equivalence int

const (
	EquivalenceNotEvaluated Equivalence = iota
	EquivalenceNone
	EquivalenceFound
)

// App is a raw installed application as handed over by discovery:
// display name (extension already stripped, case preserved), filesystem
// path, and the origin category hint. Origin only decides which catalog
// the ownership check runs against; it is never taken as proof.
type App struct {
	Name   string
	Path   string
	Origin PackageType
}

// Record is a classified application. OwnedType is set iff Owned;
// Equivalent is set iff Equivalence == EquivalenceFound. An owned
// record never carries an equivalent: ownership short-circuits the
// search and leaves Equivalence at NotEvaluated.
type Record struct {
	Name        string
	Path        string
	Owned       bool
	OwnedType   PackageType
	Equivalence Equivalence
	Equivalent  string
}
