package domain

// DefaultExemptions are test runners that are usually invoked from the command
// line rather than imported, so they are never reported as obsolete.
var DefaultExemptions = []string{"mocha", "jasmine", "jest", "karma"}

// Policy tunes the classification.
type Policy struct {
	// Exempt names are never reported as obsolete.
	Exempt NameSet
}

// Classification is the outcome of comparing declared against used dependencies.
type Classification struct {
	// Obsolete are declared dependencies that are never imported.
	Obsolete NameSet
	// MisplacedDeps are runtime dependencies only imported outside the main closure.
	MisplacedDeps NameSet
	// MisplacedDevDeps are dev dependencies imported from the main closure.
	MisplacedDevDeps NameSet

	// MainDeps are the declared dependencies imported from the main closure.
	MainDeps NameSet
	// AllDeps are the declared dependencies imported anywhere.
	AllDeps NameSet
	// DevDeps are the declared dependencies imported only outside the main closure.
	DevDeps NameSet
}

// Classify compares the declared dependency sets with the names imported from the
// main closure (mainDeps) and from the whole project (allDeps).
// Imported names that are not declared at all are ignored.
func Classify(declaredDeps, declaredDevDeps, mainDeps, allDeps NameSet, policy Policy) Classification {
	declared := declaredDeps.Union(declaredDevDeps)

	devDeps := allDeps.Difference(mainDeps)

	used := allDeps.Intersect(declared)
	mainUsed := mainDeps.Intersect(used)
	devUsed := devDeps.Intersect(used)

	return Classification{
		Obsolete:         declared.Difference(used).Difference(policy.Exempt),
		MisplacedDeps:    declaredDeps.Intersect(used).Difference(mainUsed),
		MisplacedDevDeps: declaredDevDeps.Intersect(used).Difference(devUsed),
		MainDeps:         mainUsed,
		AllDeps:          used,
		DevDeps:          devUsed,
	}
}
