package classify

// Reason explains a classification decision.
type Reason int

const (
	Admitted Reason = iota
	Essential
	EnvRoot
	ExcludedPath
	ExcludedDir
	ExcludedName
	ExcludedPattern
	Library
	GeneratedJSON
	TooLarge
	TooLong
	DisallowedType
)

var reasonNames = map[Reason]string{
	Admitted:        "admitted",
	Essential:       "essential",
	EnvRoot:         "venv/node_modules",
	ExcludedPath:    "excluded path",
	ExcludedDir:     "excluded dir",
	ExcludedName:    "excluded file",
	ExcludedPattern: "excluded pattern",
	Library:         "library file",
	GeneratedJSON:   "generated json",
	TooLarge:        "too large",
	TooLong:         "too long",
	DisallowedType:  "disallowed type",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// Decision is the outcome of classifying one path.
type Decision struct {
	Excluded bool
	Reason   Reason
	Detail   string // Matched pattern, size or line count, when useful for logs.
}

func admit(reason Reason) Decision {
	return Decision{Reason: reason}
}

func exclude(reason Reason, detail string) Decision {
	return Decision{Excluded: true, Reason: reason, Detail: detail}
}
