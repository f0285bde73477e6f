package hdoc

// MethodArg is one formal argument of a method as reported by the
// symbol oracle. An empty Default means the argument has none.
type MethodArg struct {
	Name    string
	Default string
}

// Oracle answers class and method metadata lookups during a render.
// All calls are synchronous; a failure or empty result is valid "no
// information" and never aborts a render. Identifiers are opaque to the
// renderer. Implementations own their liveness and caching.
type Oracle interface {
	// Superclasses returns the superclass chain of class, nearest first.
	Superclasses(class string) ([]string, error)
	// MethodArgs returns the ordered argument list of class's method.
	MethodArgs(class, method string) ([]MethodArg, error)
	// ImplementingFile returns the source file implementing class.
	ImplementingFile(class string) (string, error)
	// DocumentTitle returns the human title of a help document, or ""
	// when none is known.
	DocumentTitle(doc string) (string, error)
}

type nopOracle struct{}

func (nopOracle) Superclasses(string) ([]string, error)        { return nil, nil }
func (nopOracle) MethodArgs(string, string) ([]MethodArg, error) { return nil, nil }
func (nopOracle) ImplementingFile(string) (string, error)      { return "", nil }
func (nopOracle) DocumentTitle(string) (string, error)         { return "", nil }

// NopOracle returns an Oracle that knows nothing. Renders fall back to
// the information present in the tree itself.
func NopOracle() Oracle { return nopOracle{} }
