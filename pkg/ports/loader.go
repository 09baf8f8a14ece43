package ports

import "github.com/aretw0/transit/pkg/domain"

// Declarer supplies the metadata attached to a target.
// Targets may implement it themselves; the dsl builder and declaration
// files implement it on their behalf.
type Declarer interface {
	Declaration() (domain.Declaration, error)
}

// Operations resolves the named operations of a target.
// It is used to bind declaration files, which only carry names, to code.
type Operations interface {
	// Handler returns the transition handler registered under a method name.
	Handler(method string) (domain.Handler, bool)

	// Getter returns the accessor registered under a getter name (e.g. "getState").
	// The value is untyped; its signature is checked when the machine is built.
	Getter(name string) (any, bool)

	// Setter returns the accessor registered under a setter name (e.g. "setState").
	Setter(name string) (func(string), bool)
}
