package file

import (
	"github.com/aretw0/transit/pkg/domain"
	"github.com/aretw0/transit/pkg/ports"
)

// Binding joins a declaration file with the operations of one target.
// It implements ports.Declarer.
type Binding struct {
	doc *Document
	ops ports.Operations
}

// Bind associates the declaration with the named operations of a target.
func (d *Document) Bind(ops ports.Operations) *Binding {
	return &Binding{doc: d, ops: ops}
}

// Declaration resolves every name of the file against the operations.
// Names that cannot be resolved are left unbound so that construction
// reports them as configuration errors.
func (b *Binding) Declaration() (domain.Declaration, error) {
	decl := domain.Declaration{
		Transitions: make([]domain.TransitionDecl, 0, len(b.doc.Transitions)),
		States:      make([]domain.StateDecl, 0, len(b.doc.State)),
	}

	for _, t := range b.doc.Transitions {
		td := b.doc.decl(t)
		if h, ok := b.ops.Handler(t.Method); ok {
			td.Handler = h
		}
		decl.Transitions = append(decl.Transitions, td)
	}

	for _, st := range b.doc.State {
		sd := domain.StateDecl{Field: st.Field}
		getName, setName := domain.AccessorNames(st.Field)
		if get, ok := b.ops.Getter(getName); ok {
			sd.Getter = get
		}
		if set, ok := b.ops.Setter(setName); ok {
			sd.Setter = set
		}
		decl.States = append(decl.States, sd)
	}

	return decl, nil
}
