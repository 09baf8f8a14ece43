package runtime

import (
	"fmt"
	"reflect"

	"github.com/aretw0/transit/pkg/domain"
)

// ResolveTransitions builds the transition table of a declaration.
// Keys are normalized; when two declarations normalize to the same name the
// later one replaces the earlier one without notice.
func ResolveTransitions(decl domain.Declaration) (domain.Table, error) {
	if len(decl.Transitions) == 0 {
		return nil, domain.NewConfigurationError(domain.ErrNoTransitions, "", "failed to find transitions in declaration")
	}

	table := make(domain.Table, len(decl.Transitions))
	for i, t := range decl.Transitions {
		name := t.StateName()
		if name == "" {
			return nil, domain.NewConfigurationError(domain.ErrHandlerNotFound, fmt.Sprintf("transitions[%d]", i),
				"transition declared without a method or state name")
		}
		if t.Handler == nil {
			return nil, domain.NewConfigurationError(domain.ErrHandlerNotFound, t.Method,
				fmt.Sprintf("transition handler for state %q is not bound", name))
		}
		table[name] = t.Handler
	}
	return table, nil
}

// ResolveStateAccessor builds the accessor over the declared state field.
// Only the first declared field is considered.
func ResolveStateAccessor(decl domain.Declaration) (domain.Accessor, error) {
	if len(decl.States) == 0 {
		return domain.Accessor{}, domain.NewConfigurationError(domain.ErrStateNotFound, "", "field declared as state not found")
	}

	field := decl.States[0]
	getName, setName := domain.AccessorNames(field.Field)
	names := getName + "/" + setName

	if field.Getter == nil || field.Setter == nil {
		return domain.Accessor{}, domain.NewConfigurationError(domain.ErrAccessorNotFound, names,
			"failed to find getter/setter for the state")
	}

	get, ok := stringGetter(field.Getter)
	if !ok {
		return domain.Accessor{}, domain.NewConfigurationError(domain.ErrAccessorType, getName,
			fmt.Sprintf("getter method for the state must return String, got %T", field.Getter))
	}
	if get == nil {
		return domain.Accessor{}, domain.NewConfigurationError(domain.ErrAccessorNotFound, names,
			"failed to find getter/setter for the state")
	}

	return domain.Accessor{Get: get, Set: field.Setter}, nil
}

var stringGetterType = reflect.TypeOf((func() string)(nil))

// stringGetter adapts any func taking no arguments and returning one
// string-kinded value, including named func and string types. A typed nil
// func is reported as valid with a nil result.
func stringGetter(g any) (func() string, bool) {
	if get, ok := g.(func() string); ok {
		return get, true
	}

	v := reflect.ValueOf(g)
	t := v.Type()
	if t.Kind() != reflect.Func || t.NumIn() != 0 || t.NumOut() != 1 || t.Out(0).Kind() != reflect.String {
		return nil, false
	}
	if v.IsNil() {
		return nil, true
	}
	if t.ConvertibleTo(stringGetterType) {
		return v.Convert(stringGetterType).Interface().(func() string), true
	}
	return func() string { return v.Call(nil)[0].String() }, true
}
