package file

import (
	"fmt"
	"os"
	"reflect"

	"github.com/aretw0/transit/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a declaration file (YAML or JSON).
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a declaration document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       shorthandHook,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid declaration: %w", err)
	}
	return &doc, nil
}

// shorthandHook expands bare strings into entries:
// "awake" becomes {method: awake} and "state" becomes {field: state}.
func shorthandHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to {
	case reflect.TypeOf(TransitionEntry{}):
		return map[string]any{"method": data}, nil
	case reflect.TypeOf(StateEntry{}):
		return map[string]any{"field": data}, nil
	}
	return data, nil
}

// Validate checks the document shape without binding it to code.
// It reports the same configuration errors a machine would at construction.
func (d *Document) Validate() error {
	if len(d.Transitions) == 0 {
		return domain.NewConfigurationError(domain.ErrNoTransitions, d.Name, "failed to find transitions in declaration")
	}
	for i, t := range d.Transitions {
		if t.Method == "" {
			return domain.NewConfigurationError(domain.ErrHandlerNotFound, fmt.Sprintf("transitions[%d]", i),
				"transition declared without a method")
		}
	}
	if len(d.State) == 0 || d.State[0].Field == "" {
		return domain.NewConfigurationError(domain.ErrStateNotFound, d.Name, "field declared as state not found")
	}
	return nil
}

// Table returns, for every normalized state name, the methods declaring it
// in file order. The last method of each list is the one a machine uses.
func (d *Document) Table() map[string][]string {
	table := make(map[string][]string, len(d.Transitions))
	for _, t := range d.Transitions {
		name := d.decl(t).StateName()
		table[name] = append(table[name], t.Method)
	}
	return table
}

func (d *Document) decl(t TransitionEntry) domain.TransitionDecl {
	return domain.TransitionDecl{Method: t.Method, State: t.State}
}
