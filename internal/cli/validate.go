package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aretw0/transit/pkg/adapters/file"
	"github.com/aretw0/transit/pkg/domain"
)

// Validate loads a declaration file, checks its shape and prints the
// resulting transition table. Collisions are reported as warnings since the
// last declaration silently wins.
func Validate(path string, w io.Writer) error {
	doc, err := file.Load(path)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	table := doc.Table()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	getter, setter := domain.AccessorNames(doc.State[0].Field)
	fmt.Fprintf(w, "state field: %s (%s/%s)\n", doc.State[0].Field, getter, setter)
	for _, extra := range doc.State[1:] {
		fmt.Fprintf(w, "warning: state field %q ignored, only the first one is used\n", extra.Field)
	}

	fmt.Fprintln(w, "transitions:")
	for _, name := range names {
		methods := table[name]
		winner := methods[len(methods)-1]
		fmt.Fprintf(w, "  %s -> %s\n", name, winner)
		if len(methods) > 1 {
			fmt.Fprintf(w, "  warning: %q declared by %s, %s wins\n",
				name, strings.Join(methods, ", "), winner)
		}
	}
	return nil
}
