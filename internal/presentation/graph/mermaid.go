package graph

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aretw0/transit/pkg/domain"
)

// Edge is one observed transition.
type Edge struct {
	From string
	To   string
}

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	Current string
	Failed  string
}

// Recorder collects the transitions a machine performs.
// Its hooks may be shared by several machines.
type Recorder struct {
	mu     sync.Mutex
	states []string
	seen   map[string]bool
	edges  []Edge
	counts map[Edge]int
	failed string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		seen:   make(map[string]bool),
		counts: make(map[Edge]int),
	}
}

// Hooks returns lifecycle hooks that feed the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnd: func(_ context.Context, e *domain.StepEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.addState(e.From)
			r.addState(e.To)
			edge := Edge{From: e.From, To: e.To}
			if r.counts[edge] == 0 {
				r.edges = append(r.edges, edge)
			}
			r.counts[edge]++
		},
		OnStepError: func(_ context.Context, e *domain.StepEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.addState(e.From)
			r.failed = e.From
		},
	}
}

func (r *Recorder) addState(s string) {
	if !r.seen[s] {
		r.seen[s] = true
		r.states = append(r.states, s)
	}
}

// Mermaid renders the recorded transitions, marking current as the active state.
func (r *Recorder) Mermaid(current string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return GenerateMermaid(r.states, r.edges, r.counts, &Overlay{Current: current, Failed: r.failed})
}

// GenerateMermaid produces a Mermaid state diagram from observed states and
// edges, in first-seen order. Edges taken more than once are labelled with
// their count.
//
// Node IDs are positional (s0, s1, ...) and state names only appear in labels,
// so names that differ only in punctuation or clash with Mermaid keywords stay
// distinct.
func GenerateMermaid(states []string, edges []Edge, counts map[Edge]int, overlay *Overlay) string {
	ids := make(map[string]string, len(states))
	var order []string
	node := func(name string) string {
		id, ok := ids[name]
		if !ok {
			id = fmt.Sprintf("s%d", len(order))
			ids[name] = id
			order = append(order, name)
		}
		return id
	}
	for _, s := range states {
		node(s)
	}
	for _, e := range edges {
		node(e.From)
		node(e.To)
	}
	if overlay != nil {
		if overlay.Current != "" {
			node(overlay.Current)
		}
		if overlay.Failed != "" {
			node(overlay.Failed)
		}
	}

	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, name := range order {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", ids[name], escapeLabel(name)))
	}

	for _, e := range edges {
		arrow := "-->"
		if n := counts[e]; n > 1 {
			arrow = fmt.Sprintf("-- \"x%d\" -->", n)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", ids[e.From], arrow, ids[e.To]))
	}

	if overlay != nil && (overlay.Current != "" || overlay.Failed != "") {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffcdd2,stroke:#b71c1c,stroke-width:2px,color:#000;\n")
		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", ids[overlay.Current]))
		}
		if overlay.Failed != "" {
			sb.WriteString(fmt.Sprintf("    class %s failed;\n", ids[overlay.Failed]))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
