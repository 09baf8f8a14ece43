package cli

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/transit"
	"github.com/aretw0/transit/pkg/adapters/file"
	"github.com/aretw0/transit/pkg/domain"
	"github.com/aretw0/transit/pkg/dsl"
	"github.com/aretw0/transit/pkg/ports"
	"github.com/aretw0/transit/pkg/registry"
)

//go:embed samples/traffic-light.yaml
var trafficLightYAML []byte

// Sample is a built-in machine the trace command can run.
type Sample struct {
	Name        string
	Description string
	Build       func(opts ...transit.Option) (ports.Stepper, error)
}

var samples = map[string]Sample{
	"sleeper": {
		Name:        "sleeper",
		Description: "two states flipping forever, declared by the target itself",
		Build: func(opts ...transit.Option) (ports.Stepper, error) {
			return asStepper(transit.New(&sleeper{state: "sleep"}, opts...))
		},
	},
	"traffic-light": {
		Name:        "traffic-light",
		Description: "three colors bound from an embedded declaration file",
		Build:       buildTrafficLight,
	},
	"kettle": {
		Name:        "kettle",
		Description: "heats up and fails once it boils dry",
		Build: func(opts ...transit.Option) (ports.Stepper, error) {
			k := &kettle{state: "cold"}
			return asStepper(transit.New(k, append(opts, transit.WithDeclarer(k.declaration()))...))
		},
	},
}

// Samples returns the built-in samples ordered by name.
func Samples() []Sample {
	list := make([]Sample, 0, len(samples))
	for _, s := range samples {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// LookupSample finds a built-in sample by name.
func LookupSample(name string) (Sample, error) {
	s, ok := samples[name]
	if !ok {
		return Sample{}, fmt.Errorf("unknown sample %q", name)
	}
	return s, nil
}

// asStepper avoids handing out a typed nil on failure.
func asStepper[T any](m *transit.Machine[T], err error) (ports.Stepper, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}

type sleeper struct {
	state string
}

func (s *sleeper) Declaration() (domain.Declaration, error) {
	return dsl.New().
		TransitionFunc("awake", func() string { return "sleep" }).
		TransitionFunc("sleep", func() string { return "awake" }).
		State("state", func() string { return s.state }, func(v string) { s.state = v }).
		Declaration()
}

type trafficLight struct {
	color string
}

func buildTrafficLight(opts ...transit.Option) (ports.Stepper, error) {
	doc, err := file.Parse(trafficLightYAML)
	if err != nil {
		return nil, err
	}

	light := &trafficLight{color: "red"}
	ops := registry.NewRegistry().
		RegisterFunc("Stop", func() string { return "green" }).
		RegisterFunc("Go", func() string { return "yellow" }).
		RegisterFunc("Caution", func() string { return "red" }).
		RegisterAccessors("color", func() string { return light.color }, func(v string) { light.color = v })

	return asStepper(transit.New(light, append(opts, transit.WithDeclarer(doc.Bind(ops)))...))
}

var errBoiledDry = errors.New("kettle boiled dry")

type kettle struct {
	state   string
	boilFor int
}

func (k *kettle) declaration() *dsl.Builder {
	b := dsl.New()
	b.TransitionFunc("cold", func() string { return "heating" })
	b.TransitionFunc("heating", func() string { return "boiling" })
	b.Transition("boiling", func() (string, error) {
		if k.boilFor >= 1 {
			return "", errBoiledDry
		}
		k.boilFor++
		return "boiling", nil
	})
	b.State("state", func() string { return k.state }, func(v string) { k.state = v })
	return b
}
