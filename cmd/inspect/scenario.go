package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdk754/libstatic/deque"
	"github.com/mdk754/libstatic/errors"
)

// scenario is a replayable sequence of container operations. The
// optional expect list is checked against the final contents.
type scenario struct {
	Capacity int   `yaml:"capacity"`
	Ops      []op  `yaml:"ops"`
	Expect   []int `yaml:"expect"`
}

type op struct {
	Op    string `yaml:"op"`
	Value int    `yaml:"value"`
	Pos   int    `yaml:"pos"`
	Count int    `yaml:"count"`
	N     int    `yaml:"n"`
}

func replay(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}

	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return errors.New(errors.PhaseScenario, errors.KindInvalidData).
			Cause(err).
			Detail("scenario %s is not valid YAML", path).
			Build()
	}
	if sc.Capacity <= 0 {
		return errors.New(errors.PhaseScenario, errors.KindInvalidData).
			Value(sc.Capacity).
			Detail("capacity must be positive").
			Build()
	}

	d := deque.New[int](sc.Capacity)
	fmt.Fprintf(out, "capacity %d\n", sc.Capacity)
	for i, o := range sc.Ops {
		if err := apply(d, o); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
		fmt.Fprintf(out, "%3d  %-12s %s\n", i, o.Op, render(d))
	}

	if sc.Expect != nil {
		if !deque.Equal(d, deque.Of(sc.Expect...)) {
			return errors.New(errors.PhaseScenario, errors.KindInvalidData).
				Value(sc.Expect).
				Detail("final contents %s do not match expectation %v", render(d), sc.Expect).
				Build()
		}
		fmt.Fprintln(out, "expectation met")
	}
	return nil
}

func apply(d *deque.Deque[int], o op) error {
	switch o.Op {
	case "push_back":
		d.PushBack(o.Value)
	case "push_front":
		d.PushFront(o.Value)
	case "pop_back":
		d.PopBack()
	case "pop_front":
		d.PopFront()
	case "insert":
		d.Insert(o.Pos, o.Value)
	case "insert_n":
		d.InsertN(o.Pos, o.Count, o.Value)
	case "erase":
		d.Erase(o.Pos)
	case "erase_range":
		d.EraseRange(o.Pos, o.Pos+o.Count)
	case "resize":
		d.Resize(o.N)
	case "assign":
		d.AssignN(o.N, o.Value)
	case "clear":
		d.Clear()
	default:
		return errors.InvalidOp(o.Op)
	}
	return nil
}

func render(d *deque.Deque[int]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range d.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')
	fmt.Fprintf(&b, " %d/%d", d.Len(), d.Cap())
	return b.String()
}
