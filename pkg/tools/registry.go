package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Resolution failures surfaced to the loop as resolve_error observations.
var (
	ErrUnknownTool    = errors.New("unknown tool")
	ErrToolDisallowed = errors.New("tool not allowed")
)

// Executor runs one tool invocation. Implementations must observe ctx and
// may stream events through emit.
type Executor interface {
	Execute(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
	return f(ctx, rt, args, emit)
}

type registration struct {
	desc   Descriptor
	exec   Executor
	schema *jsonschema.Schema
}

// Registry maps tool names to descriptors and executors.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*registration)}
}

// Register adds a tool, compiling its argument schema if present. Replaces
// any existing registration under the same name.
func (r *Registry) Register(desc Descriptor, exec Executor) error {
	if desc.Name == "" {
		return fmt.Errorf("register tool: empty name")
	}
	reg := &registration{desc: desc, exec: exec}
	if len(desc.ArgsSchema) > 0 {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(desc.ArgsSchema))
		if err != nil {
			return fmt.Errorf("parse args schema for %s: %w", desc.Name, err)
		}
		compiler := jsonschema.NewCompiler()
		resource := fmt.Sprintf("tool-%s-args.json", desc.Name)
		if err := compiler.AddResource(resource, doc); err != nil {
			return fmt.Errorf("add args schema for %s: %w", desc.Name, err)
		}
		schema, err := compiler.Compile(resource)
		if err != nil {
			return fmt.Errorf("compile args schema for %s: %w", desc.Name, err)
		}
		reg.schema = schema
	}
	r.mu.Lock()
	r.tools[desc.Name] = reg
	r.mu.Unlock()
	return nil
}

// Resolve looks up a tool and checks that the given plan type and
// organization capabilities may use it.
func (r *Registry) Resolve(name, planType string, capabilities []string) (Descriptor, error) {
	r.mu.RLock()
	reg, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if !allowed(reg.desc, planType, capabilities) {
		return Descriptor{}, fmt.Errorf("%w: %s for plan type %s", ErrToolDisallowed, name, planType)
	}
	return reg.desc, nil
}

// List enumerates the descriptors available to a plan type under the given
// capabilities, sorted by name.
func (r *Registry) List(planType string, capabilities []string) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Descriptor
	for _, reg := range r.tools {
		if allowed(reg.desc, planType, capabilities) {
			out = append(out, reg.desc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Catalog returns the deduplicated union of action and research tools under
// the given capabilities, sorted by name. This is what the planner sees.
func (r *Registry) Catalog(capabilities []string) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var out []Descriptor
	for _, planType := range []string{"action", "research"} {
		for _, reg := range r.tools {
			if seen[reg.desc.Name] || !allowed(reg.desc, planType, capabilities) {
				continue
			}
			seen[reg.desc.Name] = true
			out = append(out, reg.desc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) lookup(name string) (*registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.tools[name]
	return reg, ok
}

// validateArgs checks arguments against the tool's compiled schema.
func (reg *registration) validateArgs(args map[string]interface{}) error {
	if reg.schema == nil {
		return nil
	}
	var value interface{} = map[string]interface{}(args)
	if args == nil {
		value = map[string]interface{}{}
	}
	if err := reg.schema.Validate(value); err != nil {
		return NewValidationError("input_validation_error", err.Error())
	}
	return nil
}

func allowed(desc Descriptor, planType string, capabilities []string) bool {
	if planType != "" && len(desc.PlanTypes) > 0 {
		match := false
		for _, pt := range desc.PlanTypes {
			if pt == planType {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	if len(desc.Capabilities) == 0 {
		return true
	}
	have := make(map[string]bool, len(capabilities))
	for _, c := range capabilities {
		have[c] = true
	}
	for _, required := range desc.Capabilities {
		if !have[required] {
			return false
		}
	}
	return true
}
