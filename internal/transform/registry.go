package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/countdown/internal/domain"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (AssumptionTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("age_by", createAgeBy)
	registry.Register("set_coffees", createSetCoffees)
	registry.Register("set_workdays", createSetWorkdays)
	registry.Register("adjust_health", createAdjustHealth)
	registry.Register("adjust_eating", createAdjustEating)
	registry.Register("set_optimism", createSetOptimism)
	registry.Register("set_life_expectancy", createSetLifeExpectancy)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (AssumptionTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_coffees:per_day=1"
func (r *TransformRegistry) ParseTransformSpec(spec string) (AssumptionTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// intParam reads a required integer parameter
func intParam(transform string, params map[string]string, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// Factory functions for each transform

func createAgeBy(params map[string]string) (AssumptionTransform, error) {
	years, err := intParam("age_by", params, "years")
	if err != nil {
		return nil, err
	}
	return &AgeBy{Years: years}, nil
}

func createSetCoffees(params map[string]string) (AssumptionTransform, error) {
	perDay, err := intParam("set_coffees", params, "per_day")
	if err != nil {
		return nil, err
	}
	return &SetCoffees{PerDay: perDay}, nil
}

func createSetWorkdays(params map[string]string) (AssumptionTransform, error) {
	perWeek, err := intParam("set_workdays", params, "per_week")
	if err != nil {
		return nil, err
	}
	return &SetWorkdays{PerWeek: perWeek}, nil
}

func createAdjustHealth(params map[string]string) (AssumptionTransform, error) {
	steps, err := intParam("adjust_health", params, "steps")
	if err != nil {
		return nil, err
	}
	return &AdjustHealth{Steps: steps}, nil
}

func createAdjustEating(params map[string]string) (AssumptionTransform, error) {
	steps, err := intParam("adjust_eating", params, "steps")
	if err != nil {
		return nil, err
	}
	return &AdjustEating{Steps: steps}, nil
}

func createSetOptimism(params map[string]string) (AssumptionTransform, error) {
	level, err := intParam("set_optimism", params, "level")
	if err != nil {
		return nil, err
	}
	return &SetOptimism{Level: level}, nil
}

func createSetLifeExpectancy(params map[string]string) (AssumptionTransform, error) {
	raw, ok := params["preset"]
	if !ok {
		return nil, fmt.Errorf("set_life_expectancy requires 'preset' parameter")
	}
	preset, err := domain.ParseLifeExpectancy(raw)
	if err != nil {
		return nil, err
	}
	return &SetLifeExpectancy{Preset: preset}, nil
}
