package transform

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/countdown/internal/domain"
)

func TestApplyTransforms_EmptyTransforms(t *testing.T) {
	base := domain.DefaultAssumptions()

	result, err := ApplyTransforms(base, nil)
	if err != nil {
		t.Fatalf("Expected no error for empty transforms, got: %v", err)
	}
	if result != base {
		t.Errorf("Expected the base model back, got %+v", result)
	}
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(domain.DefaultAssumptions(), []AssumptionTransform{nil})
	if err == nil {
		t.Error("Expected error for nil transform, got nil")
	}
}

func TestApplyTransforms_Sequence(t *testing.T) {
	base := domain.DefaultAssumptions()
	transforms := []AssumptionTransform{
		&AgeBy{Years: 10},
		&SetCoffees{PerDay: 0},
		&SetWorkdays{PerWeek: 4},
	}

	result, err := ApplyTransforms(base, transforms)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Age != 40 {
		t.Errorf("Expected age 40, got %d", result.Age)
	}
	if result.CoffeesPerDay != 0 {
		t.Errorf("Expected 0 coffees, got %d", result.CoffeesPerDay)
	}
	if result.WorkdaysPerWeek != 4 {
		t.Errorf("Expected 4 workdays, got %d", result.WorkdaysPerWeek)
	}
	if base.Age != 30 {
		t.Error("Base model should not be modified")
	}
}

func TestApplyTransforms_ValidationStopsTheChain(t *testing.T) {
	base := domain.DefaultAssumptions().WithHealthCondition(5)
	transforms := []AssumptionTransform{
		&SetCoffees{PerDay: 1},
		&AdjustHealth{Steps: 1},
	}

	result, err := ApplyTransforms(base, transforms)
	if err == nil {
		t.Fatal("Expected validation error for health above 5")
	}

	var te *TransformError
	if !errors.As(err, &te) {
		t.Fatalf("Expected a TransformError in the chain, got %T", err)
	}
	if te.TransformName != "adjust_health" {
		t.Errorf("Expected adjust_health to fail, got %s", te.TransformName)
	}
	if result != base {
		t.Error("Expected the base model back on failure")
	}
}

func TestTransforms_Validate(t *testing.T) {
	base := domain.DefaultAssumptions()

	tests := []struct {
		name      string
		transform AssumptionTransform
		wantErr   bool
	}{
		{"age within range", &AgeBy{Years: 90}, false},
		{"age beyond max", &AgeBy{Years: 91}, true},
		{"age below zero", &AgeBy{Years: -31}, true},
		{"coffees max", &SetCoffees{PerDay: domain.MaxCoffeesPerDay}, false},
		{"coffees too many", &SetCoffees{PerDay: domain.MaxCoffeesPerDay + 1}, true},
		{"workdays negative", &SetWorkdays{PerWeek: -1}, true},
		{"eating down", &AdjustEating{Steps: -2}, false},
		{"eating too low", &AdjustEating{Steps: -3}, true},
		{"optimism out of range", &SetOptimism{Level: 11}, true},
		{"unknown preset", &SetLifeExpectancy{Preset: "forever"}, true},
		{"known preset", &SetLifeExpectancy{Preset: domain.LifeExpectancyShort}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transform.Validate(base)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransforms_Description(t *testing.T) {
	tests := []struct {
		transform AssumptionTransform
		want      string
	}{
		{&SetCoffees{PerDay: 0}, "Quit coffee"},
		{&SetCoffees{PerDay: 3}, "Drink 3 coffees a day"},
		{&SetWorkdays{PerWeek: 0}, "Stop working"},
		{&AgeBy{Years: 5}, "Fast-forward 5 years"},
		{&AgeBy{Years: -2}, "Rewind 2 years"},
		{&AdjustHealth{Steps: 1}, "Health condition +1"},
		{&SetLifeExpectancy{Preset: domain.LifeExpectancyOptimistic}, "Life expectancy optimistic (90)"},
	}

	for _, tt := range tests {
		if got := tt.transform.Description(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.transform.Name(), tt.want, got)
		}
	}
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tr, err := registry.ParseTransformSpec("set_coffees:per_day=1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sc, ok := tr.(*SetCoffees)
	if !ok {
		t.Fatalf("Expected *SetCoffees, got %T", tr)
	}
	if sc.PerDay != 1 {
		t.Errorf("Expected 1 coffee, got %d", sc.PerDay)
	}

	tr, err = registry.ParseTransformSpec("set_life_expectancy: preset = optimistic")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tr.(*SetLifeExpectancy).Preset != domain.LifeExpectancyOptimistic {
		t.Errorf("Unexpected preset %s", tr.(*SetLifeExpectancy).Preset)
	}

	invalid := []string{
		"set_coffees",
		"set_coffees:1",
		"set_coffees:per_day=lots",
		"set_coffees:cups=1",
		"buy_boat:size=large",
		"set_life_expectancy:preset=forever",
	}
	for _, spec := range invalid {
		if _, err := registry.ParseTransformSpec(spec); err == nil {
			t.Errorf("Expected error for spec %q", spec)
		}
	}
}

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	if len(names) != 7 {
		t.Fatalf("Expected 7 transforms, got %d", len(names))
	}
	if names[0] != "adjust_eating" {
		t.Errorf("Expected sorted names, got %v", names)
	}
}
