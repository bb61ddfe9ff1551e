package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/countdown/internal/domain"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []AssumptionTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Coffee
	registry.Register(Template{
		Name:        "quit_coffee",
		Description: "Stop drinking coffee",
		Transforms:  []AssumptionTransform{&SetCoffees{PerDay: 0}},
	})
	registry.Register(Template{
		Name:        "double_espresso",
		Description: "Four coffees a day",
		Transforms:  []AssumptionTransform{&SetCoffees{PerDay: 4}},
	})

	// Work
	registry.Register(Template{
		Name:        "four_day_week",
		Description: "Work four days a week",
		Transforms:  []AssumptionTransform{&SetWorkdays{PerWeek: 4}},
	})
	registry.Register(Template{
		Name:        "retire",
		Description: "Stop working altogether",
		Transforms:  []AssumptionTransform{&SetWorkdays{PerWeek: 0}},
	})

	// Time
	registry.Register(Template{
		Name:        "five_years_later",
		Description: "The same model, five years from now",
		Transforms:  []AssumptionTransform{&AgeBy{Years: 5}},
	})
	registry.Register(Template{
		Name:        "ten_years_later",
		Description: "The same model, ten years from now",
		Transforms:  []AssumptionTransform{&AgeBy{Years: 10}},
	})

	// Health
	registry.Register(Template{
		Name:        "eat_better",
		Description: "One step better eating habits",
		Transforms:  []AssumptionTransform{&AdjustEating{Steps: 1}},
	})
	registry.Register(Template{
		Name:        "get_fit",
		Description: "One step better health and eating",
		Transforms: []AssumptionTransform{
			&AdjustHealth{Steps: 1},
			&AdjustEating{Steps: 1},
		},
	})
	registry.Register(Template{
		Name:        "let_go",
		Description: "One step worse health and eating",
		Transforms: []AssumptionTransform{
			&AdjustHealth{Steps: -1},
			&AdjustEating{Steps: -1},
		},
	})

	// Outlook
	registry.Register(Template{
		Name:        "optimist",
		Description: "Full optimism and the optimistic life expectancy",
		Transforms: []AssumptionTransform{
			&SetOptimism{Level: domain.MaxOptimism},
			&SetLifeExpectancy{Preset: domain.LifeExpectancyOptimistic},
		},
	})
	registry.Register(Template{
		Name:        "pessimist",
		Description: "No optimism and the short life expectancy",
		Transforms: []AssumptionTransform{
			&SetOptimism{Level: domain.MinOptimism},
			&SetLifeExpectancy{Preset: domain.LifeExpectancyShort},
		},
	})

	return registry
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(s string) []string {
	parts := strings.Split(s, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// templateCategory groups templates for the help listing
func templateCategory(name string) string {
	switch name {
	case "quit_coffee", "double_espresso":
		return "Coffee"
	case "four_day_week", "retire":
		return "Work"
	case "five_years_later", "ten_years_later":
		return "Time"
	case "eat_better", "get_fit", "let_go":
		return "Health"
	default:
		return "Outlook"
	}
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	for _, name := range registry.List() {
		t := registry.templates[name]
		c := templateCategory(t.Name)
		categories[c] = append(categories[c], t)
	}

	for _, category := range []string{"Coffee", "Work", "Time", "Health", "Outlook"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  countdown whatif --with quit_coffee,four_day_week\n")
	sb.WriteString("  countdown whatif --apply set_coffees:per_day=1 --format csv\n")

	return sb.String()
}
