// Package validation rejects malformed requests before any lookup or cache
// work happens. Each operation has an immutable rule describing its
// parameters; the same table drives the tool schemas advertised over MCP.
package validation

// MaxParamLength is the maximum accepted length for any string parameter.
const MaxParamLength = 1000

// ParamRule describes a single parameter's structural constraints.
type ParamRule struct {
	Name        string
	Description string
	Required    bool
	// Default applies when an optional parameter is absent. Empty means
	// "no filter" for category-style parameters.
	Default string
}

// Rule is the validation schema for one operation.
type Rule struct {
	Operation   string
	Description string
	Params      []ParamRule
}

// Operation names accepted by the dispatcher.
const (
	OpGetComponent   = "get_component"
	OpListComponents = "list_components"
	OpGetHook        = "get_hook"
	OpListHooks      = "list_hooks"
	OpGetType        = "get_type"
	OpListTypes      = "list_types"
	OpGetUtility     = "get_utility"
	OpListUtilities  = "list_utilities"
	OpGetExample     = "get_example"
	OpSearchExamples = "search_examples"
	OpGetDocs        = "get_docs"
)

// rules is the fixed per-operation schema table, built once at process start.
var rules = buildRules()

func buildRules() map[string]Rule {
	list := []Rule{
		{
			Operation:   OpGetComponent,
			Description: "Get detailed documentation for a React Flow component, including its props and usage.",
			Params: []ParamRule{
				{Name: "componentName", Description: "Name of the component, e.g. ReactFlow or Handle", Required: true},
			},
		},
		{
			Operation:   OpListComponents,
			Description: "List all documented React Flow components, optionally filtered by category.",
			Params: []ParamRule{
				{Name: "category", Description: "Component category filter, e.g. core, ui, nodes, edges, viewport"},
			},
		},
		{
			Operation:   OpGetHook,
			Description: "Get documentation for a React Flow hook, including its signature and return value.",
			Params: []ParamRule{
				{Name: "hookName", Description: "Name of the hook, e.g. useReactFlow", Required: true},
			},
		},
		{
			Operation:   OpListHooks,
			Description: "List all documented React Flow hooks, optionally filtered by category.",
			Params: []ParamRule{
				{Name: "category", Description: "Hook category filter, e.g. core, state, viewport, interaction"},
			},
		},
		{
			Operation:   OpGetType,
			Description: "Get the definition of a React Flow TypeScript type.",
			Params: []ParamRule{
				{Name: "typeName", Description: "Name of the type, e.g. Node or EdgeChange", Required: true},
			},
		},
		{
			Operation:   OpListTypes,
			Description: "List all documented React Flow types, optionally filtered by category.",
			Params: []ParamRule{
				{Name: "category", Description: "Type category filter, e.g. nodes, edges, geometry, viewport"},
			},
		},
		{
			Operation:   OpGetUtility,
			Description: "Get documentation for a React Flow utility function.",
			Params: []ParamRule{
				{Name: "utilityName", Description: "Name of the utility, e.g. addEdge", Required: true},
			},
		},
		{
			Operation:   OpListUtilities,
			Description: "List all documented React Flow utility functions.",
		},
		{
			Operation:   OpGetExample,
			Description: "Get a runnable React Flow code example by id.",
			Params: []ParamRule{
				{Name: "exampleType", Description: "Example id, e.g. drag-and-drop", Required: true},
			},
		},
		{
			Operation:   OpSearchExamples,
			Description: "Search React Flow examples; every term must match somewhere in the example.",
			Params: []ParamRule{
				{Name: "query", Description: "Space-separated search terms", Required: true},
			},
		},
		{
			Operation:   OpGetDocs,
			Description: "Get a React Flow topic guide, e.g. getting-started or theming.",
			Params: []ParamRule{
				{Name: "topic", Description: "Topic name", Required: true},
			},
		},
	}

	m := make(map[string]Rule, len(list))
	for _, r := range list {
		m[r.Operation] = r
	}
	return m
}

// RuleFor returns the rule for an operation name.
func RuleFor(operation string) (Rule, bool) {
	r, ok := rules[operation]
	return r, ok
}

// Rules returns all rules in a stable, hand-ordered sequence suitable for
// advertising over the protocol.
func Rules() []Rule {
	ordered := []string{
		OpGetComponent, OpListComponents,
		OpGetHook, OpListHooks,
		OpGetType, OpListTypes,
		OpGetUtility, OpListUtilities,
		OpGetExample, OpSearchExamples,
		OpGetDocs,
	}

	out := make([]Rule, 0, len(ordered))
	for _, op := range ordered {
		out = append(out, rules[op])
	}
	return out
}
