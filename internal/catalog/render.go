package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// notFound builds the successful "unknown name" payload: descriptive text
// plus the valid alternatives. Callers inspect the text, never an error
// signal, to distinguish found from not found.
func notFound(kind, name string, valid []string) *Result {
	var b strings.Builder
	fmt.Fprintf(&b, "No %s named %q was found.\n\n", kind, name)
	fmt.Fprintf(&b, "Available %ss:\n", kind)
	for _, v := range valid {
		fmt.Fprintf(&b, "- %s\n", v)
	}
	return TextResult(b.String())
}

func renderComponent(d ComponentDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "Category: %s\n\n", d.Category)
	b.WriteString(d.Description)
	b.WriteString("\n\n## Props\n\n")
	if len(d.Props) == 0 {
		b.WriteString("This component takes no props.\n")
	}
	for _, p := range d.Props {
		req := "optional"
		if p.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "- `%s` (%s, %s): %s\n", p.Name, p.Type, req, p.Description)
	}
	if d.Usage != "" {
		b.WriteString("\n## Usage\n\n```tsx\n")
		b.WriteString(strings.TrimSpace(d.Usage))
		b.WriteString("\n```\n")
	}
	return b.String()
}

func renderComponentList(docs []ComponentDoc, category string) string {
	var b strings.Builder
	if category == "" {
		b.WriteString("# React Flow Components\n\n")
	} else {
		fmt.Fprintf(&b, "# React Flow Components: %s\n\n", titleCaser.String(category))
	}
	for _, d := range docs {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", d.Name, d.Category, firstSentence(d.Description))
	}
	return b.String()
}

func renderHook(d HookDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "Category: %s\n\n", d.Category)
	fmt.Fprintf(&b, "```ts\n%s\n```\n\n", d.Signature)
	b.WriteString(d.Description)
	if d.Returns != "" {
		fmt.Fprintf(&b, "\n\nReturns: %s", d.Returns)
	}
	if d.Usage != "" {
		b.WriteString("\n\n## Usage\n\n```tsx\n")
		b.WriteString(strings.TrimSpace(d.Usage))
		b.WriteString("\n```\n")
	}
	return b.String()
}

func renderHookList(docs []HookDoc, category string) string {
	var b strings.Builder
	if category == "" {
		b.WriteString("# React Flow Hooks\n\n")
	} else {
		fmt.Fprintf(&b, "# React Flow Hooks: %s\n\n", titleCaser.String(category))
	}
	for _, d := range docs {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", d.Name, d.Category, firstSentence(d.Description))
	}
	return b.String()
}

func renderType(d TypeDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "Category: %s\n\n", d.Category)
	b.WriteString(d.Description)
	fmt.Fprintf(&b, "\n\n```ts\n%s\n```\n", strings.TrimSpace(d.Definition))
	if len(d.Variants) > 0 {
		b.WriteString("\n## Variants\n\n")
		b.WriteString("Discriminated union on the `type` field:\n\n")
		for _, v := range d.Variants {
			fmt.Fprintf(&b, "- `%s`: %s\n", v.Kind, v.Fields)
		}
	}
	return b.String()
}

func renderTypeList(docs []TypeDoc, category string) string {
	var b strings.Builder
	if category == "" {
		b.WriteString("# React Flow Types\n\n")
	} else {
		fmt.Fprintf(&b, "# React Flow Types: %s\n\n", titleCaser.String(category))
	}
	for _, d := range docs {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", d.Name, d.Category, firstSentence(d.Description))
	}
	return b.String()
}

func renderUtility(d UtilityDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "```ts\n%s\n```\n\n", d.Signature)
	b.WriteString(d.Description)
	if d.Returns != "" {
		fmt.Fprintf(&b, "\n\nReturns: %s", d.Returns)
	}
	if d.Usage != "" {
		b.WriteString("\n\n## Usage\n\n```tsx\n")
		b.WriteString(strings.TrimSpace(d.Usage))
		b.WriteString("\n```\n")
	}
	return b.String()
}

func renderUtilityList(docs []UtilityDoc) string {
	var b strings.Builder
	b.WriteString("# React Flow Utility Functions\n\n")
	for _, d := range docs {
		fmt.Fprintf(&b, "- **%s**: %s\n", d.Name, firstSentence(d.Description))
	}
	return b.String()
}

func renderExample(d ExampleDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Example: %s\n\n", d.Title)
	fmt.Fprintf(&b, "Id: %s\n", d.ID)
	if len(d.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(d.Tags, ", "))
	}
	b.WriteString("\n")
	b.WriteString(d.Description)
	b.WriteString("\n\n```tsx\n")
	b.WriteString(strings.TrimSpace(d.Code))
	b.WriteString("\n```\n")
	return b.String()
}

func renderSearchResults(query string, matches []ExampleDoc) string {
	var b strings.Builder
	if len(matches) == 0 {
		fmt.Fprintf(&b, "No examples matched %q.\n\nAvailable examples:\n", query)
		for _, d := range exampleDocs {
			fmt.Fprintf(&b, "- %s: %s\n", d.ID, d.Title)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "# Examples matching %q\n\n", query)
	for _, d := range matches {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", d.ID, d.Title, firstSentence(d.Description))
	}
	b.WriteString("\nUse get_example with an id for the full code.\n")
	return b.String()
}

func renderDocTopic(d DocTopic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	b.WriteString(strings.TrimSpace(d.Body))
	b.WriteString("\n")
	return b.String()
}

// firstSentence truncates a description at its first period for listings.
func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}
