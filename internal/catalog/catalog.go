// Package catalog holds the static React Flow reference content and the
// lookup handlers that render it. All base content is hand-authored and
// immutable; the name-to-record maps are built once at startup.
//
// Unknown names are not errors: lookups return a successful payload that
// enumerates the valid alternatives, so callers always get usable text back.
package catalog

import (
	"sort"
	"strings"
	"sync"
)

// ContentBlock is a single piece of response content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the uniform response payload shape for every operation.
type Result struct {
	Content []ContentBlock `json:"content"`
}

// TextResult wraps text in the uniform payload shape.
func TextResult(text string) *Result {
	return &Result{Content: []ContentBlock{{Type: "text", Text: text}}}
}

// Text returns the concatenated text content of the result.
func (r *Result) Text() string {
	var b strings.Builder
	for _, c := range r.Content {
		b.WriteString(c.Text)
	}
	return b.String()
}

// Catalog is the full reference catalog. The base maps never change after
// New; only the docs-topic overlay is mutable, behind its own lock.
type Catalog struct {
	components map[string]ComponentDoc
	hooks      map[string]HookDoc
	types      map[string]TypeDoc
	utilities  map[string]UtilityDoc
	examples   map[string]ExampleDoc
	docs       map[string]DocTopic

	overlayMu sync.RWMutex
	overlay   map[string]DocTopic
}

// New builds the catalog from the static content tables.
func New() *Catalog {
	c := &Catalog{
		components: make(map[string]ComponentDoc, len(componentDocs)),
		hooks:      make(map[string]HookDoc, len(hookDocs)),
		types:      make(map[string]TypeDoc, len(typeDocs)),
		utilities:  make(map[string]UtilityDoc, len(utilityDocs)),
		examples:   make(map[string]ExampleDoc, len(exampleDocs)),
		docs:       make(map[string]DocTopic, len(docTopics)),
	}

	for _, d := range componentDocs {
		c.components[d.Name] = d
	}
	for _, d := range hookDocs {
		c.hooks[d.Name] = d
	}
	for _, d := range typeDocs {
		c.types[d.Name] = d
	}
	for _, d := range utilityDocs {
		c.utilities[d.Name] = d
	}
	for _, d := range exampleDocs {
		c.examples[d.ID] = d
	}
	for _, d := range docTopics {
		c.docs[d.Topic] = d
	}

	return c
}

// GetComponent renders documentation for a single component.
func (c *Catalog) GetComponent(name string) *Result {
	doc, ok := c.components[name]
	if !ok {
		return notFound("component", name, c.ComponentNames())
	}
	return TextResult(renderComponent(doc))
}

// ListComponents renders a listing of components, optionally filtered by
// category. An unknown category yields the not-found listing of categories.
func (c *Catalog) ListComponents(category string) *Result {
	docs := make([]ComponentDoc, 0, len(c.components))
	categories := newStringSet()
	for _, d := range c.components {
		categories.add(d.Category)
		if category == "" || d.Category == category {
			docs = append(docs, d)
		}
	}
	if len(docs) == 0 {
		return notFound("component category", category, categories.sorted())
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return TextResult(renderComponentList(docs, category))
}

// GetHook renders documentation for a single hook.
func (c *Catalog) GetHook(name string) *Result {
	doc, ok := c.hooks[name]
	if !ok {
		return notFound("hook", name, c.HookNames())
	}
	return TextResult(renderHook(doc))
}

// ListHooks renders a listing of hooks, optionally filtered by category.
func (c *Catalog) ListHooks(category string) *Result {
	docs := make([]HookDoc, 0, len(c.hooks))
	categories := newStringSet()
	for _, d := range c.hooks {
		categories.add(d.Category)
		if category == "" || d.Category == category {
			docs = append(docs, d)
		}
	}
	if len(docs) == 0 {
		return notFound("hook category", category, categories.sorted())
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return TextResult(renderHookList(docs, category))
}

// GetType renders the definition of a single type.
func (c *Catalog) GetType(name string) *Result {
	doc, ok := c.types[name]
	if !ok {
		return notFound("type", name, c.TypeNames())
	}
	return TextResult(renderType(doc))
}

// ListTypes renders a listing of types, optionally filtered by category.
func (c *Catalog) ListTypes(category string) *Result {
	docs := make([]TypeDoc, 0, len(c.types))
	categories := newStringSet()
	for _, d := range c.types {
		categories.add(d.Category)
		if category == "" || d.Category == category {
			docs = append(docs, d)
		}
	}
	if len(docs) == 0 {
		return notFound("type category", category, categories.sorted())
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return TextResult(renderTypeList(docs, category))
}

// GetUtility renders documentation for a single utility function.
func (c *Catalog) GetUtility(name string) *Result {
	doc, ok := c.utilities[name]
	if !ok {
		return notFound("utility", name, c.UtilityNames())
	}
	return TextResult(renderUtility(doc))
}

// ListUtilities renders a listing of every utility function.
func (c *Catalog) ListUtilities() *Result {
	docs := make([]UtilityDoc, 0, len(c.utilities))
	for _, d := range c.utilities {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return TextResult(renderUtilityList(docs))
}

// GetExample renders a runnable code example.
func (c *Catalog) GetExample(id string) *Result {
	doc, ok := c.examples[id]
	if !ok {
		return notFound("example", id, c.ExampleIDs())
	}
	return TextResult(renderExample(doc))
}

// GetDocs renders a topic guide. Overlay topics shadow base topics of the
// same name.
func (c *Catalog) GetDocs(topic string) *Result {
	c.overlayMu.RLock()
	doc, ok := c.overlay[topic]
	c.overlayMu.RUnlock()

	if !ok {
		doc, ok = c.docs[topic]
	}
	if !ok {
		return notFound("documentation topic", topic, c.TopicNames())
	}
	return TextResult(renderDocTopic(doc))
}

// Name listings, sorted for stable output.

func (c *Catalog) ComponentNames() []string { return sortedKeysComponent(c.components) }
func (c *Catalog) HookNames() []string      { return sortedKeysHook(c.hooks) }
func (c *Catalog) TypeNames() []string      { return sortedKeysType(c.types) }
func (c *Catalog) UtilityNames() []string   { return sortedKeysUtility(c.utilities) }

// ExampleIDs returns the ids of all examples.
func (c *Catalog) ExampleIDs() []string {
	out := make([]string, 0, len(c.examples))
	for id := range c.examples {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// TopicNames returns base and overlay topic names.
func (c *Catalog) TopicNames() []string {
	c.overlayMu.RLock()
	defer c.overlayMu.RUnlock()

	set := newStringSet()
	for t := range c.docs {
		set.add(t)
	}
	for t := range c.overlay {
		set.add(t)
	}
	return set.sorted()
}

func sortedKeysComponent(m map[string]ComponentDoc) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysHook(m map[string]HookDoc) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysType(m map[string]TypeDoc) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysUtility(m map[string]UtilityDoc) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type stringSet map[string]struct{}

func newStringSet() stringSet { return make(stringSet) }

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
