package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile is the on-disk shape of a docs overlay: extra topic guides
// that shadow base topics of the same name.
type overlayFile struct {
	Topics []DocTopic `yaml:"topics"`
}

// LoadOverlay reads a YAML overlay file and replaces the current overlay
// topics. Topics with an empty name are rejected so a broken overlay never
// partially applies.
func (c *Catalog) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read docs overlay: %w", err)
	}

	var f overlayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse docs overlay: %w", err)
	}

	overlay := make(map[string]DocTopic, len(f.Topics))
	for _, t := range f.Topics {
		if t.Topic == "" {
			return fmt.Errorf("docs overlay contains a topic with no name")
		}
		if t.Title == "" {
			t.Title = t.Topic
		}
		overlay[t.Topic] = t
	}

	c.overlayMu.Lock()
	c.overlay = overlay
	c.overlayMu.Unlock()

	return nil
}

// ClearOverlay drops all overlay topics.
func (c *Catalog) ClearOverlay() {
	c.overlayMu.Lock()
	c.overlay = nil
	c.overlayMu.Unlock()
}

// OverlayLen returns the number of overlay topics currently loaded.
func (c *Catalog) OverlayLen() int {
	c.overlayMu.RLock()
	defer c.overlayMu.RUnlock()
	return len(c.overlay)
}
