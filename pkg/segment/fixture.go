package segment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SerialisedFixture is one golden-tree test case (spec §6 export format):
// a human-readable name plus the Serialised tree a test is expected to
// produce.
type SerialisedFixture struct {
	Name string     `yaml:"name"`
	Want Serialised `yaml:"want"`
}

// LoadSerialisedFixtures reads a YAML file of SerialisedFixture entries
// from disk, in the teacher's golden-fixture testing style: expected
// output kept in version-controlled data files rather than inline in Go
// source, so a fixture can be regenerated/reviewed independently of the
// test code that checks against it.
func LoadSerialisedFixtures(path string) ([]SerialisedFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("segment: reading fixtures %s: %w", path, err)
	}
	var fixtures []SerialisedFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("segment: parsing fixtures %s: %w", path, err)
	}
	return fixtures, nil
}
