package schedule

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"gopkg.in/yaml.v3"
)

// LoadOverrides decodes and validates a YAML override table. blocks is the
// number of column blocks per sheet, used to bound pinned placements.
func LoadOverrides(r io.Reader, blocks int) ([]schedule.Override, error) {
	var overrides []schedule.Override
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&overrides); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", schedule.ErrOverrideTableFormat, err)
	}

	seen := make(map[string]bool, len(overrides))
	for i := range overrides {
		o := &overrides[i]
		if err := o.Validate(blocks); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %w", schedule.ErrInvalidOverride, i+1, o.Key, err)
		}
		if o.Match == "" {
			o.Match = schedule.MatchExact
		}
		id := string(o.Match) + ":" + schedule.NormalizeKey(o.Key)
		if seen[id] {
			return nil, fmt.Errorf("%w: %q", schedule.ErrDuplicateOverride, o.Key)
		}
		seen[id] = true
	}
	return overrides, nil
}

// LoadOverridesFile reads the table from disk. An empty path yields no
// overrides.
func LoadOverridesFile(path string, blocks int) ([]schedule.Override, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open override table: %w", err)
	}
	defer f.Close()
	return LoadOverrides(f, blocks)
}
