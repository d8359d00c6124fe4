package dataset

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var bundled embed.FS

// Names lists the bundled datasets, sorted.
func Names() []string {
	entries, err := bundled.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Embedded parses the bundled dataset called name ("romania", "small").
func Embedded(name string) (*Document, error) {
	f, err := bundled.Open(path.Join("data", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownDataset, name, Names())
	}
	defer f.Close()

	return Parse(f)
}
