package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// AllFormats is the pseudo format name that writes every report format at once.
const AllFormats = "all"

// GenerateReports writes report once per built-in formatter into dir and
// returns the written paths in formatter name order.
func GenerateReports(report *domain.Report, loc Locale, dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	stamp := nowFunc().Format("20060102_150405")
	var paths []string
	for _, name := range AvailableFormatterNames() {
		f, err := GetFormatterByName(name, loc)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, fmt.Sprintf("compound_report_%s_%s.%s", stamp, name, Extension(f)))
		if _, err := WriteFormatted(f, report, path, nil); err != nil {
			return paths, fmt.Errorf("%s report: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
