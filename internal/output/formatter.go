package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }

// builtInFormatters builds each available formatter for a locale.
var builtInFormatters = []func(Locale) Formatter{
	func(l Locale) Formatter { return ConsoleFormatter{Locale: l} },
	func(l Locale) Formatter { return ConsoleVerboseFormatter{Locale: l} },
	func(l Locale) Formatter { return CSVSummarizer{} },
	func(l Locale) Formatter { return CSVDetailedExporter{} },
	func(l Locale) Formatter { return HTMLFormatter{Locale: l} },
	func(l Locale) Formatter { return JSONFormatter{} },
	func(l Locale) Formatter { return YAMLFormatter{} },
	func(l Locale) Formatter { return PDFFormatter{Locale: l} },
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"verbose":      "console-verbose",
	"monthly":      "console-verbose",
	"table":        "console",
	"csv-detailed": "detailed-csv",
	"csv-summary":  "csv",
	"monthly-csv":  "detailed-csv",
	"html-report":  "html",
	"json-pretty":  "json",
	"yml":          "yaml",
}

// extensions maps canonical formatter names to report file extensions.
var extensions = map[string]string{
	"console":         "txt",
	"console-verbose": "txt",
	"csv":             "csv",
	"detailed-csv":    "csv",
	"html":            "html",
	"json":            "json",
	"yaml":            "yaml",
	"pdf":             "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter configured for loc.
func GetFormatterByName(name string, loc Locale) (Formatter, error) {
	n := NormalizeFormatName(name)
	for _, build := range builtInFormatters {
		if f := build(loc); f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, build := range builtInFormatters {
		names = append(names, build(DefaultLocale()).Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extension returns the file extension used for a formatter's reports.
func Extension(f Formatter) string {
	if ext, ok := extensions[f.Name()]; ok {
		return ext
	}
	return "txt"
}

// ReportFilename returns a timestamped report name for formatter f.
func ReportFilename(f Formatter) string {
	return fmt.Sprintf("compound_report_%s.%s", nowFunc().Format("20060102_150405"), Extension(f))
}

// WriteFormatted runs a formatter and writes its output to path, or to stdout
// when path is empty or "-". It returns where the output went.
func WriteFormatted(f Formatter, report *domain.Report, path string, stdout io.Writer) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("formatting %s: %w", f.Name(), err)
	}
	if path == "" || path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing %s output: %w", f.Name(), err)
		}
		return "stdout", nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
