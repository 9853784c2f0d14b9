package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cleared-dev/ledgersum/internal/config"
	"github.com/cleared-dev/ledgersum/internal/lineparser"
	"github.com/cleared-dev/ledgersum/internal/source"
	"github.com/cleared-dev/ledgersum/internal/statement"
)

// Format pairs a column spec with the line syntax of a statement file.
type Format struct {
	Name      string
	Spec      statement.ColumnSpec
	Separator rune
	Quote     rune // 0 disables quoting
}

// Parser returns a line parser for the format's syntax.
func (f Format) Parser() *lineparser.Parser {
	opts := []lineparser.Option{lineparser.WithSeparator(f.Separator)}
	if f.Quote != 0 {
		opts = append(opts, lineparser.WithBoundingCharacter(f.Quote))
	}
	return lineparser.New(opts...)
}

// Source returns a lazily loaded source reading lines in this format.
func (f Format) Source(lines source.LineReader, opts ...source.Option) *source.FileSource {
	return source.NewFileSource(lines, f.Spec, f.Parser(), opts...)
}

// FromConfig builds a Format from its config entry.
func FromConfig(cf config.Format) (Format, error) {
	if err := cf.Validate(); err != nil {
		return Format{}, err
	}
	f := Format{Name: cf.Name, Separator: lineparser.DefaultSeparator}
	switch cf.Kind {
	case config.KindSingle:
		f.Spec = statement.ForColumn(cf.AmountColumn)
	case config.KindTwo:
		f.Spec = statement.ForColumns(cf.ExpenseColumn, cf.IncomeColumn)
	}
	if cf.Separator != "" {
		f.Separator = []rune(cf.Separator)[0]
	}
	if cf.Quote != "" {
		f.Quote = []rune(cf.Quote)[0]
	}
	return f, nil
}

// Registry holds named formats.
type Registry struct {
	formats map[string]Format
}

// FileInfo describes a CSV file in a statement directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// Register adds a format. Panics on duplicate name.
func (r *Registry) Register(f Format) {
	key := strings.ToLower(f.Name)
	if _, ok := r.formats[key]; ok {
		panic("duplicate statement format: " + key)
	}
	r.formats[key] = f
}

// Replace adds a format, overwriting any existing one with the same name.
func (r *Registry) Replace(f Format) {
	r.formats[strings.ToLower(f.Name)] = f
}

// Get returns the format registered under name.
func (r *Registry) Get(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for k := range r.formats {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// LoadConfig registers every format in cfg, replacing built-ins of the same name.
func (r *Registry) LoadConfig(cfg *config.Config) error {
	for _, cf := range cfg.Formats {
		f, err := FromConfig(cf)
		if err != nil {
			return fmt.Errorf("format %q: %w", cf.Name, err)
		}
		r.Replace(f)
	}
	return nil
}

// DefaultRegistry returns a registry with the built-in formats:
// "debit-credit" (Debit/Credit columns) and "amount" (one signed Amount column).
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Format{
		Name:      "debit-credit",
		Spec:      statement.ForColumns("Debit", "Credit"),
		Separator: lineparser.DefaultSeparator,
		Quote:     '"',
	})
	r.Register(Format{
		Name:      "amount",
		Spec:      statement.ForColumn("Amount"),
		Separator: lineparser.DefaultSeparator,
		Quote:     '"',
	})
	return r
}

// Scan returns the CSV files directly inside dir, sorted by name.
// A missing directory yields no files.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statement dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
