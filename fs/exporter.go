package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/docindex"
)

// LocationToPath converts an entry location to a relative markdown path.
// Example: "rules/#Growth-1" → rules/index.md, "#Intro-1" → index.md,
// "api#f" → api.md
func LocationToPath(location string) (string, error) {
	p, _, _ := strings.Cut(location, "#")

	if p == "" || p == "/" {
		return "index.md", nil
	}

	if strings.HasSuffix(p, "/") {
		p += "index.md"
	} else {
		p += ".md"
	}

	p = path.Clean(strings.TrimPrefix(p, "/"))
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", docindex.Errorf(docindex.EINVALID, "location %q escapes export directory", location)
	}
	return p, nil
}

// Ensure Exporter implements docindex.Exporter at compile time.
var _ docindex.Exporter = (*Exporter)(nil)

// Exporter writes entries as markdown files, one file per page, with atomic
// replace semantics. Files are written to baseDir/name.tmp and moved to
// baseDir/name once every page has been written.
type Exporter struct {
	baseDir string
	now     func() time.Time
}

// NewExporter creates a new Exporter rooted at baseDir.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir, now: time.Now}
}

func (x *Exporter) tempDir(name string) string {
	return filepath.Join(x.baseDir, name+".tmp")
}

func (x *Exporter) finalDir(name string) string {
	return filepath.Join(x.baseDir, name)
}

// Export writes entries grouped by page.
func (x *Exporter) Export(ctx context.Context, name string, entries []*docindex.Entry) (err error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return docindex.Errorf(docindex.EINVALID, "invalid export name %q", name)
	}

	tmp := x.tempDir(name)
	if err := os.RemoveAll(tmp); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(tmp)
		}
	}()

	pages, order, err := groupByPath(entries)
	if err != nil {
		return err
	}

	for _, rel := range order {
		if err := ctx.Err(); err != nil {
			return err
		}

		fullPath := filepath.Join(tmp, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, []byte(FormatPage(pages[rel], x.now())), 0644); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(tmp, 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(x.finalDir(name)); err != nil {
		return err
	}
	return os.Rename(tmp, x.finalDir(name))
}

// groupByPath buckets entries by output file, keeping first-seen order.
func groupByPath(entries []*docindex.Entry) (map[string][]*docindex.Entry, []string, error) {
	pages := make(map[string][]*docindex.Entry)
	var order []string
	for _, e := range entries {
		rel, err := LocationToPath(e.Location)
		if err != nil {
			return nil, nil, err
		}
		if _, ok := pages[rel]; !ok {
			order = append(order, rel)
		}
		pages[rel] = append(pages[rel], e)
	}
	return pages, order, nil
}

// FormatPage formats the entries of one page with YAML frontmatter.
func FormatPage(entries []*docindex.Entry, exported time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	if len(entries) > 0 {
		b.WriteString("page: ")
		b.WriteString(entries[0].Page)
		b.WriteString("\n")
	}
	b.WriteString("exported: ")
	b.WriteString(exported.Format("2006-01-02"))
	b.WriteString("\n---\n")

	for _, e := range entries {
		b.WriteString("\n## ")
		b.WriteString(e.Title)
		b.WriteString("\n")
		if text := strings.TrimSpace(e.Text); text != "" {
			b.WriteString("\n")
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String()
}
