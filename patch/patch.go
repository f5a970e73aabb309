package patch

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Patcher disables the excluded columns in a configuration file.
// Notices about every disabled column are written to out.
type Patcher struct {
	log        *zap.Logger
	out        io.Writer
	exclusions ExclusionMap
}

func NewPatcher(log *zap.Logger, out io.Writer) *Patcher {
	return &Patcher{
		log:        log,
		out:        out,
		exclusions: Problematic,
	}
}

// Fix rewrites the configuration at path with the excluded columns
// disabled and returns how many columns matched the exclusion map.
// Already disabled columns are counted too, so a repeated run reports
// the same number.
func (p *Patcher) Fix(path string) (fixed int, err error) {
	defer p.log.Debug("configuration patched",
		zap.String("path", path),
		zap.Int("fixed", fixed),
		zap.Error(err),
	)

	doc, err := Load(path)
	if err != nil {
		return 0, err
	}
	fixed = p.Apply(doc)
	if err := Save(doc, path); err != nil {
		return 0, err
	}
	return fixed, nil
}

// Apply disables the excluded columns in place.
func (p *Patcher) Apply(doc *Document) int {
	var fixed int
	for _, table := range doc.Tables() {
		excluded, ok := p.exclusions[table.Name()]
		if !ok {
			continue
		}
		for _, col := range table.Columns() {
			if !excluded.Contains(col.Name()) {
				continue
			}
			if !col.Enabled() {
				p.log.Debug("column was already disabled",
					zap.String("table", table.Name()),
					zap.String("column", col.Name()),
				)
			}
			col.Disable()
			fmt.Fprintf(p.out, "Disabled %s.%s\n", table.Name(), col.Name())
			fixed++
		}
	}
	return fixed
}

// Load reads and parses the configuration file. Nothing is written to
// disk before both steps succeed.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	var doc Document
	if err := json.Unmarshal(data, &doc.root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &doc, nil
}

// Save writes the document back to path. The document is written to a
// temporary file next to the target and renamed over it, so a failed
// write never leaves a truncated configuration.
func Save(doc *Document, path string) error {
	data, err := json.MarshalIndent(&doc.root, "", "  ")
	if err != nil {
		return xerrors.Errorf("encode configuration: %w", err)
	}

	mode := fs.FileMode(0o644)
	if fileInfo, err := os.Stat(path); err == nil {
		mode = fileInfo.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return &IOError{Op: "write", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
