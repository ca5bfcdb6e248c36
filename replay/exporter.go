package replay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/sketch"
)

// FileExporter returns an Exporter that writes files under dir, choosing
// the format from each path's extension. Paths must stay inside dir.
func FileExporter(dir string) Exporter {
	return func(s *sketch.Surface, path string) (err error) {
		if !filepath.IsLocal(path) {
			return fmt.Errorf("%w: export path %q escapes output directory", ErrInvalidAction, path)
		}
		format, err := sketch.ParseFormat(path)
		if err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(dir, path))
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		sketch.Logger().Info("replay: export", "path", f.Name(), "format", format)
		return s.Export(f, format)
	}
}
