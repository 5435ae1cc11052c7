package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Scaffold writes starter templates, a stylesheet and an example post
// into the directories named by cfg. Existing files are kept unless
// force is true. It returns the paths that were written.
func Scaffold(cfg Config, force bool) ([]string, error) {
	files := map[string]string{
		filepath.Join(cfg.StylesDir, "main.css"):        defaultStyles,
		filepath.Join(cfg.ContentDir, "hello-world.md"): defaultPost,
	}
	templates := NewTemplates(cfg.TemplatesDir)
	for name, content := range defaultTemplates {
		files[templates.Path(name)] = content
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var written []string
	for _, path := range paths {
		if !force {
			_, err := os.Stat(path)
			if err == nil {
				continue
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return written, err
			}
		}

		err := writeFile(path, files[path])
		if err != nil {
			return written, fmt.Errorf("scaffold: %w", err)
		}
		written = append(written, path)
	}

	return written, nil
}
