// Package docs embeds the user documentation topics served by the
// `ptrack topic` command.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic returns the content of a documentation topic, or an error listing
// the available topics when the name is unknown.
func Topic(name string) (string, error) {
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		topics, _ := Topics()
		return "", fmt.Errorf("topic %q not found (available: %s)", name, strings.Join(topics, ", "))
	}
	return string(content), nil
}

// All returns every topic concatenated, index first.
func All() (string, error) {
	topics, err := Topics()
	if err != nil {
		return "", err
	}
	var b bytes.Buffer
	for _, t := range append([]string{"readme"}, topics...) {
		content, err := Topic(t)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Topics lists all available documentation topics, sorted. The readme index
// itself is not a topic.
func Topics() ([]string, error) {
	var topics []string
	err := fs.WalkDir(docs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if base == "readme" {
			return nil
		}
		topics = append(topics, base)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(topics)
	return topics, nil
}
