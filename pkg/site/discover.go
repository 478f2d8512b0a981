// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"k8s.io/klog/v2"
)

const markdownPattern = "**/*.md"

// Discover collects the markdown pages under the config docs dir.
// Paths matching one of the exclude globs and hidden files are skipped.
func Discover(cfg *Config, excludes []string) ([]*Page, error) {
	return DiscoverFS(os.DirFS(cfg.DocsDir), cfg.UseDirectoryURLs, excludes)
}

// DiscoverFS collects the markdown pages of fsys
func DiscoverFS(fsys fs.FS, useDirectoryURLs bool, excludes []string) ([]*Page, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	matches, err := doublestar.Glob(fsys, markdownPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list markdown sources: %w", err)
	}
	sort.Strings(matches)
	pages := make([]*Page, 0, len(matches))
	for _, match := range matches {
		if hidden(match) {
			continue
		}
		if excluded(match, excludes) {
			klog.V(4).Infof("excluding %s", match)
			continue
		}
		pages = append(pages, NewPage(match, useDirectoryURLs))
	}
	return pages, nil
}

func excluded(name string, excludes []string) bool {
	for _, pattern := range excludes {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func hidden(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
