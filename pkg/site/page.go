// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"
	"path"
	"strings"
)

// Page describes one documentation page discovered in the docs dir
type Page struct {
	// URL is the site-relative page URL, e.g. `posts/a/`
	URL string
	// SrcPath is the slash separated path relative to the docs dir
	SrcPath string
	// Name is the source file name without extension
	Name string
}

// NewPage creates a Page for a markdown source path relative to the docs dir
func NewPage(srcPath string, useDirectoryURLs bool) *Page {
	srcPath = strings.TrimPrefix(path.Clean(srcPath), "/")
	dir, file := path.Split(srcPath)
	stem := strings.TrimSuffix(file, path.Ext(file))
	isIndex := stem == "index" || stem == "README"
	if stem == "README" {
		stem = "index"
	}
	return &Page{
		URL:     pageURL(dir, stem, isIndex, useDirectoryURLs),
		SrcPath: srcPath,
		Name:    stem,
	}
}

func pageURL(dir, stem string, isIndex bool, useDirectoryURLs bool) string {
	if !useDirectoryURLs {
		return dir + stem + ".html"
	}
	if isIndex {
		if dir == "" {
			return "./"
		}
		return dir
	}
	return dir + stem + "/"
}

func (p *Page) String() string {
	return fmt.Sprintf("%s (%s)", p.URL, p.SrcPath)
}
