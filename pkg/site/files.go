// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"path"
	"path/filepath"
)

// Pages gives read-only access to the finalized page list
//
//counterfeiter:generate . Pages
type Pages interface {
	// Pages returns the pages in iteration order
	Pages() []*Page
}

// FileRegistry accepts additional output files for the site build
//
//counterfeiter:generate . FileRegistry
type FileRegistry interface {
	// Register appends a file to the build output
	Register(f *File)
}

// File is an additional output file copied from SrcDir to DestDir
type File struct {
	// Path is the slash separated file path relative to both SrcDir and DestDir
	Path             string
	SrcDir           string
	DestDir          string
	UseDirectoryURLs bool
}

// AbsSrcPath returns the file source location
func (f *File) AbsSrcPath() string {
	return filepath.Join(f.SrcDir, filepath.FromSlash(f.Path))
}

// AbsDestPath returns the file location in the site output
func (f *File) AbsDestPath() string {
	return filepath.Join(f.DestDir, filepath.FromSlash(f.Path))
}

// URL returns the file URL relative to the site output root
func (f *File) URL(siteDir string) (string, error) {
	rel, err := filepath.Rel(siteDir, f.AbsDestPath())
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	dir, name := path.Split(rel)
	if f.UseDirectoryURLs && name == "index.html" {
		if dir == "" {
			return "./", nil
		}
		return dir, nil
	}
	return rel, nil
}

// Files is the page and file collection of one build
type Files struct {
	pages []*Page
	extra []*File
}

// NewFiles creates a Files collection from the discovered pages
func NewFiles(pages ...*Page) *Files {
	return &Files{pages: pages}
}

// Pages implements Pages#Pages
func (f *Files) Pages() []*Page {
	pages := make([]*Page, len(f.pages))
	copy(pages, f.pages)
	return pages
}

// Register implements FileRegistry#Register
func (f *Files) Register(file *File) {
	f.extra = append(f.extra, file)
}

// Extra returns the files registered in addition to the pages
func (f *Files) Extra() []*File {
	return f.extra
}
