// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import "path/filepath"

// Config is the subset of the site configuration the build hooks work with.
// Copyright is the only field a hook is allowed to change.
type Config struct {
	// Copyright is a template string, e.g. "© {year} Example"
	Copyright string
	// DocsDir is the documentation sources root
	DocsDir string
	// SiteDir is the generated site output root
	SiteDir string
	// UseDirectoryURLs selects `posts/a/` over `posts/a.html` style URLs
	UseDirectoryURLs bool
	// ConfigFilePath is the path of the loaded site configuration file
	ConfigFilePath string
}

// ProjectRoot returns the directory holding the site configuration file
func (c *Config) ProjectRoot() string {
	return filepath.Dir(c.ConfigFilePath)
}
