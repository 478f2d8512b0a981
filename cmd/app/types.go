// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// options encapsulates the flag values of a build
type options struct {
	ConfigFile      string   `mapstructure:"config-file"`
	SiteDir         string   `mapstructure:"site-dir"`
	CacheDir        string   `mapstructure:"cache-dir"`
	Exclude         []string `mapstructure:"exclude"`
	DryRun          bool     `mapstructure:"dry-run"`
	RandomPageLang  string   `mapstructure:"random-page-lang"`
	RandomPageTitle string   `mapstructure:"random-page-title"`
}
