// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardener/postforge/pkg/site"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/pointer"
)

const (
	// DefaultConfigFileName is the site configuration file looked up in the working dir
	DefaultConfigFileName = "mkdocs.yml"
	// ConfigEnv overrides the site configuration file path
	ConfigEnv = "POSTFORGE_CONFIG"

	defaultDocsDir = "docs"
	defaultSiteDir = "site"
)

// Config is the site configuration file content the build hooks need.
// Every other key of the file is ignored.
type Config struct {
	Copyright        string  `yaml:"copyright"`
	DocsDir          *string `yaml:"docs_dir"`
	SiteDir          *string `yaml:"site_dir"`
	UseDirectoryURLs *bool   `yaml:"use_directory_urls"`
}

// Loader loads the site configuration
type Loader interface {
	Load(configFilePath string) (*site.Config, error)
}

// DefaultConfigurationLoader loads YAML site configuration files
type DefaultConfigurationLoader struct{}

// ConfigFilePath returns the site configuration file path. The ConfigEnv
// environment variable takes precedence over the given path.
func ConfigFilePath(path string) (string, error) {
	if configFilePath, found := os.LookupEnv(ConfigEnv); found {
		if configFilePath == "" {
			return "", fmt.Errorf("the provided environment variable %s is set to empty string", ConfigEnv)
		}
		return configFilePath, nil
	}
	if path == "" {
		return DefaultConfigFileName, nil
	}
	return path, nil
}

// Load reads the configuration file and resolves the docs and site dirs
// relative to the file location
func (d *DefaultConfigurationLoader) Load(configFilePath string) (*site.Config, error) {
	stat, err := os.Stat(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}
	applyDefaults(config)

	absPath, err := filepath.Abs(configFilePath)
	if err != nil {
		return nil, err
	}
	root := filepath.Dir(absPath)
	cfg := &site.Config{
		Copyright:        config.Copyright,
		DocsDir:          resolve(root, *config.DocsDir),
		SiteDir:          resolve(root, *config.SiteDir),
		UseDirectoryURLs: *config.UseDirectoryURLs,
		ConfigFilePath:   absPath,
	}
	if stat, err = os.Stat(cfg.DocsDir); err != nil {
		return nil, fmt.Errorf("docs dir %s: %w", cfg.DocsDir, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("docs dir %s is not a directory", cfg.DocsDir)
	}
	return cfg, nil
}

func applyDefaults(config *Config) {
	if config.DocsDir == nil {
		config.DocsDir = pointer.StringPtr(defaultDocsDir)
	}
	if config.SiteDir == nil {
		config.SiteDir = pointer.StringPtr(defaultSiteDir)
	}
	if config.UseDirectoryURLs == nil {
		config.UseDirectoryURLs = pointer.BoolPtr(true)
	}
}

func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}
