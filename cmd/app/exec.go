// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"io"
	"path/filepath"

	"github.com/gardener/postforge/cmd/configuration"
	"github.com/gardener/postforge/pkg/copyright"
	"github.com/gardener/postforge/pkg/core"
	"github.com/gardener/postforge/pkg/hooks"
	"github.com/gardener/postforge/pkg/osfakes/osshim"
	"github.com/gardener/postforge/pkg/randompost"
	"github.com/gardener/postforge/pkg/site"
	"github.com/gardener/postforge/pkg/writers"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper, command string, out io.Writer) error {
	var options options
	if err := vip.Unmarshal(&options); err != nil {
		return err
	}
	cfg, err := loadConfig(options)
	if err != nil {
		return err
	}
	klog.Infof("Config: %s", cfg.ConfigFilePath)
	klog.Infof("Output dir: %s", cfg.SiteDir)

	var (
		writer       writers.Writer = &writers.FSWriter{}
		dryRunWriter writers.DryRunWriter
	)
	if options.DryRun {
		dryRunWriter = writers.NewDryRunWritersFactory(out)
		writer = dryRunWriter.GetWriter("")
	}

	pipeline := &core.Pipeline{
		ConfigHooks: []hooks.ConfigHook{&copyright.Patcher{}},
		FilesHooks: []hooks.FilesHook{randompost.NewBuilder(writer, randompost.Options{
			CacheDir: options.CacheDir,
			Lang:     options.RandomPageLang,
			Title:    options.RandomPageTitle,
		})},
		Discover: func(cfg *site.Config) ([]*site.Page, error) {
			return site.Discover(cfg, options.Exclude)
		},
		Writer: writer,
		Os:     &osshim.OsShim{},
		DryRun: options.DryRun,
	}
	files, err := pipeline.Run(ctx, command, cfg)
	if err != nil {
		return err
	}
	if err = pipeline.Publish(files); err != nil {
		return err
	}
	klog.Infof("Copyright: %s", cfg.Copyright)
	if dryRunWriter != nil {
		return dryRunWriter.Flush()
	}
	return nil
}

func patchedCopyright(ctx context.Context, vip *viper.Viper) (string, error) {
	var options options
	if err := vip.Unmarshal(&options); err != nil {
		return "", err
	}
	cfg, err := loadConfig(options)
	if err != nil {
		return "", err
	}
	if err = new(copyright.Patcher).OnConfig(ctx, cfg); err != nil {
		return "", err
	}
	return cfg.Copyright, nil
}

func loadConfig(options options) (*site.Config, error) {
	configFile, err := configuration.ConfigFilePath(options.ConfigFile)
	if err != nil {
		return nil, err
	}
	cfg, err := new(configuration.DefaultConfigurationLoader).Load(configFile)
	if err != nil {
		return nil, err
	}
	if options.SiteDir != "" {
		if cfg.SiteDir, err = filepath.Abs(options.SiteDir); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
