// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gardener/postforge/pkg/hooks"
	"github.com/gardener/postforge/pkg/osfakes/osshim"
	"github.com/gardener/postforge/pkg/site"
	"github.com/gardener/postforge/pkg/writers"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// DiscoverFunc lists the pages of a site
type DiscoverFunc func(cfg *site.Config) ([]*site.Page, error)

// Pipeline invokes the build hooks in lifecycle order:
// config hooks, page discovery, files hooks and publishing.
type Pipeline struct {
	ConfigHooks []hooks.ConfigHook
	FilesHooks  []hooks.FilesHook
	Discover    DiscoverFunc
	// Writer writes published files, it is rooted at the file system root
	Writer writers.Writer
	Os     osshim.Os
	// DryRun publishes file names only, without reading sources
	DryRun bool
}

// Run is the method that performs one build for the invoked command.
// Any hook error aborts the build.
func (p *Pipeline) Run(ctx context.Context, command string, cfg *site.Config) (*site.Files, error) {
	mode := site.ModeFromCommand(command)
	klog.Infof("Command %q runs a %s build", command, mode)
	for _, hook := range p.ConfigHooks {
		if err := hook.OnConfig(ctx, cfg); err != nil {
			return nil, fmt.Errorf("config hook %T failed: %w", hook, err)
		}
	}
	pages, err := p.Discover(cfg)
	if err != nil {
		return nil, err
	}
	klog.Infof("Discovered %d pages in %s", len(pages), cfg.DocsDir)
	files := site.NewFiles(pages...)
	for _, hook := range p.FilesHooks {
		if err := hook.OnFiles(ctx, files, files, cfg, mode); err != nil {
			return nil, fmt.Errorf("files hook %T failed: %w", hook, err)
		}
	}
	return files, nil
}

// Publish copies the registered extra files to their site destinations
func (p *Pipeline) Publish(files *site.Files) error {
	var errs *multierror.Error
	for _, f := range files.Extra() {
		var (
			blob []byte
			err  error
		)
		if !p.DryRun {
			if blob, err = p.Os.ReadFile(f.AbsSrcPath()); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("failed to read %s: %w", f.AbsSrcPath(), err))
				continue
			}
		}
		dest := f.AbsDestPath()
		if err = p.Writer.Write(filepath.Base(dest), filepath.Dir(dest), blob); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		klog.V(4).Infof("published %s -> %s", f.AbsSrcPath(), dest)
	}
	return errs.ErrorOrNil()
}
