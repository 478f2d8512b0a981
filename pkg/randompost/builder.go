// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package randompost

import (
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/gardener/postforge/pkg/frontmatter"
	"github.com/gardener/postforge/pkg/hooks"
	"github.com/gardener/postforge/pkg/osfakes/osshim"
	"github.com/gardener/postforge/pkg/site"
	"github.com/gardener/postforge/pkg/writers"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

const (
	// PostsPrefix is the URL prefix of blog posts
	PostsPrefix = "posts/"
	// DefaultCacheDir is where the page is generated, relative to the project root
	DefaultCacheDir = ".cache/random-posts"
	// OutputDir is the site directory serving the page
	OutputDir = "random"
	// OutputFile is the generated page file name
	OutputFile = "index.html"
)

// MissingDateError is returned for a post without a date
type MissingDateError struct {
	SrcPath string
}

func (e *MissingDateError) Error() string {
	return fmt.Sprintf("date is not found at post '%s'", e.SrcPath)
}

// Options customize the generated page
type Options struct {
	// CacheDir is absolute or relative to the project root
	CacheDir string
	Lang     string
	Title    string
}

func (o Options) withDefaults() Options {
	if o.CacheDir == "" {
		o.CacheDir = DefaultCacheDir
	}
	if o.Lang == "" {
		o.Lang = "en"
	}
	if o.Title == "" {
		o.Title = "Picking a random post…"
	}
	o.Lang = html.EscapeString(o.Lang)
	o.Title = html.EscapeString(o.Title)
	return o
}

// Builder generates the random post redirect page and registers it
// as an output file of the site build
type Builder struct {
	Os     osshim.Os
	Writer writers.Writer
	Options
}

var _ hooks.FilesHook = &Builder{}

// NewBuilder creates a Builder reading post sources from the file system
func NewBuilder(w writers.Writer, opts Options) *Builder {
	return &Builder{
		Os:      &osshim.OsShim{},
		Writer:  w,
		Options: opts,
	}
}

// OnFiles implements hooks.FilesHook
func (b *Builder) OnFiles(ctx context.Context, pages site.Pages, registry site.FileRegistry, cfg *site.Config, mode site.BuildMode) error {
	manifest, err := b.Collect(ctx, pages.Pages(), cfg, mode)
	if err != nil {
		return err
	}
	doc, err := Render(manifest, b.Options)
	if err != nil {
		return fmt.Errorf("failed to render random post page: %w", err)
	}
	srcDir := filepath.Join(b.cacheDir(cfg), OutputDir)
	if err := b.Writer.Write(OutputFile, srcDir, doc); err != nil {
		return err
	}
	registry.Register(&site.File{
		Path:             OutputFile,
		SrcDir:           srcDir,
		DestDir:          filepath.Join(cfg.SiteDir, OutputDir),
		UseDirectoryURLs: cfg.UseDirectoryURLs,
	})
	klog.Infof("random post page lists %d posts", len(manifest))
	return nil
}

// Collect builds the manifest of the posts among pages in page order.
// Every post must declare a date; drafts are kept in serve mode only.
func (b *Builder) Collect(ctx context.Context, pages []*site.Page, cfg *site.Config, mode site.BuildMode) (Manifest, error) {
	var (
		manifest = Manifest{}
		errs     *multierror.Error
	)
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !strings.HasPrefix(page.URL, PostsPrefix) {
			continue
		}
		meta, err := b.readMeta(cfg, page)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if meta.Date == "" {
			errs = multierror.Append(errs, &MissingDateError{SrcPath: page.SrcPath})
			continue
		}
		if meta.Draft && mode != site.Serve {
			klog.V(4).Infof("skipping draft %s", page.SrcPath)
			continue
		}
		manifest = append(manifest, meta.Date+"/"+page.Name)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (b *Builder) readMeta(cfg *site.Config, page *site.Page) (*frontmatter.Meta, error) {
	fn := filepath.Join(cfg.DocsDir, filepath.FromSlash(page.SrcPath))
	f, err := b.Os.Open(fn)
	if err != nil {
		if b.Os.IsNotExist(err) {
			return nil, fmt.Errorf("post source %s not found: %w", fn, err)
		}
		return nil, err
	}
	defer f.Close()
	meta, err := frontmatter.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read front matter of %s: %w", page.SrcPath, err)
	}
	return meta, nil
}

func (b *Builder) cacheDir(cfg *site.Config) string {
	dir := b.withDefaults().CacheDir
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(cfg.ProjectRoot(), dir)
}
