// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package randompost_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gardener/postforge/pkg/osfakes/osshim/osshimfakes"
	"github.com/gardener/postforge/pkg/randompost"
	"github.com/gardener/postforge/pkg/site"
	"github.com/gardener/postforge/pkg/site/sitefakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type written struct {
	name string
	path string
	blob []byte
}

type recordingWriter struct {
	writes []written
	err    error
}

func (w *recordingWriter) Write(name, path string, blob []byte) error {
	if w.err != nil {
		return w.err
	}
	w.writes = append(w.writes, written{name, path, blob})
	return nil
}

var _ = Describe("Builder", func() {
	var (
		ctx      context.Context
		cfg      *site.Config
		sources  map[string]string
		fakeOs   *osshimfakes.FakeOs
		writer   *recordingWriter
		registry *sitefakes.FakeFileRegistry
		pages    *sitefakes.FakePages
		builder  *randompost.Builder
		mode     site.BuildMode
		err      error
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = &site.Config{
			DocsDir:          filepath.Join("blog", "docs"),
			SiteDir:          filepath.Join("blog", "site"),
			UseDirectoryURLs: true,
			ConfigFilePath:   filepath.Join("blog", "mkdocs.yml"),
		}
		sources = map[string]string{
			"posts/a.md": "---\ndate: 2023-05-01\n---\n# A\n",
			"posts/b.md": "---\ndate: 2023-06-02\ndraft: true\n---\n# B\n",
		}
		fakeOs = &osshimfakes.FakeOs{}
		fakeOs.OpenCalls(func(name string) (io.ReadCloser, error) {
			rel, err := filepath.Rel(cfg.DocsDir, name)
			if err != nil {
				return nil, err
			}
			content, ok := sources[filepath.ToSlash(rel)]
			if !ok {
				return nil, os.ErrNotExist
			}
			return io.NopCloser(strings.NewReader(content)), nil
		})
		fakeOs.IsNotExistCalls(os.IsNotExist)
		writer = &recordingWriter{}
		registry = &sitefakes.FakeFileRegistry{}
		pages = &sitefakes.FakePages{}
		pages.PagesReturns([]*site.Page{
			site.NewPage("index.md", true),
			site.NewPage("posts/a.md", true),
			site.NewPage("about.md", true),
			site.NewPage("posts/b.md", true),
		})
		builder = &randompost.Builder{Os: fakeOs, Writer: writer}
		mode = site.OneShot
	})

	JustBeforeEach(func() {
		err = builder.OnFiles(ctx, pages, registry, cfg, mode)
	})

	manifestOf := func(blob []byte) string {
		for _, line := range strings.Split(string(blob), "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "var posts = ") {
				return strings.TrimSuffix(strings.TrimPrefix(line, "var posts = "), ";")
			}
		}
		return ""
	}

	When("building once", func() {
		It("lists dated posts and skips drafts", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(writer.writes).To(HaveLen(1))
			Expect(manifestOf(writer.writes[0].blob)).To(Equal(`["2023/05/01/a"]`))
		})

		It("only reads sources of posts", func() {
			Expect(fakeOs.OpenCallCount()).To(Equal(2))
			Expect(fakeOs.OpenArgsForCall(0)).To(Equal(filepath.Join("blog", "docs", "posts", "a.md")))
			Expect(fakeOs.OpenArgsForCall(1)).To(Equal(filepath.Join("blog", "docs", "posts", "b.md")))
		})

		It("writes the page into the cache dir", func() {
			Expect(writer.writes[0].name).To(Equal("index.html"))
			Expect(writer.writes[0].path).To(Equal(filepath.Join("blog", ".cache", "random-posts", "random")))
		})

		It("registers the page under random/ in the site dir", func() {
			Expect(registry.RegisterCallCount()).To(Equal(1))
			f := registry.RegisterArgsForCall(0)
			Expect(f).To(Equal(&site.File{
				Path:             "index.html",
				SrcDir:           filepath.Join("blog", ".cache", "random-posts", "random"),
				DestDir:          filepath.Join("blog", "site", "random"),
				UseDirectoryURLs: true,
			}))
			Expect(f.URL(cfg.SiteDir)).To(Equal("random/"))
		})
	})

	When("serving", func() {
		BeforeEach(func() {
			mode = site.Serve
		})
		It("keeps drafts in page order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(manifestOf(writer.writes[0].blob)).To(Equal(`["2023/05/01/a","2023/06/02/b"]`))
		})
	})

	When("pages are not in chronological order", func() {
		BeforeEach(func() {
			pages.PagesReturns([]*site.Page{
				site.NewPage("posts/b.md", true),
				site.NewPage("posts/a.md", true),
			})
			mode = site.Serve
		})
		It("follows the page order", func() {
			Expect(manifestOf(writer.writes[0].blob)).To(Equal(`["2023/06/02/b","2023/05/01/a"]`))
		})
	})

	When("there are no posts", func() {
		BeforeEach(func() {
			pages.PagesReturns([]*site.Page{site.NewPage("index.md", true)})
		})
		It("still generates and registers the page with an empty list", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(manifestOf(writer.writes[0].blob)).To(Equal(`[]`))
			Expect(registry.RegisterCallCount()).To(Equal(1))
		})
	})

	When("a post has no date", func() {
		BeforeEach(func() {
			sources["posts/c.md"] = "---\ntitle: C\n---\n"
			pages.PagesReturns([]*site.Page{
				site.NewPage("posts/a.md", true),
				site.NewPage("posts/c.md", true),
			})
		})
		It("fails naming the post", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("date is not found at post 'posts/c.md'"))
			var missing *randompost.MissingDateError
			Expect(errors.As(err, &missing)).To(BeTrue())
			Expect(missing.SrcPath).To(Equal("posts/c.md"))
		})
		It("writes and registers nothing", func() {
			Expect(writer.writes).To(BeEmpty())
			Expect(registry.RegisterCallCount()).To(Equal(0))
		})
	})

	When("a draft has no date in serve mode", func() {
		BeforeEach(func() {
			sources["posts/b.md"] = "---\ndraft: true\n---\n"
			mode = site.Serve
		})
		It("fails as well", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("posts/b.md"))
		})
	})

	When("a post has no front matter at all", func() {
		BeforeEach(func() {
			sources["posts/a.md"] = "# A\n\nNo header here.\n"
		})
		It("fails with a date not found error", func() {
			var missing *randompost.MissingDateError
			Expect(errors.As(err, &missing)).To(BeTrue())
			Expect(missing.SrcPath).To(Equal("posts/a.md"))
		})
	})

	When("several posts are broken", func() {
		BeforeEach(func() {
			sources["posts/a.md"] = "no header"
			sources["posts/b.md"] = "---\ndate: yesterday\n---\n"
		})
		It("reports all of them", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("posts/a.md"))
			Expect(err.Error()).To(ContainSubstring("posts/b.md"))
		})
	})

	When("a post source is missing", func() {
		BeforeEach(func() {
			delete(sources, "posts/a.md")
		})
		It("fails", func() {
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})

	When("the writer fails", func() {
		BeforeEach(func() {
			writer.err = errors.New("disk full")
		})
		It("does not register the page", func() {
			Expect(err).To(MatchError("disk full"))
			Expect(registry.RegisterCallCount()).To(Equal(0))
		})
	})

	When("the cache dir is absolute", func() {
		BeforeEach(func() {
			builder.CacheDir = filepath.Join(string(filepath.Separator), "tmp", "cache")
		})
		It("writes there", func() {
			Expect(writer.writes[0].path).To(Equal(filepath.Join(string(filepath.Separator), "tmp", "cache", "random")))
		})
	})

	When("run twice", func() {
		It("produces identical pages", func() {
			Expect(builder.OnFiles(ctx, pages, registry, cfg, mode)).To(Succeed())
			Expect(writer.writes).To(HaveLen(2))
			Expect(writer.writes[1].blob).To(Equal(writer.writes[0].blob))
		})
	})

	When("the context is cancelled", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(context.Background())
			cancel()
		})
		It("stops", func() {
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
