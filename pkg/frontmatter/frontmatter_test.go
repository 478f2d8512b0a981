// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package frontmatter_test

import (
	"errors"
	"strings"

	"github.com/gardener/postforge/pkg/frontmatter"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Frontmatter", func() {
	DescribeTable("Parse",
		func(doc string, want *frontmatter.Meta) {
			got, err := frontmatter.Parse(strings.NewReader(doc))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("date only", "---\ndate: 2023-05-01\n---\n# A\n",
			&frontmatter.Meta{Date: "2023/05/01"}),
		Entry("draft post", "---\ndate: 2023-06-02\ndraft: true\n---\n",
			&frontmatter.Meta{Date: "2023/06/02", Draft: true}),
		Entry("draft false", "---\ndate: 2023-06-02\ndraft: false\n---\n",
			&frontmatter.Meta{Date: "2023/06/02"}),
		Entry("unknown keys are ignored", "---\ntitle: Hello\ntags: [a, b]\ndate: 2023-05-01\n---\n",
			&frontmatter.Meta{Date: "2023/05/01"}),
		Entry("keys after the closing delimiter are ignored", "---\ntitle: Hello\n---\ndate: 2023-05-01\ndraft: true\n",
			&frontmatter.Meta{}),
		Entry("keys before the opening delimiter are ignored", "draft: true\n---\ndate: 2023-05-01\n---\n",
			&frontmatter.Meta{Date: "2023/05/01"}),
		Entry("no front matter", "# Title\n\nbody\n", &frontmatter.Meta{}),
		Entry("empty document", "", &frontmatter.Meta{}),
		Entry("surrounding whitespace", "  ---  \n  date:   2023-05-01  \n---", &frontmatter.Meta{Date: "2023/05/01"}),
		Entry("quoted date", "---\ndate: \"2023-05-01\"\n---\n", &frontmatter.Meta{Date: "2023/05/01"}),
		Entry("date with time", "---\ndate: 2023-05-01 23:10:00\n---\n", &frontmatter.Meta{Date: "2023/05/01"}),
		Entry("date with zone keeps the declared day", "---\ndate: 2023-05-01T23:30:00-05:00\n---\n", &frontmatter.Meta{Date: "2023/05/01"}),
		Entry("CRLF line endings", "---\r\ndate: 2023-05-01\r\ndraft: true\r\n---\r\n", &frontmatter.Meta{Date: "2023/05/01", Draft: true}),
	)

	It("fails on unclosed front matter", func() {
		_, err := frontmatter.Parse(strings.NewReader("---\ndate: 2023-05-01\n# body"))
		Expect(err).To(MatchError(frontmatter.ErrFrontMatterNotClosed))
	})

	It("fails on dates that are not ISO-8601", func() {
		_, err := frontmatter.Parse(strings.NewReader("---\ndate: May 1st, 2023\n---\n"))
		var dateErr *frontmatter.DateError
		Expect(errors.As(err, &dateErr)).To(BeTrue())
		Expect(dateErr.Value).To(Equal("May 1st, 2023"))
	})

	It("parses standalone dates", func() {
		Expect(frontmatter.ParseDate("2025-01-09")).To(Equal("2025/01/09"))
		_, err := frontmatter.ParseDate("2025-13-40")
		Expect(err).To(HaveOccurred())
	})
})
