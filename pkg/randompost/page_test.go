// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package randompost_test

import (
	"github.com/gardener/postforge/pkg/randompost"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Render", func() {
	It("embeds the manifest as a JSON array", func() {
		doc, err := randompost.Render(randompost.Manifest{"2023/05/01/a", "2023/06/02/b"}, randompost.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(doc)).To(ContainSubstring(`var posts = ["2023/05/01/a","2023/06/02/b"];`))
		Expect(string(doc)).To(HavePrefix("<!DOCTYPE html>"))
	})

	It("renders an empty manifest as an empty array", func() {
		doc, err := randompost.Render(nil, randompost.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(doc)).To(ContainSubstring("var posts = [];"))
	})

	It("strips the random page path before navigating", func() {
		doc, err := randompost.Render(randompost.Manifest{}, randompost.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(doc)).To(ContainSubstring(`replace(/\/random(?:\/index\.html)?\/?$/, '')`))
		Expect(string(doc)).To(ContainSubstring(`window.location.href = base + '/' + post + '/';`))
	})

	It("escapes script breaking names", func() {
		doc, err := randompost.Render(randompost.Manifest{"2023/05/01/</script>"}, randompost.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(doc)).To(ContainSubstring(`"2023/05/01/\u003c/script\u003e"`))
		Expect(string(doc)).NotTo(ContainSubstring(`/</script>`))
	})

	It("uses the configured language and title", func() {
		doc, err := randompost.Render(randompost.Manifest{}, randompost.Options{Lang: "zh", Title: "<Random>"})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(doc)).To(ContainSubstring(`<html lang="zh">`))
		Expect(string(doc)).To(ContainSubstring(`<title>&lt;Random&gt;</title>`))
	})

	It("is deterministic", func() {
		m := randompost.Manifest{"2023/05/01/a"}
		first, err := randompost.Render(m, randompost.Options{})
		Expect(err).NotTo(HaveOccurred())
		second, err := randompost.Render(m, randompost.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})
})
