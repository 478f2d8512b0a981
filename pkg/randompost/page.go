// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package randompost

import (
	"bytes"
	"encoding/json"
	"text/template"
)

// Manifest is the ordered list of post URL fragments (YYYY/MM/DD/name)
type Manifest []string

var pageTemplate = template.Must(template.New("random").Parse(`<!DOCTYPE html>
<html lang="{{ .Lang }}">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
    body { background: #1e2129 }
    @media (prefers-color-scheme: light) {
        body { background: unset }
    }
</style>
</head>
<body>
<script>
    var posts = {{ .Posts }};
    var post = posts[Math.floor(Math.random() * posts.length)];
    var base = window.location.pathname.replace(/\/random(?:\/index\.html)?\/?$/, '');
    window.location.href = base + '/' + post + '/';
</script>
</body>
</html>
`))

type pageData struct {
	Lang  string
	Title string
	Posts string
}

// Render returns the redirect page choosing one of the manifest posts
func Render(manifest Manifest, opts Options) ([]byte, error) {
	if manifest == nil {
		manifest = Manifest{}
	}
	posts, err := json.Marshal(manifest)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	var b bytes.Buffer
	if err := pageTemplate.Execute(&b, &pageData{
		Lang:  opts.Lang,
		Title: opts.Title,
		Posts: string(posts),
	}); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
