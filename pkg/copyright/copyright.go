// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package copyright

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gardener/postforge/pkg/hooks"
	"github.com/gardener/postforge/pkg/site"
	"k8s.io/klog/v2"
)

// YearPlaceholder is the only placeholder a copyright template may use
const YearPlaceholder = "year"

var (
	// ErrMalformedTemplate signals an unbalanced `{` or `}`
	ErrMalformedTemplate = errors.New("malformed copyright template")
	// ErrUnknownPlaceholder signals a placeholder other than {year}
	ErrUnknownPlaceholder = errors.New("unknown copyright placeholder")
)

// Format substitutes {year} in template. `{{` and `}}` stand for
// literal braces.
func Format(template string, year int) (string, error) {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: expected '}' before end of %q", ErrMalformedTemplate, template)
			}
			name := template[i+1 : i+1+end]
			if name != YearPlaceholder {
				return "", fmt.Errorf("%w: {%s} in %q", ErrUnknownPlaceholder, name, template)
			}
			b.WriteString(fmt.Sprintf("%04d", year))
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %s in %q", ErrMalformedTemplate, strconv.Itoa(i), template)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// Patch replaces the config copyright template with its value for the
// year of now
func Patch(cfg *site.Config, now time.Time) error {
	copyright, err := Format(cfg.Copyright, now.Year())
	if err != nil {
		return err
	}
	cfg.Copyright = copyright
	return nil
}

// Patcher is the config hook patching the copyright year
type Patcher struct {
	// Now defaults to time.Now
	Now func() time.Time
}

var _ hooks.ConfigHook = &Patcher{}

// OnConfig implements hooks.ConfigHook
func (p *Patcher) OnConfig(_ context.Context, cfg *site.Config) error {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	if err := Patch(cfg, now()); err != nil {
		return err
	}
	klog.V(4).Infof("copyright: %s", cfg.Copyright)
	return nil
}
