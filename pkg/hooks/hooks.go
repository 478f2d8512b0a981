// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package hooks

import (
	"context"

	"github.com/gardener/postforge/pkg/site"
)

// ConfigHook is invoked once the site configuration is loaded.
// It may change the configuration in place.
type ConfigHook interface {
	OnConfig(ctx context.Context, cfg *site.Config) error
}

// FilesHook is invoked once the page list is final. It reads the pages
// and may register additional output files.
type FilesHook interface {
	OnFiles(ctx context.Context, pages site.Pages, registry site.FileRegistry, cfg *site.Config, mode site.BuildMode) error
}
