// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"

	"github.com/gardener/postforge/cmd/gendocs"
	"github.com/gardener/postforge/pkg/site"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCommand creates a new root command and propagates
// the context to the Run callback closures of its subcommands
func NewCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postforge",
		Short: "Build-time hooks for a static blog",
		Long: `postforge patches the copyright year of the site configuration and
generates the random post page of a blog whose posts live under docs/posts.`,
		SilenceUsage: true,
	}
	AddFlags(cmd)

	cmd.AddCommand(newBuildCmd(ctx, "build", "Runs a one-shot build. Drafts are left out of the random post page."))
	cmd.AddCommand(newBuildCmd(ctx, site.ServeCommand, "Runs a live-preview build. Drafts are listed on the random post page."))
	cmd.AddCommand(newCopyrightCmd(ctx))
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	return cmd
}

func newBuildCmd(ctx context.Context, name string, short string) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exec(ctx, vip, cmd.Name(), cmd.OutOrStdout())
		},
	}
	configureFlags(cmd, vip)
	return cmd
}

func newCopyrightCmd(ctx context.Context) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "copyright",
		Short: "Prints the copyright of the site configuration for the current year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			copyright, err := patchedCopyright(ctx, vip)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), copyright)
			return err
		},
	}
	configureSiteFlags(cmd, vip)
	return cmd
}
