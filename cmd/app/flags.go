// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"

	"github.com/gardener/postforge/pkg/randompost"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configureSiteFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("config-file", "f", "",
		"Site configuration file path. Defaults to mkdocs.yml in the working directory, POSTFORGE_CONFIG overrides it.")
	_ = vip.BindPFlag("config-file", command.Flags().Lookup("config-file"))
}

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	configureSiteFlags(command, vip)

	command.Flags().StringP("site-dir", "d", "",
		"Site output directory. Overrides site_dir from the site configuration.")
	_ = vip.BindPFlag("site-dir", command.Flags().Lookup("site-dir"))

	command.Flags().String("cache-dir", randompost.DefaultCacheDir,
		"Directory where generated pages are written before they are copied to the site. Relative paths are resolved against the project root.")
	_ = vip.BindPFlag("cache-dir", command.Flags().Lookup("cache-dir"))

	command.Flags().StringSlice("exclude", []string{},
		"Glob patterns (relative to the docs dir) of markdown sources that are not pages, e.g. 'drafts/**'.")
	_ = vip.BindPFlag("exclude", command.Flags().Lookup("exclude"))

	command.Flags().Bool("dry-run", false,
		"Runs the build end-to-end but instead of writing files, it will output the projected file hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().String("random-page-lang", "en",
		"The lang attribute of the random post page.")
	_ = vip.BindPFlag("random-page-lang", command.Flags().Lookup("random-page-lang"))

	command.Flags().String("random-page-title", "Picking a random post…",
		"The title of the random post page, shown while redirecting.")
	_ = vip.BindPFlag("random-page-title", command.Flags().Lookup("random-page-title"))
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
