package cli

import (
	"fmt"
	"strings"

	"github.com/andsko/chorus/spotify"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse featured playlists, new releases and categories",
	}

	cmd.AddCommand(newBrowseNewReleasesCmd())
	cmd.AddCommand(newBrowseFeaturedCmd())
	cmd.AddCommand(newBrowseCategoriesCmd())
	return cmd
}

// browseOpts collects the query options shared by browse subcommands.
func browseOpts(country, locale string, limit int) []spotify.RequestOption {
	var opts []spotify.RequestOption
	if country != "" {
		opts = append(opts, spotify.WithCountry(country))
	}
	if locale != "" {
		opts = append(opts, spotify.WithLocale(locale))
	}
	if limit > 0 {
		opts = append(opts, spotify.WithLimit(limit))
	}
	return opts
}

func newBrowseNewReleasesCmd() *cobra.Command {
	var (
		country string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "new-releases",
		Short: "List new album releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeFn, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			releases, err := client.NewReleases(cmd.Context(), browseOpts(country, "", limit)...)
			if err != nil {
				return err
			}

			if releases.Message != "" {
				fmt.Printf("%s\n\n", releases.Message)
			}
			for _, album := range releases.Albums.Items {
				artists := make([]string, len(album.Artists))
				for i, a := range album.Artists {
					artists[i] = a.Name
				}
				fmt.Printf("%s — %s (%s)\n", strings.Join(artists, ", "), album.Name, album.ReleaseDate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of items to return (1..50)")
	return cmd
}

func newBrowseFeaturedCmd() *cobra.Command {
	var (
		country string
		locale  string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "List featured playlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeFn, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			featured, err := client.FeaturedPlaylists(cmd.Context(), browseOpts(country, locale, limit)...)
			if err != nil {
				return err
			}

			if featured.Message != "" {
				fmt.Printf("%s\n\n", featured.Message)
			}
			for _, pl := range featured.Playlists.Items {
				fmt.Printf("%s — %d tracks (by %s)\n", pl.Name, pl.Tracks.Total, pl.Owner.DisplayName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&locale, "locale", "", "desired language, e.g. es_MX")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of items to return (1..50)")
	return cmd
}

func newBrowseCategoriesCmd() *cobra.Command {
	var (
		country string
		locale  string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List browse categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeFn, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			categories, err := client.Categories(cmd.Context(), browseOpts(country, locale, limit)...)
			if err != nil {
				return err
			}

			for _, cat := range categories.Items {
				fmt.Printf("%-24s %s\n", cat.ID, cat.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&locale, "locale", "", "desired language, e.g. es_MX")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of items to return (1..50)")
	return cmd
}
