package cli

import (
	"fmt"
	"strings"

	"github.com/andsko/chorus/spotify"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		types  []string
		limit  int
		market string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search albums, artists, playlists and tracks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.Join(args, " ")

			client, closeFn, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			searchTypes := make([]spotify.SearchType, len(types))
			for i, t := range types {
				searchTypes[i] = spotify.SearchType(t)
			}

			var opts []spotify.RequestOption
			if limit > 0 {
				opts = append(opts, spotify.WithLimit(limit))
			}
			if market != "" {
				opts = append(opts, spotify.WithMarket(market))
			}

			result, err := client.Search(cmd.Context(), q, searchTypes, opts...)
			if err != nil {
				return err
			}

			if result.Artists != nil && len(result.Artists.Items) > 0 {
				fmt.Printf("Artists (%d):\n", result.Artists.Total)
				for _, a := range result.Artists.Items {
					fmt.Printf("  %s\n", a.Name)
				}
			}
			if result.Albums != nil && len(result.Albums.Items) > 0 {
				fmt.Printf("Albums (%d):\n", result.Albums.Total)
				for _, a := range result.Albums.Items {
					fmt.Printf("  %s (%s)\n", a.Name, a.ReleaseDate)
				}
			}
			if result.Tracks != nil && len(result.Tracks.Items) > 0 {
				fmt.Printf("Tracks (%d):\n", result.Tracks.Total)
				for _, t := range result.Tracks.Items {
					fmt.Printf("  %s — %s\n", t.Name, t.Album.Name)
				}
			}
			if result.Playlists != nil && len(result.Playlists.Items) > 0 {
				fmt.Printf("Playlists (%d):\n", result.Playlists.Total)
				for _, p := range result.Playlists.Items {
					fmt.Printf("  %s (%d tracks)\n", p.Name, p.Tracks.Total)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&types, "type", nil, "item types to search (album, artist, playlist, track)")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of items per type (1..50)")
	cmd.Flags().StringVar(&market, "market", "", "ISO 3166-1 alpha-2 country code or from_token")
	return cmd
}
