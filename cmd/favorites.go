package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoritesJSON bool

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "List saved favorites",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		defer s.Close()

		favorites := s.tracker.Favorites()
		if favoritesJSON {
			return writeJSON(cmd.OutOrStdout(), favorites)
		}

		if len(favorites) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No saved favorites yet.")
			return nil
		}

		for _, f := range favorites {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), describeFavorite(f))
		}

		return nil
	},
}

var favoritesSaveCmd = &cobra.Command{
	Use:   "save <entry-id>",
	Short: "Save a logged entry as a favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		defer s.Close()

		entry, err := findEntry(s.tracker, args[0])
		if err != nil {
			return err
		}

		fav, err := s.tracker.SaveToFavorites(entry)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to favorites\n", fav.Name)

		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove <name-or-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a favorite",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		defer s.Close()

		fav, err := findFavorite(s.tracker, args[0])
		if err != nil {
			return err
		}

		s.tracker.RemoveFavorite(fav.ID)

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", fav.Name)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesSaveCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.Flags().BoolVar(&favoritesJSON, "json", false, "Output as JSON")
}
