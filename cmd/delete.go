package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a logged entry",
	Long: `Delete one food entry. The id may be shortened to any unique prefix,
as shown in brackets by 'macromind log'.`,
	Args: cobra.ExactArgs(1),
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

		s.tracker.DeleteEntry(entry.ID)

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", entry.Name)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
