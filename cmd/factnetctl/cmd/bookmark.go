package cmd

import (
	"github.com/spf13/cobra"

	"factnet/client"
	"factnet/internal/output"
)

var bookmarkCmd = &cobra.Command{
	Use:     "bookmark",
	Aliases: []string{"bm"},
	Short:   "Manage local article bookmarks",
	Long: `Manage bookmarks stored locally on this machine. Bookmarks never
leave the client; the server is only contacted to resolve article details.

Examples:
  factnetctl bookmark add 3f2a9c
  factnetctl bookmark remove 3f2a9c
  factnetctl bookmark list`,
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add <article-id>",
	Short: "Bookmark an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkAdd,
}

var bookmarkRemoveCmd = &cobra.Command{
	Use:     "remove <article-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a bookmark",
	Args:    cobra.ExactArgs(1),
	RunE:    runBookmarkRemove,
}

var bookmarkListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bookmarked articles",
	RunE:    runBookmarkList,
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkRemoveCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)

	bookmarkListCmd.Flags().Bool("resolve", false, "fetch article details from the server")
}

func runBookmarkAdd(cmd *cobra.Command, args []string) error {
	store, err := openBookmarks()
	if err != nil {
		return err
	}

	added, err := store.Add(args[0])
	if err != nil {
		return err
	}
	if !added {
		printer.Print("Already bookmarked: %s", args[0])
		return nil
	}
	printer.Success("Bookmarked %s", args[0])
	return nil
}

func runBookmarkRemove(cmd *cobra.Command, args []string) error {
	store, err := openBookmarks()
	if err != nil {
		return err
	}

	removed, err := store.Remove(args[0])
	if err != nil {
		return err
	}
	if !removed {
		printer.Print("Not bookmarked: %s", args[0])
		return nil
	}
	printer.Success("Removed bookmark %s", args[0])
	return nil
}

func runBookmarkList(cmd *cobra.Command, args []string) error {
	store, err := openBookmarks()
	if err != nil {
		return err
	}

	ids := store.List()
	if len(ids) == 0 {
		printer.Print("No bookmarks.")
		return nil
	}

	resolve, _ := cmd.Flags().GetBool("resolve")
	if !resolve {
		for _, id := range ids {
			printer.Print("%s", id)
		}
		return nil
	}

	api := newAPIClient()
	table := output.NewTable([]string{"ID", "TITLE", "SOURCE", "SCORE"})
	for _, id := range ids {
		article, err := api.GetArticleByID(cmd.Context(), id)
		if err != nil {
			if client.IsNotFound(err) {
				table.AddRow([]string{shortID(id), "(no longer available)", "", ""})
				continue
			}
			return err
		}
		table.AddRow([]string{
			shortID(article.ArticleID),
			truncate(article.Title, 60),
			article.Source,
			printer.ScoreBadge(article.FactCheckScore),
		})
	}
	table.Render()
	return nil
}
