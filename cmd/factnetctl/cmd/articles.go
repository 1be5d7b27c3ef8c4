package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"factnet/client"
	"factnet/domain"
	"factnet/internal/output"
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Browse fact-checked articles",
}

var articlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles with filtering and pagination",
	Long: `List articles from the server, one page at a time.

Examples:
  factnetctl articles list                          # First page
  factnetctl articles list --page 3 --limit 20      # Specific page
  factnetctl articles list --category Technology    # Filter by category
  factnetctl articles list --search climate         # Title/description search
  factnetctl articles list --verified               # Verified articles only
  factnetctl articles list --json                   # Output as JSON`,
	RunE: runArticlesList,
}

var articlesGetCmd = &cobra.Command{
	Use:   "get <article-id>",
	Short: "Show one article with its fact checks and feedback",
	Args:  cobra.ExactArgs(1),
	RunE:  runArticlesGet,
}

func init() {
	rootCmd.AddCommand(articlesCmd)
	articlesCmd.AddCommand(articlesListCmd)
	articlesCmd.AddCommand(articlesGetCmd)

	articlesListCmd.Flags().Int("page", 1, "page number")
	articlesListCmd.Flags().Int("limit", 10, "articles per page")
	articlesListCmd.Flags().String("category", "", "filter by category (\"all\" for no filter)")
	articlesListCmd.Flags().String("search", "", "search in title and description")
	articlesListCmd.Flags().String("sort", "", "sort order (newest)")
	articlesListCmd.Flags().String("from", "", "only articles published on or after this date (YYYY-MM-DD)")
	articlesListCmd.Flags().String("to", "", "only articles published on or before this date (YYYY-MM-DD)")
	articlesListCmd.Flags().Bool("verified", false, "only verified articles")
	articlesListCmd.Flags().String("source", "", "filter by source name")
	articlesListCmd.Flags().Bool("json", false, "output as JSON")

	articlesGetCmd.Flags().Bool("json", false, "output as JSON")
}

func runArticlesList(cmd *cobra.Command, args []string) error {
	opts := client.ListOptions{}
	opts.Page, _ = cmd.Flags().GetInt("page")
	opts.Limit, _ = cmd.Flags().GetInt("limit")
	opts.Category, _ = cmd.Flags().GetString("category")
	opts.Search, _ = cmd.Flags().GetString("search")
	opts.Sort, _ = cmd.Flags().GetString("sort")
	opts.From, _ = cmd.Flags().GetString("from")
	opts.To, _ = cmd.Flags().GetString("to")
	opts.Source, _ = cmd.Flags().GetString("source")
	if cmd.Flags().Changed("verified") {
		verified, _ := cmd.Flags().GetBool("verified")
		opts.Verified = &verified
	}

	list, err := newAPIClient().GetArticles(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return outputJSON(list)
	}

	if list.TotalArticles == 0 {
		printer.Print("No articles found.")
		return nil
	}

	bookmarks, err := openBookmarks()
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"", "ID", "TITLE", "SOURCE", "CATEGORY", "PUBLISHED", "SCORE", "VOTES"})
	for _, a := range list.Articles {
		mark := ""
		if bookmarks.Contains(a.ArticleID) {
			mark = "*"
		}
		table.AddRow([]string{
			mark,
			shortID(a.ArticleID),
			truncate(a.Title, 60),
			a.Source,
			a.Category,
			a.PublishedDate.Format("2006-01-02"),
			printer.ScoreBadge(a.FactCheckScore),
			fmt.Sprintf("+%d/-%d", a.Upvotes, a.Downvotes),
		})
	}
	table.Render()

	printer.Print("")
	printer.Print("%s", paginationFooter(list))

	return nil
}

func runArticlesGet(cmd *cobra.Command, args []string) error {
	article, err := newAPIClient().GetArticleByID(cmd.Context(), args[0])
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("article %s not found", args[0])
		}
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return outputJSON(article)
	}

	printer.Print("%s", article.Title)
	printer.Print("")
	printer.Print("  ID:         %s", article.ArticleID)
	printer.Print("  URL:        %s", article.URL)
	printer.Print("  Source:     %s", article.Source)
	printer.Print("  Category:   %s", article.Category)
	printer.Print("  Published:  %s", article.PublishedDate.Format("2006-01-02 15:04"))
	printer.Print("  Score:      %s", printer.ScoreBadge(article.FactCheckScore))
	printer.Print("  Votes:      +%d/-%d", article.Upvotes, article.Downvotes)
	if article.Verified {
		verifiedBy := ""
		if article.VerifiedBy != nil {
			verifiedBy = " by " + *article.VerifiedBy
		}
		printer.Print("  Verified:   yes%s", verifiedBy)
	}
	if article.Description != "" {
		printer.Print("")
		printer.Print("%s", article.Description)
	}

	if len(article.FactChecks) > 0 {
		printer.Print("")
		printer.Print("Fact checks:")
		for _, fc := range article.FactChecks {
			printer.Print("  - [%s] %s: %s", printer.ScoreBadge(fc.Score), fc.Reviewer, fc.Comment)
			for _, ev := range fc.Evidence {
				printer.Print("      %s", ev)
			}
		}
	}

	return nil
}

// paginationFooter renders the windowed page-number strip, e.g.
// "< 3 4 [5] 6 7 >  (page 5 of 12, 115 articles)".
func paginationFooter(list *domain.ArticleList) string {
	window := client.PageWindow(list.CurrentPage, list.TotalPages, client.MaxPageButtons)

	var b strings.Builder
	if list.CurrentPage > 1 {
		b.WriteString("< ")
	}
	for i, p := range window {
		if i > 0 {
			b.WriteString(" ")
		}
		if p == list.CurrentPage {
			b.WriteString("[" + strconv.Itoa(p) + "]")
		} else {
			b.WriteString(strconv.Itoa(p))
		}
	}
	if list.CurrentPage < list.TotalPages {
		b.WriteString(" >")
	}
	fmt.Fprintf(&b, "  (page %d of %d, %d articles)", list.CurrentPage, list.TotalPages, list.TotalArticles)
	return b.String()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shortID(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:12]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
