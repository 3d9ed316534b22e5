package main

import (
	"fmt"
	"os"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// init loads environment variables before any command runs
func init() {
	_ = godotenv.Load()
}

// rootCmd is the importer entry point. Every subcommand writes to the
// same Postgres instance the API serves from.
var rootCmd = &cobra.Command{
	Use:   "import",
	Short: "Congress Directory data importer",
	Long: `Imports and refreshes the data behind the congress directory.

Sources:
  legislators   unitedstates legislators-current.json
  governors     local governors-current.json
  committees    unitedstates committees + membership
  legislation   congress.gov sponsored/cosponsored counts
  ideology      govtrack sponsorship analysis scores
  news          gnews.io mention counts
  photos        unitedstates member portraits`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.InitDB()
	},
}

func main() {
	rootCmd.AddCommand(legislatorsCmd)
	rootCmd.AddCommand(governorsCmd)
	rootCmd.AddCommand(committeesCmd)
	rootCmd.AddCommand(legislationCmd)
	rootCmd.AddCommand(ideologyCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(photosCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
