package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [file]",
	Short: "Match a résumé against the skills catalog",
	Long: `Extracts the text of a résumé and prints the matched skills per catalog category as JSON.

With --list, prints the categories and keyword counts of the catalog instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkills,
}

var (
	skillsCatalog string
	skillsList    bool
	skillsOut     string
	skillsVerbose bool
)

func init() {
	skillsCmd.Flags().StringVar(&skillsCatalog, "catalog", "", "Path to a YAML skills catalog (defaults to the built-in catalog)")
	skillsCmd.Flags().BoolVar(&skillsList, "list", false, "List catalog categories instead of matching a file")
	skillsCmd.Flags().StringVarP(&skillsOut, "out", "o", "", "Output JSON file (defaults to stdout)")
	skillsCmd.Flags().BoolVarP(&skillsVerbose, "verbose", "v", false, "Print matched skills grouped by category")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(skillsCatalog)
	if err != nil {
		return err
	}

	if skillsList {
		_, err := fmt.Fprint(cmd.OutOrStdout(), describeCatalog(catalog))
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("a résumé file is required unless --list is given")
	}

	matched, err := skillsOf(args[0], catalog)
	if err != nil {
		return err
	}

	if skillsVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSkills(matched)
	}
	return writeJSON(cmd.OutOrStdout(), skillsOut, matched)
}

func skillsOf(path string, catalog *skills.Catalog) (types.SkillSet, error) {
	text, err := extractFile(path)
	if err != nil {
		return nil, err
	}
	return skills.ExtractSkills(text, catalog), nil
}

// describeCatalog renders one "category (n keywords)" line per category
func describeCatalog(catalog *skills.Catalog) string {
	var sb strings.Builder
	for _, category := range catalog.Categories() {
		sb.WriteString(fmt.Sprintf("%s (%d keywords)\n", category, len(catalog.Keywords(category))))
	}
	sb.WriteString(fmt.Sprintf("%d keywords in total\n", catalog.Size()))
	return sb.String()
}
