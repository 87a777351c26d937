package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/taxonomy"
)

var taxonomyCommand = &cobra.Command{
	Use:   "taxonomy <resume-file>",
	Short: "Show which taxonomy categories a resume matches",
	Long: `Runs the skills taxonomy matcher against a resume text file and prints
the per-category scores and the context block that would be injected into
the extraction prompt. A debugging aid; no database or API access needed.`,
	Args: cobra.ExactArgs(1),
	RunE: detectTaxonomyCmd,
}

var (
	taxonomyFile string
	taxonomyMax  int
)

func init() {
	taxonomyCommand.Flags().StringVar(&taxonomyFile, "taxonomy", "skills_taxonomy.csv", "Path to the skills taxonomy CSV")
	taxonomyCommand.Flags().IntVar(&taxonomyMax, "max", 3, "Maximum number of categories to select")

	rootCmd.AddCommand(taxonomyCommand)
}

func detectTaxonomyCmd(_ *cobra.Command, args []string) error {
	resume, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	tax, err := taxonomy.Load(taxonomyFile)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	scored := tax.DetectCategories(string(resume))
	if len(scored) == 0 {
		fmt.Println("No categories matched")
		return nil
	}

	fmt.Println("Category scores:")
	for _, cs := range scored {
		fmt.Printf("  %-40s %.1f\n", cs.Name, cs.Score)
	}

	fmt.Println("\nPrompt context:")
	fmt.Println(tax.Context(string(resume), taxonomyMax))
	return nil
}
