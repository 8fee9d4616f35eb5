package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

var (
	queryJSON    bool
	queryExplain bool
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask a single question and print the answer",
	Long: `Submits one question to the backend and prints the answer along with its
confidence, any conflicting evidence, and the retrieved sources.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the raw result as JSON")
	queryCmd.Flags().BoolVar(&queryExplain, "explain", false, "also explain the top sources")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	question := strings.Join(args, " ")
	result, err := queryService.Ask(cmd.Context(), question)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if result.IsError() {
		return fmt.Errorf("backend error: %s", result.Error)
	}

	printResult(cmd, result)

	if queryExplain && len(result.Provenance) > 0 {
		if err := printExplanations(cmd, question, result.Provenance); err != nil {
			return err
		}
	}
	return nil
}

// printResult renders the answer and its supporting evidence as text.
func printResult(cmd *cobra.Command, result *domain.QueryResult) {
	cmd.Println(result.Answer)
	cmd.Println()

	d := domain.DecomposeConfidence(
		result.ConfidenceLevel, result.ConfidenceScore, result.ConfidenceBreakdown)
	cmd.Printf("Confidence: %.0f%% (%s)\n", d.Percent, d.Level)
	for _, bar := range d.Bars {
		label := bar.Label
		if label == "" {
			label = bar.Key
		}
		cmd.Printf("  %-28s %.0f%% (weight %.0f%%)\n", label, bar.Value, bar.Weight)
	}

	if result.Reasoning != "" {
		cmd.Println()
		cmd.Println(result.Reasoning)
	}

	cmd.Printf("\nConflicts found: %d\n", len(result.ConflictingEvidence))
	for _, evidence := range result.ConflictingEvidence {
		pair := domain.ParseConflictPair(evidence)
		cmd.Printf("  [%s] %s\n", pair.Source, pair.Claim)
	}

	chunks := result.Provenance
	if len(chunks) == 0 {
		return
	}

	dist := domain.DistributeScores(chunks)
	cmd.Printf("\nSources (%d, avg similarity %.1f%%, %d high / %d medium / %d low):\n",
		len(chunks), domain.AverageSimilarity(chunks), dist.High, dist.Medium, dist.Low)
	for _, c := range domain.SortByRelevance(chunks) {
		name := c.MetadataString("filename")
		if name == "" {
			name = c.ID
		}
		cmd.Printf("  %-40s %-12s %.0f%%\n",
			domain.DisplayFilename(name), domain.InferDepartment(c), c.Score*100)
	}

	if groups := domain.GroupByDepartment(chunks); len(groups) > 0 {
		cmd.Println("\nDepartments:")
		for _, g := range groups {
			cmd.Printf("  %-20s %d (%.1f%%)\n", g.Department, g.Count, g.Percent)
		}
	}
}

// printExplanations fetches and prints explanations for the top sources.
func printExplanations(cmd *cobra.Command, question string, chunks []domain.EvidenceChunk) error {
	if explanationService == nil {
		return errors.New("explanation service not configured")
	}

	explanations, err := explanationService.ExplainTop(cmd.Context(), question, chunks)
	if err != nil {
		return fmt.Errorf("explain failed: %w", err)
	}
	if len(explanations) == 0 {
		cmd.Println("\nNo explanations available.")
		return nil
	}

	cmd.Println("\nWhy these sources:")
	for _, e := range explanations {
		title := e.Title
		if title == "" {
			title = e.ChunkID
		}
		cmd.Printf("  %s (%s)\n", title, e.Stance)
		if e.Relevance != "" {
			cmd.Printf("    %s\n", e.Relevance)
		}
		for _, claim := range e.KeyClaims {
			cmd.Printf("    - %s\n", claim)
		}
	}
	return nil
}
