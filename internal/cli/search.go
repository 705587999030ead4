package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeloras/ssh-manager/internal/profile"
	"github.com/zeloras/ssh-manager/internal/search"
	"github.com/zeloras/ssh-manager/internal/stats"
)

// SearchOutput represents search results for JSON output.
type SearchOutput struct {
	Query   string           `json:"query"`
	Matches []profile.Record `json:"matches"`
}

// newSearchCmd creates the search command.
func (cli *CLI) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search profiles by name, host, username, description or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			return cli.runSearch(args[0], format)
		},
	}
}

func (cli *CLI) runSearch(query string, format OutputFormat) error {
	output := NewOutputWriter(format)
	matches := search.Search(cli.Registry.List(), query)

	records := make([]profile.Record, 0, len(matches))
	for _, p := range matches {
		records = append(records, p.ToRecord())
	}
	result := SearchOutput{Query: query, Matches: records}

	if len(matches) == 0 {
		return output.Write(result, func() {
			fmt.Printf("No profiles found matching %q\n", query)
		})
	}

	return output.Write(result, func() {
		fmt.Printf("Found %d profile(s) matching %q:\n\n", len(matches), query)
		for i, p := range matches {
			fmt.Printf("%d. %s (%s)\n", i+1, p.Name, p.Target())
		}
	})
}

// newStatsCmd creates the stats command.
func (cli *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show profile statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			return cli.runStats(format)
		},
	}
}

func (cli *CLI) runStats(format OutputFormat) error {
	output := NewOutputWriter(format)
	s := stats.Compute(cli.Registry.List())

	if s.Total == 0 {
		return output.Write(s, func() {
			fmt.Println("No profiles to analyze.")
		})
	}

	return output.Write(s, func() {
		fmt.Println("SSH profile statistics:")
		fmt.Printf("  Total profiles:  %d\n", s.Total)
		fmt.Printf("  With SSH keys:   %d\n", s.WithKeys)
		fmt.Printf("  With jump hosts: %d\n", s.WithJumpHosts)
		fmt.Printf("  Never used:      %d\n", s.NeverUsed)
		fmt.Printf("  Most common port: %d\n", s.MostCommonPort)

		if len(s.MostUsed) > 0 && s.MostUsed[0].UseCount > 0 {
			fmt.Println("\nMost used:")
			for i, u := range s.MostUsed {
				if u.UseCount == 0 {
					break
				}
				fmt.Printf("  %d. %s: %d times\n", i+1, u.Name, u.UseCount)
			}
		}
	})
}
