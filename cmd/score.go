package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadgen-crm/internal/match"
	"github.com/sells-group/leadgen-crm/internal/model"
	"github.com/sells-group/leadgen-crm/internal/prospect"
)

var (
	scoreICP        string
	scoreHardFilter string
	scoreFormat     string
	scoreOutput     string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score and rank candidates without persisting anything",
	Long:  "Dry run of the matching engine: sources candidates for the ICP, applies the hard filter, and prints the ranked results.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if scoreICP == "" {
			return eris.New("--icp is required")
		}

		candidates := prospect.NewGenerator().Generate(scoreICP)
		scored := match.Rank(candidates, scoreICP, scoreHardFilter)

		return outputScored(scored, scoreFormat, scoreOutput)
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreICP, "icp", "", "ideal customer profile")
	scoreCmd.Flags().StringVar(&scoreHardFilter, "hard-filter", "", "strict pass/fail constraints applied before scoring")
	scoreCmd.Flags().StringVar(&scoreFormat, "format", "table", "output format: table or csv")
	scoreCmd.Flags().StringVar(&scoreOutput, "output", "", "write to file instead of stdout")
	rootCmd.AddCommand(scoreCmd)
}

func outputScored(scored []model.ScoredLead, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "csv":
		return writeScoredCSV(w, scored)
	case "table":
		return writeScoredTable(w, scored)
	default:
		return eris.Errorf("score: unsupported format %q", format)
	}
}

func writeScoredCSV(w *os.File, scored []model.ScoredLead) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"score", "name", "title", "company", "email", "industry", "location", "company_size", "reason"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "score: write CSV header")
	}

	for _, sl := range scored {
		row := []string{
			fmt.Sprintf("%d", sl.MatchScore),
			sl.Name,
			sl.Title,
			sl.Company,
			sl.Email,
			sl.Industry,
			sl.Location,
			sl.CompanySize,
			sl.MatchReason,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "score: write CSV row")
		}
	}
	return nil
}

func writeScoredTable(w *os.File, scored []model.ScoredLead) error {
	if len(scored) == 0 {
		_, err := fmt.Fprintln(w, "No matching candidates.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tNAME\tCOMPANY\tLOCATION\tREASON")
	for _, sl := range scored {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			sl.MatchScore, sl.Name, sl.Company, sl.Location, sl.MatchReason)
	}
	return eris.Wrap(tw.Flush(), "score: flush table")
}
