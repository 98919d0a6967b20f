package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadgen-crm/internal/model"
)

var (
	campaignICP        string
	campaignHardFilter string
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Run a lead-generation campaign",
	Long:  "Sources candidates for the ICP, scores and ranks them, drafts outreach emails, and persists the resulting leads.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("campaign"); err != nil {
			return err
		}
		if campaignICP == "" {
			return eris.New("--icp is required")
		}

		ctx := cmd.Context()
		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		c, leads, err := env.workflow.Run(ctx, campaignICP, campaignHardFilter)
		if err != nil {
			return err
		}

		fmt.Printf("Campaign %d %s: %d leads\n\n", c.ID, c.Status, len(leads))
		if len(leads) == 0 {
			return nil
		}

		formatLeadTable(os.Stdout, leads)
		return nil
	},
}

func init() {
	campaignCmd.Flags().StringVar(&campaignICP, "icp", "", "ideal customer profile, e.g. \"marketing agencies in Austin with 10-50 employees\"")
	campaignCmd.Flags().StringVar(&campaignHardFilter, "hard-filter", "", "strict pass/fail constraints applied before scoring")
	rootCmd.AddCommand(campaignCmd)
}

func formatLeadTable(w *os.File, leads []model.Lead) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCORE\tNAME\tTITLE\tCOMPANY\tSTATUS")
	for _, l := range leads {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			l.ID, l.MatchScore, l.Name, l.Title, l.Company, l.Status)
	}
	tw.Flush()
}
