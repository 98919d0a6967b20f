package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadgen-crm/internal/model"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect and act on stored leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads, best match first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		campaignID, _ := cmd.Flags().GetInt64("campaign")

		var leads []model.Lead
		if campaignID > 0 {
			leads, err = env.store.GetLeadsByCampaign(ctx, campaignID)
		} else {
			leads, err = env.store.GetLeads(ctx)
		}
		if err != nil {
			return eris.Wrap(err, "leads list")
		}

		if len(leads) == 0 {
			fmt.Fprintln(os.Stderr, "No leads found.")
			return nil
		}

		formatLeadTable(os.Stdout, leads)
		return nil
	},
}

var leadsShowCmd = &cobra.Command{
	Use:   "show <lead-id>",
	Short: "Show a lead with its drafted email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return eris.Wrapf(err, "invalid lead id %q", args[0])
		}

		ctx := cmd.Context()
		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		lead, err := env.store.GetLead(ctx, id)
		if err != nil {
			return eris.Wrap(err, "leads show")
		}

		fmt.Printf("%s, %s at %s <%s>\n", lead.Name, lead.Title, lead.Company, lead.Email)
		fmt.Printf("Score:    %d\n", lead.MatchScore)
		fmt.Printf("Reason:   %s\n", lead.MatchReason)
		fmt.Printf("Status:   %s\n", lead.Status)
		if lead.SentAt != nil {
			fmt.Printf("Sent at:  %s\n", lead.SentAt.Format("2006-01-02 15:04:05"))
		}
		if lead.Notes != "" {
			fmt.Printf("Notes:    %s\n", lead.Notes)
		}
		fmt.Printf("\nSubject: %s\n\n%s\n", lead.EmailSubject, lead.EmailContent)
		return nil
	},
}

var leadsSendCmd = &cobra.Command{
	Use:   "send <lead-id> [lead-id...]",
	Short: "Mark leads as sent and count the messages",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		sent := 0
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return eris.Wrapf(err, "invalid lead id %q", arg)
			}
			if err := env.store.UpdateLeadStatus(ctx, id, model.LeadStatusSent); err != nil {
				fmt.Fprintf(os.Stderr, "lead %d: %v\n", id, err)
				continue
			}
			if err := env.store.IncrementMessagesSent(ctx); err != nil {
				return eris.Wrap(err, "leads send")
			}
			sent++
		}

		fmt.Printf("Sent %d of %d\n", sent, len(args))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity counters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		stats, err := env.store.GetStats(ctx)
		if err != nil {
			return eris.Wrap(err, "stats")
		}

		fmt.Printf("Leads generated: %d\n", stats.LeadsGenerated)
		fmt.Printf("Messages sent:   %d\n", stats.MessagesSent)
		fmt.Printf("Responses:       %d\n", stats.Responses)
		return nil
	},
}

func init() {
	leadsListCmd.Flags().Int64("campaign", 0, "only leads for this campaign")
	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsShowCmd)
	leadsCmd.AddCommand(leadsSendCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(statsCmd)
}
