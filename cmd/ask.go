package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mudhumeni-ai/server/internal/advisor"
	"github.com/mudhumeni-ai/server/internal/i18n"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single farming question from the command line",
	Long:  `Sends one question through the assistant and prints the reply. Use --session to continue an earlier conversation, and --offline to answer from the built-in knowledge base without calling the remote model.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().String("session", "", "session id to continue (default: a fresh session)")
	askCmd.Flags().String("lang", "", "reply language: en, sn or nd (default: config)")
	askCmd.Flags().Bool("offline", false, "answer from the built-in knowledge base only")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	sessionID, _ := cmd.Flags().GetString("session")
	langTag, _ := cmd.Flags().GetString("lang")
	offline, _ := cmd.Flags().GetBool("offline")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, closeStore, err := buildService(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if langTag == "" {
		langTag = cfg.DefaultLanguage
	}

	ctx := context.Background()
	var reply advisor.Reply
	if offline {
		reply, err = svc.Advise(ctx, sessionID, question)
	} else {
		reply, err = svc.Send(ctx, sessionID, question, i18n.Parse(langTag))
	}
	if err != nil {
		return err
	}

	fmt.Println(reply.Text)
	if len(reply.FollowUps) > 0 {
		fmt.Println("\nYou could also ask:")
		for _, q := range reply.FollowUps {
			fmt.Printf("  - %s\n", q)
		}
	}
	if verbose {
		fmt.Printf("\n(session: %s)\n", sessionID)
	}
	return nil
}
