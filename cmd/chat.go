package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// chatCmd talks to the study assistant.
var chatCmd = &cobra.Command{
	Use:   "chat [MESSAGE]",
	Short: "Chat with the study assistant",
	Long: `Chat with the study assistant. With a message argument, sends one
message and prints the reply. Without arguments, starts an interactive
session; the conversation lasts until you exit and is not saved.

Examples:
  chronosdeck chat "Explain the chain rule"
  chronosdeck chat`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if _, err := ctx.RequireUser(); err != nil {
		return err
	}

	assistant, err := ctx.Assistant()
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()

	if len(args) > 0 {
		reply, err := assistant.Send(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		cli.Println(reply)
		return nil
	}

	cli.Muted("Interactive chat. Type 'exit' or press Ctrl+D to quit.")
	reader := bufio.NewReader(os.Stdin)
	for {
		cli.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			cli.Println("")
			return nil
		}
		message := strings.TrimSpace(line)
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			return nil
		}

		reply, err := assistant.Send(cmd.Context(), message)
		if err != nil {
			cli.Error(err.Error())
			continue
		}
		cli.Println(reply)
	}
}
