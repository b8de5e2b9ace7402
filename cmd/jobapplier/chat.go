package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/document"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the career assistant",
	Long:  "Send a message to the AI career assistant. History is kept in the client state; --clear starts over.",
	RunE:  runChat,
}

var chatClear bool

func init() {
	chatCmd.Flags().BoolVar(&chatClear, "clear", false, "Reset the conversation history")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())

	if chatClear {
		st.ClearChat()
		fmt.Fprintln(os.Stdout, "Conversation cleared.")
		return nil
	}

	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return fmt.Errorf("nothing to send; pass a message or use --clear")
	}

	// History is captured before the user message is appended so the
	// service sees the conversation the user replied to.
	history := st.ChatMessages()
	st.AddChatMessage(types.ChatMessage{Role: types.RoleUser, Content: message})

	client := newClient()
	reply, err := client.Chat(cmd.Context(), message, st.Profile(), history)
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}
	st.AddChatMessage(types.ChatMessage{Role: types.RoleAssistant, Content: reply})

	// Replies may carry markup meant for a rich-text view; the terminal
	// gets the plain text.
	fmt.Fprintln(os.Stdout, document.StripHTML(reply))
	return nil
}
