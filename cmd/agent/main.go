package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dok4everak47/aicoder/internal/logging"
	"github.com/dok4everak47/aicoder/internal/provider"
	"github.com/dok4everak47/aicoder/internal/runner"
	"github.com/dok4everak47/aicoder/tools"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiKey        string
		logFile       string
		maxToolRounds int
	)

	cmd := &cobra.Command{
		Use:           "agent",
		Short:         "Conversational coding agent that can read, list, and edit files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = os.Getenv("ANTHROPIC_API_KEY")
			}
			if apiKey == "" {
				return errors.New("API key required: pass --api-key or set ANTHROPIC_API_KEY")
			}

			logger, err := logging.New(logFile)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer logger.Sync()

			client := provider.NewAnthropicClient(apiKey)
			r := runner.New(client, tools.Registry(), logger)
			if maxToolRounds > 0 {
				r.MaxToolRounds = maxToolRounds
			}
			return repl(r)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Anthropic API key (or set ANTHROPIC_API_KEY)")
	cmd.Flags().StringVar(&logFile, "log-file", "agent.log", "Path of the session log file")
	cmd.Flags().IntVar(&maxToolRounds, "max-tool-rounds", runner.DefaultMaxToolRounds, "Maximum tool round trips per user turn")
	return cmd
}

// repl reads user turns from stdin until exit/quit, EOF, or Ctrl-C.
func repl(r *runner.Runner) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		cancel()
	}()

	fmt.Println("AI code assistant")
	fmt.Println("================")
	fmt.Println("A conversational agent that can read, list, and edit files.")
	fmt.Println("Type 'exit' or 'quit' to end the session.")
	fmt.Println()

	youPrompt := color.New(color.FgHiBlue).Sprint("You")
	botPrompt := color.New(color.FgYellow).Sprint("Assistant")

	// stdin reader goroutine -> lines into channel, so Ctrl-C interrupts the
	// prompt instead of blocking on a read.
	scanner := bufio.NewScanner(os.Stdin)
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

	for {
		fmt.Printf("%s: ", youPrompt)
		var (
			user string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Println("\nGoodbye!")
			return nil
		case user, ok = <-inputCh:
			if !ok {
				fmt.Println("\nGoodbye!")
				return scanner.Err()
			}
		}

		user = strings.TrimSpace(user)
		if user == "" {
			continue
		}
		switch strings.ToLower(user) {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return nil
		}

		fmt.Printf("\n%s: ", botPrompt)
		reply, err := r.RunTurn(ctx, user)
		if err != nil {
			// Model-call and turn-limit failures become the turn's reply;
			// the session continues.
			fmt.Printf("Error: %v\n\n", err)
			continue
		}
		fmt.Printf("%s\n\n", reply)
	}
}
