package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/onehop-ai/onehop/agent"
	"github.com/onehop-ai/onehop/conversation"
	"github.com/onehop-ai/onehop/internal/config"
	"github.com/onehop-ai/onehop/internal/oracle"
	"github.com/onehop-ai/onehop/protocol"
	"github.com/onehop-ai/onehop/tools"
)

const configPath = "onehop.yaml"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	orc, err := buildOracle(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("configure oracle")
	}

	ag := agent.New(orc, tools.Builtins(), agent.WithTimeout(cfg.StepTimeout.Std()))

	// Load prior conversation if it exists.
	st, err := conversation.Load(cfg.PersistPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load persisted conversation; starting fresh")
		st = conversation.NewState()
	}

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Chat with the agent (Ctrl-C to quit)")

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("\u001b[94mYou\u001b[0m: ")
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case line, ok = <-inputCh:
			if !ok {
				break outer
			}
		}

		st.AppendHuman(line)
		if err := ag.Step(ctx, st); err != nil {
			log.Error().Err(err).Msg("step failed")
			continue
		}
		fmt.Printf("\u001b[93mAgent\u001b[0m: %s\n", finalAnswer(st))

		if err := conversation.Save(cfg.PersistPath, st); err != nil {
			log.Warn().Err(err).Msg("failed to save conversation")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Msg("stdin read error")
	}
}

// finalAnswer extracts the terminal answer text from the last turn. A turn
// that no longer decodes is shown raw rather than dropped.
func finalAnswer(st *conversation.State) string {
	last, ok := st.LastTurn()
	if !ok {
		return ""
	}
	d, err := protocol.Decode(last.Content)
	if err != nil {
		return last.Content
	}
	if fa, ok := d.(protocol.FinalAnswer); ok {
		return fa.Text
	}
	return last.Content
}

func buildOracle(cfg *config.Config) (agent.Oracle, error) {
	switch cfg.Provider {
	case "anthropic", "":
		if os.Getenv("ANTHROPIC_API_KEY") == "" {
			return nil, errors.New("missing ANTHROPIC_API_KEY; export it before running")
		}
		return oracle.NewAnthropic(cfg.Model), nil
	case "openai":
		if cfg.Model == "" {
			return nil, errors.New("openai provider requires a model")
		}
		key := os.Getenv(cfg.APIKeyEnv)
		if key == "" && cfg.BaseURL == "" {
			return nil, errors.Errorf("missing %s; export it before running", cfg.APIKeyEnv)
		}
		return oracle.NewOpenAI(key, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, errors.Errorf("unknown provider %q", cfg.Provider)
	}
}
