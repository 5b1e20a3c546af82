// Package main wires the scribe terminal agent: configuration, logging,
// the tool suite, the Gemini provider, and the interactive UI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmallia/scribe/internal/config"
	"github.com/jmallia/scribe/internal/envfile"
	"github.com/jmallia/scribe/internal/logging"
	"github.com/jmallia/scribe/internal/orchestrator"
	orchadapter "github.com/jmallia/scribe/internal/orchestrator/adapter"
	"github.com/jmallia/scribe/internal/provider/gemini"
	provider "github.com/jmallia/scribe/internal/provider/model"
	"github.com/jmallia/scribe/internal/tool/backup"
	"github.com/jmallia/scribe/internal/tool/batch"
	"github.com/jmallia/scribe/internal/tool/file"
	"github.com/jmallia/scribe/internal/tool/gitutil"
	"github.com/jmallia/scribe/internal/tool/history"
	"github.com/jmallia/scribe/internal/tool/search"
	"github.com/jmallia/scribe/internal/tool/shell"
	"github.com/jmallia/scribe/internal/ui"
	uiservices "github.com/jmallia/scribe/internal/ui/services"
	"google.golang.org/genai"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config          *config.Config
	UI              *ui.UI
	ProviderFactory func(context.Context) (provider.Provider, error)
	Logger          logging.FileLogger
}

func createRealUI(cfg *config.Config) *ui.UI {
	channels := ui.NewChannels()
	renderer := uiservices.NewGlamourRenderer()
	return ui.New(channels, renderer, cfg.Provider.Model)
}

func createRealProviderFactory(cfg *config.Config) func(context.Context) (provider.Provider, error) {
	return func(ctx context.Context) (provider.Provider, error) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}

		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		return gemini.New(gemini.NewSDKClient(genaiClient), cfg), nil
	}
}

func createTools(cfg *config.Config, workspaceRoot string, deps Dependencies) []orchadapter.Tool {
	backups := backup.NewStore(filepath.Join(workspaceRoot, cfg.Tools.BackupDir))
	ledger := history.NewLedger()
	undoer := history.NewUndoer(ledger)

	var ignore search.IgnoreMatcher
	matcher, err := gitutil.NewIgnoreMatcher(workspaceRoot)
	if err != nil {
		deps.Logger.Logger.Warn("gitignore unavailable, searching everything", "error", err)
		ignore = &gitutil.NoOpMatcher{}
	} else {
		ignore = matcher
	}
	walker := search.NewWalker(cfg.Tools.BackupDir, ignore)

	editor := file.NewEditor(backups, ledger, cfg)
	searcher := search.NewSearcher(walker, cfg)
	batchEditor := batch.NewEditor(walker, backups, ledger, cfg)
	runner := shell.NewRunner(shell.NewSafetyGate(), shell.NewOSExecutor(cfg), cfg)

	return orchadapter.All(editor, searcher, batchEditor, runner, undoer)
}

func createLogger() logging.FileLogger {
	home, err := os.UserHomeDir()
	if err != nil {
		return logging.FileLogger{Logger: logging.Nop(), Close: func() error { return nil }}
	}
	fl, err := logging.NewFileLogger(filepath.Join(home, ".config", "scribe"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}
	return fl
}

func main() {
	// Pick up GEMINI_API_KEY and friends from a .env in the workspace.
	if result := envfile.Load(); result.Err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", result.Path, result.Err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	logger := createLogger()
	defer logger.Close()

	deps := Dependencies{
		Config:          cfg,
		UI:              createRealUI(cfg),
		ProviderFactory: createRealProviderFactory(cfg),
		Logger:          logger,
	}

	runInteractive(context.Background(), deps)
}

func runInteractive(ctx context.Context, deps Dependencies) {
	userInterface := deps.UI

	orchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready()

		userInterface.WriteStatus("thinking", "Initializing workspace...")

		workspaceRoot, err := os.Getwd()
		if err != nil {
			userInterface.WriteStatus("error", "Initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error: failed to get working directory: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return
		}

		toolList := createTools(deps.Config, workspaceRoot, deps)

		userInterface.WriteStatus("thinking", "Initializing AI...")

		providerClient, err := deps.ProviderFactory(orchCtx)
		if err != nil {
			userInterface.WriteStatus("error", "AI initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error initializing provider: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return
		}

		orch := orchestrator.New(providerClient, userInterface, toolList, deps.Config, deps.Logger.Logger)

		userInterface.WriteMessage("Type 'exit' or 'quit' to end the conversation.")
		userInterface.WriteStatus("ready", "Ready")

		for {
			select {
			case <-orchCtx.Done():
				return
			default:
				input, err := userInterface.ReadInput(orchCtx, "What would you like to do?")
				if err != nil {
					return
				}

				switch strings.ToLower(strings.TrimSpace(input)) {
				case "exit", "quit":
					userInterface.WriteMessage("Goodbye!")
					userInterface.Quit()
					return
				case "":
					continue
				}

				reply, err := orch.Turn(orchCtx, input)
				if err != nil {
					userInterface.WriteMessage(fmt.Sprintf("Error: %v", err))
				} else {
					userInterface.WriteMessage(reply)
				}

				userInterface.WriteStatus("ready", "Ready")
			}
		}
	}()

	if err := userInterface.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	cancel()
	wg.Wait()
}
