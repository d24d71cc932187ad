package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/gechostel/hosteldesk/internal/adapter"
	"github.com/gechostel/hosteldesk/internal/domain"
	"github.com/gechostel/hosteldesk/internal/facade"
	"github.com/gechostel/hosteldesk/internal/hostelapi"
	"github.com/gechostel/hosteldesk/internal/monitor"
	"github.com/gechostel/hosteldesk/internal/service"
	"github.com/gechostel/hosteldesk/internal/store"
	"github.com/gechostel/hosteldesk/internal/tui"
	"github.com/gechostel/hosteldesk/internal/tui/styles"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("hosteldesk %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting hosteldesk", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	// Create backend client and reachability monitor
	client := hostelapi.NewClient(cfg.Server.URL, logger)
	mon := monitor.New(client, logger)

	// Open the local cache, keyed by server URL
	cache, err := store.New(adapter.GetCachePath(), cfg.Server.URL)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}

	api := facade.New(client, cache, mon, logger)
	defer api.Close()

	// Prompt for credentials when no session survived the last run
	if api.CurrentUser() == nil {
		if err := runLoginFlow(api, logger); err != nil {
			return err
		}
	}

	searchSvc := service.NewSearchService(api, logger)

	// Create TUI model
	model := tui.NewModel(api, searchSvc)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when not configured
func runSetupFlow(cfg *adapter.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to hosteldesk!")
	fmt.Println()

	// Loop until we get a reachable server URL
	reader := bufio.NewReader(os.Stdin)
	var serverURL string

	for {
		fmt.Print("Enter your hostel server URL (e.g., http://localhost:5000): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		serverURL = strings.TrimSpace(input)

		if serverURL == "" {
			fmt.Println("Server URL cannot be empty. Please try again.")
			continue
		}

		fmt.Println()
		if err := probeServerWithSpinner(serverURL, logger); err != nil {
			fmt.Printf("\n✗ Could not reach server: %v\n", err)
			fmt.Println("Please check the URL and try again.")
			fmt.Println()
			continue
		}

		break
	}

	cfg.Server.URL = serverURL
	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run hosteldesk again to start the application.")

	return nil
}

// probeServerWithSpinner checks the server health endpoint with a visual spinner
func probeServerWithSpinner(serverURL string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := hostelapi.NewClient(serverURL, logger)
	resultCh := make(chan error, 1)

	go func() {
		resultCh <- client.CheckHealth(ctx)
	}()

	frame := 0
	fmt.Printf("\r%s Checking server...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if err != nil {
				return err
			}
			fmt.Println("✓ Server is reachable")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking server...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("health check timed out")
		}
	}
}

// runLoginFlow prompts for credentials and starts a session
func runLoginFlow(api *facade.Facade, logger *slog.Logger) error {
	reader := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	fmt.Println()
	fmt.Println("Sign in to hosteldesk")
	fmt.Println()

	for {
		fmt.Print("[l]ogin, [s]ignup, or [a]dmin login? ")
		choice, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		choice = strings.ToLower(strings.TrimSpace(choice))

		switch choice {
		case "l", "login":
			email, password, err := promptCredentials(reader)
			if err != nil {
				return err
			}
			user, err := api.Login(ctx, email, password)
			if err != nil {
				printAuthError(err)
				continue
			}
			fmt.Printf("\n✓ Welcome back, %s!\n\n", user.FullName)
			return nil

		case "a", "admin":
			email, password, err := promptCredentials(reader)
			if err != nil {
				return err
			}
			user, err := api.LoginAdmin(ctx, email, password)
			if err != nil {
				printAuthError(err)
				continue
			}
			fmt.Printf("\n✓ Welcome back, %s!\n\n", user.FullName)
			return nil

		case "s", "signup":
			in, err := promptSignup(reader)
			if err != nil {
				return err
			}
			user, err := api.Signup(ctx, in)
			if err != nil {
				printAuthError(err)
				continue
			}
			fmt.Printf("\n✓ Account created. Welcome, %s!\n\n", user.FullName)
			return nil

		default:
			fmt.Println("Please answer l, s, or a.")
		}
	}
}

// promptCredentials reads an email and a hidden password from the terminal
func promptCredentials(reader *bufio.Reader) (string, string, error) {
	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("failed to read input: %w", err)
	}

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimSpace(email), string(passwordBytes), nil
}

// promptSignup collects the signup form fields
func promptSignup(reader *bufio.Reader) (domain.SignupInput, error) {
	var in domain.SignupInput

	fields := []struct {
		label string
		dest  *string
	}{
		{"Full name", &in.FullName},
		{"Phone", &in.Phone},
		{"Student ID", &in.StudentID},
		{"Roll number", &in.RollNumber},
		{"Batch", &in.Batch},
		{"Branch", &in.Branch},
		{"Hostel type (boys/girls)", &in.HostelType},
		{"Room preference (single/triple)", &in.RoomPreference},
	}

	for _, f := range fields {
		fmt.Printf("%s: ", f.label)
		value, err := reader.ReadString('\n')
		if err != nil {
			return in, fmt.Errorf("failed to read input: %w", err)
		}
		*f.dest = strings.TrimSpace(value)
	}

	email, password, err := promptCredentials(reader)
	if err != nil {
		return in, err
	}
	in.Email = email
	in.Password = password

	return in, nil
}

// printAuthError shows a login failure without exiting the flow
func printAuthError(err error) {
	var apiErr *domain.APIError
	if domain.IsOffline(err) {
		fmt.Println("\n✗ Server is not reachable. Try again once you are online.")
	} else if errors.As(err, &apiErr) {
		fmt.Printf("\n✗ %s\n", apiErr.Message)
	} else {
		fmt.Printf("\n✗ %v\n", err)
	}
	fmt.Println()
}
