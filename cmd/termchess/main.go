// Package main is the entry point for the TermChess application.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/Mgrdich/TermChess/internal/config"
	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/search"
	"github.com/Mgrdich/TermChess/internal/tt"
	"github.com/Mgrdich/TermChess/internal/ui"
	"github.com/Mgrdich/TermChess/internal/updater"
	"github.com/Mgrdich/TermChess/internal/util"
	"github.com/Mgrdich/TermChess/internal/version"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Parse command-line flags first
	showVersion := flag.Bool("version", false, "Show version information")
	doUpgrade := flag.Bool("upgrade", false, "Upgrade to latest version (or specify version as argument)")
	doUninstall := flag.Bool("uninstall", false, "Uninstall TermChess (remove binary and config)")
	perftFEN := flag.String("perft", "", "Run perft on the given FEN and print divide + totals")
	perftDepth := flag.Int("perft-depth", 5, "Depth for -perft/-divide")
	divideFEN := flag.String("divide", "", "Alias for -perft that also copies the divide table to the clipboard")
	searchFEN := flag.String("search", "", "Run the searcher on the given FEN and print info/bestmove lines")
	flag.Parse()

	// Handle --version flag (exit before TUI)
	if *showVersion {
		printVersion()
		return
	}

	// Handle --upgrade flag
	if *doUpgrade {
		os.Exit(handleUpgrade(flag.Args()))
	}

	// Handle --uninstall flag
	if *doUninstall {
		os.Exit(handleUninstall())
	}

	if *perftFEN != "" {
		os.Exit(runPerft(*perftFEN, *perftDepth, false))
	}
	if *divideFEN != "" {
		os.Exit(runPerft(*divideFEN, *perftDepth, true))
	}
	if *searchFEN != "" {
		os.Exit(runSearch(*searchFEN))
	}

	// Load configuration from ~/.termchess/config.toml
	// If the file doesn't exist or cannot be parsed, default values are used
	cfg := config.LoadConfig()

	// Initialize the Bubbletea model with the loaded configuration
	model := ui.NewModel(cfg)

	// Create the Bubbletea program with options:
	// - WithAltScreen: Use alternate screen buffer for clean TUI experience
	// - WithMouseCellMotion: Enable mouse support for future interactions
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Future: mouse support
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// printVersion prints the version information and exits.
func printVersion() {
	fmt.Printf("termchess %s\n", version.Version)
	fmt.Printf("Build date: %s\n", version.BuildDate)
	fmt.Printf("Git commit: %s\n", version.GitCommit)
}

// handleUpgrade handles the --upgrade flag.
// It returns the exit code (0 for success, 1 for error).
func handleUpgrade(args []string) int {
	// Check if installed via go install
	if updater.DetectInstallMethod() == updater.InstallMethodGoInstall {
		fmt.Println(updater.GetGoInstallMessage())
		return 0
	}

	// Get target version from args (if provided)
	var targetVersion string
	if len(args) > 0 {
		targetVersion = args[0]
	}

	client := updater.NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	currentVersion := version.Version

	// If no target version specified, check the latest
	if targetVersion == "" {
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Print("Checking for updates...")

		latest, err := client.CheckLatestVersion(ctx)
		if err != nil {
			fmt.Printf("\nError: Failed to check for updates: %v\n", err)
			return 1
		}
		targetVersion = latest
		fmt.Printf("\rLatest version:  %s\n\n", targetVersion)
	} else {
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Target version:  %s\n\n", targetVersion)
	}

	// Create confirmation callback for downgrades
	confirmDowngrade := func() bool {
		fmt.Print("\u26a0 " + targetVersion + " is older than your current version. It might be buggier than a summer porch. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		response = strings.TrimSpace(strings.ToLower(response))
		return response == "y" || response == "yes"
	}

	// Perform the upgrade
	binaryName := updater.GetBinaryFilename(targetVersion, runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Downloading %s...\n", binaryName)

	result, err := client.Upgrade(ctx, currentVersion, targetVersion, confirmDowngrade)
	if err != nil {
		if errors.Is(err, updater.ErrAlreadyUpToDate) {
			fmt.Printf("Already up to date (%s)\n", currentVersion)
			return 0
		}
		if errors.Is(err, updater.ErrPermissionDenied) {
			fmt.Println("Error: Permission denied. Try running with sudo:")
			fmt.Println("  sudo termchess --upgrade")
			return 1
		}
		if errors.Is(err, updater.ErrChecksumMismatch) {
			fmt.Println("Error: Checksum verification failed. The download may be corrupted.")
			return 1
		}
		if strings.Contains(err.Error(), "cancelled by user") {
			fmt.Println("Upgrade cancelled.")
			return 0
		}
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Print("Verifying checksum... \u2713\n")
	fmt.Print("Installing... \u2713\n\n")

	if result.IsDowngrade {
		fmt.Printf("\u2713 TermChess switched from %s to %s\n", result.PreviousVersion, result.NewVersion)
	} else {
		fmt.Printf("\u2713 TermChess upgraded from %s to %s\n", result.PreviousVersion, result.NewVersion)
	}

	return 0
}

// handleUninstall handles the --uninstall flag.
// It returns the exit code (0 for success, 1 for error).
func handleUninstall() int {
	// Prompt for confirmation
	fmt.Print("Are you sure you want to uninstall TermChess? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		fmt.Printf("\nError reading input: %v\n", err)
		return 1
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Println("\nUninstall cancelled.")
		return 0
	}

	fmt.Println()

	// Perform uninstall
	if err := updater.Uninstall(); err != nil {
		if errors.Is(err, updater.ErrPermissionDenied) {
			fmt.Println("Error: Permission denied removing binary. Try running with sudo:")
			fmt.Println("  sudo termchess --uninstall")
			return 1
		}
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Println("\u2713 TermChess has been uninstalled. Goodbye!")
	return 0
}

// runPerft parses fen, runs Divide at depth, prints the "<move>: <nodes>"
// lines plus the "Nodes: <n> Time: <s>s NPS: <nps>" summary per spec.md
// \u00a76, and (when copyToClipboard is set, i.e. invoked via -divide) copies
// the divide table to the clipboard for pasting into an external
// perft-diff tool. Returns the process exit code.
func runPerft(fen string, depth int, copyToClipboard bool) int {
	board, err := engine.FromFEN(fen)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	if depth < 1 {
		fmt.Println("Error: -perft-depth must be >= 1")
		return 1
	}

	start := time.Now()
	lines := engine.Divide(board, depth)

	var sb strings.Builder
	var total uint64
	for _, l := range lines {
		fmt.Fprintf(&sb, "%s: %d\n", l.Move.String(), l.Nodes)
		total += l.Nodes
	}
	elapsed := time.Since(start)
	nps := int64(0)
	if elapsed.Seconds() > 0 {
		nps = int64(float64(total) / elapsed.Seconds())
	}
	fmt.Fprintf(&sb, "Nodes: %d Time: %ss NPS: %d\n",
		total, strconv.FormatFloat(elapsed.Seconds(), 'f', 3, 64), nps)

	fmt.Print(sb.String())

	if copyToClipboard {
		if err := util.CopyToClipboard(sb.String()); err != nil {
			fmt.Printf("Warning: failed to copy divide table to clipboard: %v\n", err)
		}
	}
	return 0
}

// runSearch parses fen, runs the iterative-deepening searcher under the
// configured search defaults (see config.LoadSearchConfig), printing one
// "info ..." line per completed depth followed by "bestmove <move>" per
// spec.md \u00a76. Returns the process exit code.
func runSearch(fen string) int {
	board, err := engine.FromFEN(fen)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	sc := config.LoadSearchConfig()
	table := tt.New(sc.HashMB)
	searcher := search.NewSearcher(table)
	searcher.Out = os.Stdout

	limits := search.Limits{
		Depth:      sc.DefaultDepth,
		MoveTimeMs: sc.DefaultMoveTimeMs,
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(sc.DefaultMoveTimeMs+2000)*time.Millisecond)
	defer cancel()

	result := searcher.Search(ctx, board, limits)
	fmt.Printf("bestmove %s\n", result.BestMove.String())
	return 0
}
