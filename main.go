package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sysprompt/internal/config"
	"sysprompt/internal/prompt"

	"github.com/chzyer/readline"
	"github.com/mattn/go-runewidth"
)

var (
	version = "0.1.0"
)

const previewLines = 12

func main() {
	envFile := flag.String("env", "", "Path to .env file (default: .env in current directory)")
	projectDir := flag.String("project", ".", "Path to the project directory (used for git detection)")
	memoryFlag := flag.String("memory", "", "Memory text appended after the system prompt")
	memoryFile := flag.String("memory-file", "", "Path to a file whose contents are appended as memory")
	compress := flag.Bool("compress", false, "Print the history compression prompt and exit")
	showConfig := flag.Bool("show-config", false, "Print the effective override/write configuration and exit")
	shell := flag.Bool("shell", false, "Interactive mode: each line is memory text, the resolved prompt is previewed")
	verbose := flag.Bool("verbose", false, "Log which files are read and written")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("sysprompt v%s\n", version)
		os.Exit(0)
	}

	if *compress {
		fmt.Println(prompt.CompressionPrompt())
		return
	}

	envFiles, err := config.LoadEnv(*envFile)
	if err != nil {
		fatalf("%v", err)
	}
	if *verbose && len(envFiles) > 0 {
		log.Printf("loaded env from %s", strings.Join(envFiles, ", "))
	}

	absProject, err := filepath.Abs(*projectDir)
	if err != nil {
		fatalf("invalid project path: %v", err)
	}
	info, err := os.Stat(absProject)
	if err != nil || !info.IsDir() {
		fatalf("project directory does not exist: %s", absProject)
	}

	setup, err := prompt.SetupFromEnv(absProject)
	if err != nil {
		fatalf("%v", err)
	}
	if setup.SettingsErr != nil {
		log.Printf("Warning: loading tools.yaml: %v (using default tool names)", setup.SettingsErr)
	}
	if *verbose {
		setup.Resolver.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	if *showConfig {
		fmt.Print(formatConfig(setup.Config))
		return
	}

	if *shell {
		runInteractive(setup, absProject)
		return
	}

	memory, err := readMemory(*memoryFlag, *memoryFile)
	if err != nil {
		fatalf("%v", err)
	}
	out, err := setup.Resolver.Resolve(setup.Config, memory)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(out)
}

// readMemory joins the -memory text and the -memory-file contents.
func readMemory(text, path string) (string, error) {
	if path == "" {
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read memory file: %w", err)
	}
	parts := []string{}
	for _, p := range []string{text, string(data)} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

func formatConfig(cfg prompt.Config) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s %-8s %s\n", "override", onOff(cfg.OverrideEnabled), cfg.OverridePath)
	fmt.Fprintf(&sb, "%-10s %-8s %s\n", "write", onOff(cfg.WriteEnabled), cfg.WritePath)
	if cfg.OverrideEnabled && cfg.WriteEnabled && cfg.OverridePath == cfg.WritePath {
		sb.WriteString("note: write target is the override file; it will be rewritten with its own contents\n")
	}
	return sb.String()
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

const bannerWidth = 50

// boxLine pads s to the banner's inner width so the right border stays aligned.
func boxLine(s string) string {
	return "║" + runewidth.FillRight(runewidth.Truncate(s, bannerWidth, "…"), bannerWidth) + "║\n"
}

func banner(projectDir string) string {
	rule := strings.Repeat("═", bannerWidth)
	var sb strings.Builder
	sb.WriteString("\n╔" + rule + "╗\n")
	title := fmt.Sprintf("sysprompt v%s - Interactive Mode", version)
	if pad := (bannerWidth - runewidth.StringWidth(title)) / 2; pad > 0 {
		title = strings.Repeat(" ", pad) + title
	}
	sb.WriteString(boxLine(title))
	sb.WriteString("╠" + rule + "╣\n")
	sb.WriteString(boxLine("  Project: " + truncatePath(projectDir, bannerWidth-12)))
	sb.WriteString(boxLine(""))
	sb.WriteString(boxLine("  Type memory text and press Enter to preview."))
	sb.WriteString(boxLine("  Type 'quit' or 'exit' to quit."))
	sb.WriteString(boxLine("  Type 'help' for available commands."))
	sb.WriteString("╚" + rule + "╝\n")
	return sb.String()
}

// shellSession holds the state of one -shell run; both input loops feed it lines.
type shellSession struct {
	setup *prompt.Setup
	out   io.Writer
	width func() int
	full  bool
}

// handle processes one input line and reports whether the session should end.
func (s *shellSession) handle(line string) bool {
	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	case "help", "h":
		fmt.Fprint(s.out, helpText)
		return false
	case "config":
		fmt.Fprint(s.out, formatConfig(s.setup.Config))
		return false
	case "compress":
		fmt.Fprintln(s.out, prompt.CompressionPrompt())
		return false
	case "full":
		s.full = !s.full
		fmt.Fprintf(s.out, "Full output: %s\n", onOff(s.full))
		return false
	}

	base, err := s.setup.Resolver.Base(s.setup.Config)
	if err != nil {
		fmt.Fprintf(s.out, "❌ Error: %v\n", err)
		return false
	}
	if s.full {
		fmt.Fprintln(s.out, prompt.AppendMemory(base, input))
		return false
	}
	fmt.Fprint(s.out, preview(base, input, previewLines, s.width()))
	return false
}

func runInteractive(setup *prompt.Setup, projectDir string) {
	fmt.Print(banner(projectDir))

	historyFile := ""
	if dir, err := config.Dir(); err == nil {
		historyFile = filepath.Join(dir, "shell_history")
	}

	session := &shellSession{setup: setup, out: os.Stdout, width: func() int { return 80 }}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "📝 > ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Printf("Warning: readline init failed: %v, falling back to basic input", err)
		runBasic(session, os.Stdin)
		return
	}
	defer rl.Close()
	session.width = func() int { return termWidth(rl) }

	for {
		fmt.Println()
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("Goodbye!")
			}
			return
		}
		if session.handle(line) {
			return
		}
	}
}

// runBasic reads lines from in without line editing or history.
func runBasic(session *shellSession, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(session.out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(session.out, "Goodbye!")
			return
		}
		if session.handle(scanner.Text()) {
			return
		}
	}
}

func termWidth(rl *readline.Instance) int {
	if w := rl.Config.FuncGetWidth(); w > 0 {
		return w
	}
	return 80
}

// preview shows the head of the base prompt, the trimmed memory if any, and a
// size line for the final prompt. Every line is clipped to width display columns.
func preview(base, memory string, maxLines, width int) string {
	lines := strings.Split(base, "\n")

	var sb strings.Builder
	for i, l := range lines {
		if i == maxLines {
			fmt.Fprintf(&sb, "... (%d more lines)\n", len(lines)-maxLines)
			break
		}
		sb.WriteString(runewidth.Truncate(l, width, "…"))
		sb.WriteString("\n")
	}
	if m := strings.TrimSpace(memory); m != "" {
		sb.WriteString("---\n")
		for _, l := range strings.Split(m, "\n") {
			sb.WriteString(runewidth.Truncate(l, width, "…"))
			sb.WriteString("\n")
		}
	}
	out := prompt.AppendMemory(base, memory)
	fmt.Fprintf(&sb, "[%d lines, %d bytes]\n", strings.Count(out, "\n")+1, len(out))
	return sb.String()
}

const helpText = `
Available commands:
  help, h        Show this help
  config         Show the effective override/write configuration
  compress       Print the history compression prompt
  full           Toggle between preview and full output
  quit, exit, q  Exit the program

Anything else is used as memory text; an empty line resolves without memory.
`

func printUsage() {
	fmt.Fprintf(os.Stderr, `sysprompt v%s - resolve the agent system prompt

Usage:
  sysprompt [flags]

Flags:
`, version)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment Variables (can be set in .env file):
  %-26s unset/0/false: built-in prompt; 1/true: ~/.sysprompt/system.md; other: path to prompt file
  %-26s unset/0/false: no write; 1/true: write to the override path; other: path to write to
  SANDBOX                    sandbox-exec (macOS seatbelt) or any container name

Tool names used in the built-in prompt can be changed in ~/.sysprompt/tools.yaml.

Examples:
  sysprompt -memory "prefers tabs"                        # print resolved prompt
  SYSPROMPT_WRITE_SYSTEM_MD=1 sysprompt > /dev/null       # save the built-in prompt
  SYSPROMPT_SYSTEM_MD=~/prompts/review.md sysprompt       # use a custom prompt
  sysprompt -shell                                        # interactive preview
  sysprompt -compress                                     # history compression prompt
`, prompt.EnvSystemMD, prompt.EnvWriteSystemMD)
}

func truncatePath(p string, maxWidth int) string {
	if runewidth.StringWidth(p) <= maxWidth {
		return p
	}
	runes := []rune(p)
	prefix := "..."
	prefixW := 3
	for i := len(runes) - 1; i >= 0; i-- {
		tail := string(runes[i:])
		if runewidth.StringWidth(tail)+prefixW > maxWidth {
			tail = string(runes[i+1:])
			w := runewidth.StringWidth(tail) + prefixW
			pad := ""
			if w < maxWidth {
				pad = strings.Repeat(" ", maxWidth-w)
			}
			return prefix + tail + pad
		}
	}
	return p
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
