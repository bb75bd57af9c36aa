package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"snapblocks/internal/drag"
	"snapblocks/internal/stack"
	"snapblocks/internal/toolbox"
	"snapblocks/internal/workspace"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		logPath    string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:           "snapblocks",
		Short:         "Drag blocks from a palette and snap them into stacks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, logPath, verbose)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/snapblocks/config.toml)")
	cmd.Flags().StringVar(&logPath, "log-file", "", "append log records to this file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(ctx context.Context, configPath, logPath string, verbose bool) error {
	w, err := openLog(logPath)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer w.Close()

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := newLogger(w, level)

	config, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	for _, key := range config.Undecoded {
		logger.Warn("unknown config key", "key", key)
	}

	p := tea.NewProgram(
		newModel(config, logger),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

func newModel(config *Config, logger *log.Logger) model {
	renderer := cellRenderer{}
	sc := &scene{}
	var ws *workspace.Workspace
	ws = workspace.New(
		workspace.WithSpacing(config.Spacing),
		workspace.WithRenderer(renderer),
		workspace.WithLogger(logger),
		workspace.WithRedraw(func() { sc.refresh(ws) }),
	)
	m := model{
		scene:    sc,
		ws:       ws,
		ctrl:     drag.NewController(ws, drag.WithLogger(logger), drag.WithListener(logEvent(logger))),
		kinds:    make(map[string]paint),
		styles:   paintStyles(),
		config:   config,
		logger:   logger,
		filename: "snapblocks",
	}

	templates := make([]*stack.Block, len(config.Palette))
	for i, t := range config.Palette {
		templates[i] = m.newBlock(stack.Content{Kind: t.Kind, Label: t.Label})
		if _, ok := m.kinds[t.Kind]; !ok && t.Kind != "" {
			m.kinds[t.Kind] = paintKind + paint(len(m.kinds)%len(kindColors))
		}
	}
	m.palette = toolbox.New(renderer, templates)
	m.syncPalette()

	if len(config.Seed) > 0 {
		blocks := make([]*stack.Block, len(config.Seed))
		for i, label := range config.Seed {
			blocks[i] = m.newBlock(stack.Content{Label: label})
		}
		if _, err := ws.AddStack(seedX, seedY, blocks...); err != nil {
			logger.Error("seed stack", "err", err)
		}
	}
	return m
}

func (m *model) newBlock(c stack.Content) *stack.Block {
	return stack.NewWithZone(c, m.config.BlockZone())
}

// logEvent records drag gestures.
func logEvent(logger *log.Logger) drag.Listener {
	return func(ev drag.Event) {
		switch ev := ev.(type) {
		case drag.DragStarted:
			logger.Debug("drag", "segment", ev.Segment, "x", ev.Pointer.Position.X, "y", ev.Pointer.Position.Y)
		case drag.DragMoved:
			if ev.Matched {
				logger.Debug("snap target", "block", ev.Match.Block.Content().Label, "position", ev.Match.Position)
			}
		case drag.DragFinished:
			logger.Info("drop", "outcome", ev.Result.Outcome, "segment", ev.Result.Segment, "cancelled", ev.Cancelled)
		}
	}
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle("snapblocks")
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BlurMsg:
		if _, ok := m.ctrl.Cancel(); ok {
			m.successMessage = "drag cancelled"
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		switch msg.String() {
		case "esc", "q", "?":
			m.help = false
			m.helpScroll = 0
		case "j", "down":
			m.helpScroll = min(m.helpScroll+1, max(len(helpLines)-1, 0))
		case "k", "up":
			m.helpScroll = max(m.helpScroll-1, 0)
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mode == ModeFileInput {
		switch msg.Type {
		case tea.KeyEsc:
			m.mode = ModeNormal
			m.errorMessage = ""
		case tea.KeyEnter:
			m.finishExport()
		case tea.KeyBackspace:
			if r := []rune(m.filename); len(r) > 0 {
				m.filename = string(r[:len(r)-1])
			}
		case tea.KeySpace:
			m.filename += " "
		case tea.KeyRunes:
			m.filename += string(msg.Runes)
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.help = true
	case "esc":
		if _, ok := m.ctrl.Cancel(); ok {
			m.successMessage = "drag cancelled"
		}
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		m.handlePan(key, m.getMoveSpeed(key))
	case "S":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
	case "T":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveVisualTXT
	case "y":
		n, err := m.yankStack()
		if err != nil {
			m.errorMessage = err.Error()
			break
		}
		m.successMessage = fmt.Sprintf("Yanked %d blocks", n)
	case "p":
		n, err := m.pasteStack()
		if err != nil {
			m.errorMessage = err.Error()
			break
		}
		m.successMessage = fmt.Sprintf("Pasted %d blocks", n)
	}
	return m, nil
}

// finishExport writes the file named in the prompt.
func (m *model) finishExport() {
	name := strings.TrimSpace(m.filename)
	if name == "" {
		m.errorMessage = "filename is empty"
		return
	}
	ext := ".png"
	if m.fileOp == FileOpSaveVisualTXT {
		ext = ".txt"
	}
	if !strings.EqualFold(filepath.Ext(name), ext) {
		name += ext
	}

	path, err := m.config.GetSavePath(name)
	if err == nil {
		if m.fileOp == FileOpSavePNG {
			err = exportPNG(m.ws, path)
		} else {
			err = exportVisualTXT(m.ws, path)
		}
	}
	if err != nil {
		m.errorMessage = err.Error()
		m.logger.Error("export failed", "path", path, "err", err)
		return
	}
	m.mode = ModeNormal
	m.errorMessage = ""
	m.successMessage = "Exported " + path
	m.logger.Info("exported", "path", path)
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	for _, line := range m.renderCanvas() {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	if m.mode == ModeFileInput {
		op := "Export PNG"
		if m.fileOp == FileOpSaveVisualTXT {
			op = "Export TXT"
		}
		status := fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", op, m.filename)
		if m.errorMessage != "" {
			return status + styleError.Render(" | ERROR: "+m.errorMessage)
		}
		return styleStatus.Render(status)
	}

	status := styleStatus.Render(fmt.Sprintf("Mode: NORMAL | Stacks: %d | Blocks: %d | Drag: %s | Pan: (%d,%d)",
		m.scene.stacks, m.scene.blocks, m.ctrl.State(), m.panX, m.panY))
	switch {
	case m.errorMessage != "":
		status += styleError.Render(" | ERROR: " + m.errorMessage)
	case m.successMessage != "":
		status += styleSuccess.Render(" | " + m.successMessage)
	default:
		status += styleStatus.Render(" | ? for help | q to quit")
	}
	return status
}

var helpLines = []string{
	"snapblocks help",
	"===============",
	"",
	"Mouse:",
	"------",
	"  drag a palette block   Spawn a copy and drop it on the workspace",
	"  drag a workspace block Move it and every block below it",
	"  alt+drag a block       Move that block alone",
	"  release near a block   Snap above or below it (highlighted edge)",
	"  release on the palette Throw the blocks away",
	"  wheel                  Scroll the workspace",
	"",
	"Keys:",
	"-----",
	"  h/←/j/↓/k/↑/l/→        Scroll the workspace",
	"  Shift+h/j/k/l          Scroll faster",
	"  Esc                    Cancel the current drag",
	"  y                      Yank the labels of the stack under the pointer",
	"  p                      Paste clipboard lines as a new stack",
	"  S                      Export as PNG image",
	"  T                      Export as text",
	"  ?                      Toggle this help screen",
	"  q/Ctrl+C               Quit",
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)
	start := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	end := min(start+visibleHeight, len(helpLines))

	lines := append([]string{styleTitle.Render(helpLines[start])}, helpLines[start+1:end]...)
	status := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close", start+1, end, len(helpLines))
	return strings.Join(lines, "\n") + "\n" + styleStatus.Render(status)
}
