package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/attmoc/attmoc/internal/analytics"
	"github.com/attmoc/attmoc/internal/config"
	"github.com/attmoc/attmoc/internal/contact"
	"github.com/attmoc/attmoc/internal/content"
	"github.com/attmoc/attmoc/internal/script"
	"github.com/attmoc/attmoc/internal/sequencer"
	"github.com/attmoc/attmoc/internal/storage"
	"github.com/attmoc/attmoc/internal/viz"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	// play
	duration time.Duration
	noColor  bool
	// record
	loops int
	// export
	outFile string
	// blog
	category string
	// contact
	form contact.Form
)

// main registers the commands, launches the landing page when no
// subcommand is given, and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "attmoc",
		Short:         "the ATTMOC agency showcase in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runApp,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "recordings directory (default .attmoc)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	terminalCmd := &cobra.Command{
		Use:   "terminal [preset]",
		Short: "run the animated terminal full screen",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTerminal,
	}

	playCmd := &cobra.Command{
		Use:   "play [preset]",
		Short: "play a script with plain ANSI output",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().DurationVar(&duration, "duration", 10*time.Second, "how long to play")
	playCmd.Flags().BoolVar(&noColor, "no-color", false, "disable line colors")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list script presets",
		RunE:  listPresets,
	}

	recordCmd := &cobra.Command{
		Use:   "record [preset]",
		Short: "record a preset deterministically",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordPreset,
	}
	recordCmd.Flags().IntVar(&loops, "loops", 1, "number of full loops to record")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		RunE:  listRecordings,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [id]",
		Short: "plot revealed characters over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRecording,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [id]",
		Short: "export a recording as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <id>.json)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [id]",
		Short: "export the fullest frame of a recording as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <id>.svg)")

	blogCmd := &cobra.Command{
		Use:   "blog",
		Short: "list blog posts",
		RunE:  listPosts,
	}
	blogCmd.Flags().StringVar(&category, "category", content.AllCategories, "filter by category")

	contactCmd := &cobra.Command{
		Use:   "contact",
		Short: "send the contact form",
		RunE:  sendContact,
	}
	contactCmd.Flags().StringVar(&form.Name, "name", "", "your name")
	contactCmd.Flags().StringVar(&form.Email, "email", "", "your email")
	contactCmd.Flags().StringVar(&form.Phone, "phone", "", "your phone (optional)")
	contactCmd.Flags().StringVar(&form.Subject, "subject", "", "subject")
	contactCmd.Flags().StringVar(&form.Message, "message", "", "message")

	rootCmd.AddCommand(terminalCmd, playCmd, presetsCmd, recordCmd, listCmd, plotCmd,
		exportJSONCmd, exportSVGCmd, blogCmd, contactCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, cfg.Validate()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid --log-level %q", s)
	}
	return level, nil
}

// newLogger logs to stderr for plain commands.
func newLogger() (*slog.Logger, error) {
	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// newTUILogger logs to ATTMOC_LOG_FILE, or nowhere, since the TUI owns
// the terminal.
func newTUILogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Env.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.Env.LogFile, "attmoc")
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

func resolvePreset(cfg *config.Config, args []string) (script.Preset, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	return cfg.ResolvePreset(script.NewRegistry(), name)
}

func newTerminal(cfg *config.Config, args []string, logger *slog.Logger) (*viz.Terminal, error) {
	p, err := resolvePreset(cfg, args)
	if err != nil {
		return nil, err
	}
	return viz.NewTerminal(p,
		viz.WithTheme(viz.GetTheme(cfg.Theme)),
		viz.WithBlink(cfg.CursorBlink),
		viz.WithLogger(logger),
	)
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newTUILogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	term, err := newTerminal(cfg, nil, logger)
	if err != nil {
		return err
	}
	features := content.Features{
		Careers: bool(cfg.Env.Careers),
		Quote:   bool(cfg.Env.Quote),
		Blog:    bool(cfg.Env.Blog),
	}
	tracker := analytics.New(cfg.Env.AnalyticsID, logger)
	app := viz.NewApp(term, features, tracker)

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newTUILogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	term, err := newTerminal(cfg, args, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(term.Standalone(), tea.WithAltScreen()).Run()
	return err
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	p, err := resolvePreset(cfg, args)
	if err != nil {
		return err
	}

	title := p.Title
	if title == "" {
		title = p.Name
	}
	r := viz.NewPlainRenderer(os.Stdout, title, viz.GetTheme(cfg.Theme), !noColor)
	seq, err := sequencer.New(p, sequencer.WithLogger(logger), sequencer.WithFrameFunc(r.OnFrame))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	r.Start()
	defer r.Stop()
	seq.Start()
	<-ctx.Done()
	seq.Stop()
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	registry := script.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODE\tLINES\tCHAR\tLINE\tLOOP\tDESCRIPTION")
	for _, name := range registry.List() {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%v\t%v\t%s\n",
			p.Name,
			p.Mode,
			len(p.Lines),
			p.Timing.CharDelay,
			p.Timing.LineDelay,
			p.Timing.LoopDelay,
			p.Description,
		)
	}
	return w.Flush()
}

func recordPreset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	p, err := resolvePreset(cfg, args)
	if err != nil {
		return err
	}

	frames, err := sequencer.Record(p, loops)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(p, loops, frames)
	if err != nil {
		return err
	}
	logger.Info("recording saved", "id", id, "frames", len(frames))
	fmt.Println(id)
	return nil
}

func listRecordings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tLOOPS\tFRAMES\tLOOP")
	for _, rec := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\t%v\n",
			rec.ID,
			rec.Preset,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Loops,
			rec.Metrics["frames"],
			time.Duration(rec.Metrics["loop_ms"])*time.Millisecond,
		)
	}
	return w.Flush()
}

func plotRecording(cmd *cobra.Command, args []string) error {
	id := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(id)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("recording: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("frames: %d\n\n", len(frames))

	data := make([]float64, len(frames))
	for i, f := range frames {
		data[i] = float64(f.Revealed)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("revealed characters per frame"),
	)
	fmt.Println(graph)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	id := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := outFile
	if path == "" {
		path = id + ".json"
	}
	if err := storage.New(cfg.DataDir).ExportJSON(id, path); err != nil {
		return err
	}
	fmt.Println("exported:", path)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	id := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := outFile
	if path == "" {
		path = id + ".svg"
	}
	if err := storage.New(cfg.DataDir).ExportSVG(id, path); err != nil {
		return err
	}
	fmt.Println("exported:", path)
	return nil
}

func listPosts(cmd *cobra.Command, args []string) error {
	posts := content.FilterPosts(category)
	if len(posts) == 0 {
		fmt.Printf("no posts in %q (categories: %s)\n", category, strings.Join(content.Categories, ", "))
		return nil
	}
	for _, p := range posts {
		fmt.Printf("%s\n  %s · %s · %s · %s\n  %s\n  tags: %s\n\n",
			p.Title, p.Category, p.Author, p.Date, p.ReadTime, p.Excerpt, strings.Join(p.Tags, ", "))
	}
	return nil
}

func sendContact(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tracker := analytics.New(cfg.Env.AnalyticsID, logger)
	sub := contact.NewSubmitter(nil, tracker, logger)
	receipt, err := sub.Submit(ctx, form)

	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", f.Field, f.Message)
		}
		return err
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, contact.FailureMessage)
		return err
	}
	fmt.Println(receipt.Message)
	return nil
}
