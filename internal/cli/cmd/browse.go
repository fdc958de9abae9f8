package cmd

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/multiview/internal/cli/model"
	"github.com/bnema/multiview/internal/domain/entity"
	"github.com/bnema/multiview/internal/infrastructure/clock"
	"github.com/bnema/multiview/internal/infrastructure/config"
	"github.com/bnema/multiview/internal/logging"
)

var (
	browsePanes  int
	browseURL    string
	browseLayout string
	browseDark   bool
)

var browseCmd = &cobra.Command{
	Use:   "browse [count]",
	Short: "Open the multi-view browser",
	Long: `Open the multi-view browser screen.

With a count (or --panes) the browser opens directly with that many views,
clamped to 1-100. Without one, the TUI starts at the welcome screen.

Examples:
  multiview browse                                  # Welcome screen
  multiview browse 4                                # Four views
  multiview browse 6 --url youtube.com/watch?v=xyz  # Six players
  multiview browse -n 3 --layout stack --dark`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	addBrowseFlags(browseCmd)
}

func addBrowseFlags(c *cobra.Command) {
	c.Flags().IntVarP(&browsePanes, "panes", "n", 0, "number of views to open (1-100)")
	c.Flags().StringVarP(&browseURL, "url", "u", "", "URL applied to every view on start")
	c.Flags().StringVar(&browseLayout, "layout", "", "initial layout: grid or stack (default from config)")
	c.Flags().BoolVar(&browseDark, "dark", false, "start in dark mode (default from config)")
}

// browseRequest is the resolved form of the browse flags and arguments.
type browseRequest struct {
	count          int
	startInBrowser bool
	opts           model.BrowserOptions
}

func resolveBrowseRequest(c *cobra.Command, args []string, cfg *config.Config) (browseRequest, error) {
	req := browseRequest{
		opts: model.BrowserOptions{
			InitialURL: browseURL,
			Layout:     cfg.Appearance.LayoutMode(),
			DarkMode:   cfg.Appearance.DarkMode,
		},
	}

	switch {
	case len(args) == 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return req, fmt.Errorf("invalid pane count %q: %w", args[0], err)
		}
		req.count, req.startInBrowser = n, true
	case c.Flags().Changed("panes"):
		req.count, req.startInBrowser = browsePanes, true
	case browseURL != "":
		req.count, req.startInBrowser = cfg.Panes.InitialCount, true
	}
	req.opts.Count = req.count

	if browseLayout != "" {
		layout, err := entity.ParseLayoutMode(browseLayout)
		if err != nil {
			return req, err
		}
		req.opts.Layout = layout
	}
	if c.Flags().Changed("dark") {
		req.opts.DarkMode = browseDark
	}
	return req, nil
}

func runBrowse(c *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "tui")
	log := logging.FromContext(ctx)
	defer logging.RecoverPanic(ctx)

	req, err := resolveBrowseRequest(c, args, app.Config)
	if err != nil {
		return err
	}
	if req.startInBrowser && req.count != entity.ClampPaneCount(req.count) {
		log.Warn().
			Int("requested", req.count).
			Int("count", entity.ClampPaneCount(req.count)).
			Msg("pane count clamped")
	}

	root := model.NewAppModel(model.AppDeps{
		Ctx:            ctx,
		Config:         app.Config,
		Scheduler:      clock.NewRealScheduler(),
		Browser:        req.opts,
		StartInBrowser: req.startInBrowser,
	})
	defer root.Close()

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(c.Context()))

	if mgr := config.GetManager(); mgr != nil {
		mgr.OnConfigChange(func(cfg *config.Config) {
			defer logging.RecoverPanic(ctx)
			p.Send(model.ConfigChangedMsg{Config: cfg})
		})
		if err := mgr.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watching disabled")
		}
	}

	final, err := p.Run()
	if am, ok := final.(model.AppModel); ok {
		am.Close()
	}
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
