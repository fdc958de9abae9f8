package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/multiview/internal/application/usecase"
	"github.com/bnema/multiview/internal/cli/styles"
)

var (
	classifyJSON bool
	classifySeed int
)

var classifyCmd = &cobra.Command{
	Use:   "classify <url>...",
	Short: "Show how URLs would be displayed",
	Long: `Classify each URL the way the browser does when it is applied:
video or website, detected platform, the embed URL panes load, and the
preview image URL used for websites.

Examples:
  multiview classify https://www.youtube.com/watch?v=dQw4w9WgXcQ
  multiview classify vimeo.com/76979871 example.com --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "output as JSON")
	classifyCmd.Flags().IntVar(&classifySeed, "seed", 0, "seed for the preview image URL")
}

func runClassify(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewClassifyRenderer(app.Theme)
	uc := usecase.NewClassifyURLUseCase(app.Config.Placeholder.Endpoint)

	results := make([]*usecase.ClassifyURLOutput, 0, len(args))
	var failed int
	for _, arg := range args {
		out, err := uc.Execute(app.Ctx(), usecase.ClassifyURLInput{URL: arg, Seed: classifySeed})
		if err != nil {
			failed++
			fmt.Fprintln(os.Stderr, renderer.RenderError(arg, err))
			continue
		}
		results = append(results, out)
	}

	if classifyJSON {
		data, err := renderer.RenderJSON(results)
		if err != nil {
			return err
		}
		fmt.Println(data)
	} else if len(results) > 0 {
		fmt.Println(renderer.Render(results))
	}

	if failed > 0 {
		return errors.New("some URLs could not be classified")
	}
	return nil
}
