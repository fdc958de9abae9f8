package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/multiview/internal/application/usecase"
	"github.com/bnema/multiview/internal/cli/styles"
	"github.com/bnema/multiview/internal/infrastructure/config"
)

var (
	configSchemaWrite bool
	configKeysJSON    bool
	configKeysSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the config file lives, the effective values, the JSON schema and every available key.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the effective configuration",
	Long:  `Load the config file, apply environment overrides and show the resulting values.`,
	RunE:  runConfigStatus,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema describing config.toml.

With --write the schema is saved next to the config file so editors can
use it for completion and validation.`,
	RunE: runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key",
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema next to the config file")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
	configKeysCmd.Flags().StringVarP(&configKeysSection, "section", "s", "", "only show keys of one section (panes, placeholder, appearance, logging)")
}

func configRenderer() (*styles.ConfigRenderer, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return styles.NewConfigRenderer(app.Theme), nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	renderer, err := configRenderer()
	if err != nil {
		return err
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	_, statErr := os.Stat(configFile)
	fmt.Println(renderer.RenderPath(configFile, statErr == nil))
	return nil
}

func runConfigStatus(_ *cobra.Command, _ []string) error {
	renderer, err := configRenderer()
	if err != nil {
		return err
	}
	app := GetApp()

	if app.ConfigErr != nil {
		fmt.Println(renderer.RenderError(app.ConfigErr))
		return nil
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderStatus(configFile, app.Config))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	renderer, err := configRenderer()
	if err != nil {
		return err
	}

	if configSchemaWrite {
		path, err := config.WriteSchemaFile()
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
		fmt.Println(renderer.RenderSchemaWritten(path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}
	renderer := styles.NewConfigKeysRenderer(app.Theme)

	if configKeysJSON {
		out, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(renderer.Render(result.Keys))
	return nil
}
