package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/stylegen-io/stylegen/pkg/generator"
	"github.com/stylegen-io/stylegen/pkg/project"
	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

const (
	generateDesc = `This command compiles style and palette modules into generated sources
`
	generateExample = `  stylegen generate [arguments]...
  # Compile the project described by a manifest
  stylegen generate --project stylegen.yaml

  # Compile style files directly
  stylegen generate --output-dir gen colors.palette basic.style

  # Compile a palette and bundle a theme pack
  stylegen generate --theme-output day.theme --background bg.jpg colors.palette
`
)

// NewGenerateCmd returns the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "generate [style files...]",
		Short:        "Compile style modules into generated sources",
		Long:         generateDesc,
		Example:      generateExample,
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("project", "p", "stylegen.yaml", "Project manifest to compile")
	cmd.Flags().StringSliceP("include-path", "I", nil, "Additional include search directories")
	cmd.Flags().StringP("output-dir", "o", ".", "Directory receiving the generated files")
	cmd.Flags().String("theme-output", "", "Path of the .theme archive to write")
	cmd.Flags().String("background", "", "Background image bundled into the theme pack")
	cmd.Flags().Bool("tiled", false, "Store the background under the tiling name")

	return cmd
}

func runGenerate(cc *cobra.Command, args []string) error {
	flags := cc.Flags()

	var merr error

	projectPath, err := flags.GetString("project")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	includePaths, err := flags.GetStringSlice("include-path")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	outputDir, err := flags.GetString("output-dir")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	themeOutput, err := flags.GetString("theme-output")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	background, err := flags.GetString("background")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	tiled, err := flags.GetBool("tiled")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrInvalidArguments, merr)
	}

	c, err := buildConfig(args, projectPath, includePaths, outputDir,
		themeOutput, background, tiled)
	if err != nil {
		return err
	}

	return generator.RunProject(c)
}

// buildConfig turns direct style file arguments into a manifest-less
// configuration; with no arguments the manifest is loaded instead, and
// the direct-mode flags are ignored.
func buildConfig(args []string, projectPath string, includePaths []string,
	outputDir, themeOutput, background string, tiled bool,
) (*project.Config, error) {
	if len(args) == 0 {
		return project.Load(projectPath)
	}

	c := &project.Config{
		StyleFiles:   args,
		IncludePaths: includePaths,
		OutputDir:    outputDir,
	}
	if themeOutput != "" {
		c.Theme = &project.Theme{
			Output:     themeOutput,
			Background: background,
			Tiled:      tiled,
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", styerrors.ErrInvalidManifest, err)
	}

	return c, nil
}
