package wspackager

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wspackager/internal/version"
	"github.com/arthur-debert/wspackager/pkg/cobrax/topics"
	"github.com/arthur-debert/wspackager/pkg/config"
	"github.com/arthur-debert/wspackager/pkg/display"
	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/arthur-debert/wspackager/pkg/packager"
	"github.com/arthur-debert/wspackager/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command. Running it without a
// subcommand builds the package.
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		color     string
	)

	rootCmd := &cobra.Command{
		Use:     "wspackager",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Resolved(),
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			format, err := style.ParseFormat(color)
			if err != nil {
				return err
			}
			style.Apply(format, os.Stdout)
			return nil
		},
		RunE:              runBuild,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringP("cwd", "C", ".", MsgFlagCwd)
	rootCmd.PersistentFlags().String("manifest", "", MsgFlagManifest)
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto", MsgFlagColor)

	rootCmd.Flags().StringP("destination", "d", ".", MsgFlagDestination)
	rootCmd.Flags().BoolP("quiet", "q", false, MsgFlagQuiet)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	renderer := topics.NewGlamourRenderer()
	if !stdoutIsTerminal() {
		renderer = topics.NewPlainGlamourRenderer()
	}
	if _, err := topics.Initialize(rootCmd, helpTopics(), topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s, err := newSession(cmd, out)
	if err != nil {
		return err
	}

	result, err := s.packager.Run(s.cfg.Build.Destination, s.cfg.Build.Quiet)
	if err != nil {
		return err
	}

	log.Info().
		Str("package", result.Filename).
		Str("size", result.HumanSize).
		Strs("artifacts", result.Artifacts).
		Msg("Build finished")
	return nil
}

func newPlanCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			s, err := newSession(cmd, out)
			if err != nil {
				return err
			}

			pl, err := s.packager.Plan()
			if err != nil {
				return err
			}

			filename := packager.ResolveDestination(s.cfg.Build.Destination, s.info)
			if output == display.FormatTree {
				return display.NewTreePrinter(out).Print(filename, pl, s.packager.Classifier())
			}
			return display.Encode(out, output, filename, pl)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", display.FormatTree, MsgFlagOutput)
	cmd.Flags().StringP("destination", "d", ".", MsgFlagDestination)
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{display.FormatTree, display.FormatYAML, display.FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}

			_, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			content, err := config.Generate(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Resolved(), version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
