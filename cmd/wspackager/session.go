package wspackager

import (
	"io"
	"path/filepath"

	"github.com/arthur-debert/wspackager/pkg/config"
	"github.com/arthur-debert/wspackager/pkg/display"
	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/filesystem"
	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/arthur-debert/wspackager/pkg/manifest"
	"github.com/arthur-debert/wspackager/pkg/packager"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/spf13/cobra"
)

// session is everything a command needs to work on one working root
type session struct {
	root     string
	cfg      *config.Config
	info     types.PackageInfo
	packager *packager.Packager
}

// overrides collects the flags the user actually set
func overrides(cmd *cobra.Command) map[string]interface{} {
	values := make(map[string]interface{})
	flags := cmd.Flags()

	if flags.Changed("destination") {
		v, _ := flags.GetString("destination")
		values["build.destination"] = v
	}
	if flags.Changed("quiet") {
		v, _ := flags.GetBool("quiet")
		values["build.quiet"] = v
	}
	if flags.Changed("manifest") {
		v, _ := flags.GetString("manifest")
		values["package.manifest"] = v
	}

	return values
}

// loadConfig resolves the working root and loads its configuration
func loadConfig(cmd *cobra.Command) (string, *config.Config, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd == "" {
		cwd = "."
	}

	root, err := filepath.Abs(cwd)
	if err != nil {
		return "", nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid working root").
			WithDetail("cwd", cwd)
	}

	cfg, err := config.Load(root, overrides(cmd))
	if err != nil {
		return "", nil, err
	}
	return root, cfg, nil
}

// newSession loads configuration and manifest and prepares a packager
// writing its output to out.
func newSession(cmd *cobra.Command, out io.Writer) (*session, error) {
	logger := logging.GetLogger("cli")

	root, cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	source, err := filesystem.NewWorkingRoot(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot open working root").
			WithDetail("root", root)
	}

	m, err := manifest.Load(source, cfg.Package.Manifest)
	if err != nil {
		return nil, err
	}

	info := cfg.PackageInfo(m.Info())
	decls := cfg.Declarations(m.Declarations())
	if len(decls) == 0 {
		logger.Warn().Msg(MsgWarnNoDeclarations)
	}

	logger.Info().
		Str("root", root).
		Str("package", info.Name).
		Str("version", info.Version).
		Int("declarations", len(decls)).
		Msg("Session ready")

	p := packager.New(decls, info, packager.Options{
		Source:           source,
		Output:           filesystem.NewOutput(),
		Root:             root,
		Manifest:         cfg.Package.Manifest,
		CompressionLevel: cfg.Build.CompressionLevel,
		CleanupOnFailure: cfg.Build.CleanupOnFailure,
		Printer:          display.NewTreePrinter(out),
		Stdout:           out,
	})

	return &session{root: root, cfg: cfg, info: info, packager: p}, nil
}
