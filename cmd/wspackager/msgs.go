package wspackager

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Build a package archive from a directory"
	MsgPlanShort       = "Show what would be packaged"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCwd         = "Working root to package from"
	MsgFlagDestination = "Destination archive, may use {name} and {version}"
	MsgFlagQuiet       = "Do not print the package tree nor the success line"
	MsgFlagManifest    = "Manifest file relative to the working root"
	MsgFlagColor       = "Output styling: auto, term or text"
	MsgFlagOutput      = "Plan output format: tree, yaml or json"
	MsgFlagDefaults    = "Print the commented defaults file instead"

	// Status messages
	MsgPackageGenerated = "Package generated (%s)"
	MsgVersionFormat    = "wspackager version %s\n  commit: %s\n  built:  %s\n"

	// Warnings
	MsgWarnNoDeclarations = "No files declared, the package will only hold the manifest"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
