// Package cmd provides the root command and CLI setup for res2cpp.
package cmd

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"res2cpp.dev/pkg/res2cpp/internal/adapter"
	"res2cpp.dev/pkg/res2cpp/internal/controller"
	"res2cpp.dev/pkg/res2cpp/internal/domain"
	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var hexEncoder adapter.HexEncoder
var stalenessChecker adapter.StalenessChecker
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by the commands reading the manifest.
var (
	configFlag   string
	sourceFlag   string
	headerFlag   string
	dataFlag     string
	typeFlag     string
	aliasFlag    string
	includeFlag  []string
	nativeFlag   bool
	parallelFlag int
	quietFlag    bool
	verboseFlag  bool
	logFileFlag  string
)

var errMissingConfig = errors.New("a manifest is required (--config)")

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	hexEncoder = adapter.NewLocalHexEncoder()
	stalenessChecker = adapter.NewModTimeStalenessChecker(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, hexEncoder, stalenessChecker, ui)
}

const manifestHelp = `Manifest syntax, one definition per line:
  # comment
  [ group ]            prefix following identifiers and paths with "group"
  [ id::prefix = dir ] set identifier and path prefix separately
  file.txt             embed file.txt as "file"
  name = 'a#b.txt'     embed a#b.txt as "name" (quotes protect # ] =)
  ns::name = file.bin  embed file.bin in namespace "ns"`

const rootLongDescription = `res2cpp embeds resource files in C++ programs. It compiles a manifest
into a header declaring one constant per resource and a source file
defining them, nested in namespaces derived from the identifiers.

` + manifestHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "res2cpp",
		Short:         "Embed resource files in C++ sources",
		Long:          rootLongDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := settingsFromConfig()
			if settings.ConfigFile == "" {
				_ = cmd.Help()
				return errMissingConfig
			}

			_, err := workflow.Generate(context.Background(), domain.GenerateArgs{
				Settings: settings,
				Threads:  viper.GetInt(parallelFlagName),
				Quiet:    viper.GetBool(quietFlagName),
			})

			return err
		},
	}
}

// rootFlagKeys maps each root flag to the viper key it feeds.
var rootFlagKeys = map[string]string{
	configFlagName:   configFlagName,
	sourceFlagName:   sourceFlagName,
	headerFlagName:   headerFlagName,
	dataFlagName:     dataFlagName,
	typeFlagName:     typeFlagName,
	aliasFlagName:    aliasFlagName,
	includeFlagName:  includeFlagName,
	nativeFlagName:   nativeFlagName,
	parallelFlagName: parallelFlagName,
	quietFlagName:    quietFlagName,
	verboseFlagName:  logVerboseKey,
	logFileFlagName:  logFilenameKey,
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	// -h selects the header, so help is long form only
	flags.Bool(helpFlagName, false, "help for "+cmd.Name())

	flags.StringVarP(&configFlag, configFlagName, "c", "", "sets the path of the manifest (required)")
	flags.StringVarP(&sourceFlag, sourceFlagName, "s", "", "sets the path of the source file (default: manifest with .cpp extension)")
	flags.StringVarP(&headerFlag, headerFlagName, "h", "", "sets the path of the header file (default: source with .h extension)")
	flags.StringVarP(&dataFlag, dataFlagName, "d", viper.GetString(dataFlagName), "use type for data (e.g. uint8_t, std::byte, void)")
	flags.StringVarP(&typeFlag, typeFlagName, "t", viper.GetString(typeFlagName), "use type for resource (e.g. std::span<const uint8_t>)")
	flags.StringVarP(&aliasFlag, aliasFlagName, "a", viper.GetString(aliasFlagName), "declare an alias for resource type")
	flags.StringArrayVarP(&includeFlag, includeFlagName, "i", viper.GetStringSlice(includeFlagName), "add #include to generated header (can be repeated)")
	flags.BoolVarP(&nativeFlag, nativeFlagName, "n", viper.GetBool(nativeFlagName), "optimize for native endianness to improve compile-time")
	flags.IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelFlagName), "number of resource files read in parallel")
	flags.BoolVarP(&quietFlag, quietFlagName, "q", false, "do not print a summary")
	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log debug messages")
	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "write logs to a rotated file instead of stderr")

	bindRootFlags(cmd)
}

// bindRootFlags points the viper keys at the persistent flags of cmd.
func bindRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	for name, key := range rootFlagKeys {
		bindFlagToConfig(flags.Lookup(name), key)
	}
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// settingsFromConfig collects the generation settings from flags, the
// environment and the config file.
func settingsFromConfig() m.Settings {
	settings := m.Settings{
		ConfigFile:    m.Path(viper.GetString(configFlagName)),
		SourceFile:    m.Path(viper.GetString(sourceFlagName)),
		HeaderFile:    m.Path(viper.GetString(headerFlagName)),
		DataType:      viper.GetString(dataFlagName),
		ResourceType:  viper.GetString(typeFlagName),
		ResourceAlias: viper.GetString(aliasFlagName),
		Includes:      viper.GetStringSlice(includeFlagName),
	}

	if viper.GetBool(nativeFlagName) {
		settings.Endianness = nativeEndianness()
	}

	return settings
}

func nativeEndianness() m.Endianness {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return m.EndianLittle
	}

	return m.EndianBig
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
