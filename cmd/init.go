package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

var errConfigExists = errors.New("file already exists")

// configEntry is one top level key of the written config file.
type configEntry struct {
	key     string
	comment string
	value   any
}

func defaultConfigEntries() []configEntry {
	return []configEntry{
		{configVersionKey, "config file format version", currentConfigVersion},
		{configFlagName, "manifest compiled when --config is not given", viper.GetString(configFlagName)},
		{sourceFlagName, "generated source, empty for the manifest with a .cpp extension", viper.GetString(sourceFlagName)},
		{headerFlagName, "generated header, empty for the source with a .h extension", viper.GetString(headerFlagName)},
		{dataFlagName, "element type the embedded bytes are exposed as", viper.GetString(dataFlagName)},
		{typeFlagName, "resource type, empty for std::pair<const <data>*, size_t>", viper.GetString(typeFlagName)},
		{aliasFlagName, "alias declared for the resource type, e.g. assets::Resource", viper.GetString(aliasFlagName)},
		{includeFlagName, "headers included by the generated header", viper.GetStringSlice(includeFlagName)},
		{nativeFlagName, "pack 64 bit words in native byte order to speed up C++ compilation", viper.GetBool(nativeFlagName)},
		{parallelFlagName, "resource files read in parallel", viper.GetInt(parallelFlagName)},
		{"log", "logs go to stderr unless a filename is set", map[string]any{
			"filename":    viper.GetString(logFilenameKey),
			"level":       viper.GetString(logLevelKey),
			"verbose":     viper.GetBool(logVerboseKey),
			"max_size":    viper.GetInt(logMaxSizeKey),
			"max_backups": viper.GetInt(logMaxBackupsKey),
			"max_age":     viper.GetInt(logMaxAgeKey),
			"compress":    viper.GetBool(logCompressKey),
		}},
	}
}

// renderDefaultConfig encodes the current settings as a commented yaml
// document.
func renderDefaultConfig() ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	for _, entry := range defaultConfigEntries() {
		var value yaml.Node
		if err := value.Encode(entry.value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", entry.key, err)
		}

		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.key, HeadComment: "# " + entry.comment},
			&value,
		)
	}

	return yaml.Marshal(doc)
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a commented res2cpp.yaml with the current settings",
		Long: `Create a res2cpp.yaml in the current working directory holding the
settings res2cpp would use now, one commented key per option. An existing
file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := m.Path(filepath.Join(configFolderPath, configFileName))

			if fsAdapter.Exists(targetPath) {
				return fmt.Errorf("failed to write config file: %s: %w", targetPath, errConfigExists)
			}

			content, err := renderDefaultConfig()
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			if err := fsAdapter.WriteFile(targetPath, content); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
