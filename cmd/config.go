package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "res2cpp"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	helpFlagName     = "help"
	configFlagName   = "config"
	sourceFlagName   = "source"
	headerFlagName   = "header"
	dataFlagName     = "data"
	typeFlagName     = "type"
	aliasFlagName    = "alias"
	includeFlagName  = "include"
	nativeFlagName   = "native"
	parallelFlagName = "parallel"
	quietFlagName    = "quiet"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"

	defaultDataType = "unsigned char"
	defaultParallel = 4

	envPrefix = "RES2CPP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ""
	defaultLogLevel      = "warn"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(dataFlagName, defaultDataType)
	viper.SetDefault(typeFlagName, "")
	viper.SetDefault(aliasFlagName, "")
	viper.SetDefault(includeFlagName, []string{})
	viper.SetDefault(nativeFlagName, false)
	viper.SetDefault(parallelFlagName, defaultParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("ignoring unreadable config file", "file", configFileName, "error", err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// Logs go to a rotated file when logPath (or log.filename) is set and to
// stderr otherwise. If verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool, stderr io.Writer) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelWarn)
	}

	logWriter := stderr
	if strings.TrimSpace(logPath) != "" {
		logWriter = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: verbose,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
