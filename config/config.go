// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/fasting"
)

const Version = "v0.1.0"

var (
	configDir      = "fast"
	configFileName = "config.yml"
	dbFileName     = "fast.db"
	statusFileName = "status.json"
	logFileName    = "fast.log"
)

const (
	defaultUser     = "local"
	defaultProtocol = string(fasting.Protocol168)
)

const (
	keyUser           = "user"
	keyProtocol       = "default_protocol"
	keyNotify         = "notifications.enabled"
	keyHalfwayNotify  = "notifications.halfway"
	keySessionCmd     = "settings.cmd"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.24hr_clock"
	keyAccentColor    = "display.accent_color"
)

// Styles holds the lipgloss styles used by the live tracker.
type Styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
}

// TrackerConfig represents the program configuration derived from the
// config file and command-line arguments.
type TrackerConfig struct {
	UserName            string           `json:"user"`
	DefaultProtocol     fasting.Protocol `json:"default_protocol"`
	ProtocolSet         bool             `json:"-"`
	CustomDuration      time.Duration    `json:"custom_duration"`
	PersonalGoal        string           `json:"personal_goal"`
	Tags                []string         `json:"tags"`
	SessionCmd          string           `json:"session_cmd"`
	PathToConfig        string           `json:"path_to_config"`
	PathToDB            string           `json:"path_to_db"`
	PathToStatus        string           `json:"path_to_status"`
	PathToLog           string           `json:"path_to_log"`
	Notify              bool             `json:"notify"`
	NotifyHalfway       bool             `json:"notify_halfway"`
	DarkTheme           bool             `json:"dark_theme"`
	TwentyFourHourClock bool             `json:"twenty_four_hour_clock"`
	Style               Styles           `json:"-"`
}

var trackerCfg = &TrackerConfig{}

var once sync.Once

func init() {
	fastEnv := strings.TrimSpace(os.Getenv("FAST_ENV"))
	if fastEnv != "" {
		configFileName = "config_" + fastEnv + ".yml"
		dbFileName = "fast_" + fastEnv + ".db"
		statusFileName = "status_" + fastEnv + ".json"
		logFileName = "fast_" + fastEnv + ".log"
	}
}

// setDefaults sets the program's default configuration values.
func setDefaults() {
	viper.SetDefault(keyUser, defaultUser)
	viper.SetDefault(keyProtocol, defaultProtocol)
	viper.SetDefault(keyNotify, true)
	viper.SetDefault(keyHalfwayNotify, true)
	viper.SetDefault(keySessionCmd, "")
	viper.SetDefault(keyDarkTheme, true)
	viper.SetDefault(keyTwentyFourHour, false)
	viper.SetDefault(keyAccentColor, "#2DD4BF")
}

// initTrackerConfig initialises the application configuration. If the
// config file does not exist, one is created with the defaults.
func initTrackerConfig() error {
	viper.SetConfigName(configFileName)
	viper.SetConfigType("yaml")

	relPath := filepath.Join(configDir, configFileName)

	pathToConfigFile, err := xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	trackerCfg.PathToConfig = pathToConfigFile

	viper.AddConfigPath(filepath.Dir(trackerCfg.PathToConfig))

	setDefaults()

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return viper.WriteConfigAs(trackerCfg.PathToConfig)
		}

		return err
	}

	return nil
}

// setTrackerConfig applies the config file and command-line arguments.
func setTrackerConfig(ctx *cli.Context) error {
	pathToDB, err := xdg.DataFile(filepath.Join(configDir, dbFileName))
	if err != nil {
		return err
	}

	trackerCfg.PathToDB = pathToDB

	pathToStatus, err := xdg.StateFile(filepath.Join(configDir, statusFileName))
	if err != nil {
		return err
	}

	trackerCfg.PathToStatus = pathToStatus

	pathToLog, err := xdg.StateFile(filepath.Join(configDir, logFileName))
	if err != nil {
		return err
	}

	trackerCfg.PathToLog = pathToLog

	// set from the config file
	trackerCfg.UserName = viper.GetString(keyUser)
	trackerCfg.DefaultProtocol = fasting.Protocol(viper.GetString(keyProtocol))
	trackerCfg.Notify = viper.GetBool(keyNotify)
	trackerCfg.NotifyHalfway = viper.GetBool(keyHalfwayNotify)
	trackerCfg.SessionCmd = viper.GetString(keySessionCmd)
	trackerCfg.DarkTheme = viper.GetBool(keyDarkTheme)
	trackerCfg.TwentyFourHourClock = viper.GetBool(keyTwentyFourHour)

	accent := viper.GetString(keyAccentColor)

	trackerCfg.Style = Styles{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#A3A3A3")),
		Hint:      lipgloss.NewStyle().Faint(true),
	}

	// set from command-line arguments
	if ctx.String("protocol") != "" {
		trackerCfg.DefaultProtocol = fasting.Protocol(ctx.String("protocol"))
		trackerCfg.ProtocolSet = true
	}

	if !trackerCfg.DefaultProtocol.Valid() {
		return fasting.ErrInvalidProtocol
	}

	if ctx.Duration("duration") > 0 {
		trackerCfg.CustomDuration = ctx.Duration("duration")
		trackerCfg.ProtocolSet = true
	}

	// a custom protocol has no standard window to fall back on
	if trackerCfg.ProtocolSet &&
		trackerCfg.DefaultProtocol == fasting.ProtocolCustom &&
		trackerCfg.CustomDuration == 0 {
		return fasting.ErrInvalidDuration
	}

	trackerCfg.PersonalGoal = ctx.String("goal")

	if tagArg := ctx.String("tag"); tagArg != "" {
		tags := strings.Split(tagArg, ",")
		for i := range tags {
			tags[i] = strings.TrimSpace(tags[i])
		}

		trackerCfg.Tags = tags
	}

	if ctx.Bool("disable-notification") {
		trackerCfg.Notify = false
	}

	if ctx.String("session-cmd") != "" {
		trackerCfg.SessionCmd = ctx.String("session-cmd")
	}

	return nil
}

// Tracker initializes and returns the tracker configuration. This
// initialization is done just once no matter how many times it is
// called.
func Tracker(ctx *cli.Context) *TrackerConfig {
	once.Do(func() {
		err := initTrackerConfig()
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		if err := setTrackerConfig(ctx); err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}
	})

	return trackerCfg
}
