package settings

import (
	"encoding/json"
	"log/slog"
	"strings"

	"parbox.dev/parbox/bounds"
	"parbox.dev/parbox/params"
	"parbox.dev/parbox/utils"
)

var (
	Settings = ParboxSettings{}
)

type ParboxSettings struct {
	LogLevel  string `json:"log_level"`
	Threshold int    `json:"threshold"`
	Workers   int    `json:"workers"`
}

func (s *ParboxSettings) Default() {
	s.LogLevel = "error"
	s.Threshold = bounds.DefaultThreshold
	s.Workers = 0 // one worker per execution unit
}

func (s *ParboxSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.PARBOX_SETTINGS)
	if err != nil {
		utils.Logde(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.SetLogLevel()

	return true
}

func (s *ParboxSettings) Save() {
	params.EnsureParamDirectories()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.PARBOX_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *ParboxSettings) SetLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}
