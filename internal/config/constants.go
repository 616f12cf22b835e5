package config

import "time"

// app constants
const (
	AppName        = "centerball"
	AppDescription = "a chain of balls that fall through the center of the terminal, one tap at a time"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	ConfigFile = "centerball.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "CENTERBALL"

	Version = "0.3.0"
)

// chain constants
const (
	DefaultChainLength = 5

	CadenceStep  = "step"
	CadenceSweep = "sweep"
)

// animation constants
const (
	DefaultTickInterval = 50 * time.Millisecond
)

// theme constants
const (
	DefaultBackground = "#212121"
	DefaultBall       = "#388E3C"
	DefaultAccent     = "#7D56F4"
)

// renderer constants
const (
	RendererTea   = "tea"
	RendererTcell = "tcell"
)

// headless constants
const (
	DefaultHeadlessWidth  = 60
	DefaultHeadlessHeight = 20
)

// watch constants
const (
	DefaultWatchDebounce = 150 * time.Millisecond
)
