// internal/config/config.go
package config

type Config struct {
	Lamp LampConfig `yaml:"lamp"`
}

type LampConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Poll    PollConfig    `yaml:"poll"`
	Display DisplayConfig `yaml:"display"`
	Roster  []SlotConfig  `yaml:"roster"`
}

// ---- SERVER ----

type ServerConfig struct {
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	Path             string `yaml:"path"`
	ConnectRetries   int    `yaml:"connect_retries"`
	ConnectTimeoutMs int    `yaml:"connect_timeout_ms"`
	ResponseWaitMs   int    `yaml:"response_wait_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs      int `yaml:"interval_ms"`
	PayloadCapacity int `yaml:"payload_capacity"`
}

// ---- DISPLAY ----

type DisplayConfig struct {
	Driver    string        `yaml:"driver"` // "modbus" or "term"
	Positions int           `yaml:"positions"`
	Modbus    *ModbusConfig `yaml:"modbus"` // required when driver == "modbus"
}

type ModbusConfig struct {
	Endpoint    string `yaml:"endpoint"`
	UnitID      uint8  `yaml:"unit_id"`
	BaseAddress uint16 `yaml:"base_address"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// ---- ROSTER ----

// SlotConfig declares one tracked slot.
// Exactly one of Name or Wildcard must be set.
// Slot order is significant: matching is first-match-wins.
type SlotConfig struct {
	Name     string `yaml:"name"`
	Wildcard bool   `yaml:"wildcard"`
}
