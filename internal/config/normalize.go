// internal/config/normalize.go
package config

// Defaults applied by Normalize. Zero in the file means "use the default".
const (
	DefaultPort             = 80
	DefaultPath             = "/"
	DefaultConnectRetries   = 3
	DefaultConnectTimeoutMs = 2000
	DefaultResponseWaitMs   = 5000
	DefaultIntervalMs       = 10000
	DefaultPayloadCapacity  = 4096
	DefaultModbusTimeoutMs  = 1000
)

// Normalize applies post-validation defaulting.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	lamp := &cfg.Lamp

	if lamp.Server.Port == 0 {
		lamp.Server.Port = DefaultPort
	}
	if lamp.Server.Path == "" {
		lamp.Server.Path = DefaultPath
	}
	if lamp.Server.ConnectRetries == 0 {
		lamp.Server.ConnectRetries = DefaultConnectRetries
	}
	if lamp.Server.ConnectTimeoutMs == 0 {
		lamp.Server.ConnectTimeoutMs = DefaultConnectTimeoutMs
	}
	if lamp.Server.ResponseWaitMs == 0 {
		lamp.Server.ResponseWaitMs = DefaultResponseWaitMs
	}

	if lamp.Poll.IntervalMs == 0 {
		lamp.Poll.IntervalMs = DefaultIntervalMs
	}
	if lamp.Poll.PayloadCapacity == 0 {
		lamp.Poll.PayloadCapacity = DefaultPayloadCapacity
	}

	if lamp.Display.Modbus != nil && lamp.Display.Modbus.TimeoutMs == 0 {
		lamp.Display.Modbus.TimeoutMs = DefaultModbusTimeoutMs
	}
}
