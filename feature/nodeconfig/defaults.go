package nodeconfig

import (
	"maps"
	"sort"
)

// defaults is the baseline every node starts from. It is never handed out directly.
var defaults = map[string]any{
	"sleep_interval":   10 * 60, // seconds between measurements
	"local_influxdb":   true,    // log to a local InfluxDB
	"adafruit_io":      false,   // log to Adafruit IO
	"dht11_temp":       false,   // temperature from a DHT11 sensor
	"dht11_humidity":   false,   // humidity from a DHT11 sensor
	"ds18b20_temp":     false,   // temperature from a DS18B20 sensor
	"dfrobot_moisture": false,   // capacitive moisture sensor
	"door_opened":      false,   // magnetic contact switch
}

// Defaults returns a fresh copy of the default configuration.
func Defaults() map[string]any {
	return maps.Clone(defaults)
}

// DefaultKeys returns the default setting names in sorted order.
func DefaultKeys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnknownKeys returns the keys of override that have no default, sorted.
func UnknownKeys(override map[string]any) []string {
	var unknown []string
	for k := range override {
		if _, ok := defaults[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}
