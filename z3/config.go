package z3

// #include "go-z3.h"
import "C"

import "strconv"

// Config holds the engine options used to create a Context. Options are
// read once, when NewContext is called; changing a Config afterwards has no
// effect on contexts already created from it.
//
// Close must be called once the Config is no longer needed.
type Config struct {
	raw    C.Z3_config
	params map[string]string
}

// NewConfig creates an empty configuration.
func NewConfig() *Config {
	return &Config{
		raw:    C.Z3_mk_config(),
		params: make(map[string]string),
	}
}

// Close frees the memory associated with this config.
func (c *Config) Close() error {
	if c.raw != nil {
		C.Z3_del_config(c.raw)
		c.raw = nil
	}
	return nil
}

// SetParamValue sets an engine option such as "proof" or "timeout".
//
// Maps: Z3_set_param_value
func (c *Config) SetParamValue(key, value string) {
	if c.raw == nil {
		fatalf("config used after Close")
	}
	k := cString(key)
	defer freeString(k)
	v := cString(value)
	defer freeString(v)

	C.Z3_set_param_value(c.raw, k, v)
	c.params[key] = value
}

func (c *Config) SetProofGeneration(b bool) {
	c.SetParamValue("proof", strconv.FormatBool(b))
}

func (c *Config) SetModelGeneration(b bool) {
	c.SetParamValue("model", strconv.FormatBool(b))
}

func (c *Config) SetDebugRefCount(b bool) {
	c.SetParamValue("debug_ref_count", strconv.FormatBool(b))
}

// SetTimeoutMsec bounds every check made in contexts created from this
// config.
func (c *Config) SetTimeoutMsec(ms uint64) {
	c.SetParamValue("timeout", strconv.FormatUint(ms, 10))
}

// Params returns a copy of the options set so far.
func (c *Config) Params() map[string]string {
	out := make(map[string]string, len(c.params))
	for k, v := range c.params {
		out[k] = v
	}
	return out
}
