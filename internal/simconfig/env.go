package simconfig

import "circle-sandbox/internal/env"

// Environment variables that override the loaded config.
const (
	EnvGravity     = "SANDBOX_GRAVITY"
	EnvSpawnRadius = "SANDBOX_SPAWN_RADIUS"
	EnvSpawnMass   = "SANDBOX_SPAWN_MASS"
	EnvTargetFPS   = "SANDBOX_TARGET_FPS"
)

// ApplyEnv overrides cfg with any SANDBOX_* variables that are set, then re-validates.
// On error cfg is left unchanged.
func ApplyEnv(cfg *Config) error {
	out := *cfg
	floats := []struct {
		key string
		dst *float32
	}{
		{EnvGravity, &out.World.Gravity},
		{EnvSpawnRadius, &out.Spawn.Radius},
		{EnvSpawnMass, &out.Spawn.Mass},
	}
	for _, f := range floats {
		v, ok, err := env.Float32(f.key)
		if err != nil {
			return err
		}
		if ok {
			*f.dst = v
		}
	}
	fps, ok, err := env.Int32(EnvTargetFPS)
	if err != nil {
		return err
	}
	if ok {
		out.Window.TargetFPS = fps
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*cfg = out
	return nil
}
