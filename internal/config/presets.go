package config

var Presets = map[string]map[string]*Config{
	"wcsph": {
		"drop": {
			Scheme: "wcsph", N: 400, Dt: 1e-3, Steps: 500,
			Gravity:   GravityConfig{Y: -9.81},
			InitState: InitStateConfig{Height: 10.0, Rho: 1000.0},
		},
		"still": {
			Scheme: "wcsph", N: 400, Dt: 1e-3, Steps: 200,
			InitState: InitStateConfig{Rho: 1000.0},
		},
	},
	"wcsph_tvdrk3": {
		"drop": {
			Scheme: "wcsph_tvdrk3", N: 400, Dt: 2e-3, Steps: 250,
			Gravity:   GravityConfig{Y: -9.81},
			InitState: InitStateConfig{Height: 10.0, Rho: 1000.0},
		},
	},
	"verlet_symplectic": {
		"drop": {
			Scheme: "verlet_symplectic", N: 400, Dt: 1e-3, Steps: 500,
			Gravity:   GravityConfig{Y: -9.81},
			InitState: InitStateConfig{Height: 10.0, Rho: 1000.0},
		},
	},
	"adami_verlet": {
		"drop": {
			Scheme: "adami_verlet", N: 400, Dt: 1e-3, Steps: 500,
			Gravity:   GravityConfig{Y: -9.81},
			InitState: InitStateConfig{Height: 10.0, Rho: 1000.0},
		},
	},
	"rigid_body_two_stage": {
		"projectile": {
			Scheme: "rigid_body_two_stage", N: 16, Dt: 1e-2, Steps: 200,
			Gravity:   GravityConfig{Y: -9.81},
			InitState: InitStateConfig{Height: 0.0, Speed: 20.0},
		},
	},
	"gas_dynamics": {
		"expansion": {
			Scheme: "gas_dynamics", N: 400, Dt: 5e-4, Steps: 400,
			InitState: InitStateConfig{Rho: 1.0},
		},
	},
}

func GetPreset(scheme, name string) *Config {
	byName, ok := Presets[scheme]
	if !ok {
		return nil
	}
	return byName[name]
}

func ListPresets(scheme string) []string {
	byName, ok := Presets[scheme]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
