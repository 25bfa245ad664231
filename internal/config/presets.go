package config

import "sort"

// Presets are the built-in scenarios. Solar values (masses, radii, orbital
// axes, speeds) are in SI units.
var Presets = map[string]*Config{
	"inner-planets": {
		Name:  "inner-planets",
		Steps: 5000,
		Bodies: []BodyConfig{
			{
				Name: "sun", Mass: "1.989e30", Radius: "1392700000",
				Position: &VectorConfig{X: "0", Y: "0", Z: "0"},
			},
			{
				Name: "mercury", Mass: "3.302e23", Radius: "2439000",
				Orbit: &OrbitConfig{
					SemiMajorAxis:  "57909000000",
					InclinationDeg: 7.0,
					ThetaDeg:       90,
					StartSpeed:     "47870",
				},
			},
			{
				Name: "venus", Mass: "4.869e24", Radius: "6051000",
				Orbit: &OrbitConfig{
					SemiMajorAxis:  "108160000000",
					InclinationDeg: 3.4,
					ThetaDeg:       0,
					StartSpeed:     "35020",
				},
			},
			{
				Name: "earth", Mass: "5.974e24", Radius: "6378000",
				Orbit: &OrbitConfig{
					SemiMajorAxis:  "149600000000",
					InclinationDeg: 0,
					ThetaDeg:       180,
					StartSpeed:     "29790",
				},
			},
		},
	},
	"binary-rest": {
		Name:  "binary-rest",
		Steps: 2000,
		Bodies: []BodyConfig{
			{
				Name: "alpha", Mass: "8e12", Radius: "10",
				Position: &VectorConfig{X: "100", Y: "0", Z: "0"},
			},
			{
				Name: "beta", Mass: "3e11", Radius: "10",
				Position: &VectorConfig{X: "0", Y: "0", Z: "0"},
			},
		},
	},
	"mirror-triple": {
		Name:  "mirror-triple",
		Steps: 2000,
		Bodies: []BodyConfig{
			{
				Name: "east", Mass: "8e12", Radius: "10",
				Position: &VectorConfig{X: "100", Y: "0", Z: "0"},
			},
			{
				Name: "center", Mass: "3e11", Radius: "10",
				Position: &VectorConfig{X: "0", Y: "0", Z: "0"},
			},
			{
				Name: "north", Mass: "8e12", Radius: "10",
				Position: &VectorConfig{X: "0", Y: "100", Z: "0"},
			},
		},
	},
}

// GetPreset returns a built-in scenario, or nil when the name is unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
