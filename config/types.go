package config

type Config struct {
	Eval   EvalConfig   `yaml:"eval" json:"eval"`
	Render RenderConfig `yaml:"render" json:"render"`
}

type EvalConfig struct {
	// Workers bounds concurrent queries; 0 means one per CPU.
	Workers   int    `yaml:"workers" json:"workers"`
	CacheSize int    `yaml:"cache-size" json:"cache-size"`
	Format    string `yaml:"format" json:"format"`
}

// RenderConfig angles are in degrees. A zero Distance frames the whole
// scene.
type RenderConfig struct {
	Size       int          `yaml:"size" json:"size"`
	Distance   float64      `yaml:"distance" json:"distance"`
	Yaw        float64      `yaml:"yaw" json:"yaw"`
	Pitch      float64      `yaml:"pitch" json:"pitch"`
	FOV        float64      `yaml:"fov" json:"fov"`
	LineWidth  float64      `yaml:"line-width" json:"line-width"`
	MarkerSize float64      `yaml:"marker-size" json:"marker-size"`
	Colors     ColorsConfig `yaml:"colors" json:"colors"`
}

// ColorsConfig holds "#rrggbb" or "#rrggbbaa" strings.
type ColorsConfig struct {
	Background string `yaml:"background" json:"background"`
	Segment    string `yaml:"segment" json:"segment"`
	Orb        string `yaml:"orb" json:"orb"`
	Hexahedron string `yaml:"hexahedron" json:"hexahedron"`
	Hit        string `yaml:"hit" json:"hit"`
}
