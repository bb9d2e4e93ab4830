package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/arkveil/cellgrow/cellmesh"
)

// Params mirrors the growth engine's tunable parameter table:
// force-kernel factors, geometric constants, worker count, and the
// seed/grow iteration counts the driver's two-phase loop needs.
type Params struct {
	SplitThreshold    float64 `mapstructure:"split_threshold"`
	LinkRestLength    float64 `mapstructure:"link_rest_length"`
	RadiusOfInfluence float64 `mapstructure:"radius_of_influence"`
	RepulsionFactor   float64 `mapstructure:"repulsion_factor"`
	SpringFactor      float64 `mapstructure:"spring_factor"`
	PlanarFactor      float64 `mapstructure:"planar_factor"`
	BulgeFactor       float64 `mapstructure:"bulge_factor"`

	WorkerCount    int `mapstructure:"worker_count"`
	SeedIterations int `mapstructure:"seed_iterations"`
	Detail         int `mapstructure:"detail"`
	Iterations     int `mapstructure:"iterations"`
}

// CellParams projects the force-kernel subset of Params into
// cellmesh.Params, the type forcestep and division actually consume.
func (p Params) CellParams() cellmesh.Params {
	return cellmesh.Params{
		SplitThreshold:    p.SplitThreshold,
		LinkRestLength:    p.LinkRestLength,
		RadiusOfInfluence: p.RadiusOfInfluence,
		RepulsionFactor:   p.RepulsionFactor,
		SpringFactor:      p.SpringFactor,
		PlanarFactor:      p.PlanarFactor,
		BulgeFactor:       p.BulgeFactor,
	}
}

// Validate reports ErrParameterOutOfRange or ErrEmptySeedMesh for any
// value the engine cannot run with.
func (p Params) Validate() error {
	if err := p.CellParams().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrParameterOutOfRange, err)
	}
	if p.WorkerCount < 1 {
		return fmt.Errorf("%w: worker_count must be at least 1", ErrParameterOutOfRange)
	}
	if p.SeedIterations < 0 {
		return fmt.Errorf("%w: seed_iterations must be non-negative", ErrParameterOutOfRange)
	}
	if p.Detail < 0 {
		return ErrEmptySeedMesh
	}
	return nil
}

// Default returns the recommended parameter set named in spec.md's S5
// growth scenario: split_threshold=1000, link_rest_length=1, roi=1.5,
// rp=0.2, sp=0.4, pl=0.4, bg=0.2.
func Default() Params {
	return Params{
		SplitThreshold:    1000,
		LinkRestLength:    1,
		RadiusOfInfluence: 1.5,
		RepulsionFactor:   0.2,
		SpringFactor:      0.4,
		PlanarFactor:      0.4,
		BulgeFactor:       0.2,
		WorkerCount:       4,
		SeedIterations:    100,
		Detail:            2,
		Iterations:        1000,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("split_threshold", d.SplitThreshold)
	v.SetDefault("link_rest_length", d.LinkRestLength)
	v.SetDefault("radius_of_influence", d.RadiusOfInfluence)
	v.SetDefault("repulsion_factor", d.RepulsionFactor)
	v.SetDefault("spring_factor", d.SpringFactor)
	v.SetDefault("planar_factor", d.PlanarFactor)
	v.SetDefault("bulge_factor", d.BulgeFactor)
	v.SetDefault("worker_count", d.WorkerCount)
	v.SetDefault("seed_iterations", d.SeedIterations)
	v.SetDefault("detail", d.Detail)
	v.SetDefault("iterations", d.Iterations)
}

// Load reads Params from path (YAML), falling back to Default for any
// key path doesn't set, then validates the merged result. An empty
// path looks for "cellgrow.yaml" in the working directory and ./configs,
// and falls back to pure defaults if neither is found.
func Load(path string) (*Params, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cellgrow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	// A missing config file, searched or explicitly named, just means
	// "run on defaults" -- this mirrors the teacher's config loader,
	// which treats viper.ConfigFileNotFoundError and a bare os.IsNotExist
	// identically rather than failing startup over an absent file.
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	var p Params
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
