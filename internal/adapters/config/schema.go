package config

// TopologyDTO is the YAML view of a resolved configuration.
type TopologyDTO struct {
	Source string     `yaml:"source"`
	Caches []CacheDTO `yaml:"caches"`
	Cores  []CoreDTO  `yaml:"cores"`
}

// CacheDTO represents a cache record.
type CacheDTO struct {
	ID      int    `yaml:"id"`
	Device  string `yaml:"device"`
	Mode    string `yaml:"mode,omitempty"`
	Network bool   `yaml:"network"`
}

// CoreDTO represents a core device together with the names generated for it.
type CoreDTO struct {
	CacheID    int      `yaml:"cacheId"`
	CoreID     int      `yaml:"coreId"`
	Device     string   `yaml:"device"`
	Network    bool     `yaml:"network"`
	Unit       string   `yaml:"unit"`
	Target     string   `yaml:"target"`
	Before     []string `yaml:"before"`
	BindsTo    []string `yaml:"bindsTo"`
	RequiredBy []string `yaml:"requiredBy"`
}
