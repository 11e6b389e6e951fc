package config

// Config is the optional builder configuration file.
type Config struct {
	Variant  string      `yaml:"variant" validate:"required,variant"`
	Sizes    []string    `yaml:"sizes,omitempty" validate:"omitempty,unique,dive,option_name"`
	Toppings []string    `yaml:"toppings,omitempty" validate:"omitempty,unique,dive,option_name"`
	Log      LogSettings `yaml:"log,omitempty"`
}

// LogSettings controls where and how verbosely the builder logs.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Variant: "pizza",
		Log:     LogSettings{Level: "info"},
	}
}
