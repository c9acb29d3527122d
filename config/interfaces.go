package config

// IServiceConfiguration defines a configuration which can be loaded from the environment.
type IServiceConfiguration interface {
	// Validates configuration entries.
	Validate() error
}

// Validator defines a structure which can validate itself.
type Validator interface {
	Validate() error
}
