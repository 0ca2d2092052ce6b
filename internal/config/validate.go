package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Reports.MaxBudget <= 0 {
		return fmt.Errorf("reports.max_budget must be > 0 (got %d)", c.Reports.MaxBudget)
	}
	if c.Reports.MaxImagesPerReport <= 0 {
		return fmt.Errorf("reports.max_images_per_report must be > 0 (got %d)", c.Reports.MaxImagesPerReport)
	}

	if c.Storage.Endpoint != "" {
		if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
			return fmt.Errorf("storage endpoint is set but access credentials are missing")
		}
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage endpoint is set but bucket is empty")
		}
	}

	return nil
}
