// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment via caarlos0/env,
// following the `env` and `envPrefix` tags on [StructuredConfig] and its
// nested sections. The environment is the highest-priority source in the
// builder chain, so values parsed here win over flags, JSON, and defaults.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
