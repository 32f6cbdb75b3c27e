// SPDX-License-Identifier: MIT

// Package config loads engine settings from YAML and turns them into the
// functional options the other packages accept.
//
//	backend:
//	  kind: parallel
//	  workers: 8
//	  threshold: 4096
//	eigen:
//	  max_iter: 500
//	  two_cycle_heuristic: false
//	scheduler:
//	  semiring: max-plus
//	  max_iter: 0
//	log:
//	  level: info
//	  format: json
//
// Missing keys keep their Default() values; unknown keys are rejected.
package config
