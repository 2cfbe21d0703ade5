package config

import (
	"os"
	"strconv"
)

const DefaultWorkers = 4

// Workers returns the apply worker count from the BATCHREN_WORKERS env
// var, falling back to DefaultWorkers.
func Workers() int {
	if env := os.Getenv("BATCHREN_WORKERS"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}
	return DefaultWorkers
}
