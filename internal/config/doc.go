// Package config manages user-level settings stored at ~/.leetstats/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// LeetCode username and the README path, with LEETCODE_* environment variables
// taking effect through Viper's automatic env binding.
package config
