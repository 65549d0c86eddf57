// Package config loads the settings of the shop table and its client.
package config
