package main

import (
	"flag"
	"os"
	"strconv"
)

type config struct {
	Text           string
	FontSize       float64
	AtlasSize      int
	ImagePath      string
	ImageCacheSize int
	Overflow       string
	Output         string
	LogLevel       string
}

// loadConfig reads flags. Every flag defaults to a GLYPHSHEET_* environment
// variable, then to a built-in value.
func loadConfig(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("glyphsheet", flag.ContinueOnError)
	fs.StringVar(&cfg.Text, "text", getEnv("GLYPHSHEET_TEXT", "Hello, glyphs! ─│▀▄█░▒▓▚ 世界"), "text to shape and cache")
	fs.Float64Var(&cfg.FontSize, "size", getEnvFloat("GLYPHSHEET_SIZE", 16), "font pixel size")
	fs.IntVar(&cfg.AtlasSize, "atlas", getEnvInt("GLYPHSHEET_ATLAS", 512), "atlas side length, a power of two")
	fs.StringVar(&cfg.ImagePath, "image", getEnv("GLYPHSHEET_IMAGE", ""), "image file to place in the atlas (default: generated animation)")
	fs.IntVar(&cfg.ImageCacheSize, "image-cache", getEnvInt("GLYPHSHEET_IMAGE_CACHE", 16), "decoded images kept")
	fs.StringVar(&cfg.Overflow, "overflow", getEnv("GLYPHSHEET_OVERFLOW", "never"), "square glyph overflow: never, always or whenfollowedbyspace")
	fs.StringVar(&cfg.Output, "output", getEnv("GLYPHSHEET_OUTPUT", "glyphsheet.png"), "output PNG file")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnv("GLYPHSHEET_LOG_LEVEL", "info"), "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
