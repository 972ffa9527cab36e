// Package gridconf reads grid bot YAML configuration files and renders
// them as display rows for the dashboard.
package gridconf

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/Hans010101/Crypto-Trading/internal/model"
)

var errEmptyFile = errors.New("empty document")

// gridSystem mirrors the grid_system block of a bot config file. Only
// the fields shown on the dashboard are decoded.
type gridSystem struct {
	Exchange        string    `yaml:"exchange"`
	Symbol          string    `yaml:"symbol"`
	GridType        string    `yaml:"grid_type"`
	OrderAmount     yaml.Node `yaml:"order_amount"`
	GridCount       int       `yaml:"grid_count"`
	FollowGridCount *int      `yaml:"follow_grid_count"`
}

type gridFile struct {
	GridSystem *gridSystem `yaml:"grid_system"`
}

// Loader lists bot configs from a directory of YAML files.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// List returns one row per parseable .yaml file, in filename order.
// Template files and files that fail to parse are skipped; a missing
// directory yields an empty list.
func (l *Loader) List() []model.GridConfig {
	configs := []model.GridConfig{}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return configs
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".yaml" {
			continue
		}
		if strings.Contains(name, "模版") || strings.Contains(strings.ToLower(name), "template") {
			continue
		}

		cfg, err := l.parse(filepath.Join(l.dir, name))
		if err != nil {
			log.Printf("gridconf: skip %s: %v", name, err)
			continue
		}
		cfg.Filename = name
		configs = append(configs, cfg)
	}
	return configs
}

func (l *Loader) parse(path string) (model.GridConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.GridConfig{}, err
	}

	var body map[string]any
	if err := yaml.Unmarshal(raw, &body); err != nil {
		return model.GridConfig{}, err
	}
	if len(body) == 0 {
		return model.GridConfig{}, errEmptyFile
	}

	var doc gridFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return model.GridConfig{}, err
	}

	sys := doc.GridSystem
	if sys == nil {
		// Older files keep the settings at the document root.
		sys = &gridSystem{}
		if err := yaml.Unmarshal(raw, sys); err != nil {
			return model.GridConfig{}, err
		}
	}

	exchange := sys.Exchange
	if exchange == "" {
		exchange = "Unknown"
	}
	symbol := sys.Symbol
	if symbol == "" {
		symbol = "Unknown"
	}

	gridType := strings.ToLower(sys.GridType)
	if gridType == "" {
		gridType = "normal"
	}

	direction := "long"
	if strings.Contains(gridType, "short") {
		direction = "short"
	}

	mode := "NORMAL (常规)"
	switch {
	case strings.Contains(gridType, "follow"):
		mode = "FOLLOW (移动)"
	case strings.Contains(gridType, "martingale"):
		mode = "MARTINGALE (马丁)"
	}

	count := sys.GridCount
	if sys.FollowGridCount != nil {
		count = *sys.FollowGridCount
	}
	amount := sys.OrderAmount.Value
	if amount == "" {
		amount = "0"
	}

	return model.GridConfig{
		Exchange:   capitalize(exchange),
		Symbol:     symbol,
		Mode:       mode,
		Direction:  direction,
		Investment: fmt.Sprintf("%d 格 × %s", count, amount),
		Status:     "stopped",
	}, nil
}

func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
