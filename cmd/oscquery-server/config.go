package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/revilo196/oscquery-go/pkg/model"
	"github.com/revilo196/oscquery-go/pkg/osc"
	"github.com/revilo196/oscquery-go/pkg/unit"
)

// Config is the YAML server configuration.
type Config struct {
	// Name is the advertised host name.
	Name string `yaml:"name"`

	// Address is the HTTP listen address (default ":8080").
	Address string `yaml:"address"`

	// OSC describes the OSC side announced in HOST_INFO.
	OSC OSCConfig `yaml:"osc"`

	// Extensions lists the HOST_INFO extensions this host supports.
	Extensions []string `yaml:"extensions"`

	// Parameters declares the namespace tree.
	Parameters []ParameterConfig `yaml:"parameters"`
}

// OSCConfig describes the OSC transport endpoint.
type OSCConfig struct {
	IP        string `yaml:"ip"`
	Port      uint16 `yaml:"port"`
	Transport string `yaml:"transport"`
}

// ParameterConfig declares one parameter of the namespace.
type ParameterConfig struct {
	Address     string   `yaml:"address"`
	Type        string   `yaml:"type"`
	Value       any      `yaml:"value"`
	Description string   `yaml:"description"`
	Access      *uint8   `yaml:"access"`
	Min         *float32 `yaml:"min"`
	Max         *float32 `yaml:"max"`
	Unit        string   `yaml:"unit"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// HostInfo builds the HOST_INFO descriptor from the configuration.
func (c *Config) HostInfo() (*model.HostInfo, error) {
	info := model.NewHostInfo(c.Name, c.OSC.IP, c.OSC.Port)
	if c.OSC.Transport != "" {
		info.WithTransport(c.OSC.Transport)
	}
	for _, ext := range c.Extensions {
		switch ext {
		case "ACCESS":
			info.WithExtAccess()
		case "VALUE":
			info.WithExtValue()
		case "RANGE":
			info.WithExtRange()
		case "DESCRIPTION":
			info.WithExtDescription()
		case "TAGS":
			info.WithExtTags()
		case "EXTENDED_TYPE":
			info.WithExtExtendedType()
		case "UNIT":
			info.WithExtUnit()
		case "CRITICAL":
			info.WithExtCritical()
		case "CLIPMODE":
			info.WithExtClipmode()
		case "LISTEN":
			info.WithExtListen()
		case "PATH_CHANGED":
			info.WithExtPathChanged()
		default:
			return nil, fmt.Errorf("unknown extension %q", ext)
		}
	}
	return info, nil
}

// BuildTree assembles the namespace tree from the declared parameters.
func (c *Config) BuildTree() (*model.Node, error) {
	info, err := c.HostInfo()
	if err != nil {
		return nil, err
	}
	root := model.NewRoot(info)

	for _, pc := range c.Parameters {
		param, err := pc.parameter()
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", pc.Address, err)
		}
		if err := root.Add(param); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", pc.Address, err)
		}
	}
	return root, nil
}

func (pc *ParameterConfig) parameter() (model.Parameter, error) {
	if pc.Address == "" {
		return model.Parameter{}, fmt.Errorf("missing address")
	}
	if len(pc.Type) != 1 {
		return model.Parameter{}, fmt.Errorf("type must be a single tag, got %q", pc.Type)
	}

	value, err := coerceValue(pc.Type[0], pc.Value)
	if err != nil {
		return model.Parameter{}, err
	}

	param := model.NewParameter(pc.Address, value)
	if pc.Description != "" {
		param = param.WithDescription(pc.Description)
	}
	if pc.Access != nil {
		var access model.Access
		switch *pc.Access {
		case 0:
			access = model.NoAccess
		case 1:
			access = model.Read
		case 2:
			access = model.Write
		case 3:
			access = model.ReadWrite
		default:
			return model.Parameter{}, fmt.Errorf("access must be 0-3, got %d", *pc.Access)
		}
		param = param.WithAccess(access)
	}
	if pc.Min != nil && pc.Max != nil {
		param = param.WithMinMax(*pc.Min, *pc.Max)
	} else if pc.Min != nil || pc.Max != nil {
		return model.Parameter{}, fmt.Errorf("min and max must be set together")
	}
	if pc.Unit != "" {
		u, err := unit.Decode(pc.Unit)
		if err != nil {
			return model.Parameter{}, err
		}
		param = param.WithUnit(u)
	}
	return param, nil
}

// coerceValue converts a YAML scalar into the typed value named by the
// tag. YAML hands numbers over as int or float64 depending on their
// spelling, so numeric tags accept both.
func coerceValue(tag byte, raw any) (osc.Value, error) {
	switch tag {
	case 'i':
		n, ok := asInt(raw)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 'i' needs an integer value, got %T", raw)
		}
		return osc.Int(int32(n)), nil
	case 'f':
		f, ok := asFloat(raw)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 'f' needs a number value, got %T", raw)
		}
		return osc.Float(float32(f)), nil
	case 's':
		s, ok := raw.(string)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 's' needs a string value, got %T", raw)
		}
		return osc.String(s), nil
	case 'b':
		s, ok := raw.(string)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 'b' needs a base64 string, got %T", raw)
		}
		blob, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return osc.Value{}, fmt.Errorf("tag 'b': %w", err)
		}
		return osc.Blob(blob), nil
	case 't':
		s, ok := raw.(string)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 't' needs an RFC 3339 string, got %T", raw)
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return osc.Value{}, fmt.Errorf("tag 't': %w", err)
		}
		return osc.Time(ts), nil
	case 'l':
		n, ok := asInt(raw)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 'l' needs an integer value, got %T", raw)
		}
		return osc.Long(n), nil
	case 'd':
		f, ok := asFloat(raw)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 'd' needs a number value, got %T", raw)
		}
		return osc.Double(f), nil
	case 'c':
		s, ok := raw.(string)
		if !ok || len([]rune(s)) != 1 {
			return osc.Value{}, fmt.Errorf("tag 'c' needs a single character, got %v", raw)
		}
		return osc.Char([]rune(s)[0]), nil
	case 'r':
		s, ok := raw.(string)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 'r' needs a #rrggbbaa string, got %T", raw)
		}
		col, err := parseColorString(s)
		if err != nil {
			return osc.Value{}, err
		}
		return osc.ColorValue(col), nil
	case 'm':
		list, ok := raw.([]any)
		if !ok || len(list) != 4 {
			return osc.Value{}, fmt.Errorf("tag 'm' needs four bytes, got %v", raw)
		}
		var bytes [4]uint8
		for i, entry := range list {
			n, ok := asInt(entry)
			if !ok || n < 0 || n > 255 {
				return osc.Value{}, fmt.Errorf("tag 'm' needs bytes in 0-255, got %v", entry)
			}
			bytes[i] = uint8(n)
		}
		return osc.MidiValue(osc.MidiMessage{
			Port:   bytes[0],
			Status: bytes[1],
			Data1:  bytes[2],
			Data2:  bytes[3],
		}), nil
	case 'T':
		b, ok := raw.(bool)
		if !ok {
			return osc.Value{}, fmt.Errorf("tag 'T' needs a boolean value, got %T", raw)
		}
		return osc.Bool(b), nil
	case 'N':
		return osc.Nil(), nil
	case 'I':
		return osc.Inf(), nil
	default:
		return osc.Value{}, fmt.Errorf("unsupported tag %q", string(tag))
	}
}

func parseColorString(s string) (osc.Color, error) {
	if len(s) != 9 || s[0] != '#' {
		return osc.Color{}, fmt.Errorf("color must be #rrggbbaa, got %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return osc.Color{}, fmt.Errorf("color must be #rrggbbaa, got %q", s)
	}
	return osc.Color{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

func asInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}

func asFloat(raw any) (float64, bool) {
	if f, ok := raw.(float64); ok {
		return f, true
	}
	if n, ok := asInt(raw); ok {
		return float64(n), true
	}
	return 0, false
}
