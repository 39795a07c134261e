package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revilo196/oscquery-go/pkg/osc"
)

const sampleConfig = `
name: Test Synth
address: ":8123"
osc:
  ip: 192.168.1.10
  port: 9000
  transport: TCP
extensions:
  - ACCESS
  - VALUE
  - RANGE
  - UNIT
parameters:
  - address: /synth/volume
    type: f
    value: 0.5
    description: Master volume
    access: 3
    min: 0
    max: 1
    unit: gain.linear
  - address: /synth/voices
    type: i
    value: 8
    access: 1
  - address: /synth/label
    type: s
    value: lead
`

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "Test Synth", config.Name)
	assert.Equal(t, ":8123", config.Address)
	assert.Equal(t, "192.168.1.10", config.OSC.IP)
	assert.Equal(t, uint16(9000), config.OSC.Port)
	assert.Equal(t, "TCP", config.OSC.Transport)
	require.Len(t, config.Parameters, 3)
	assert.Equal(t, "/synth/volume", config.Parameters[0].Address)
}

func TestBuildTree(t *testing.T) {
	config, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	root, err := config.BuildTree()
	require.NoError(t, err)

	info := root.HostInfo()
	require.NotNil(t, info)
	assert.Equal(t, "Test Synth", info.Name)
	assert.Equal(t, "TCP", info.OSCTransport)
	assert.True(t, info.Extensions.Access)
	assert.True(t, info.Extensions.Unit)
	assert.False(t, info.Extensions.Listen)

	volume, err := root.Get("/synth/volume")
	require.NoError(t, err)
	assert.Equal(t, "f", volume.TypeString())
	assert.Equal(t, "Master volume", volume.Description())

	data, err := json.Marshal(volume)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"UNIT":["gain.linear"]`)
	assert.Contains(t, string(data), `"RANGE":[{"MIN":0,"MAX":1}]`)

	voices, err := root.Get("/synth/voices")
	require.NoError(t, err)
	assert.Equal(t, "i", voices.TypeString())
}

func TestBuildTreeErrors(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name: "unknown extension",
			config: Config{
				Extensions: []string{"BOGUS"},
			},
		},
		{
			name: "missing address",
			config: Config{
				Parameters: []ParameterConfig{{Type: "i", Value: 1}},
			},
		},
		{
			name: "multi-char type",
			config: Config{
				Parameters: []ParameterConfig{{Address: "/a", Type: "if", Value: 1}},
			},
		},
		{
			name: "min without max",
			config: Config{
				Parameters: []ParameterConfig{{
					Address: "/a", Type: "f", Value: 1.0,
					Min: ptr(float32(0)),
				}},
			},
		},
		{
			name: "bad unit",
			config: Config{
				Parameters: []ParameterConfig{{
					Address: "/a", Type: "f", Value: 1.0, Unit: "bogus.x",
				}},
			},
		},
		{
			name: "access out of range",
			config: Config{
				Parameters: []ParameterConfig{{
					Address: "/a", Type: "i", Value: 1,
					Access: ptr(uint8(4)),
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.config.BuildTree()
			assert.Error(t, err)
		})
	}
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name string
		tag  byte
		raw  any
		want osc.Value
	}{
		{"int", 'i', 42, osc.Int(42)},
		{"float", 'f', 0.5, osc.Float(0.5)},
		{"float from int", 'f', 2, osc.Float(2)},
		{"string", 's', "hello", osc.String("hello")},
		{"blob", 'b', "AQID", osc.Blob([]byte{1, 2, 3})},
		{"long", 'l', 1 << 40, osc.Long(1 << 40)},
		{"double", 'd', 2.5, osc.Double(2.5)},
		{"char", 'c', "x", osc.Char('x')},
		{"color", 'r', "#ff8000ff", osc.ColorValue(osc.Color{R: 255, G: 128, B: 0, A: 255})},
		{"midi", 'm', []any{0, 144, 60, 127}, osc.MidiValue(osc.MidiMessage{Port: 0, Status: 144, Data1: 60, Data2: 127})},
		{"bool", 'T', true, osc.Bool(true)},
		{"nil", 'N', nil, osc.Nil()},
		{"inf", 'I', nil, osc.Inf()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceValue(tt.tag, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceValueErrors(t *testing.T) {
	tests := []struct {
		name string
		tag  byte
		raw  any
	}{
		{"int from string", 'i', "nope"},
		{"float from bool", 'f', true},
		{"string from int", 's', 7},
		{"blob bad base64", 'b', "!!"},
		{"time bad format", 't', "yesterday"},
		{"char too long", 'c', "ab"},
		{"color bad prefix", 'r', "ff8000ff0"},
		{"color short", 'r', "#fff"},
		{"midi wrong length", 'm', []any{1, 2}},
		{"midi out of range", 'm', []any{0, 300, 0, 0}},
		{"bool from string", 'T', "true"},
		{"unknown tag", 'x', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coerceValue(tt.tag, tt.raw)
			assert.Error(t, err)
		})
	}
}

func ptr[T any](v T) *T { return &v }
