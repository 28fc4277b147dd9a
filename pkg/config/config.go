// Package config reads JSON scene files and turns them into a scene, a
// camera and render settings.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taigrr/raycast/pkg/render"
)

// Config validation errors.
var (
	ErrUnknownObject   = errors.New("unknown object type")
	ErrUnknownLight    = errors.New("unknown light type")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrBadColor        = errors.New("invalid color")
	ErrBadGeometry     = errors.New("invalid geometry")
)

// Vec is a 3D vector written as a JSON array.
type Vec [3]float64

// SettingsCfg mirrors render.Settings. Pointer fields keep the default when
// omitted.
type SettingsCfg struct {
	Width          *int   `json:"width,omitempty"`
	Height         *int   `json:"height,omitempty"`
	Subsamples     *int   `json:"subsamples,omitempty"`
	Phong          *bool  `json:"phong,omitempty"`
	Shadows        *bool  `json:"shadows,omitempty"`
	Mirrors        *bool  `json:"mirrors,omitempty"`
	AllLights      *bool  `json:"alllights,omitempty"`
	CorrectSpheres *bool  `json:"correctSpheres,omitempty"`
	MaxDepth       *int   `json:"maxDepth,omitempty"`
	SampleScale    string `json:"sampleScale,omitempty"`
}

// CameraCfg places the camera. FOV is the vertical field of view in degrees.
type CameraCfg struct {
	Position Vec     `json:"position"`
	LookAt   Vec     `json:"lookAt"`
	FOV      float64 `json:"fov,omitempty"`
}

// MaterialCfg describes a named material. Colors are hex strings.
type MaterialCfg struct {
	Color        string  `json:"color"`
	Specular     string  `json:"specular,omitempty"`
	Shininess    float64 `json:"shininess,omitempty"`
	Mirror       bool    `json:"mirror,omitempty"`
	Reflectivity float64 `json:"reflectivity,omitempty"`
}

// ObjectCfg is one scene object. Type selects which fields apply:
//
//	sphere: center, radius
//	quad:   center, u, v, width, height
//	box:    center, size
//	mesh:   path, position, rotation (degrees), fit
type ObjectCfg struct {
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
	Material string `json:"material,omitempty"`

	Center Vec     `json:"center"`
	Radius float64 `json:"radius,omitempty"`

	U      Vec     `json:"u"`
	V      Vec     `json:"v"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Size Vec `json:"size"`

	Path     string  `json:"path,omitempty"`
	Position Vec     `json:"position"`
	Rotation Vec     `json:"rotation"`
	Fit      float64 `json:"fit,omitempty"`
}

// LightCfg is one light source.
type LightCfg struct {
	Type      string  `json:"type"`
	Position  Vec     `json:"position"`
	Color     string  `json:"color,omitempty"`
	Intensity float64 `json:"intensity"`
}

// Config is a whole scene file.
type Config struct {
	Name      string                 `json:"name,omitempty"`
	Settings  SettingsCfg            `json:"settings"`
	Camera    CameraCfg              `json:"camera"`
	Materials map[string]MaterialCfg `json:"materials"`
	Objects   []ObjectCfg            `json:"objects"`
	Lights    []LightCfg             `json:"lights"`

	// Directory mesh paths are resolved against.
	baseDir string
}

// Load reads a scene file. Relative mesh paths resolve against the file's
// directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes a scene from JSON. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &cfg, nil
}

// ApplySettings overlays the file's settings onto base.
func (s SettingsCfg) ApplySettings(base render.Settings) (render.Settings, error) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&base.Width, s.Width)
	setInt(&base.Height, s.Height)
	setInt(&base.Subsamples, s.Subsamples)
	setInt(&base.MaxDepth, s.MaxDepth)
	setBool(&base.Phong, s.Phong)
	setBool(&base.Shadows, s.Shadows)
	setBool(&base.Mirrors, s.Mirrors)
	setBool(&base.AllLights, s.AllLights)
	setBool(&base.CorrectSpheres, s.CorrectSpheres)
	if s.SampleScale != "" {
		scale, err := render.ParseSampleScale(s.SampleScale)
		if err != nil {
			return base, err
		}
		base.SampleScale = scale
	}
	return base, nil
}
