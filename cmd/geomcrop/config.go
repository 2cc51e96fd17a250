package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Job carries the crop options, either from flags or from a YAML job file:
//
//	resolution: [16, 16, 16]
//	offset: [4, 4, 0]
//	two_dimensional: false
//	files:
//	  - polycrystal.geom
type Job struct {
	Resolution     [3]int   `yaml:"resolution"`
	Offset         [3]int   `yaml:"offset"`
	TwoDimensional bool     `yaml:"two_dimensional"`
	Files          []string `yaml:"files"`
}

// LoadJob reads a YAML job file. Unknown keys are rejected so a typo does
// not silently drop an option.
func LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, err
	}

	var job Job
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		return Job{}, fmt.Errorf("parsing job file %s: %w", path, err)
	}

	return job, nil
}

// triple is a flag.Value for comma-separated integer triples like "16,16,16".
type triple struct {
	v   [3]int
	set bool
}

func (t *triple) String() string {
	return fmt.Sprintf("%d,%d,%d", t.v[0], t.v[1], t.v[2])
}

func (t *triple) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected a,b,c, got %q", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("expected integer, got %q", p)
		}
		t.v[i] = n
	}
	t.set = true

	return nil
}
