package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracktools/trackconv/config"
)

func TestSmoothSettings(t *testing.T) {
	profile := config.SmoothConfig{Samples: 200, Degree: 2, Closed: true}

	tests := []struct {
		name        string
		cfg         config.SmoothConfig
		samples     int
		degree      int
		closed      bool
		set         map[string]bool
		wantSamples int
		wantDegree  int
		wantClosed  bool
	}{
		{
			name:        "profile alone drives smoothing",
			cfg:         profile,
			samples:     0,
			degree:      3,
			closed:      false,
			set:         map[string]bool{},
			wantSamples: 200,
			wantDegree:  2,
			wantClosed:  true,
		},
		{
			name:        "flags override the profile",
			cfg:         profile,
			samples:     50,
			degree:      3,
			closed:      false,
			set:         map[string]bool{"smooth": true, "degree": true, "closed": true},
			wantSamples: 50,
			wantDegree:  3,
			wantClosed:  false,
		},
		{
			name:        "empty profile falls back to flag defaults",
			cfg:         config.SmoothConfig{},
			samples:     0,
			degree:      3,
			closed:      false,
			set:         map[string]bool{},
			wantSamples: 0,
			wantDegree:  3,
			wantClosed:  false,
		},
		{
			name:        "smooth flag with profile degree",
			cfg:         config.SmoothConfig{Degree: 2},
			samples:     80,
			degree:      3,
			closed:      false,
			set:         map[string]bool{"smooth": true},
			wantSamples: 80,
			wantDegree:  2,
			wantClosed:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples, degree, closed := smoothSettings(tc.cfg, tc.samples, tc.degree, tc.closed, tc.set)
			assert.Equal(t, tc.wantSamples, samples)
			assert.Equal(t, tc.wantDegree, degree)
			assert.Equal(t, tc.wantClosed, closed)
		})
	}
}
