package client_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"advocate-directory/internal/client"
)

func Test_SpinnerGate_Visible(t *testing.T) {
	gate := client.NewSpinnerGate(300 * time.Millisecond)

	tests := []struct {
		name     string
		elapsed  time.Duration
		resolved bool
		expected bool
	}{
		{name: "just_issued", elapsed: 0, expected: false},
		{name: "within_grace", elapsed: 299 * time.Millisecond, expected: false},
		{name: "at_grace", elapsed: 300 * time.Millisecond, expected: true},
		{name: "long_call", elapsed: 5 * time.Second, expected: true},
		{name: "resolved_within_grace", elapsed: 100 * time.Millisecond, resolved: true, expected: false},
		{name: "resolved_after_grace", elapsed: time.Second, resolved: true, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, gate.Visible(tc.elapsed, tc.resolved))
		})
	}
}

func Test_SpinnerGate_NegativeGraceShowsImmediately(t *testing.T) {
	gate := client.NewSpinnerGate(-time.Second)

	assert.Equal(t, time.Duration(0), gate.Grace)
	assert.True(t, gate.Visible(0, false))
}
