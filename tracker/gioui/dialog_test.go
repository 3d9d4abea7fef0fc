package gioui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTimeSignature(t *testing.T) {
	for _, s := range []string{"4/4", "3/4", "7/8", "12/16", "1/1"} {
		assert.True(t, ValidTimeSignature(s), s)
	}
	for _, s := range []string{"", "4", "4/3", "0/4", "-1/4", "a/4", "4/0", "4/4/4"} {
		assert.False(t, ValidTimeSignature(s), s)
	}
}
