package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/triageagent/triage-cli/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"DNS", "VPN"}, slice.Map([]string{"dns", "vpn"}, strings.ToUpper))
	assert.Nil(t, slice.Map(nil, strings.ToUpper))
}

func TestHas(t *testing.T) {
	assert.True(t, slice.Has([]string{"Linux", "Windows"}, "Windows"))
	assert.False(t, slice.Has([]string{"Linux"}, "macOS"))
	assert.False(t, slice.Has(nil, "macOS"))
}
