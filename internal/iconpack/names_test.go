package iconpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebabAndPascal(t *testing.T) {
	tests := []struct {
		in     string
		kebab  string
		pascal string
	}{
		{"check", "check", "Check"},
		{"chevron-down", "chevron-down", "ChevronDown"},
		{"arrow_left", "arrow-left", "ArrowLeft"},
		{"ArrowLeft", "arrow-left", "ArrowLeft"},
		{"XMLHttp", "xml-http", "XmlHttp"},
		{"alarm clock", "alarm-clock", "AlarmClock"},
		{"battery-2", "battery-2", "Battery2"},
		{"arrow2Left", "arrow2-left", "Arrow2Left"},
		{"--x--", "x", "X"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.kebab, Kebab(tt.in))
			assert.Equal(t, tt.pascal, Pascal(tt.in))
		})
	}
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "Check", identifier("Check"))
	assert.Equal(t, "Icon3d", identifier("3d"))
	assert.Equal(t, "", identifier(""))
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "lucide", packageName("lucide"))
	assert.Equal(t, "myicons", packageName("My-Icons"))
	assert.Equal(t, "icons", packageName("2x"))
	assert.Equal(t, "icons", packageName("func"))
	assert.Equal(t, "icons", packageName("..."))
}

func TestSymbolID(t *testing.T) {
	assert.Equal(t, "v-icon-lucide-chevron-down", SymbolID("lucide", "chevron-down"))
	assert.Equal(t, "v-icon-brand-icons-git-hub", SymbolID("BrandIcons", "GitHub"))
}
