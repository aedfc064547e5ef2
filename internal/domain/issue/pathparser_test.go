package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTestcasePath(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantRelease  string
		wantPlatform string
	}{
		{
			name:         "canonical path",
			path:         "/lan/fed/etpv5/release/251/lnx86/etautotest/timing/flow/tc001",
			wantRelease:  "251",
			wantPlatform: "lnx86",
		},
		{
			name:         "different release and platform",
			path:         "/lan/fed/etpv5/release/261/lr/etautotest/power/tc9",
			wantRelease:  "261",
			wantPlatform: "lr",
		},
		{
			name:         "path without expected prefix",
			path:         "/some/other/location/tc001",
			wantRelease:  "",
			wantPlatform: "",
		},
		{
			name:         "non numeric release",
			path:         "/lan/fed/etpv5/release/abc/lnx86/etautotest/timing/tc001",
			wantRelease:  "",
			wantPlatform: "",
		},
		{
			name:         "empty path",
			path:         "",
			wantRelease:  "",
			wantPlatform: "",
		},
		{
			name:         "prefix not at start",
			path:         "/extra/lan/fed/etpv5/release/251/lnx86/etautotest/timing/tc001",
			wantRelease:  "",
			wantPlatform: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release, platform := ParseTestcasePath(tt.path)
			assert.Equal(t, tt.wantRelease, release)
			assert.Equal(t, tt.wantPlatform, platform)
		})
	}
}

func TestExtractBucketName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "bucket from canonical path",
			path: "/lan/fed/etpv5/release/251/lnx86/etautotest/timing/flow/tc001",
			want: "TIMING",
		},
		{
			name: "bucket already uppercase",
			path: "/lan/fed/etpv5/release/261/lr/etautotest/POWER/tc9",
			want: "POWER",
		},
		{
			name: "mixed case bucket",
			path: "/lan/fed/etpv5/release/251/lnx86/etautotest/SimVision/tc1",
			want: "SIMVISION",
		},
		{
			name: "no bucket segment after marker",
			path: "/lan/fed/etpv5/release/251/lnx86/etautotest/",
			want: "",
		},
		{
			name: "path without marker",
			path: "/some/other/location/tc001",
			want: "",
		},
		{
			name: "empty path",
			path: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBucketName(tt.path))
		})
	}
}

func TestPlatformDisplayName(t *testing.T) {
	assert.Equal(t, "Linux", PlatformDisplayName("lnx86"))
	assert.Equal(t, "LR", PlatformDisplayName("lr"))
	assert.Equal(t, "unknown", PlatformDisplayName("unknown"))
}

func TestTargetOptions(t *testing.T) {
	opts := TargetOptions("251")
	assert.NotEmpty(t, opts)

	assert.Empty(t, TargetOptions("999"))

	// callers must not be able to mutate the shared table
	opts[0] = "mutated"
	fresh := TargetOptions("251")
	assert.NotEqual(t, "mutated", fresh[0])
}
