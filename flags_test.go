package fna3d

import "testing"

func TestClearOptionsTargetStencil(t *testing.T) {
	opts := ClearOptionsTarget | ClearOptionsStencil
	if opts.Raw() != 5 {
		t.Fatalf("Target|Stencil = %d, want 5", opts.Raw())
	}
	back := ClearOptionsFromRaw(5)
	if back != opts {
		t.Errorf("ClearOptionsFromRaw(5) = %v, want %v", back, opts)
	}
	if !back.Contains(ClearOptionsTarget) || !back.Contains(ClearOptionsStencil) || back.Contains(ClearOptionsDepthBuffer) {
		t.Errorf("Contains gives wrong membership for %v", back)
	}
	if got := back.String(); got != "Target|Stencil" {
		t.Errorf("String() = %q, want %q", got, "Target|Stencil")
	}
}

func TestFlagRoundTripPreservesUnknownBits(t *testing.T) {
	for _, raw := range []uint32{0, 1, 7, 8, 0x80000005, 0xFFFFFFFF} {
		c := ClearOptionsFromRaw(raw)
		if c.Raw() != raw {
			t.Errorf("ClearOptions round trip %#x -> %#x", raw, c.Raw())
		}
		if c.Known()|c.Unknown() != c {
			t.Errorf("Known|Unknown != value for %#x", raw)
		}
		if c.Known()&c.Unknown() != 0 {
			t.Errorf("Known and Unknown overlap for %#x", raw)
		}

		w := WindowFlagsFromRaw(raw)
		if w.Raw() != raw {
			t.Errorf("WindowFlags round trip %#x -> %#x", raw, w.Raw())
		}
	}
}

func TestFlagSetOperations(t *testing.T) {
	rg := ColorWriteChannelsRed | ColorWriteChannelsGreen
	gb := ColorWriteChannelsGreen | ColorWriteChannelsBlue

	tests := []struct {
		name string
		got  ColorWriteChannels
		want ColorWriteChannels
	}{
		{"union", rg.Union(gb), ColorWriteChannelsRed | ColorWriteChannelsGreen | ColorWriteChannelsBlue},
		{"intersect", rg.Intersect(gb), ColorWriteChannelsGreen},
		{"difference", rg.Difference(gb), ColorWriteChannelsRed},
		{"toggle", rg.Toggle(gb), ColorWriteChannelsRed | ColorWriteChannelsBlue},
		{"toggle twice", rg.Toggle(gb).Toggle(gb), rg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if !ColorWriteChannelsNone.IsEmpty() {
		t.Error("None is not empty")
	}
	if ColorWriteChannelsAll.Unknown() != 0 {
		t.Errorf("All has unknown bits %v", ColorWriteChannelsAll.Unknown())
	}
	var all ColorWriteChannels
	for _, f := range ColorWriteChannelsFlags() {
		all = all.Union(f)
	}
	if all != ColorWriteChannelsAll {
		t.Errorf("union of flags = %v, want All", all)
	}
}

func TestFlagString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"empty", ClearOptions(0).String(), "0"},
		{"single", ClearOptionsDepthBuffer.String(), "DepthBuffer"},
		{"unknown only", ClearOptions(0x100).String(), "0x100"},
		{"mixed", ClearOptions(0x101).String(), "Target|0x100"},
		{"declared none", ColorWriteChannelsNone.String(), "None"},
		{"declared all", ColorWriteChannelsAll.String(), "All"},
		{"partial", (ColorWriteChannelsRed | ColorWriteChannelsAlpha).String(), "Red|Alpha"},
		{"window", (WindowFlagsVulkan | WindowFlags(1)).String(), "Vulkan|0x1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
