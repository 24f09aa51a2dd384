// Command fna3dinfo prints what the fna3d package knows about the linked
// FNA3D library: its version, the driver flags it wants on a window, every
// constant table and the stock render state presets.
//
//	fna3dinfo [-json] [-tables=false] [-presets=false]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/gogpu/fna3d"
)

type entry struct {
	Name string `json:"name"`
	Raw  uint32 `json:"raw"`
}

type table struct {
	Type    string  `json:"type"`
	Bitmask bool    `json:"bitmask,omitempty"`
	Entries []entry `json:"entries"`
}

type preset struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

type report struct {
	Linked      bool     `json:"linked"`
	Version     string   `json:"version,omitempty"`
	Driver      string   `json:"driver,omitempty"`
	WindowFlags string   `json:"window_flags,omitempty"`
	Tables      []table  `json:"tables,omitempty"`
	Presets     []preset `json:"presets,omitempty"`
}

func main() {
	var (
		asJSON  = flag.Bool("json", false, "print JSON")
		tables  = flag.Bool("tables", true, "include constant tables")
		presets = flag.Bool("presets", true, "include state presets")
	)
	flag.Parse()

	r := buildReport(*tables, *presets)
	var err error
	if *asJSON {
		err = writeJSON(os.Stdout, r)
	} else {
		err = writeText(os.Stdout, r)
	}
	if err != nil {
		log.Fatalf("fna3dinfo: %v", err)
	}
}

func buildReport(withTables, withPresets bool) report {
	r := report{Linked: fna3d.Linked(), Driver: fna3d.DriverFromEnv()}
	if r.Linked {
		r.Version = fna3d.LinkedVersion().String()
		r.WindowFlags = fna3d.PrepareWindowAttributes().String()
	}
	if withTables {
		r.Tables = constantTables()
	}
	if withPresets {
		r.Presets = statePresets()
	}
	return r
}

type named interface {
	comparable
	Raw() uint32
	String() string
}

func enumTable[T named](name string, values []T) table {
	t := table{Type: name, Entries: make([]entry, len(values))}
	for i, v := range values {
		t.Entries[i] = entry{Name: v.String(), Raw: v.Raw()}
	}
	return t
}

func flagTable[T named](name string, values []T) table {
	t := enumTable(name, values)
	t.Bitmask = true
	return t
}

func constantTables() []table {
	return []table{
		enumTable("PresentInterval", fna3d.PresentIntervalValues()),
		enumTable("DisplayOrientation", fna3d.DisplayOrientationValues()),
		enumTable("RenderTargetUsage", fna3d.RenderTargetUsageValues()),
		flagTable("ClearOptions", fna3d.ClearOptionsFlags()),
		enumTable("PrimitiveType", fna3d.PrimitiveTypeValues()),
		enumTable("IndexElementSize", fna3d.IndexElementSizeValues()),
		enumTable("SurfaceFormat", fna3d.SurfaceFormatValues()),
		enumTable("DepthFormat", fna3d.DepthFormatValues()),
		enumTable("CubeMapFace", fna3d.CubeMapFaceValues()),
		enumTable("BufferUsage", fna3d.BufferUsageValues()),
		enumTable("SetDataOptions", fna3d.SetDataOptionsValues()),
		enumTable("Blend", fna3d.BlendValues()),
		enumTable("BlendFunction", fna3d.BlendFunctionValues()),
		flagTable("ColorWriteChannels", fna3d.ColorWriteChannelsFlags()),
		enumTable("StencilOperation", fna3d.StencilOperationValues()),
		enumTable("CompareFunction", fna3d.CompareFunctionValues()),
		enumTable("CullMode", fna3d.CullModeValues()),
		enumTable("FillMode", fna3d.FillModeValues()),
		enumTable("TextureAddressMode", fna3d.TextureAddressModeValues()),
		enumTable("TextureFilter", fna3d.TextureFilterValues()),
		enumTable("VertexElementFormat", fna3d.VertexElementFormatValues()),
		enumTable("VertexElementUsage", fna3d.VertexElementUsageValues()),
		enumTable("RenderTargetType", fna3d.RenderTargetTypeValues()),
		flagTable("WindowFlags", fna3d.WindowFlagsFlags()),
	}
}

func blendPreset(name string, s fna3d.BlendState) preset {
	return preset{Name: name, Fields: map[string]string{
		"ColorSourceBlend":      s.ColorSourceBlend().String(),
		"ColorDestinationBlend": s.ColorDestinationBlend().String(),
		"ColorBlendFunction":    s.ColorBlendFunction().String(),
		"AlphaSourceBlend":      s.AlphaSourceBlend().String(),
		"AlphaDestinationBlend": s.AlphaDestinationBlend().String(),
		"AlphaBlendFunction":    s.AlphaBlendFunction().String(),
		"ColorWriteEnable":      s.ColorWriteEnable(0).String(),
	}}
}

func depthPreset(name string, s fna3d.DepthStencilState) preset {
	return preset{Name: name, Fields: map[string]string{
		"DepthBufferEnable":      fmt.Sprint(s.DepthBufferEnabled()),
		"DepthBufferWriteEnable": fmt.Sprint(s.DepthBufferWriteEnabled()),
		"DepthBufferFunction":    s.DepthBufferFunction().String(),
		"StencilEnable":          fmt.Sprint(s.StencilEnabled()),
	}}
}

func rasterizerPreset(name string, s fna3d.RasterizerState) preset {
	return preset{Name: name, Fields: map[string]string{
		"FillMode":          s.FillMode().String(),
		"CullMode":          s.CullMode().String(),
		"ScissorTestEnable": fmt.Sprint(s.ScissorTestEnabled()),
	}}
}

func samplerPreset(name string, s fna3d.SamplerState) preset {
	return preset{Name: name, Fields: map[string]string{
		"Filter":        s.Filter().String(),
		"AddressU":      s.AddressU().String(),
		"AddressV":      s.AddressV().String(),
		"AddressW":      s.AddressW().String(),
		"MaxAnisotropy": fmt.Sprint(s.MaxAnisotropy()),
	}}
}

func statePresets() []preset {
	return []preset{
		blendPreset("BlendState.Additive", fna3d.BlendStateAdditive()),
		blendPreset("BlendState.AlphaBlend", fna3d.BlendStateAlphaBlend()),
		blendPreset("BlendState.NonPremultiplied", fna3d.BlendStateNonPremultiplied()),
		blendPreset("BlendState.Opaque", fna3d.BlendStateOpaque()),
		depthPreset("DepthStencilState.Default", fna3d.DepthStencilDefault()),
		depthPreset("DepthStencilState.DepthRead", fna3d.DepthStencilDepthRead()),
		depthPreset("DepthStencilState.None", fna3d.DepthStencilNone()),
		rasterizerPreset("RasterizerState.CullNone", fna3d.RasterizerCullNone()),
		rasterizerPreset("RasterizerState.CullClockwise", fna3d.RasterizerCullClockwise()),
		rasterizerPreset("RasterizerState.CullCounterClockwise", fna3d.RasterizerCullCounterClockwise()),
		samplerPreset("SamplerState.AnisotropicClamp", fna3d.SamplerAnisotropicClamp()),
		samplerPreset("SamplerState.AnisotropicWrap", fna3d.SamplerAnisotropicWrap()),
		samplerPreset("SamplerState.LinearClamp", fna3d.SamplerLinearClamp()),
		samplerPreset("SamplerState.LinearWrap", fna3d.SamplerLinearWrap()),
		samplerPreset("SamplerState.PointClamp", fna3d.SamplerPointClamp()),
		samplerPreset("SamplerState.PointWrap", fna3d.SamplerPointWrap()),
	}
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeText(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if r.Linked {
		fmt.Fprintf(tw, "FNA3D\t%s\n", r.Version)
		fmt.Fprintf(tw, "window flags\t%s\n", r.WindowFlags)
	} else {
		fmt.Fprintln(tw, "FNA3D\tnot linked (build with -tags fna3d)")
	}
	if r.Driver != "" {
		fmt.Fprintf(tw, "forced driver\t%s\n", r.Driver)
	}

	for _, t := range r.Tables {
		kind := "enum"
		if t.Bitmask {
			kind = "flags"
		}
		fmt.Fprintf(tw, "\n%s (%s)\n", t.Type, kind)
		for _, e := range t.Entries {
			if t.Bitmask {
				fmt.Fprintf(tw, "  %s\t%#x\n", e.Name, e.Raw)
			} else {
				fmt.Fprintf(tw, "  %s\t%d\n", e.Name, e.Raw)
			}
		}
	}

	for _, p := range r.Presets {
		fmt.Fprintf(tw, "\n%s\n", p.Name)
		for _, k := range slices.Sorted(maps.Keys(p.Fields)) {
			fmt.Fprintf(tw, "  %s\t%s\n", k, p.Fields[k])
		}
	}
	return tw.Flush()
}
