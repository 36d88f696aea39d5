package common

// Color is a packed color with four 8-bit normalized channels. Despite its
// byte storage it classifies as a float vec4: channels divide by 255 during
// flattening, so a color uniform always arrives in the shader as normalized
// floats.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	ColorWhite = Color{255, 255, 255, 255}
	ColorBlack = Color{0, 0, 0, 255}
	ColorRed   = Color{255, 0, 0, 255}
	ColorGreen = Color{0, 255, 0, 255}
	ColorBlue  = Color{0, 0, 255, 255}
)

// NewColorRGB returns an opaque color.
func NewColorRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// DataFormat classifies Color as a 4-component uint8 type: textures and
// buffers of Color store as normalized RGBA8 with byte transfer. The uniform
// path does not see this kind — Flatten emits normalized floats, so a color
// uniform dispatches through the float vec4 entry point.
func (Color) DataFormat() Format {
	return Format{Kind: KindUint8, Rank: RankVec4}
}

// Flatten appends the four channels divided by 255, in (r, g, b, a) order.
func (c Color) Flatten(dst *Flattener) {
	dst.PutFloat(float32(c.R) / 255.0)
	dst.PutFloat(float32(c.G) / 255.0)
	dst.PutFloat(float32(c.B) / 255.0)
	dst.PutFloat(float32(c.A) / 255.0)
}

// ToVec4 returns the normalized float representation of the color.
func (c Color) ToVec4() Vec4f {
	return Vec4f{
		X: float32(c.R) / 255.0,
		Y: float32(c.G) / 255.0,
		Z: float32(c.B) / 255.0,
		W: float32(c.A) / 255.0,
	}
}
