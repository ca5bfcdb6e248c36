// Package blend implements the compositing operators used to paint marks onto
// layers and layers onto each other.
//
// All operators work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "math"

// Mode selects a separable layer blend mode.
type Mode uint8

// Layer blend modes. The zero value is ModeNormal (plain source-over).
const (
	ModeNormal     Mode = iota // B = Cs
	ModeMultiply               // B = Cb * Cs
	ModeScreen                 // B = 1 - (1-Cb)*(1-Cs)
	ModeOverlay                // HardLight with swapped layers
	ModeDarken                 // min(Cb, Cs)
	ModeLighten                // max(Cb, Cs)
	ModeColorDodge             // Cb / (1 - Cs)
	ModeColorBurn              // 1 - (1 - Cb) / Cs
	ModeHardLight              // Multiply or Screen depending on source
	ModeSoftLight              // soft version of HardLight
	ModeDifference             // |Cb - Cs|
	ModeExclusion              // Cb + Cs - 2*Cb*Cs

	modeCount
)

// Valid reports whether m is a known blend mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Func combines a premultiplied source pixel with a premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// For returns the compositing function for mode. Unknown modes fall back to
// SourceOver.
func For(mode Mode) Func {
	switch mode {
	case ModeNormal:
		return SourceOver
	case ModeMultiply:
		return separable(multiply)
	case ModeScreen:
		return separable(screen)
	case ModeOverlay:
		return separable(overlay)
	case ModeDarken:
		return separable(minByte)
	case ModeLighten:
		return separable(maxByte)
	case ModeColorDodge:
		return separable(colorDodge)
	case ModeColorBurn:
		return separable(colorBurn)
	case ModeHardLight:
		return separable(hardLight)
	case ModeSoftLight:
		return separable(softLight)
	case ModeDifference:
		return separable(difference)
	case ModeExclusion:
		return separable(exclusion)
	default:
		return SourceOver
	}
}

// SourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// DestinationOut removes destination where the source is opaque. Only the
// source alpha is read, which makes it the eraser operator.
// Formula: D * (1 - Sa)
func DestinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return MulDiv255(dr, invSa), MulDiv255(dg, invSa), MulDiv255(db, invSa), MulDiv255(da, invSa)
}

// separable lifts a per-channel blend function B(Cs, Cb) on unmultiplied
// values into a full compositing function:
//
//	Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Cs, Cb)
func separable(b func(s, d byte) byte) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}

		invSa := 255 - sa
		invDa := 255 - da
		saDa := MulDiv255(sa, da)

		mix := func(s, d byte) byte {
			bv := b(unpremul(s, sa), unpremul(d, da))
			v := uint16(MulDiv255(d, invSa)) + uint16(MulDiv255(s, invDa)) + uint16(MulDiv255(saDa, bv))
			if v > 255 {
				return 255
			}
			return byte(v)
		}

		return mix(sr, dr), mix(sg, dg), mix(sb, db), addClamp(sa, MulDiv255(da, invSa))
	}
}

func multiply(s, d byte) byte {
	return MulDiv255(s, d)
}

func screen(s, d byte) byte {
	return 255 - MulDiv255(255-s, 255-d)
}

func overlay(s, d byte) byte {
	return hardLight(d, s)
}

func hardLight(s, d byte) byte {
	if s <= 127 {
		return mulDiv255Wide(2*uint16(s), uint16(d))
	}
	return 255 - mulDiv255Wide(2*uint16(255-s), uint16(255-d))
}

func colorDodge(s, d byte) byte {
	if d == 0 {
		return 0
	}
	if s == 255 {
		return 255
	}
	v := uint16(d) * 255 / uint16(255-s)
	if v > 255 {
		return 255
	}
	return byte(v)
}

func colorBurn(s, d byte) byte {
	if d == 255 {
		return 255
	}
	if s == 0 {
		return 0
	}
	v := uint16(255-d) * 255 / uint16(s)
	if v > 255 {
		return 0
	}
	return 255 - byte(v)
}

func softLight(s, d byte) byte {
	sf := float64(s) / 255
	df := float64(d) / 255

	var r float64
	if sf <= 0.5 {
		r = df - (1-2*sf)*df*(1-df)
	} else {
		var dx float64
		if df <= 0.25 {
			dx = ((16*df-12)*df + 4) * df
		} else {
			dx = math.Sqrt(df)
		}
		r = df + (2*sf-1)*(dx-df)
	}

	switch {
	case r <= 0:
		return 0
	case r >= 1:
		return 255
	}
	return byte(r*255 + 0.5)
}

func difference(s, d byte) byte {
	if s > d {
		return s - d
	}
	return d - s
}

func exclusion(s, d byte) byte {
	v := int(s) + int(d) - 2*int(MulDiv255(s, d))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
