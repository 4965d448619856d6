package fixture

// Color is a single component of a colour model, driven by an IntensityColor channel.
type Color uint8

const (
	RGBRed Color = iota
	RGBGreen
	RGBBlue
	HSVHue
	HSVSaturation
	HSVValue
	HSLHue
	HSLSaturation
	HSLLightness
	HSIHue
	HSISaturation
	HSIIntensity
)

// ColorModel groups colour components.
type ColorModel uint8

const (
	ModelRGB ColorModel = iota
	ModelHSV
	ModelHSL
	ModelHSI
)

var colorNames = [...]string{
	RGBRed:        "rgb.red",
	RGBGreen:      "rgb.green",
	RGBBlue:       "rgb.blue",
	HSVHue:        "hsv.hue",
	HSVSaturation: "hsv.saturation",
	HSVValue:      "hsv.value",
	HSLHue:        "hsl.hue",
	HSLSaturation: "hsl.saturation",
	HSLLightness:  "hsl.lightness",
	HSIHue:        "hsi.hue",
	HSISaturation: "hsi.saturation",
	HSIIntensity:  "hsi.intensity",
}

func (c Color) Model() ColorModel {
	return ColorModel(c / 3)
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "color(?)"
}

func (m ColorModel) String() string {
	switch m {
	case ModelRGB:
		return "rgb"
	case ModelHSV:
		return "hsv"
	case ModelHSL:
		return "hsl"
	case ModelHSI:
		return "hsi"
	}
	return "unknown"
}
