package sky

import "fmt"

// StarColor maps a star's surface temperature to a display hex color,
// roughly following the blackbody sequence from red dwarfs up through
// blue-white giants. A zero or unknown temperature renders white.
func StarColor(tempK float64) string {
	switch {
	case tempK <= 0:
		return "#FFFFFF"
	case tempK > 30000:
		return "#FFFFFF"
	case tempK > 10000:
		ratio := (tempK - 10000) / 20000
		return rgbHex(0.8+0.2*ratio, 0.8+0.2*ratio, 1.0)
	case tempK > 7500:
		return "#FFFFFF"
	case tempK > 6000:
		ratio := (tempK - 6000) / 1500
		return rgbHex(1.0, 0.9+0.1*ratio, 0.8)
	case tempK > 5000:
		ratio := (tempK - 5000) / 1000
		return rgbHex(1.0, 0.8+0.2*ratio, 0.6)
	case tempK > 3500:
		ratio := (tempK - 3500) / 1500
		return rgbHex(1.0, 0.6+0.2*ratio, 0.4)
	default:
		return "#FF4500"
	}
}

func rgbHex(r, g, b float64) string {
	clamp := func(v float64) int {
		n := int(v*255 + 0.5)
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return n
	}
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}
