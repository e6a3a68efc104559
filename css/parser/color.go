package parser

import (
	"strings"

	"github.com/LadybirdBrowser/ladybird-sub002/utils"
)

type ColorType uint8

const (
	// ColorInvalid is an empty or unrecognized color.
	ColorInvalid ColorType = iota
	ColorCurrentColor
	ColorRGBA
)

// RGBA is a color with [0..1] components.
type RGBA struct {
	R, G, B, A utils.Fl
}

func (color RGBA) Unpack() (r, g, b, a utils.Fl) {
	return color.R, color.G, color.B, color.A
}

func (color RGBA) IsNone() bool { return color == RGBA{} }

type Color struct {
	Type ColorType
	RGBA RGBA
}

func (c Color) IsNone() bool { return c.Type == ColorInvalid }

// 4.x colors, by keyword.
var colorKeywords = map[string]RGBA{
	"transparent": {0, 0, 0, 0},

	"aliceblue":            rgb(240, 248, 255),
	"antiquewhite":         rgb(250, 235, 215),
	"aqua":                 rgb(0, 255, 255),
	"aquamarine":           rgb(127, 255, 212),
	"azure":                rgb(240, 255, 255),
	"beige":                rgb(245, 245, 220),
	"bisque":               rgb(255, 228, 196),
	"black":                rgb(0, 0, 0),
	"blanchedalmond":       rgb(255, 235, 205),
	"blue":                 rgb(0, 0, 255),
	"blueviolet":           rgb(138, 43, 226),
	"brown":                rgb(165, 42, 42),
	"burlywood":            rgb(222, 184, 135),
	"cadetblue":            rgb(95, 158, 160),
	"chartreuse":           rgb(127, 255, 0),
	"chocolate":            rgb(210, 105, 30),
	"coral":                rgb(255, 127, 80),
	"cornflowerblue":       rgb(100, 149, 237),
	"cornsilk":             rgb(255, 248, 220),
	"crimson":              rgb(220, 20, 60),
	"cyan":                 rgb(0, 255, 255),
	"darkblue":             rgb(0, 0, 139),
	"darkcyan":             rgb(0, 139, 139),
	"darkgoldenrod":        rgb(184, 134, 11),
	"darkgray":             rgb(169, 169, 169),
	"darkgreen":            rgb(0, 100, 0),
	"darkgrey":             rgb(169, 169, 169),
	"darkkhaki":            rgb(189, 183, 107),
	"darkmagenta":          rgb(139, 0, 139),
	"darkolivegreen":       rgb(85, 107, 47),
	"darkorange":           rgb(255, 140, 0),
	"darkorchid":           rgb(153, 50, 204),
	"darkred":              rgb(139, 0, 0),
	"darksalmon":           rgb(233, 150, 122),
	"darkseagreen":         rgb(143, 188, 143),
	"darkslateblue":        rgb(72, 61, 139),
	"darkslategray":        rgb(47, 79, 79),
	"darkslategrey":        rgb(47, 79, 79),
	"darkturquoise":        rgb(0, 206, 209),
	"darkviolet":           rgb(148, 0, 211),
	"deeppink":             rgb(255, 20, 147),
	"deepskyblue":          rgb(0, 191, 255),
	"dimgray":              rgb(105, 105, 105),
	"dimgrey":              rgb(105, 105, 105),
	"dodgerblue":           rgb(30, 144, 255),
	"firebrick":            rgb(178, 34, 34),
	"floralwhite":          rgb(255, 250, 240),
	"forestgreen":          rgb(34, 139, 34),
	"fuchsia":              rgb(255, 0, 255),
	"gainsboro":            rgb(220, 220, 220),
	"ghostwhite":           rgb(248, 248, 255),
	"gold":                 rgb(255, 215, 0),
	"goldenrod":            rgb(218, 165, 32),
	"gray":                 rgb(128, 128, 128),
	"green":                rgb(0, 128, 0),
	"greenyellow":          rgb(173, 255, 47),
	"grey":                 rgb(128, 128, 128),
	"honeydew":             rgb(240, 255, 240),
	"hotpink":              rgb(255, 105, 180),
	"indianred":            rgb(205, 92, 92),
	"indigo":               rgb(75, 0, 130),
	"ivory":                rgb(255, 255, 240),
	"khaki":                rgb(240, 230, 140),
	"lavender":             rgb(230, 230, 250),
	"lavenderblush":        rgb(255, 240, 245),
	"lawngreen":            rgb(124, 252, 0),
	"lemonchiffon":         rgb(255, 250, 205),
	"lightblue":            rgb(173, 216, 230),
	"lightcoral":           rgb(240, 128, 128),
	"lightcyan":            rgb(224, 255, 255),
	"lightgoldenrodyellow": rgb(250, 250, 210),
	"lightgray":            rgb(211, 211, 211),
	"lightgreen":           rgb(144, 238, 144),
	"lightgrey":            rgb(211, 211, 211),
	"lightpink":            rgb(255, 182, 193),
	"lightsalmon":          rgb(255, 160, 122),
	"lightseagreen":        rgb(32, 178, 170),
	"lightskyblue":         rgb(135, 206, 250),
	"lightslategray":       rgb(119, 136, 153),
	"lightslategrey":       rgb(119, 136, 153),
	"lightsteelblue":       rgb(176, 196, 222),
	"lightyellow":          rgb(255, 255, 224),
	"lime":                 rgb(0, 255, 0),
	"limegreen":            rgb(50, 205, 50),
	"linen":                rgb(250, 240, 230),
	"magenta":              rgb(255, 0, 255),
	"maroon":               rgb(128, 0, 0),
	"mediumaquamarine":     rgb(102, 205, 170),
	"mediumblue":           rgb(0, 0, 205),
	"mediumorchid":         rgb(186, 85, 211),
	"mediumpurple":         rgb(147, 112, 219),
	"mediumseagreen":       rgb(60, 179, 113),
	"mediumslateblue":      rgb(123, 104, 238),
	"mediumspringgreen":    rgb(0, 250, 154),
	"mediumturquoise":      rgb(72, 209, 204),
	"mediumvioletred":      rgb(199, 21, 133),
	"midnightblue":         rgb(25, 25, 112),
	"mintcream":            rgb(245, 255, 250),
	"mistyrose":            rgb(255, 228, 225),
	"moccasin":             rgb(255, 228, 181),
	"navajowhite":          rgb(255, 222, 173),
	"navy":                 rgb(0, 0, 128),
	"oldlace":              rgb(253, 245, 230),
	"olive":                rgb(128, 128, 0),
	"olivedrab":            rgb(107, 142, 35),
	"orange":               rgb(255, 165, 0),
	"orangered":            rgb(255, 69, 0),
	"orchid":               rgb(218, 112, 214),
	"palegoldenrod":        rgb(238, 232, 170),
	"palegreen":            rgb(152, 251, 152),
	"paleturquoise":        rgb(175, 238, 238),
	"palevioletred":        rgb(219, 112, 147),
	"papayawhip":           rgb(255, 239, 213),
	"peachpuff":            rgb(255, 218, 185),
	"peru":                 rgb(205, 133, 63),
	"pink":                 rgb(255, 192, 203),
	"plum":                 rgb(221, 160, 221),
	"powderblue":           rgb(176, 224, 230),
	"purple":               rgb(128, 0, 128),
	"rebeccapurple":        rgb(102, 51, 153),
	"red":                  rgb(255, 0, 0),
	"rosybrown":            rgb(188, 143, 143),
	"royalblue":            rgb(65, 105, 225),
	"saddlebrown":          rgb(139, 69, 19),
	"salmon":               rgb(250, 128, 114),
	"sandybrown":           rgb(244, 164, 96),
	"seagreen":             rgb(46, 139, 87),
	"seashell":             rgb(255, 245, 238),
	"sienna":               rgb(160, 82, 45),
	"silver":               rgb(192, 192, 192),
	"skyblue":              rgb(135, 206, 235),
	"slateblue":            rgb(106, 90, 205),
	"slategray":            rgb(112, 128, 144),
	"slategrey":            rgb(112, 128, 144),
	"snow":                 rgb(255, 250, 250),
	"springgreen":          rgb(0, 255, 127),
	"steelblue":            rgb(70, 130, 180),
	"tan":                  rgb(210, 180, 140),
	"teal":                 rgb(0, 128, 128),
	"thistle":              rgb(216, 191, 216),
	"tomato":               rgb(255, 99, 71),
	"turquoise":            rgb(64, 224, 208),
	"violet":               rgb(238, 130, 238),
	"wheat":                rgb(245, 222, 179),
	"white":                rgb(255, 255, 255),
	"whitesmoke":           rgb(245, 245, 245),
	"yellow":               rgb(255, 255, 0),
	"yellowgreen":          rgb(154, 205, 50),
}

func rgb(r, g, b uint8) RGBA {
	return RGBA{R: utils.Fl(r) / 255, G: utils.Fl(g) / 255, B: utils.Fl(b) / 255, A: 1}
}

// ParseColorString tokenizes the input and parses it as a color.
func ParseColorString(color string) Color {
	tokens := RemoveWhitespace(TokenizeString(strings.TrimSpace(color)))
	if len(tokens) == 1 {
		return ParseColor(tokens[0])
	}
	return Color{}
}

// ParseColor parses one component value as a color: a keyword, a hex
// hash, or an rgb()/rgba()/hsl()/hsla() function. The zero Color is
// returned when the token is not a valid color.
func ParseColor(token Token) Color {
	switch token := token.(type) {
	case Ident:
		name := utils.AsciiLower(token.Value)
		if name == "currentcolor" {
			return Color{Type: ColorCurrentColor}
		}
		if rgba, in := colorKeywords[name]; in {
			return Color{Type: ColorRGBA, RGBA: rgba}
		}
	case Hash:
		return parseHexColor(token.Value)
	case FunctionBlock:
		return parseColorFunction(token)
	}
	return Color{}
}

func parseHexColor(hash string) Color {
	var digits [8]utils.Fl
	switch len(hash) {
	case 3, 4, 6, 8:
	default:
		return Color{}
	}
	for i := 0; i < len(hash); i++ {
		v := hexDigit(hash[i])
		if v < 0 {
			return Color{}
		}
		digits[i] = utils.Fl(v)
	}
	out := RGBA{A: 1}
	switch len(hash) {
	case 3:
		out.R, out.G, out.B = digits[0]*17/255, digits[1]*17/255, digits[2]*17/255
	case 4:
		out.R, out.G, out.B = digits[0]*17/255, digits[1]*17/255, digits[2]*17/255
		out.A = digits[3] * 17 / 255
	case 6:
		out.R = (digits[0]*16 + digits[1]) / 255
		out.G = (digits[2]*16 + digits[3]) / 255
		out.B = (digits[4]*16 + digits[5]) / 255
	case 8:
		out.R = (digits[0]*16 + digits[1]) / 255
		out.G = (digits[2]*16 + digits[3]) / 255
		out.B = (digits[4]*16 + digits[5]) / 255
		out.A = (digits[6]*16 + digits[7]) / 255
	}
	return Color{Type: ColorRGBA, RGBA: out}
}

func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func parseColorFunction(fn FunctionBlock) Color {
	args, hasAlpha := parseCommaSeparated(*fn.Arguments)
	if args == nil {
		return Color{}
	}
	name := utils.AsciiLower(fn.Name)
	switch name {
	case "rgb":
		if hasAlpha {
			return Color{}
		}
		return parseRGB(args, 1)
	case "rgba":
		alpha, args := popAlpha(args)
		if alpha < 0 {
			return Color{}
		}
		return parseRGB(args, alpha)
	case "hsl":
		if hasAlpha {
			return Color{}
		}
		return parseHSL(args, 1)
	case "hsla":
		alpha, args := popAlpha(args)
		if alpha < 0 {
			return Color{}
		}
		return parseHSL(args, alpha)
	}
	return Color{}
}

// parseCommaSeparated strips whitespace and checks the argument shape:
// either N values, or N values and an alpha separated by commas.
func parseCommaSeparated(tokens []Token) (args []Token, fourth bool) {
	tokens = RemoveWhitespace(tokens)
	if len(tokens) == 0 {
		return nil, false
	}
	// expect value , value , value [, value]
	if len(tokens)%2 == 0 {
		return nil, false
	}
	for i, token := range tokens {
		if i%2 == 1 {
			if !IsLiteral(token, ",") {
				return nil, false
			}
		} else {
			args = append(args, token)
		}
	}
	switch len(args) {
	case 3:
		return args, false
	case 4:
		return args, true
	}
	return nil, false
}

// popAlpha splits off the last argument as an alpha channel, clamped
// to [0, 1]. It returns -1 for an invalid alpha.
func popAlpha(args []Token) (utils.Fl, []Token) {
	if len(args) != 4 {
		return -1, nil
	}
	last, ok := args[3].(Number)
	if !ok {
		return -1, nil
	}
	return clamp(last.Value, 0, 1), args[:3]
}

func parseRGB(args []Token, alpha utils.Fl) Color {
	if len(args) != 3 {
		return Color{}
	}
	out := RGBA{A: alpha}
	channels := [3]*utils.Fl{&out.R, &out.G, &out.B}
	// channels are all numbers or all percentages
	switch args[0].(type) {
	case Number:
		for i, arg := range args {
			number, ok := arg.(Number)
			if !ok || !number.IsInteger {
				return Color{}
			}
			*channels[i] = clamp(number.Value/255, 0, 1)
		}
	case Percentage:
		for i, arg := range args {
			percentage, ok := arg.(Percentage)
			if !ok {
				return Color{}
			}
			*channels[i] = clamp(percentage.Value/100, 0, 1)
		}
	default:
		return Color{}
	}
	return Color{Type: ColorRGBA, RGBA: out}
}

func parseHSL(args []Token, alpha utils.Fl) Color {
	if len(args) != 3 {
		return Color{}
	}
	hue, ok := args[0].(Number)
	if !ok || !hue.IsInteger {
		return Color{}
	}
	saturation, ok := args[1].(Percentage)
	if !ok {
		return Color{}
	}
	lightness, ok := args[2].(Percentage)
	if !ok {
		return Color{}
	}
	r, g, b := hslToRgb(hue.Value, clamp(saturation.Value/100, 0, 1), clamp(lightness.Value/100, 0, 1))
	return Color{Type: ColorRGBA, RGBA: RGBA{R: r, G: g, B: b, A: alpha}}
}

func hslToRgb(hue, saturation, lightness utils.Fl) (r, g, b utils.Fl) {
	hue = hue / 360
	hue = hue - utils.Fl(int(hue))
	if hue < 0 {
		hue += 1
	}
	var m2 utils.Fl
	if lightness <= 0.5 {
		m2 = lightness * (saturation + 1)
	} else {
		m2 = lightness + saturation - lightness*saturation
	}
	m1 := lightness*2 - m2
	hueToRgb := func(h utils.Fl) utils.Fl {
		h = h - utils.Fl(int(h))
		if h < 0 {
			h += 1
		}
		switch {
		case h*6 < 1:
			return m1 + (m2-m1)*h*6
		case h*2 < 1:
			return m2
		case h*3 < 2:
			return m1 + (m2-m1)*(2./3-h)*6
		}
		return m1
	}
	return hueToRgb(hue + 1./3), hueToRgb(hue), hueToRgb(hue - 1./3)
}

func clamp(value, min, max utils.Fl) utils.Fl {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
