package timezone

// Abbreviations maps lower-case zone abbreviations to their UTC offset
// in minutes. Abbreviations shared by several zones take the most common
// reading.
var Abbreviations = map[string]int{
	"utc":  0,
	"gmt":  0,
	"z":    0,
	"wet":  0,
	"bst":  60,
	"ist":  330,
	"cet":  60,
	"cest": 120,
	"met":  60,
	"eet":  120,
	"eest": 180,
	"msk":  180,
	"gst":  240,
	"pkt":  300,
	"npt":  345,
	"ict":  420,
	"wib":  420,
	"cst":  -360,
	"cdt":  -300,
	"hkt":  480,
	"sgt":  480,
	"awst": 480,
	"jst":  540,
	"kst":  540,
	"acst": 570,
	"aest": 600,
	"aedt": 660,
	"nzst": 720,
	"nzdt": 780,
	"hst":  -600,
	"akst": -540,
	"akdt": -480,
	"pst":  -480,
	"pdt":  -420,
	"mst":  -420,
	"mdt":  -360,
	"est":  -300,
	"edt":  -240,
	"ast":  -240,
	"adt":  -180,
	"nst":  -210,
	"ndt":  -150,
	"brt":  -180,
	"art":  -180,
}

// FullNames maps lower-case spoken zone names to their UTC offset in
// minutes.
var FullNames = map[string]int{
	"coordinated universal time":   0,
	"universal time":               0,
	"greenwich mean time":          0,
	"british summer time":          60,
	"central european time":        60,
	"central european summer time": 120,
	"eastern european time":        120,
	"moscow time":                  180,
	"india standard time":          330,
	"indian standard time":         330,
	"china standard time":          480,
	"beijing time":                 480,
	"japan standard time":          540,
	"korea standard time":          540,
	"australian eastern time":      600,
	"new zealand time":             720,
	"hawaii time":                  -600,
	"alaska time":                  -540,
	"pacific time":                 -480,
	"pacific standard time":        -480,
	"pacific daylight time":        -420,
	"mountain time":                -420,
	"mountain standard time":       -420,
	"mountain daylight time":       -360,
	"central time":                 -360,
	"central standard time":        -360,
	"central daylight time":        -300,
	"eastern time":                 -300,
	"eastern standard time":        -300,
	"eastern daylight time":        -240,
	"atlantic time":                -240,
	"newfoundland time":            -210,
	"brasilia time":                -180,
}
