package level

import "strconv"

// Level bounds covered by the table
const (
	MinLevel = 1
	MaxLevel = 100
)

// expTable holds the cumulative exp required to reach each level.
// Index = level (0-100). Index 0 is unused and level 1 requires 0 exp.
var expTable = [MaxLevel + 1]int64{
	0,        // 0 (unused)
	0,        // 1
	48,       // 2
	202,      // 3
	544,      // 4
	1012,     // 5
	1844,     // 6
	2792,     // 7
	3800,     // 8
	4870,     // 9
	6004,     // 10
	7192,     // 11
	8448,     // 12
	9776,     // 13
	11140,    // 14
	12566,    // 15
	14060,    // 16
	15610,    // 17
	17224,    // 18
	18902,    // 19
	20632,    // 20
	22424,    // 21
	24728,    // 22
	26192,    // 23
	28166,    // 24
	30200,    // 25
	32294,    // 26
	34448,    // 27
	37804,    // 28
	41174,    // 29
	44870,    // 30
	48852,    // 31
	53334,    // 32
	58566,    // 33
	64096,    // 34
	69994,    // 35
	76460,    // 36
	83108,    // 37
	91128,    // 38
	99322,    // 39
	108092,   // 40
	120144,   // 41
	133266,   // 42
	147472,   // 43
	162760,   // 44
	179126,   // 45
	196572,   // 46
	215368,   // 47
	235516,   // 48
	257010,   // 49
	279860,   // 50
	304056,   // 51
	348318,   // 52
	394982,   // 53
	444044,   // 54
	495508,   // 55
	549364,   // 56
	633756,   // 57
	721744,   // 58
	813336,   // 59
	908522,   // 60
	1041438,  // 61
	1180352,  // 62
	1325256,  // 63
	1476184,  // 64
	1634300,  // 65
	1840946,  // 66
	2056594,  // 67
	2281242,  // 68
	2514880,  // 69
	2757530,  // 70
	3059506,  // 71
	3372284,  // 72
	3699456,  // 73
	4041030,  // 74
	4397020,  // 75
	4829104,  // 76
	5282204,  // 77
	5756304,  // 78
	6251404,  // 79
	6767504,  // 80
	7381324,  // 81
	8043154,  // 82
	8752952,  // 83
	9510808,  // 84
	10316638, // 85
	11277190, // 86
	12360748, // 87
	13360304, // 88
	14482858, // 89
	15659418, // 90
	17026708, // 91
	18453688, // 92
	19941280, // 93
	21488570, // 94
	23095858, // 95
	24763138, // 96
	26490138, // 97
	28277708, // 98
	30124996, // 99
	32032284, // 100
}

// Threshold pairs a level with the cumulative exp needed to reach it
type Threshold struct {
	Level int
	Exp   int64
}

// ExpForLevel returns the cumulative exp required to reach level.
// Levels outside 1-100 return 0.
func ExpForLevel(level int) int64 {
	if level < MinLevel || level > MaxLevel {
		return 0
	}
	return expTable[level]
}

// ExpForLevelValue is ExpForLevel for untyped input such as decoded JSON or a
// path segment. Anything that does not read as an integer level returns 0.
func ExpForLevelValue(v any) int64 {
	lvl, err := ToInt(v)
	if err != nil || lvl < MinLevel || lvl > MaxLevel {
		return 0
	}
	return ExpForLevel(int(lvl))
}

// MaxExp returns the exp required to reach the maximum level
func MaxExp() int64 {
	return expTable[MaxLevel]
}

// All returns every threshold in level order
func All() []Threshold {
	out := make([]Threshold, 0, MaxLevel)
	for lvl := MinLevel; lvl <= MaxLevel; lvl++ {
		out = append(out, Threshold{Level: lvl, Exp: expTable[lvl]})
	}
	return out
}

// Key renders a level as the string key used in JSON level maps
func Key(level int) string {
	return strconv.Itoa(level)
}
