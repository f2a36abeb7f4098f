package glyph

// Entry maps one UTF-8 sequence to a charset code.
type Entry struct {
	Seq  string
	Code byte
}

// Table is the charset's multi-byte repertoire: superscript digits and
// letters in the control range, symbols at 16..31, and the icon, kana and
// punctuation block from 127 up. Sequences carrying a trailing U+FE0F
// variation selector appear as-is.
var Table = []Entry{
	{"\xc2\xb9", 1},                       // ¹
	{"\xc2\xb2", 2},                       // ²
	{"\xc2\xb3", 3},                       // ³
	{"\xe2\x81\xb4", 4},                   // ⁴
	{"\xe2\x81\xb5", 5},                   // ⁵
	{"\xe2\x81\xb6", 6},                   // ⁶
	{"\xe2\x81\xb7", 7},                   // ⁷
	{"\xe2\x81\xb8", 8},                   // ⁸
	{"\xe1\xb5\x87", 11},                  // ᵇ
	{"\xe1\xb6\x9c", 12},                  // ᶜ
	{"\xe1\xb5\x89", 14},                  // ᵉ
	{"\xe1\xb6\xa0", 15},                  // ᶠ
	{"\xe2\x96\xae", 16},                  // ▮
	{"\xe2\x96\xa0", 17},                  // ■
	{"\xe2\x96\xa1", 18},                  // □
	{"\xe2\x81\x99", 19},                  // ⁙
	{"\xe2\x81\x98", 20},                  // ⁘
	{"\xe2\x80\x96", 21},                  // ‖
	{"\xe2\x97\x80", 22},                  // ◀
	{"\xe2\x96\xb6", 23},                  // ▶
	{"\xe3\x80\x8c", 24},                  // 「
	{"\xe3\x80\x8d", 25},                  // 」
	{"\xc2\xa5", 26},                      // ¥
	{"\xe2\x80\xa2", 27},                  // •
	{"\xe3\x80\x81", 28},                  // 、
	{"\xe3\x80\x82", 29},                  // 。
	{"\xe3\x82\x9b", 30},                  // ゛
	{"\xe3\x82\x9c", 31},                  // ゜
	{"\xe2\x97\x8b", 127},                 // ○
	{"\xe2\x96\x88", 128},                 // █
	{"\xe2\x96\x92", 129},                 // ▒
	{"\xf0\x9f\x90\xb1", 130},             // 🐱
	{"\xe2\xac\x87\xef\xb8\x8f", 131},     // ⬇
	{"\xe2\x96\x91", 132},                 // ░
	{"\xe2\x9c\xbd", 133},                 // ✽
	{"\xe2\x97\x8f", 134},                 // ●
	{"\xe2\x99\xa5", 135},                 // ♥
	{"\xe2\x98\x89", 136},                 // ☉
	{"\xec\x9b\x83", 137},                 // 웃
	{"\xe2\x8c\x82", 138},                 // ⌂
	{"\xe2\xac\x85\xef\xb8\x8f", 139},     // ⬅
	{"\xf0\x9f\x98\x90", 140},             // 😐
	{"\xe2\x99\xaa", 141},                 // ♪
	{"\xf0\x9f\x85\xbe\xef\xb8\x8f", 142}, // 🅾
	{"\xe2\x97\x86", 143},                 // ◆
	{"\xe2\x80\xa6", 144},                 // …
	{"\xe2\x9e\xa1\xef\xb8\x8f", 145},     // ➡
	{"\xe2\x98\x85", 146},                 // ★
	{"\xe2\xa7\x97", 147},                 // ⧗
	{"\xe2\xac\x86\xef\xb8\x8f", 148},     // ⬆
	{"\xcb\x87", 149},                     // ˇ
	{"\xe2\x88\xa7", 150},                 // ∧
	{"\xe2\x9d\x8e", 151},                 // ❎
	{"\xe2\x96\xa4", 152},                 // ▤
	{"\xe2\x96\xa5", 153},                 // ▥
	{"\xe3\x81\x82", 154},                 // あ
	{"\xe3\x81\x84", 155},                 // い
	{"\xe3\x81\x86", 156},                 // う
	{"\xe3\x81\x88", 157},                 // え
	{"\xe3\x81\x8a", 158},                 // お
	{"\xe3\x81\x8b", 159},                 // か
	{"\xe3\x81\x8d", 160},                 // き
	{"\xe3\x81\x8f", 161},                 // く
	{"\xe3\x81\x91", 162},                 // け
	{"\xe3\x81\x93", 163},                 // こ
	{"\xe3\x81\x95", 164},                 // さ
	{"\xe3\x81\x97", 165},                 // し
	{"\xe3\x81\x99", 166},                 // す
	{"\xe3\x81\x9b", 167},                 // せ
	{"\xe3\x81\x9d", 168},                 // そ
	{"\xe3\x81\x9f", 169},                 // た
	{"\xe3\x81\xa1", 170},                 // ち
	{"\xe3\x81\xa4", 171},                 // つ
	{"\xe3\x81\xa6", 172},                 // て
	{"\xe3\x81\xa8", 173},                 // と
	{"\xe3\x81\xaa", 174},                 // な
	{"\xe3\x81\xab", 175},                 // に
	{"\xe3\x81\xac", 176},                 // ぬ
	{"\xe3\x81\xad", 177},                 // ね
	{"\xe3\x81\xae", 178},                 // の
	{"\xe3\x81\xaf", 179},                 // は
	{"\xe3\x81\xb2", 180},                 // ひ
	{"\xe3\x81\xb5", 181},                 // ふ
	{"\xe3\x81\xb8", 182},                 // へ
	{"\xe3\x81\xbb", 183},                 // ほ
	{"\xe3\x81\xbe", 184},                 // ま
	{"\xe3\x81\xbf", 185},                 // み
	{"\xe3\x82\x80", 186},                 // む
	{"\xe3\x82\x81", 187},                 // め
	{"\xe3\x82\x82", 188},                 // も
	{"\xe3\x82\x84", 189},                 // や
	{"\xe3\x82\x86", 190},                 // ゆ
	{"\xe3\x82\x88", 191},                 // よ
	{"\xe3\x82\x89", 192},                 // ら
	{"\xe3\x82\x8a", 193},                 // り
	{"\xe3\x82\x8b", 194},                 // る
	{"\xe3\x82\x8c", 195},                 // れ
	{"\xe3\x82\x8d", 196},                 // ろ
	{"\xe3\x82\x8f", 197},                 // わ
	{"\xe3\x82\x92", 198},                 // を
	{"\xe3\x82\x93", 199},                 // ん
	{"\xe3\x81\xa3", 200},                 // っ
	{"\xe3\x82\x83", 201},                 // ゃ
	{"\xe3\x82\x85", 202},                 // ゅ
	{"\xe3\x82\x87", 203},                 // ょ
	{"\xe3\x82\xa2", 204},                 // ア
	{"\xe3\x82\xa4", 205},                 // イ
	{"\xe3\x82\xa6", 206},                 // ウ
	{"\xe3\x82\xa8", 207},                 // エ
	{"\xe3\x82\xaa", 208},                 // オ
	{"\xe3\x82\xab", 209},                 // カ
	{"\xe3\x82\xad", 210},                 // キ
	{"\xe3\x82\xaf", 211},                 // ク
	{"\xe3\x82\xb1", 212},                 // ケ
	{"\xe3\x82\xb3", 213},                 // コ
	{"\xe3\x82\xb5", 214},                 // サ
	{"\xe3\x82\xb7", 215},                 // シ
	{"\xe3\x82\xb9", 216},                 // ス
	{"\xe3\x82\xbb", 217},                 // セ
	{"\xe3\x82\xbd", 218},                 // ソ
	{"\xe3\x82\xbf", 219},                 // タ
	{"\xe3\x83\x81", 220},                 // チ
	{"\xe3\x83\x84", 221},                 // ツ
	{"\xe3\x83\x86", 222},                 // テ
	{"\xe3\x83\x88", 223},                 // ト
	{"\xe3\x83\x8a", 224},                 // ナ
	{"\xe3\x83\x8b", 225},                 // ニ
	{"\xe3\x83\x8c", 226},                 // ヌ
	{"\xe3\x83\x8d", 227},                 // ネ
	{"\xe3\x83\x8e", 228},                 // ノ
	{"\xe3\x83\x8f", 229},                 // ハ
	{"\xe3\x83\x92", 230},                 // ヒ
	{"\xe3\x83\x95", 231},                 // フ
	{"\xe3\x83\x98", 232},                 // ヘ
	{"\xe3\x83\x9b", 233},                 // ホ
	{"\xe3\x83\x9e", 234},                 // マ
	{"\xe3\x83\x9f", 235},                 // ミ
	{"\xe3\x83\xa0", 236},                 // ム
	{"\xe3\x83\xa1", 237},                 // メ
	{"\xe3\x83\xa2", 238},                 // モ
	{"\xe3\x83\xa4", 239},                 // ヤ
	{"\xe3\x83\xa6", 240},                 // ユ
	{"\xe3\x83\xa8", 241},                 // ヨ
	{"\xe3\x83\xa9", 242},                 // ラ
	{"\xe3\x83\xaa", 243},                 // リ
	{"\xe3\x83\xab", 244},                 // ル
	{"\xe3\x83\xac", 245},                 // レ
	{"\xe3\x83\xad", 246},                 // ロ
	{"\xe3\x83\xaf", 247},                 // ワ
	{"\xe3\x83\xb2", 248},                 // ヲ
	{"\xe3\x83\xb3", 249},                 // ン
	{"\xe3\x83\x83", 250},                 // ッ
	{"\xe3\x83\xa3", 251},                 // ャ
	{"\xe3\x83\xa5", 252},                 // ュ
	{"\xe3\x83\xa7", 253},                 // ョ
	{"\xe2\x97\x9c", 254},                 // ◜
	{"\xe2\x97\x9d", 255},                 // ◝
}
