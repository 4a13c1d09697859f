package normalize

import "regexp"

// Rules carries every fixed classification set the pipeline consults.
// It is passed explicitly rather than read from package state so tests
// can substitute smaller sets without cross-call coupling.
type Rules struct {
	// SkipProductTypes rejects whole listings by substring match on
	// product_type (apparel, accessories, timers, ...).
	SkipProductTypes []string

	// IllegalCubeTypes is matched exactly against product_type.
	IllegalCubeTypes map[string]struct{}

	// IllegalTags is matched against lowercased tags.
	IllegalTags map[string]struct{}

	// SurfaceFinishes maps a normalized tag keyword to its display name.
	// Order matters for containment checks, so keys are kept alongside.
	SurfaceFinishes []SurfaceFinish

	// SizeTableMM maps an NxN key ("3x3") to a default size in mm.
	SizeTableMM map[string]float64

	// NoiseWords terminate series-name accumulation.
	NoiseWords map[string]struct{}
}

type SurfaceFinish struct {
	Keyword string
	Display string
}

var (
	mmPattern      = regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d)?)\s*mm`)
	nxnPattern     = regexp.MustCompile(`(?i)\b(\d)[x×](\d)\b`)
	sizePattern    = regexp.MustCompile(`(?i)^\d+x\d+`)
	versionPattern = regexp.MustCompile(`(?i)^(v\d+|pro|plus|m)$`)
	parensPattern  = regexp.MustCompile(`\(.*?\)`)
)

// DefaultRules returns the production classification data. The sets are
// heuristic keyword lists curated from real store catalogs; a listing
// slipping through them is a data problem, not a code problem.
func DefaultRules() Rules {
	return Rules{
		SkipProductTypes: []string{
			"accessories", "accessories bundle", "apparel - clearance",
			"after sale", "beanie", "blanket", "book", "bundle",
			"burr puzzle", "christmas", "coaching service", "competitions",
			"cube cover", "display case", "display time", "diecast model",
			"diy", "diy kits", "educational toy", "flashcards", "fidget",
			"fidget cube", "hat", "hoodie", "hardware", "hobby tools",
			"jacket", "jigsaw puzzle", "lanyard", "learning", "lube",
			"live events", "lucky dip", "mat", "model kit", "mug",
			"nanoblock", "office", "other", "pillow", "plastic blade",
			"plushie", "remote control car", "refurbished", "syringe",
			"sticker sets", "storage bag", "storage box", "stand",
			"shirt", "t-shirt", "timer", "timer accessories", "timer skin",
			"tools & accessories", "training courses", "toy",
			"water bottle", "wooden building block",
			"wooden learning board toy", "wooden puzzle", "halloween",
			"digital", "download", "test", "options_hidden_product",
			"globo", "sliding", "snake", "pin", "badge", "mouse", "pad",
			"locking", "klotski", "ball", "kreativity", "lms", "hanayama",
			"jibbitz", "keychain", "lubricant", "game", "mod", "service",
			"sticker", "tetra", "lifestyle", "freebie", "decals", "pouch",
			"logo", "blindfold", "gift",
		},
		IllegalCubeTypes: stringSet(
			// Electronic / powered cubes, even when nominally 3x3
			"Smart Cube", "Bluetooth Cube", "Motorized Cube", "Robot Cube",
			// Transparency and single-colour shape mods
			"Transparent Cube", "Clear Cube", "Ice Cube", "Mirror Cube",
			"Ghost Cube", "Axis Cube", "Fisher Cube", "Barrel Cube",
			// Irregular cuboids and bandaged puzzles
			"Cuboid", "2×2×3", "3×3×2", "3×3×4", "3×3×5",
			"Bandaged Cube", "Mixup Cube",
			// Shape mods with non-uniform colours
			"Mastermorphix", "Pyramorphix", "Master Pyraminx",
			// Oversize NxN beyond official 7x7
			"8×8 Cube", "9×9 Cube", "10×10 Cube", "11×11 Cube",
			"12×12 Cube", "13×13 Cube", "15×15 Cube", "17×17 Cube",
			"18×18 Cube",
			// Non-event dodecahedra and deepcut variants
			"Kilominx", "Gigaminx", "Teraminx", "Petaminx",
			// Non-event bandaged variants
			"Square-2", "Cubedron",
			// Novelty / gimmick cubes
			"Ivy Cube", "Gear Cube", "Helicopter Cube", "Redi Cube",
			"Sudokube", "Floppy Cube", "Infinity Cube", "Siamese Cube",
		),
		IllegalTags: stringSet(
			// Connectivity / smart-cube features
			"smart", "bluetooth", "wifi", "wi-fi", "wireless", "app",
			"app-enabled", "connected", "cloud", "iot",
			// Electronic sensors and chips
			"sensor", "sensors", "gyroscope", "gyro", "accelerometer",
			"imu", "magnetometer", "cpu", "chip", "pcb",
			// Displays, indicators, lights
			"display", "screen", "lcd", "oled", "led", "light", "lights",
			"rgb", "neon", "matrix",
			// Power / charging hardware
			"battery", "rechargeable", "usb", "type-c", "charging",
			"lithium", "li-ion", "charger", "power",
			// Motors and automatic movement
			"motor", "motorized", "auto", "auto-turn", "autosolve",
			"self-turning", "self-solving", "robotic", "robot", "servo",
			// Audio / video extras
			"camera", "microphone", "speaker", "voice", "sound", "buzzer",
			// Transparent or see-through shells
			"transparent", "clear", "see-through", "crystal", "acrylic",
			"glass",
			// Misc powered gimmicks
			"timer", "hud", "projector", "hologram",
		),
		SurfaceFinishes: []SurfaceFinish{
			{Keyword: "uvcoated", Display: "UV Coated"},
			{Keyword: "uv", Display: "UV Coated"},
			{Keyword: "frosted", Display: "Frosted"},
			{Keyword: "matte", Display: "Matte"},
			{Keyword: "gloss", Display: "Glossy"},
			{Keyword: "soft-touch", Display: "Soft Touch"},
		},
		SizeTableMM: map[string]float64{
			"2x2": 50, "3x3": 56, "4x4": 60, "5x5": 62,
			"6x6": 65, "7x7": 69,
		},
		NoiseWords: stringSet(
			"cube", "cubes", "speed", "speedcube", "puzzle", "magnetic",
			"maglev", "stickerless", "edition", "version", "set", "kit",
		),
	}
}

func stringSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
