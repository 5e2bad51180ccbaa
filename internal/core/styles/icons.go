package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconHeart    = ""
	IconCamera   = ""
	IconImage    = ""
	IconCalendar = ""
	IconMapPin   = ""
	IconBook     = ""
	IconCheck    = ""
	IconClose    = ""
)

// Navigation glyphs, plain unicode so they render without a patched font.
var (
	IconPrev = "‹"
	IconNext = "›"
	IconDot  = "•"
)
