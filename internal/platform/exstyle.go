package platform

// Extended window style bits used for click-through on Windows
const (
	wsExTransparent uintptr = 0x00000020
	wsExLayered     uintptr = 0x00080000
)

// clickThroughStyle returns the extended style for the pass-through state.
// layered is true when the layered bit is newly set. The layered bit is kept
// when capture resumes; the window stays fully opaque.
func clickThroughStyle(style uintptr, ignore bool) (next uintptr, layered bool) {
	if ignore {
		next = style | wsExLayered | wsExTransparent
	} else {
		next = style &^ wsExTransparent
	}
	return next, style&wsExLayered == 0 && next&wsExLayered != 0
}
