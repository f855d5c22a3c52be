package bounce

import "log"

var touchDebug = false // Set with SetDebug for gesture tracing

// SetDebug turns gesture and scroll tracing on or off.
func SetDebug(on bool) {
	touchDebug = on
}

func debugLog(format string, args ...interface{}) {
	if touchDebug {
		log.Printf("bounce: "+format, args...)
	}
}
