//go:build fna3d

package native

// #include <stdlib.h>
import "C"

//export fna3dGoLog
func fna3dGoLog(level C.int, msg *C.char) {
	dispatchLog(LogLevel(level), C.GoString(msg))
}
