package persona

import "strings"

// extensionOf extracts the extension used for pass-1 resolution. The
// scan tracks the most recent '.' and resets it on either separator, so
// "/etc/rc.d/journald" has no extension while "a.tar.gz" yields ".gz".
// A trailing dot or no dot at all yields "". The result is ASCII
// lowercased and always begins with '.'.
func extensionOf(path string) string {
	dot := -1
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '.':
			dot = i
		case '/', '\\':
			dot = -1
		}
	}
	if dot < 0 || dot == len(path)-1 {
		return ""
	}
	return strings.ToLower(path[dot:])
}
