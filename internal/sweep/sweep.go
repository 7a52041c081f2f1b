// Package sweep removes IPC sockets left behind by mpv instances that died without cleanup.
package sweep

import (
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/touchmpv/touchmpv/filesystem"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/where"
)

// Grace is how old a socket must be before it is considered abandoned.
// A freshly spawned mpv may not be listening yet.
const Grace = time.Minute

// alive reports whether something still accepts connections on the socket.
var alive = func(path string) bool {
	conn, err := net.DialTimeout("unix", path, 200*time.Millisecond)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Sockets deletes dead *.sock files under where.Sockets and returns how many were removed.
func Sockets() int {
	return sweep(where.Sockets(), time.Now())
}

func sweep(dir string, now time.Time) (removed int) {
	_ = filesystem.API().Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".sock" {
			return nil
		}

		if now.Sub(info.ModTime()) < Grace || alive(path) {
			return nil
		}

		if err := filesystem.API().Remove(path); err != nil {
			log.Warnf("sweep %s: %v", path, err)
			return nil
		}

		log.Debugf("removed stale socket %s", path)
		removed++
		return nil
	})

	return removed
}
