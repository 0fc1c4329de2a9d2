// This file is part of mipsdatapath.
//
// mipsdatapath is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mipsdatapath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mipsdatapath.  If not, see <https://www.gnu.org/licenses/>.


//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

var (
	mu  sync.Mutex
	mgr *statsview.ViewManager
)

// Launch a new goroutine running the statsview. Launching a second time has
// no effect.
func Launch(output io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if mgr != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr = statsview.New()
	go mgr.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Stop the statsview server if it is running.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if mgr != nil {
		mgr.Stop()
		mgr = nil
	}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
