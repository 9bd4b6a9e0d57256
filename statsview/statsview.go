// This file is part of Memcore.
//
// Memcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memcore.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/memcore/logger"
)

// DefaultAddress is used when no address is given to Launch().
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// Server is a running statsview instance.
type Server struct {
	addr string
	mgr  *statsview.ViewManager
}

// Launch a new goroutine running the statsview. The address of the server is
// written to the output.
func Launch(output io.Writer, addr string) *Server {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))

	srv := &Server{
		addr: addr,
		mgr:  statsview.New(),
	}

	go func() {
		err := srv.mgr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log(logger.Allow, "statsview", err)
		}
	}()

	logger.Logf(logger.Allow, "statsview", "launched at %s", srv.Addr())
	fmt.Fprintf(output, "stats server available at %s%s\n", srv.Addr(), url)

	return srv
}

// Addr returns the address the server is listening on.
func (srv *Server) Addr() string {
	return srv.addr
}

// Stop the server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
	logger.Log(logger.Allow, "statsview", "stopped")
}
