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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/memcore/curated"
	"github.com/jetsetilly/memcore/hardware"
	"github.com/jetsetilly/memcore/hardware/preferences"
	"github.com/jetsetilly/memcore/harness"
	"github.com/jetsetilly/memcore/logger"
	"github.com/jetsetilly/memcore/prefs"
	"github.com/jetsetilly/memcore/statsview"
	"github.com/jetsetilly/memcore/version"
	"github.com/spf13/cobra"
)

func main() {
	err := newRootCmd(os.Stdout).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}
}

// session is shared by all commands. it is prepared before every command is
// run and cleaned up afterwards.
type session struct {
	output io.Writer
	prefs  *preferences.Preferences
	stats  *statsview.Server
}

func newRootCmd(output io.Writer) *cobra.Command {
	ses := &session{output: output}

	root := &cobra.Command{
		Use:   version.ApplicationName,
		Short: "A cycle accurate model of a small memory device.",
		Long: `A cycle accurate model of a small memory device with a synchronous write port,
a registered read port and an active-low reset. The device can be driven through
one of two pin layouts: the muxed layout (variant A) and the discrete layout
(variant B).`,
		Version:           version.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: ses.prepare,
		PersistentPostRun: ses.cleanup,
	}
	root.SetOut(output)

	root.PersistentFlags().String("variant", "", "pin layout variant (A or B)")
	root.PersistentFlags().Int("capacity", 0, "number of cells in the core (default depends on variant)")
	root.PersistentFlags().Bool("log", false, "echo log to stdout")
	root.PersistentFlags().String("prefs", "", "preferences to apply (eg. \"core.capacity::64; log.echo::true\")")
	root.PersistentFlags().Bool("statsview", false, "run stats server")
	root.PersistentFlags().String("statsview-addr", statsview.DefaultAddress, "address of stats server")

	root.AddCommand(
		ses.runCmd(),
		ses.fuzzCmd(),
		ses.recordCmd(),
		ses.playbackCmd(),
		ses.stepCmd(),
		ses.dumpCmd(),
		ses.perfCmd(),
	)

	return root
}

func (ses *session) prepare(cmd *cobra.Command, args []string) error {
	var err error

	flags := cmd.Flags()

	if s, _ := flags.GetString("prefs"); s != "" {
		prefs.PushCommandLineStack(s)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "memcore", "unused prefs: %s", unused)
			}
		}()
	}

	ses.prefs, err = preferences.NewPreferences(ses.output)
	if err != nil {
		return err
	}

	if flags.Changed("variant") {
		v, _ := flags.GetString("variant")
		if err := ses.prefs.SetVariant(v); err != nil {
			return err
		}
	}

	if flags.Changed("capacity") {
		c, _ := flags.GetInt("capacity")
		if err := ses.prefs.SetCapacity(c); err != nil {
			return err
		}
	}

	if b, _ := flags.GetBool("log"); b {
		if err := ses.prefs.Echo.Set(true); err != nil {
			return err
		}
	}

	if b, _ := flags.GetBool("statsview"); b {
		addr, _ := flags.GetString("statsview-addr")
		ses.stats = statsview.Launch(ses.output, addr)
	}

	logger.Logf(logger.Allow, "memcore", "%s: %s", cmd.Name(), ses.prefs)

	return nil
}

func (ses *session) cleanup(_ *cobra.Command, _ []string) {
	// the central log outlives the session
	if ses.prefs != nil {
		ses.prefs.Echo.Set(false)
	}
	if ses.stats != nil {
		ses.stats.Stop()
		ses.stats = nil
	}
}

// scenario returns the scenario for the variant in the preferences.
func (ses *session) scenario() harness.Scenario {
	if ses.prefs.Variant.Get().(string) == preferences.VariantDiscrete {
		return harness.Discrete
	}
	return harness.Muxed
}

func (ses *session) newDevice() (*hardware.Device, error) {
	dev, err := hardware.NewDevice(ses.prefs)
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "memcore", "device: %s", dev)
	return dev, nil
}

// Sentinal error for failed commands.
const commandError = "%s: %v"

func commandErrorf(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	return curated.Errorf(commandError, cmd.Name(), err)
}
