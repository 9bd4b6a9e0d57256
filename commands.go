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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/memcore/hardware"
	"github.com/jetsetilly/memcore/harness"
	"github.com/jetsetilly/memcore/performance"
	"github.com/jetsetilly/memcore/random"
	"github.com/jetsetilly/memcore/recorder"
	"github.com/jetsetilly/memcore/stepper"
	"github.com/jetsetilly/memcore/stepper/easyterm"
	"github.com/spf13/cobra"
)

func (ses *session) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "run [A|B]",
		Short:     "Run the scenario for the pin layout variant.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"A", "B"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := ses.prefs.SetVariant(args[0]); err != nil {
					return commandErrorf(cmd, err)
				}
			}

			dev, err := ses.newDevice()
			if err != nil {
				return commandErrorf(cmd, err)
			}

			scn := ses.scenario()
			h := harness.NewHarness(dev.Pins)
			if err := scn.Run(h); err != nil {
				return commandErrorf(cmd, err)
			}

			fmt.Fprintf(ses.output, "%s scenario passed: %s\n", scn.Name, dev)
			return nil
		},
	}
	return cmd
}

func (ses *session) fuzzCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Random reads and writes checked against a reference copy of the cells.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := ses.newDevice()
			if err != nil {
				return commandErrorf(cmd, err)
			}

			rnd := random.NewRandom(dev.Core)
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetInt64("seed")
				rnd.SetSeed(seed)
			} else if seed := ses.prefs.Seed.Get().(int); seed != 0 {
				rnd.SetSeed(int64(seed))
			}

			ops, _ := cmd.Flags().GetInt("ops")

			res, err := harness.Fuzz(harness.NewHarness(dev.Pins), rnd, ops)
			if err != nil {
				fmt.Fprintf(ses.output, "fuzz failed: %s\n", res)
				return commandErrorf(cmd, err)
			}

			fmt.Fprintf(ses.output, "fuzz passed: %s: %s\n", res, dev)
			return nil
		},
	}
	cmd.Flags().Int("ops", harness.MinFuzzOps, "number of random operations")
	cmd.Flags().Int64("seed", 0, "base seed for random numbers")
	return cmd
}

func (ses *session) recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record transcript",
		Short: "Record the scenario for the pin layout variant to a transcript.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := ses.newDevice()
			if err != nil {
				return commandErrorf(cmd, err)
			}

			rec, err := recorder.NewRecorder(args[0], dev.Pins, dev.Core)
			if err != nil {
				return commandErrorf(cmd, err)
			}

			scn := ses.scenario()
			err = scn.Run(harness.NewHarness(rec))

			// end the recording even if the scenario has failed
			if rerr := rec.End(); rerr != nil && err == nil {
				err = rerr
			}
			if err != nil {
				return commandErrorf(cmd, err)
			}

			fmt.Fprintf(ses.output, "recorded %d edges of the %s scenario to %s\n", rec.Edges(), scn.Name, args[0])
			return nil
		},
	}
	return cmd
}

func (ses *session) playbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playback transcript",
		Short: "Replay a transcript and verify every edge.",
		Long: `Replay a transcript and verify every edge. The pin layout and the capacity of the
device are taken from the transcript.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plb, err := recorder.NewPlayback(args[0])
			if err != nil {
				return commandErrorf(cmd, err)
			}

			variant, err := hardware.Variant(plb.Label)
			if err != nil {
				return commandErrorf(cmd, err)
			}
			if err := ses.prefs.Variant.Set(variant); err != nil {
				return commandErrorf(cmd, err)
			}
			if err := ses.prefs.Capacity.Set(plb.Capacity); err != nil {
				return commandErrorf(cmd, err)
			}

			dev, err := ses.newDevice()
			if err != nil {
				return commandErrorf(cmd, err)
			}

			if err := plb.Verify(dev.Pins, dev.Core); err != nil {
				return commandErrorf(cmd, err)
			}

			fmt.Fprintf(ses.output, "playback verified %s: %s\n", plb, dev)
			return nil
		},
	}
	return cmd
}

func (ses *session) stepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance the device one edge at a time from the keyboard.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := ses.newDevice()
			if err != nil {
				return commandErrorf(cmd, err)
			}

			var term easyterm.Terminal
			if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
				return commandErrorf(cmd, err)
			}
			if err := term.CBreakMode(); err != nil {
				return commandErrorf(cmd, err)
			}
			defer term.CanonicalMode()

			// key presses made before the stepper starts are not edges
			if err := term.Flush(); err != nil {
				return commandErrorf(cmd, err)
			}

			err = stepper.NewStepper(dev.Pins, dev.Core, os.Stdin, ses.output).Run()
			if err != nil {
				return commandErrorf(cmd, err)
			}

			term.Print("%s\n", dev)
			return nil
		},
	}
	return cmd
}

func (ses *session) dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump file.dot",
		Short: "Run the scenario and write a graphviz diagram of the core.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := ses.newDevice()
			if err != nil {
				return commandErrorf(cmd, err)
			}

			if err := ses.scenario().Run(harness.NewHarness(dev.Pins)); err != nil {
				return commandErrorf(cmd, err)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return commandErrorf(cmd, err)
			}
			memviz.Map(f, dev.Core)
			if err := f.Close(); err != nil {
				return commandErrorf(cmd, err)
			}

			fmt.Fprintf(ses.output, "%s\n", dev.Core)
			return nil
		},
	}
	return cmd
}

func (ses *session) perfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perf",
		Short: "Measure the number of edges per second.",
		Long: `Measure the number of edges per second. The device is driven with random inputs
for the duration. Profiles are written to the current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := ses.newDevice()
			if err != nil {
				return commandErrorf(cmd, err)
			}

			s, _ := cmd.Flags().GetString("profile")
			profile, err := performance.ParseProfile(s)
			if err != nil {
				return commandErrorf(cmd, err)
			}

			duration, _ := cmd.Flags().GetString("duration")

			rnd := random.NewRandom(dev.Core)
			_, err = performance.Check(ses.output, profile, dev.Pins, rnd, duration)
			return commandErrorf(cmd, err)
		},
	}
	cmd.Flags().String("duration", "5s", "run duration")
	cmd.Flags().String("profile", "none", "profiling: cpu, mem, trace, all or none")
	return cmd
}
