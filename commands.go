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


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/mipsdatapath/curated"
	"github.com/jetsetilly/mipsdatapath/govern"
	"github.com/jetsetilly/mipsdatapath/hardware"
	"github.com/jetsetilly/mipsdatapath/hardware/datapath"
	"github.com/jetsetilly/mipsdatapath/loader"
	"github.com/jetsetilly/mipsdatapath/logger"
	"github.com/jetsetilly/mipsdatapath/terminal"
	"github.com/spf13/cobra"
)

// output options common to the run, step and watch commands.
type report struct {
	history   bool
	dumpFrom  uint32
	dumpCount int
}

func (r *report) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&r.history, "history", false, "print every step")
	cmd.Flags().Uint32Var(&r.dumpFrom, "dump-from", 0, "address of the memory dump")
	cmd.Flags().IntVar(&r.dumpCount, "dump-count", 0, "number of words in the memory dump")
}

func (r *report) write(output io.Writer, m *hardware.Machine) error {
	if r.history {
		for _, h := range m.History() {
			fmt.Fprintln(output, h)
		}
	}

	fmt.Fprintln(output, m.State())

	if r.dumpCount > 0 {
		if err := m.Datapath().WriteDump(output, r.dumpFrom, r.dumpCount); err != nil {
			return err
		}
	}

	return nil
}

// attach loads the program named by filename and attaches it to a new
// machine.
func (s *session) attach(filename string) (*hardware.Machine, error) {
	ld := loader.NewLoader(filename, s.settings.Format)
	p, err := ld.Load()
	if err != nil {
		return nil, err
	}

	// hex programs have no origin of their own
	if ld.Format == loader.FormatHex {
		p.Origin = s.settings.Origin
	}

	m, err := hardware.NewMachine(s.settings.Mode, s.settings.MemoryWords)
	if err != nil {
		return nil, err
	}

	if err := m.Attach(p); err != nil {
		return nil, err
	}

	return m, nil
}

// run the program to completion and write the report.
func (s *session) run(filename string, rep *report, continueCheck func(datapath.Result) (govern.State, error)) (*hardware.Machine, error) {
	m, err := s.attach(filename)
	if err != nil {
		return nil, err
	}

	state, err := m.Run(s.settings.RunLimit, continueCheck)
	if err != nil {
		return m, err
	}
	logger.Logf(m, "run", "%s: %s after %d steps", m.RunID(), state, m.Steps())

	if err := rep.write(s.stdout, m); err != nil {
		return m, err
	}

	return m, nil
}

func newRunCommand(s *session) *cobra.Command {
	rep := &report{}

	cmd := &cobra.Command{
		Use:   "run <program>",
		Short: "run a program until it halts",
		Args:  cobra.ExactArgs(1),
		RunE: s.wrap(func(cmd *cobra.Command, args []string) error {
			_, err := s.run(args[0], rep, nil)
			return err
		}),
	}
	rep.addFlags(cmd)

	return cmd
}

func newStepCommand(s *session) *cobra.Command {
	rep := &report{}

	cmd := &cobra.Command{
		Use:   "step <program>",
		Short: "run a program one step at a time",
		Long: `Run a program one step at a time. The state of the machine is printed after
every step. Press space or return to take another step, r to run without
stopping and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: s.wrap(func(cmd *cobra.Command, args []string) error {
			keys, err := terminal.Open()
			if err != nil {
				return err
			}
			defer keys.Close()

			running := false

			_, err = s.run(args[0], rep, func(r datapath.Result) (govern.State, error) {
				fmt.Fprintln(s.stdout, r)
				if running {
					return govern.Running, nil
				}
				state, err := keys.Wait()
				if err != nil {
					return govern.Ending, err
				}
				running = state == govern.Running
				return state, nil
			})

			return err
		}),
	}
	rep.addFlags(cmd)

	return cmd
}

// Sentinal error returned by the watch command.
const WatchError = "watch: %v"

func newWatchCommand(s *session) *cobra.Command {
	rep := &report{}

	cmd := &cobra.Command{
		Use:   "watch <program>",
		Short: "run a program every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: s.wrap(func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return s.watch(ctx, args[0], rep)
		}),
	}
	rep.addFlags(cmd)

	return cmd
}

// watch runs the program once and then again whenever the file is written.
// The directory is watched rather than the file so that editors that
// replace the file on save are noticed.
func (s *session) watch(ctx context.Context, filename string, rep *report) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf(WatchError, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return curated.Errorf(WatchError, err)
	}

	rerun := func() {
		if _, err := s.run(filename, rep, nil); err != nil {
			fmt.Fprintf(s.stderr, "* error: %v\n", err)
		}
	}

	rerun()

	target := filepath.Clean(filename)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Fprintf(s.stdout, "%s changed\n", filename)
				rerun()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return curated.Errorf(WatchError, err)
		}
	}
}

func newDumpCommand(s *session) *cobra.Command {
	var output string
	var before bool

	cmd := &cobra.Command{
		Use:   "dump <program>",
		Short: "write a graphviz diagram of the machine state",
		Long: `Run the program and write a graphviz diagram of the final machine state. Use
the --before flag to write the state before the program runs instead.`,
		Args: cobra.ExactArgs(1),
		RunE: s.wrap(func(cmd *cobra.Command, args []string) error {
			m, err := s.attach(args[0])
			if err != nil {
				return err
			}

			if !before {
				if _, err := m.Run(s.settings.RunLimit, nil); err != nil {
					return err
				}
			}

			w := s.stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return curated.Errorf("dump: %v", err)
				}
				defer f.Close()
				w = f
			}

			state := m.State()
			memviz.Map(w, &state)

			return nil
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the diagram to file")
	cmd.Flags().BoolVar(&before, "before", false, "diagram the state before the program runs")

	return cmd
}
