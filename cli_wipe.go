package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v5"
	"github.com/vbauerster/mpb/v5/decor"

	"github.com/Kostassoid/lethe/logging"
	"github.com/Kostassoid/lethe/wipe"
)

func newWipeCmd(schemesFile *string) *cobra.Command {
	var schemeName, verifyName, blockSizeStr string
	var retries uint32
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe <device>",
		Short: "Overwrite a device, partition, or file with one or more sanitization passes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWipe(args[0], *schemesFile, schemeName, verifyName, blockSizeStr, retries, yes)
		},
	}

	cmd.Flags().StringVar(&schemeName, "scheme", "random2x", "sanitization scheme to apply (see `lethe list`)")
	cmd.Flags().StringVar(&verifyName, "verify", "last", "verification policy: no|last|all")
	cmd.Flags().StringVar(&blockSizeStr, "blocksize", "1m", "I/O block size, a power of two (e.g. 4096, 1m)")
	cmd.Flags().Uint32Var(&retries, "retries", 8, "retries allowed across all stages before giving up")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

func parseVerify(s string) (wipe.Verify, error) {
	switch strings.ToLower(s) {
	case "no":
		return wipe.VerifyNo, nil
	case "last":
		return wipe.VerifyLast, nil
	case "all":
		return wipe.VerifyAll, nil
	default:
		return 0, fmt.Errorf("invalid --verify %q: expected no, last, or all", s)
	}
}

func runWipe(path, schemesFile, schemeName, verifyName, blockSizeStr string, retries uint32, yes bool) error {
	registry, err := resolveRegistry(schemesFile)
	if err != nil {
		return err
	}

	scheme, ok := registry.Find(strings.ToLower(schemeName))
	if !ok {
		return fmt.Errorf("unknown scheme %q (see `lethe list`)", schemeName)
	}

	verify, err := parseVerify(verifyName)
	if err != nil {
		return err
	}

	blockSize, err := parseBlockSize(blockSizeStr)
	if err != nil {
		return err
	}

	t, err := openTarget(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer t.close()

	task, err := wipe.NewTask(scheme, verify, t.size, blockSize)
	if err != nil {
		return err
	}

	if !yes {
		proceed, err := confirm(fmt.Sprintf(
			"This will irrecoverably erase %s (%s) using scheme %q. Continue? (yes/no): ",
			path, bytefmt.ByteSize(t.size), schemeName,
		))
		if err != nil {
			return err
		}
		if !proceed {
			color.New(color.FgYellow).Fprintln(os.Stderr, "aborted")
			return nil
		}
	}

	logReceiver := logging.NewReceiver(logrus.StandardLogger())
	logReceiver.RunID = uuid.New().String()

	state := wipe.NewState(retries)
	receiver := newCLIReceiver(task, logReceiver)

	wipe.Run(task, t.access, state, receiver)
	receiver.wait()

	if receiver.err != nil {
		return fmt.Errorf("wipe failed: %w", receiver.err)
	}

	color.New(color.FgGreen).Println("wipe completed successfully")
	return nil
}

// confirm prompts on the terminal via liner and reports whether the
// operator typed yes/y. A Ctrl-C or EOF is treated as "no".
func confirm(prompt string) (bool, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	answer, err := line.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted || err == io.EOF {
			return false, nil
		}
		return false, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y", nil
}

// cliReceiver fans a wipe.Event out to structured logging and a live mpb
// progress bar, and remembers the run's terminal error (if any) so the
// command can decide the process exit status.
type cliReceiver struct {
	next      wipe.EventReceiver
	container *mpb.Progress
	bar       *mpb.Bar
	barAt     int64
	err       error
}

func newCLIReceiver(task *wipe.Task, next wipe.EventReceiver) *cliReceiver {
	return &cliReceiver{
		next:      next,
		container: mpb.New(mpb.WithWidth(64)),
	}
}

func (r *cliReceiver) Handle(task *wipe.Task, state *wipe.State, event wipe.Event) {
	r.next.Handle(task, state, event)

	switch event.Kind() {
	case wipe.StageStarted:
		label := fmt.Sprintf("stage %d/%d", state.Stage+1, len(task.Scheme.Stages))
		if state.AtVerification {
			label += " verify"
		} else {
			label += " fill"
		}
		r.barAt = 0
		r.bar = r.container.AddBar(int64(task.TotalSize),
			mpb.PrependDecorators(decor.Name(label, decor.WC{W: len(label) + 1, C: decor.DidentRight})),
			mpb.AppendDecorators(decor.Percentage()),
		)
	case wipe.Progress:
		if r.bar != nil {
			pos := int64(event.Position())
			r.bar.IncrInt64(pos - r.barAt)
			r.barAt = pos
		}
	case wipe.StageCompleted:
		if r.bar != nil {
			if event.Err() != nil {
				r.bar.Abort(false)
			}
			r.bar = nil
		}
	case wipe.Completed, wipe.Fatal:
		if event.Err() != nil {
			r.err = event.Err()
		}
	}
}

// wait blocks until the progress container has finished rendering every bar.
func (r *cliReceiver) wait() {
	r.container.Wait()
}
