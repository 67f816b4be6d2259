// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
)

// the emulation runs for this long before measurement starts
var leadTime = time.Second

// Result of a performance check
type Result struct {
	Instructions int64
	Duration     time.Duration

	// the instruction rate requested by the instruction period preference.
	// zero if the instruction period is zero
	Target float64
}

// Rate is the number of instructions executed per second
func (r Result) Rate() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds()
}

// Accuracy is the rate as a percentage of the target rate. It is zero if
// there is no target.
func (r Result) Accuracy() float64 {
	if r.Target == 0 {
		return 0
	}
	return 100 * r.Rate() / r.Target
}

func (r Result) String() string {
	s := fmt.Sprintf("%.0f instructions per second (%d instructions in %.2f seconds)",
		r.Rate(), r.Instructions, r.Duration.Seconds())
	if r.Target == 0 {
		return s + " uncapped"
	}
	return fmt.Sprintf("%s %.1f%%", s, r.Accuracy())
}

// Check the performance of the emulation. The machine should have a program
// loaded but must not be running. The machine is started and stopped by
// Check().
//
// The emulation and the measurement run concurrently. An error from either
// ends the check.
func Check(output io.Writer, c8 *hardware.Chip8, duration time.Duration, profile Profile) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive")
	}

	var res Result
	if p := c8.Env.Prefs.InstructionDuration(); p > 0 {
		res.Target = float64(time.Second) / float64(p)
	}

	err := RunProfiler(profile, "performance", func() error {
		delay, sound, err := c8.Start()
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer c8.Stop(delay, sound)

		var count atomic.Int64
		var done atomic.Bool

		g, ctx := errgroup.WithContext(context.Background())

		g.Go(func() error {
			return c8.Run(func() (govern.State, error) {
				count.Add(1)
				if done.Load() {
					return govern.Ending, nil
				}
				select {
				case <-ctx.Done():
					return govern.Ending, nil
				default:
				}
				return govern.Running, nil
			})
		})

		g.Go(func() error {
			defer done.Store(true)

			select {
			case <-time.After(leadTime):
			case <-ctx.Done():
				return nil
			}

			start := count.Load()
			startTime := time.Now()

			select {
			case <-time.After(duration):
			case <-ctx.Done():
				return nil
			}

			res.Instructions = count.Load() - start
			res.Duration = time.Since(startTime)
			return nil
		})

		if err := g.Wait(); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(output, res)

	return nil
}
