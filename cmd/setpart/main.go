// Command setpart streams set partitions of {1..n} to stdout, one
// numbered line at a time, with optional pacing and truncation.
//
// Modes (exactly one):
//
//	-all              every partition (Algorithm V)
//	-exact K          exactly K blocks (Algorithm X)
//	-exact-y K        exactly K blocks, recurrence construction (Algorithm Y)
//	-range KMIN:KMAX  block count within [KMIN, KMAX] (Algorithm Z)
//
// Output:
//
//	3: RGS=[0 1 0]  (#blocks=2)      default form
//	3: {1,3} | {2}                   with -blocks
//
// Pacing and truncation:
//
//	-limit L   stop after L lines (the generator stops with it)
//	-sleep D   pause D between lines, e.g. -sleep 100ms
package main

import (
	"flag"
	"fmt"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/setpart/rgs"
)

func main() {
	var (
		n      = flag.Int("n", -1, "size of the ground set {1..n} (required)")
		all    = flag.Bool("all", false, "enumerate every partition")
		exact  = flag.Int("exact", -1, "enumerate exactly K blocks")
		exactY = flag.Int("exact-y", -1, "enumerate exactly K blocks via the recurrence")
		krange = flag.String("range", "", "enumerate block counts within KMIN:KMAX")
		blocks = flag.Bool("blocks", false, "print block form instead of RGS form")
		limit  = flag.Int("limit", 0, "stop after this many lines (0 = no limit)")
		sleep  = flag.Duration("sleep", 0, "pause between lines, e.g. 100ms")
	)
	flag.Parse()

	if *n < 0 {
		fatalf("missing or negative -n")
	}

	seq, err := selectMode(*n, *all, *exact, *exactY, *krange)
	if err != nil {
		fatalf("%v", err)
	}

	stream(seq, *blocks, *limit, *sleep)
}

// selectMode maps the mutually exclusive mode flags onto one generator.
func selectMode(n int, all bool, exact, exactY int, krange string) (iter.Seq[rgs.RGS], error) {
	modes := 0
	if all {
		modes++
	}
	if exact >= 0 {
		modes++
	}
	if exactY >= 0 {
		modes++
	}
	if krange != "" {
		modes++
	}
	if modes != 1 {
		return nil, fmt.Errorf("choose exactly one mode: -all | -exact K | -exact-y K | -range KMIN:KMAX")
	}

	switch {
	case all:
		return rgs.All(n)
	case exact >= 0:
		return rgs.Exactly(n, exact)
	case exactY >= 0:
		return rgs.ExactlyByRecurrence(n, exactY)
	default:
		var kmin, kmax int
		if _, err := fmt.Sscanf(krange, "%d:%d", &kmin, &kmax); err != nil {
			return nil, fmt.Errorf("-range wants KMIN:KMAX, got %q", krange)
		}

		return rgs.Range(n, kmin, kmax)
	}
}

// stream prints the sequence live, honoring the limit and the pacing
// pause. Stopping early leaves the rest of the space ungenerated.
func stream(seq iter.Seq[rgs.RGS], blockForm bool, limit int, pause time.Duration) {
	count := 0
	for a := range seq {
		count++
		if blockForm {
			fmt.Printf("%5d: %s\n", count, formatBlocks(rgs.ToBlocks(a)))
		} else {
			fmt.Printf("%5d: %s\n", count, formatRGS(a))
		}
		if limit > 0 && count >= limit {
			break
		}
		if pause > 0 {
			time.Sleep(pause)
		}
	}
}

// formatRGS renders the string form with its block count, e.g.
// "RGS=[0 1 0]  (#blocks=2)".
func formatRGS(a rgs.RGS) string {
	return fmt.Sprintf("RGS=%v  (#blocks=%d)", a, rgs.BlockCount(a))
}

// formatBlocks renders the block form, e.g. "{1,3} | {2}".
func formatBlocks(blocks [][]int) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		elems := make([]string, len(b))
		for j, e := range b {
			elems[j] = fmt.Sprint(e)
		}
		parts[i] = "{" + strings.Join(elems, ",") + "}"
	}

	return strings.Join(parts, " | ")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "setpart: "+format+"\n", args...)
	os.Exit(2)
}
