// Package stats appends the conflict optimizer's improvement curve to a
// per-run file under ./graphs/, adapted from the teacher's
// common/recording file-handle-cache pattern (open once, append,
// explicit Sync after every write) rather than the teacher's archive
// (zip) shape, since the coloring engine only ever writes one small
// growing text file, not a metadata + payload archive.
package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shadoks-lab/planecolor/common/utils"
)

// Sink appends "<elapsed_seconds> <num_colors>" lines to the graph file
// for one run, per spec.md §6.5.
type Sink struct {
	file *os.File
}

// FileName builds the graph filename from the instance id and the full
// tuning-parameter bundle, ported from
// `original_source/src/conflict.cpp`'s `add_data_point_to_graph_file`:
// when loop is enabled, the literal string "loop" substitutes for the
// power value, since power no longer identifies the run on its own.
func FileName(instanceID string, power float64, noiseMean, noiseVar float64, maxQueue int, dfs, easy, loop bool, loopTime time.Duration) string {
	powerField := strconv.FormatFloat(power, 'g', -1, 64)
	if loop {
		powerField = "loop"
	}
	name := fmt.Sprintf(
		"%s_p%s_nm%s_nv%s_mq%d_dfs%s_easy%s_loop%s_lt%d.dat",
		instanceID,
		powerField,
		strconv.FormatFloat(noiseMean, 'g', -1, 64),
		strconv.FormatFloat(noiseVar, 'g', -1, 64),
		maxQueue,
		strconv.FormatBool(dfs),
		strconv.FormatBool(easy),
		strconv.FormatBool(loop),
		int(loopTime.Seconds()),
	)
	return filepath.Join("graphs", name)
}

// Open creates ./graphs/ if needed and opens (or creates) the sink's
// file for appending.
func Open(path string) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Sink{file: f}, nil
}

// Record appends one data point and syncs to disk immediately, so a
// killed run leaves a readable partial graph.
func (s *Sink) Record(elapsed time.Duration, numColors int) {
	line := fmt.Sprintf("%f %d\n", elapsed.Seconds(), numColors)
	if _, err := s.file.WriteString(line); err != nil {
		utils.Debug("stats", "write failed: "+err.Error())
		return
	}
	if err := s.file.Sync(); err != nil {
		utils.Debug("stats", "sync failed: "+err.Error())
	}
}

// Close releases the underlying file handle.
func (s *Sink) Close() error {
	return s.file.Close()
}
