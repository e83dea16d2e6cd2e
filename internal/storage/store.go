package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/attmoc/attmoc/internal/script"
	"github.com/attmoc/attmoc/internal/sequencer"
)

var ErrNotFound = errors.New("storage: recording not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RecordingMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Title     string             `json:"title"`
	Mode      script.Mode        `json:"mode"`
	Timestamp time.Time          `json:"timestamp"`
	Timing    script.Timing      `json:"timing"`
	Loops     int                `json:"loops"`
	Lines     []string           `json:"lines"`
	Metrics   map[string]float64 `json:"metrics"`
}

// FrameRecord is one row of frames.csv.
type FrameRecord struct {
	At        time.Duration `json:"at"`
	Line      int           `json:"line"`
	Char      int           `json:"char"`
	Committed int           `json:"committed"`
	Revealed  int           `json:"revealed"`
	Phase     string        `json:"phase"`
}

func toRecord(f sequencer.Frame) FrameRecord {
	revealed := utf8.RuneCountInString(f.Transcript.Partial)
	for _, l := range f.Transcript.Lines {
		revealed += utf8.RuneCountInString(l)
	}
	return FrameRecord{
		At:        f.At,
		Line:      f.Transcript.Line,
		Char:      f.Transcript.Char,
		Committed: len(f.Transcript.Lines),
		Revealed:  revealed,
		Phase:     f.Transcript.Phase.String(),
	}
}

// Save writes metadata.json and frames.csv under a new recording
// directory and returns its id.
func (s *Store) Save(p script.Preset, loops int, frames []sequencer.Frame) (string, error) {
	now := time.Now()
	name := recordingName(p.Name)
	id := fmt.Sprintf("%s_%d", name, now.Unix())
	dir := filepath.Join(s.baseDir, id)
	for n := 2; ; n++ {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			break
		}
		id = fmt.Sprintf("%s_%d_%d", name, now.Unix(), n)
		dir = filepath.Join(s.baseDir, id)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	records := make([]FrameRecord, len(frames))
	maxRevealed := 0
	for i, f := range frames {
		records[i] = toRecord(f)
		if records[i].Revealed > maxRevealed {
			maxRevealed = records[i].Revealed
		}
	}

	meta := RecordingMetadata{
		ID:        id,
		Preset:    p.Name,
		Title:     p.Title,
		Mode:      p.Mode,
		Timestamp: now,
		Timing:    p.Timing,
		Loops:     loops,
		Lines:     p.Lines.Clone(),
		Metrics: map[string]float64{
			"frames":       float64(len(frames)),
			"lines":        float64(len(p.Lines)),
			"loop_ms":      float64(p.Timing.LoopDuration(p.Lines).Milliseconds()),
			"max_revealed": float64(maxRevealed),
		},
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"at_us", "line", "char", "committed", "revealed", "phase"}); err != nil {
		return "", err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.At.Microseconds(), 10),
			strconv.Itoa(r.Line),
			strconv.Itoa(r.Char),
			strconv.Itoa(r.Committed),
			strconv.Itoa(r.Revealed),
			r.Phase,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return id, nil
}

// List returns every readable recording, oldest first.
func (s *Store) List() ([]RecordingMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecordingMetadata{}, nil
		}
		return nil, err
	}

	recs := make([]RecordingMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		recs = append(recs, *meta)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Timestamp.Before(recs[j].Timestamp)
	})
	return recs, nil
}

func (s *Store) Load(id string) (*RecordingMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta RecordingMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", id, err)
	}
	return &meta, nil
}

func (s *Store) LoadFrames(id string) ([]FrameRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "frames.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameRecord{}, nil
	}

	frames := make([]FrameRecord, 0, len(records)-1)
	for _, row := range records[1:] {
		if len(row) < 6 {
			continue
		}
		var ints [5]int
		ok := true
		for i := 0; i < 5; i++ {
			v, err := strconv.Atoi(row[i])
			if err != nil {
				ok = false
				break
			}
			ints[i] = v
		}
		if !ok {
			continue
		}
		frames = append(frames, FrameRecord{
			At:        time.Duration(ints[0]) * time.Microsecond,
			Line:      ints[1],
			Char:      ints[2],
			Committed: ints[3],
			Revealed:  ints[4],
			Phase:     row[5],
		})
	}
	return frames, nil
}

// Transcript rebuilds what was on screen for frame f of recording meta.
func Transcript(meta *RecordingMetadata, f FrameRecord) sequencer.Transcript {
	t := sequencer.Transcript{Line: f.Line, Char: f.Char}
	if meta.Mode != script.ModeEditor {
		n := f.Committed
		if n > len(meta.Lines) {
			n = len(meta.Lines)
		}
		t.Lines = append([]string(nil), meta.Lines[:n]...)
	}
	if f.Line < len(meta.Lines) {
		t.Partial = sequencer.Prefix(meta.Lines[f.Line], f.Char)
	}
	return t
}

// recordingName turns a preset name into a single path element for the
// recording directory.
func recordingName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == ".." || name == "/" {
		return "recording"
	}
	return name
}
