package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing Human
	Agent2 int // AgentConfig.ID playing AI
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// moveRow is the on-disk layout of a MoveRecord.
type moveRow struct {
	Game       int32  `parquet:"game"`
	Step       int32  `parquet:"step"`
	Player     string `parquet:"player,dict"`
	Row        int32  `parquet:"row"`
	Col        int32  `parquet:"col"`
	Score      int64  `parquet:"score"`
	Nodes      int64  `parquet:"nodes"`
	Candidates int32  `parquet:"candidates"`
	MaxDepth   int32  `parquet:"max_depth"`
	Goroutines int32  `parquet:"goroutines"`
	Pruning    bool   `parquet:"pruning"`
	DurationNs int64  `parquet:"duration_ns"`
	Canceled   bool   `parquet:"canceled"`
}

const MoveRecordsFile = "move_records.parquet"

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "max_depth", "goroutines", "pruning", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.MaxDepth),
			strconv.Itoa(config.Goroutines),
			strconv.FormatBool(config.Pruning),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// WriteMoveRecords stores per-move search metrics as zstd-compressed Parquet.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]moveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, moveRow{
			Game:       int32(record.Game),
			Step:       int32(record.Step),
			Player:     record.Player,
			Row:        int32(record.Row),
			Col:        int32(record.Col),
			Score:      int64(record.Score),
			Nodes:      record.Nodes,
			Candidates: int32(record.Candidates),
			MaxDepth:   int32(record.MaxDepth),
			Goroutines: int32(record.Goroutines),
			Pruning:    record.Pruning,
			DurationNs: record.Duration.Nanoseconds(),
			Canceled:   record.Canceled,
		})
	}

	// Write to a temp file and rename atomically.
	outPath := filepath.Join(w.baseDir, MoveRecordsFile)
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadMoveRecords loads the move records written by WriteMoveRecords.
func ReadMoveRecords(path string) ([]MoveRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, err
	}

	reader := parquet.NewGenericReader[moveRow](pf)
	defer reader.Close()

	rows := make([]moveRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read parquet: %w", err)
	}

	records := make([]MoveRecord, 0, n)
	for _, row := range rows[:n] {
		records = append(records, MoveRecord{
			Game: int(row.Game),
			MoveMetric: MoveMetric{
				Step:   int(row.Step),
				Player: row.Player,
				Row:    int(row.Row),
				Col:    int(row.Col),
				SearchMetric: SearchMetric{
					Goroutines: int(row.Goroutines),
					MaxDepth:   int(row.MaxDepth),
					Pruning:    row.Pruning,
					Duration:   time.Duration(row.DurationNs),
					Nodes:      row.Nodes,
					Candidates: int(row.Candidates),
					Score:      int(row.Score),
					Canceled:   row.Canceled,
				},
			},
		})
	}
	return records, nil
}
