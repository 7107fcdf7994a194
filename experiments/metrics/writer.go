package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type TrainerConfig struct {
	ID        int
	Episodes  int
	Epsilon   float64
	Seed      uint64
	VisitMode string
}

type RunRecord struct {
	ID     uuid.UUID
	Config int // TrainerConfig.ID
	TrainingMetric
}

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

func (w *Writer) WriteTrainerConfigs(configs []TrainerConfig) error {
	header := []string{"id", "episodes", "epsilon", "seed", "visit_mode"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Episodes),
			strconv.FormatFloat(config.Epsilon, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
			config.VisitMode,
		})
	}

	err := w.write("trainer_configs.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write trainer configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	header := []string{"id", "config", "episodes", "decisions", "wins", "draws", "losses", "win_rate", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Decisions),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Losses),
			strconv.FormatFloat(record.WinRate(), 'f', 4, 64),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}

	err := w.write("run_records.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
