package sqlgen

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/andrewkroh/paramsql/paramsql"
)

// Config holds all configuration for a batch generation run.
type Config struct {
	JobsFile    string // Path to the jobs file
	OutputDir   string // Output directory for generated files
	PackageName string // Go package name; when set a Go file with one constant per job is written
	ChunkSize   int    // Default rows per INSERT; jobs may override
}

// Result describes the output of a single job.
type Result struct {
	Job     string
	Comment string
	Path    string // Path of the written .sql file
	SQL     string // Generated SQL, including the comment header
}

// Run executes the full batch pipeline and returns one Result per job in
// job name order.
func Run(cfg Config) ([]Result, error) {
	// 1. Load job configuration.
	jobsConfig, err := LoadConfig(cfg.JobsFile)
	if err != nil {
		return nil, fmt.Errorf("loading jobs config: %w", err)
	}
	baseDir := filepath.Dir(cfg.JobsFile)

	// 2. Create output directory.
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// 3. Compile each job in a deterministic order.
	var results []Result
	for _, name := range slices.Sorted(maps.Keys(jobsConfig.Jobs)) {
		job := jobsConfig.Jobs[name]

		res, err := runJob(name, job, baseDir, cfg)
		if err != nil {
			return nil, fmt.Errorf("compiling job %s: %w", name, err)
		}
		log.Info().
			Str("job", name).
			Str("output", res.Path).
			Int("bytes", len(res.SQL)).
			Msg("generated sql")
		results = append(results, res)
	}

	// 4. Generate Go constants.
	if cfg.PackageName != "" {
		path, err := EmitGo(cfg.PackageName, cfg.OutputDir, results)
		if err != nil {
			return nil, fmt.Errorf("writing go constants: %w", err)
		}
		log.Info().Str("output", path).Msg("generated go constants")
	}

	return results, nil
}

func runJob(name string, job *JobConfig, baseDir string, cfg Config) (Result, error) {
	input := job.Input
	if !filepath.IsAbs(input) {
		input = filepath.Join(baseDir, input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return Result{}, fmt.Errorf("reading input: %w", err)
	}

	chunkSize := cfg.ChunkSize
	if job.ChunkSize > 0 {
		chunkSize = job.ChunkSize
	}
	log.Debug().Str("job", name).Str("input", input).Int("chunk_size", chunkSize).Msg("compiling")

	sql, err := paramsql.Compile(string(data), paramsql.WithChunkSize(chunkSize))
	if err != nil {
		return Result{}, err
	}
	if sql == "" {
		log.Warn().Str("job", name).Str("input", input).Msg("no parameters found")
	}

	comment := cleanComment(job.Comment)
	if comment != "" {
		sql = "-- " + comment + "\n" + sql
	}

	output := job.Output
	if output == "" {
		output = name + ".sql"
	}
	path := filepath.Join(cfg.OutputDir, output)
	if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", output, err)
	}

	return Result{
		Job:     name,
		Comment: comment,
		Path:    path,
		SQL:     sql,
	}, nil
}
