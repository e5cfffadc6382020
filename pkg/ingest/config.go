package ingest

import (
	"path/filepath"

	"github.com/Mouryagna/ML-Project/pkg/loader"
)

// Config holds the locations and split parameters of one ingestion run.
type Config struct {
	ArtifactsDir  string
	RawDataPath   string
	TrainDataPath string
	TestDataPath  string

	SourcePath string
	TestSize   float64
	Seed       int64
}

// NewConfig derives every artifact location from root. The source
// defaults to root/notebook/data/stud.csv.
func NewConfig(root string) Config {
	artifacts := filepath.Join(root, "artifacts")
	return Config{
		ArtifactsDir:  artifacts,
		RawDataPath:   filepath.Join(artifacts, "raw.csv"),
		TrainDataPath: filepath.Join(artifacts, "train.csv"),
		TestDataPath:  filepath.Join(artifacts, "test.csv"),
		SourcePath:    filepath.Join(root, "notebook", "data", "stud.csv"),
		TestSize:      loader.DefaultTestSize,
		Seed:          loader.DefaultSeed,
	}
}

// WithSource returns a copy of c reading from path.
func (c Config) WithSource(path string) Config {
	c.SourcePath = path
	return c
}

// WithSplit returns a copy of c with the given held-out fraction and seed.
func (c Config) WithSplit(testSize float64, seed int64) Config {
	c.TestSize = testSize
	c.Seed = seed
	return c
}
