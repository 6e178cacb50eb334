package engine

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Quant-link/QLK-Contract-Quard/internal/cache"
	"github.com/Quant-link/QLK-Contract-Quard/internal/config"
	"github.com/Quant-link/QLK-Contract-Quard/internal/model"
	"github.com/Quant-link/QLK-Contract-Quard/internal/rust"
	"github.com/Quant-link/QLK-Contract-Quard/internal/util"
)

const reportSchemaTag = "rust-analysis-v1"

// Engine runs the analyzer across a file tree. Each file's analysis is
// independent, so files are processed by a bounded worker pool; repeat
// content is served from an in-memory LRU backed by the disk cache.
type Engine struct {
	memo *lru.Cache[string, *model.AnalysisReport]
}

func New() *Engine {
	memo, _ := lru.New[string, *model.AnalysisReport](512)
	return &Engine{memo: memo}
}

func (e *Engine) Scan(ctx context.Context, req model.ScanRequest) (*model.ScanResult, error) {
	start := time.Now()
	cfg, _, _ := config.Load(req.Path)
	files, err := discoverFiles(req.Path, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	cpu := runtime.NumCPU()
	if cpu < 2 {
		cpu = 2
	}
	ch := make(chan model.FileReport, len(files))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cpu)
	for _, f := range files {
		f := f
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			rep := e.analyzeFile(ctx, f, req.NoCache || !cfg.Cache)
			if rep.Report == nil {
				return
			}
			ch <- rep
		}()
	}
	wg.Wait()
	close(ch)

	reports := []model.FileReport{}
	for r := range ch {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].File < reports[j].File })
	return &model.ScanResult{Reports: reports, Elapsed: time.Since(start)}, nil
}

// analyzeFile reads, caches, and analyzes one file. Unreadable files are
// skipped; the report itself carries any parse errors.
func (e *Engine) analyzeFile(ctx context.Context, path string, noCache bool) model.FileReport {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.FileReport{}
	}
	out := model.FileReport{
		File:        filepath.ToSlash(path),
		Fingerprint: util.Fingerprint(filepath.ToSlash(path), b),
	}

	key := cache.Key(reportSchemaTag, string(b))
	if rep, ok := e.memo.Get(key); ok {
		out.Report = rep
		return out
	}
	if !noCache {
		if data, ok := cache.Load(key); ok {
			var rep model.AnalysisReport
			if err := json.Unmarshal(data, &rep); err == nil {
				e.memo.Add(key, &rep)
				out.Report = &rep
				return out
			}
		}
	}

	rep := rust.Analyze(ctx, string(b))
	e.memo.Add(key, rep)
	if !noCache {
		if data, err := json.Marshal(rep); err == nil {
			_ = cache.Store(key, data)
		}
	}
	out.Report = rep
	return out
}

// discoverFiles returns the .rs files under root (or root itself when it is
// a single file), skipping paths matched by the exclude patterns.
func discoverFiles(root string, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	var out []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(d.Name()) != ".rs" {
			return nil
		}
		if isExcluded(path, exclude) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	return out, walkErr
}

func isExcluded(path string, exclude []string) bool {
	slashed := filepath.ToSlash(path)
	for _, pat := range exclude {
		if ok, _ := filepath.Match(pat, filepath.Base(path)); ok {
			return true
		}
		if strings.Contains(slashed, pat) {
			return true
		}
	}
	return false
}
