package audit

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	auditDir  = ".robotsx"
	auditFile = "audit.logl"
)

var (
	ErrNoAuditLog = errors.New("no audit log found")
	mu            sync.Mutex

	// one session per process so entries written by a single command or MCP
	// server run can be grouped
	sessionID = uuid.NewString()
)

type Op string

const (
	OpSet     Op = "set"
	OpAppend  Op = "append"
	OpRemove  Op = "remove"
	OpFormat  Op = "fmt"
	OpMCPCall Op = "mcp_call"
)

// Entry is one journaled edit. Old is empty for appends and New is empty
// for removals.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"ts"`
	Op        Op        `json:"op"`
	SessionID string    `json:"sid"`
	File      string    `json:"file,omitempty"`
	Key       string    `json:"key,omitempty"`
	Line      int       `json:"line,omitempty"`
	Old       string    `json:"old,omitempty"`
	New       string    `json:"new,omitempty"`
	Tool      string    `json:"tool,omitempty"`
	PrevHash  string    `json:"prev_hash"`
}

type EntrySummary struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`
	Op        string `json:"op"`
	SessionID string `json:"sid"`
	File      string `json:"file,omitempty"`
	Key       string `json:"key,omitempty"`
	Line      int    `json:"line,omitempty"`
	Old       string `json:"old,omitempty"`
	New       string `json:"new,omitempty"`
	Tool      string `json:"tool,omitempty"`
}

func (e *Entry) Summary() EntrySummary {
	return EntrySummary{
		ID:        e.ID,
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Op:        string(e.Op),
		SessionID: e.SessionID,
		File:      e.File,
		Key:       e.Key,
		Line:      e.Line,
		Old:       e.Old,
		New:       e.New,
		Tool:      e.Tool,
	}
}

func SessionID() string { return sessionID }

func auditPath(workdir string) string {
	if workdir == "" {
		workdir, _ = os.Getwd()
	}
	return filepath.Join(workdir, auditDir, auditFile)
}

// records returns the non-empty lines of the journal at path.
func records(path string) ([][]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoAuditLog
		}
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	var out [][]byte
	for _, rec := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(rec)) > 0 {
			out = append(out, rec)
		}
	}
	return out, nil
}

func digest(rec []byte) string {
	sum := sha256.Sum256(rec)
	return hex.EncodeToString(sum[:])
}

// Log appends an entry to the journal in workdir. Each entry carries the
// hash of the record before it, so edits to earlier entries break the chain.
func Log(workdir string, op Op, opts ...Option) error {
	mu.Lock()
	defer mu.Unlock()

	path := auditPath(workdir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("ensure audit dir: %w", err)
	}

	var prev string
	recs, err := records(path)
	switch {
	case err == nil && len(recs) > 0:
		prev = digest(recs[len(recs)-1])
	case err != nil && !errors.Is(err, ErrNoAuditLog):
		return err
	}

	entry := &Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Op:        op,
		SessionID: sessionID,
		PrevHash:  prev,
	}
	for _, opt := range opts {
		opt(entry)
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

type Option func(*Entry)

func WithFile(path string) Option {
	return func(e *Entry) { e.File = path }
}

func WithKey(key string) Option {
	return func(e *Entry) { e.Key = key }
}

func WithLine(n int) Option {
	return func(e *Entry) { e.Line = n }
}

func WithChange(oldValue, newValue string) Option {
	return func(e *Entry) {
		e.Old = oldValue
		e.New = newValue
	}
}

func WithTool(name string) Option {
	return func(e *Entry) { e.Tool = name }
}

// Show returns the last lastN entries, oldest first. lastN <= 0 returns all.
// Unreadable records are skipped; Verify reports them.
func Show(workdir string, lastN int) ([]EntrySummary, error) {
	recs, err := records(auditPath(workdir))
	if err != nil {
		return nil, err
	}
	if lastN > 0 && len(recs) > lastN {
		recs = recs[len(recs)-lastN:]
	}

	entries := make([]EntrySummary, 0, len(recs))
	for _, rec := range recs {
		var e Entry
		if err := json.Unmarshal(rec, &e); err != nil {
			continue
		}
		entries = append(entries, e.Summary())
	}
	return entries, nil
}

type VerifyResult struct {
	TotalEntries int
	// Breaks lists the 1-based records whose prev_hash does not match.
	Breaks        []int
	FirstModified int
}

func Verify(workdir string) (*VerifyResult, error) {
	recs, err := records(auditPath(workdir))
	if err != nil {
		return nil, err
	}

	result := &VerifyResult{TotalEntries: len(recs)}
	prev := ""
	for i, rec := range recs {
		var e Entry
		if err := json.Unmarshal(rec, &e); err != nil || e.PrevHash != prev {
			result.Breaks = append(result.Breaks, i+1)
		}
		prev = digest(rec)
	}
	if len(result.Breaks) > 0 {
		result.FirstModified = result.Breaks[0]
	}
	return result, nil
}
