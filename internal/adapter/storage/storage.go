// Package storage persists exactly one {document, step} snapshot under a
// fixed slot key, tagged with a schema version and timestamp. Storage
// faults are soft: they are logged and reported as "no data", never
// propagated to the caller as hard failures.
package storage

import (
	"encoding/json"
	"sync"
	"time"

	"cv-builder/internal/model"

	"github.com/rs/zerolog"
)

const (
	// SlotKey addresses the single durable slot.
	SlotKey = "cv-builder-data"

	// SchemaVersion must match for a stored snapshot to be trusted.
	SchemaVersion = "1.0"

	debounceDelay = time.Second
)

// Slot is a single durable key-value slot.
type Slot interface {
	Read() ([]byte, bool, error) // ok reports whether the slot holds data
	Write(data []byte) error
	Delete() error
}

type snapshot struct {
	Version     string          `json:"version"`
	Timestamp   int64           `json:"timestamp"`
	CVData      json.RawMessage `json:"cvData"`
	CurrentStep int             `json:"currentStep"`
}

type exportEnvelope struct {
	Version   string           `json:"version"`
	Timestamp int64            `json:"timestamp"`
	CVData    model.CVDocument `json:"cvData"`
}

// Info describes the stored snapshot without fully deserializing it.
type Info struct {
	HasData   bool      `json:"hasData"`
	Timestamp time.Time `json:"timestamp"`
}

type pendingSave struct {
	doc  model.CVDocument
	step int
}

// Adapter writes snapshots to a Slot, debouncing bursts of saves into a
// single write of the latest values.
type Adapter struct {
	slot Slot
	log  zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *pendingSave
}

func NewAdapter(slot Slot, log zerolog.Logger) *Adapter {
	return &Adapter{slot: slot, log: log.With().Str("component", "storage").Logger()}
}

// Save schedules a debounced write. Calls within the debounce window
// supersede each other; the write that eventually fires carries the values
// of the latest call.
func (a *Adapter) Save(doc model.CVDocument, step int) {
	a.mu.Lock()
	a.pending = &pendingSave{doc: doc, step: step}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(debounceDelay, a.flush)
	a.mu.Unlock()
}

// SaveNow bypasses the debounce for explicit user actions, cancelling any
// pending write.
func (a *Adapter) SaveNow(doc model.CVDocument, step int) {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = nil
	a.mu.Unlock()
	a.write(doc, step)
}

func (a *Adapter) flush() {
	a.mu.Lock()
	p := a.pending
	a.pending = nil
	a.timer = nil
	a.mu.Unlock()
	if p == nil {
		return
	}
	a.write(p.doc, p.step)
}

func (a *Adapter) write(doc model.CVDocument, step int) {
	raw, err := json.Marshal(doc)
	if err != nil {
		a.log.Warn().Err(err).Msg("snapshot marshal failed, skipping save")
		return
	}
	b, err := json.Marshal(snapshot{
		Version:     SchemaVersion,
		Timestamp:   time.Now().UnixMilli(),
		CVData:      raw,
		CurrentStep: step,
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("snapshot marshal failed, skipping save")
		return
	}
	if err := a.slot.Write(b); err != nil {
		a.log.Warn().Err(err).Msg("snapshot write failed (non-fatal)")
	}
}

// Load reads the stored snapshot. It returns ok=false when the slot is
// empty, the version tag mismatches, or the embedded document fails
// structural validation. A snapshot is never partially restored.
func (a *Adapter) Load() (model.CVDocument, int, bool) {
	b, ok, err := a.slot.Read()
	if err != nil {
		a.log.Warn().Err(err).Msg("snapshot read failed, treating as no data")
		return model.CVDocument{}, 0, false
	}
	if !ok {
		return model.CVDocument{}, 0, false
	}

	var s snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		a.log.Warn().Err(err).Msg("stored snapshot is corrupt, treating as no data")
		return model.CVDocument{}, 0, false
	}
	if s.Version != SchemaVersion {
		a.log.Warn().Str("stored", s.Version).Str("want", SchemaVersion).
			Msg("stored snapshot version mismatch, treating as no data")
		return model.CVDocument{}, 0, false
	}

	doc, err := model.DecodeDocument(s.CVData)
	if err != nil {
		a.log.Warn().Err(err).Msg("stored snapshot rejected by schema, treating as no data")
		return model.CVDocument{}, 0, false
	}
	return doc, s.CurrentStep, true
}

// Clear deletes the stored snapshot and cancels any pending debounced
// write so an in-flight save cannot resurrect the erased data.
func (a *Adapter) Clear() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = nil
	a.mu.Unlock()
	if err := a.slot.Delete(); err != nil {
		a.log.Warn().Err(err).Msg("snapshot delete failed (non-fatal)")
	}
}

// HasData reports whether the slot currently holds a snapshot.
func (a *Adapter) HasData() bool {
	_, ok, err := a.slot.Read()
	return err == nil && ok
}

// StoredInfo returns existence and write-time introspection for "you have
// saved data" prompts.
func (a *Adapter) StoredInfo() Info {
	b, ok, err := a.slot.Read()
	if err != nil || !ok {
		return Info{}
	}
	var s snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Info{}
	}
	return Info{HasData: true, Timestamp: time.UnixMilli(s.Timestamp)}
}

// ExportText produces the versioned, timestamped transportable form of the
// document alone, intended for user-initiated backup outside the slot.
func ExportText(doc model.CVDocument) ([]byte, error) {
	return json.MarshalIndent(exportEnvelope{
		Version:   SchemaVersion,
		Timestamp: time.Now().UnixMilli(),
		CVData:    doc,
	}, "", "  ")
}

// ImportText parses a transportable form back into a document, validating
// structure before accepting it.
func ImportText(text []byte) (model.CVDocument, error) {
	var env struct {
		CVData json.RawMessage `json:"cvData"`
	}
	if err := json.Unmarshal(text, &env); err != nil {
		return model.CVDocument{}, err
	}
	return model.DecodeDocument(env.CVData)
}
