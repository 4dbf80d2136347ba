package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"cv-builder/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type memSlot struct {
	mu     sync.Mutex
	data   []byte
	has    bool
	writes int
}

func (m *memSlot) Read() ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, m.has, nil
}

func (m *memSlot) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.has = true
	m.writes++
	return nil
}

func (m *memSlot) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.has = false
	return nil
}

func (m *memSlot) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func testDoc(name string) model.CVDocument {
	doc := model.EmptyDocument()
	doc.PersonalInfo = model.PersonalInfo{
		FullName:          name,
		Email:             "ana@example.com",
		Phone:             "+34 612 345 678",
		ProfessionalTitle: "Desarrolladora Frontend",
	}
	doc.ProfessionalSummary.Summary = "Una oración con contenido suficiente. Otra oración que acompaña a la primera."
	doc.Skills = []model.Skill{{ID: "s1", Name: "Go", OrderIndex: 0}}
	doc.Experiences = []model.Experience{{
		ID: "e1", JobTitle: "Dev", Company: "Acme", StartDate: "Enero 2020",
		IsCurrent: true, Achievements: []string{"Mejoré los tiempos de respuesta"},
	}}
	doc.Education = []model.Education{{
		ID: "d1", Degree: "Ingeniería Informática", Institution: "UPM",
		CompletionDate: "2019-06", Highlights: []string{},
	}}
	return doc
}

func newTestAdapter() (*Adapter, *memSlot) {
	slot := &memSlot{}
	return NewAdapter(slot, zerolog.Nop()), slot
}

func TestSaveNow_LoadRoundTrip(t *testing.T) {
	a, _ := newTestAdapter()
	doc := testDoc("Ana García")

	a.SaveNow(doc, 3)

	got, step, ok := a.Load()
	require.True(t, ok)
	require.Equal(t, 3, step)
	require.Equal(t, doc, got)
}

func TestLoad_EmptySlot(t *testing.T) {
	a, _ := newTestAdapter()
	_, _, ok := a.Load()
	require.False(t, ok)
}

func TestLoad_VersionMismatch(t *testing.T) {
	a, slot := newTestAdapter()
	raw, err := json.Marshal(testDoc("Ana García"))
	require.NoError(t, err)
	b, err := json.Marshal(snapshot{Version: "0.9", Timestamp: time.Now().UnixMilli(), CVData: raw, CurrentStep: 2})
	require.NoError(t, err)
	require.NoError(t, slot.Write(b))

	_, _, ok := a.Load()
	require.False(t, ok)
}

func TestLoad_CorruptData(t *testing.T) {
	a, slot := newTestAdapter()
	require.NoError(t, slot.Write([]byte("{{{ not json")))
	_, _, ok := a.Load()
	require.False(t, ok)
}

func TestLoad_StructurallyInvalidDocument(t *testing.T) {
	a, slot := newTestAdapter()
	b, err := json.Marshal(snapshot{
		Version:   SchemaVersion,
		Timestamp: time.Now().UnixMilli(),
		CVData:    json.RawMessage(`{"personalInfo": {}}`),
	})
	require.NoError(t, err)
	require.NoError(t, slot.Write(b))

	_, _, ok := a.Load()
	require.False(t, ok)
}

func TestSave_DebounceCoalesces(t *testing.T) {
	a, slot := newTestAdapter()

	for i := 0; i < 5; i++ {
		a.Save(testDoc(fmt.Sprintf("Versión %d", i)), i)
	}
	require.Zero(t, slot.writeCount(), "no write should happen inside the debounce window")

	require.Eventually(t, func() bool { return slot.writeCount() == 1 },
		3*time.Second, 50*time.Millisecond)

	got, step, ok := a.Load()
	require.True(t, ok)
	require.Equal(t, 4, step)
	require.Equal(t, "Versión 4", got.PersonalInfo.FullName)

	// no second write sneaks in later
	time.Sleep(1200 * time.Millisecond)
	require.Equal(t, 1, slot.writeCount())
}

func TestClear_CancelsPendingSave(t *testing.T) {
	a, slot := newTestAdapter()

	a.Save(testDoc("Ana García"), 1)
	a.Clear()

	time.Sleep(1300 * time.Millisecond)
	require.Zero(t, slot.writeCount())
	require.False(t, a.HasData())
}

func TestSaveNow_SupersedesPending(t *testing.T) {
	a, slot := newTestAdapter()

	a.Save(testDoc("pendiente"), 1)
	a.SaveNow(testDoc("inmediata"), 2)
	require.Equal(t, 1, slot.writeCount())

	time.Sleep(1300 * time.Millisecond)
	require.Equal(t, 1, slot.writeCount())

	got, step, ok := a.Load()
	require.True(t, ok)
	require.Equal(t, 2, step)
	require.Equal(t, "inmediata", got.PersonalInfo.FullName)
}

func TestStoredInfo(t *testing.T) {
	a, _ := newTestAdapter()
	require.False(t, a.StoredInfo().HasData)
	require.False(t, a.HasData())

	a.SaveNow(testDoc("Ana García"), 0)

	info := a.StoredInfo()
	require.True(t, info.HasData)
	require.WithinDuration(t, time.Now(), info.Timestamp, 5*time.Second)
	require.True(t, a.HasData())
}

func TestExportImport_RoundTrip(t *testing.T) {
	doc := testDoc("Ana García")

	text, err := ExportText(doc)
	require.NoError(t, err)

	got, err := ImportText(text)
	require.NoError(t, err)
	require.Equal(t, doc, got)
}

func TestImportText_RejectsInvalidPayloads(t *testing.T) {
	_, err := ImportText([]byte("no es json"))
	require.Error(t, err)

	_, err = ImportText([]byte(`{"version": "1.0", "cvData": {"personalInfo": {}}}`))
	require.Error(t, err)
}

func TestFileSlot(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)

	_, ok, err := slot.Read()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, slot.Write([]byte(`{"version":"1.0"}`)))

	data, ok, err := slot.Read()
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"version":"1.0"}`, string(data))

	require.NoError(t, slot.Delete())
	_, ok, err = slot.Read()
	require.NoError(t, err)
	require.False(t, ok)

	// deleting an empty slot stays a no-op
	require.NoError(t, slot.Delete())
}

func TestFileSlot_AdapterEndToEnd(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)
	a := NewAdapter(slot, zerolog.Nop())

	doc := testDoc("Ana García")
	a.SaveNow(doc, 2)

	got, step, ok := a.Load()
	require.True(t, ok)
	require.Equal(t, 2, step)
	require.Equal(t, doc, got)
}
