package domain

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tidwall/gjson"
)

// CheckIn is a well-being self-assessment. Append-only.
type CheckIn struct {
	ID        int64     `json:"id"`
	Mood      int       `json:"humor"`
	Energy    int       `json:"energia"`
	Stress    int       `json:"estresse"`
	Notes     string    `json:"observacoes"`
	Timestamp Timestamp `json:"timestamp"`
}

// CheckInDraft is a check-in being composed.
type CheckInDraft struct {
	Mood   *int    `json:"humor,omitempty"`
	Energy *int    `json:"energia,omitempty"`
	Stress *int    `json:"estresse,omitempty"`
	Notes  *string `json:"observacoes,omitempty"`
}

// NewCheckInDraft returns the defaults the check-in form starts with.
func NewCheckInDraft() CheckInDraft {
	return CheckInDraft{
		Mood:   Ptr(3),
		Energy: Ptr(5),
		Stress: Ptr(3),
		Notes:  Ptr(""),
	}
}

// Validate checks the scores: mood 1-5, energy and stress 1-10.
func (d CheckInDraft) Validate() error {
	var errs []FieldError
	errs = checkRange(errs, "humor", d.Mood, 1, 5)
	errs = checkRange(errs, "energia", d.Energy, 1, 10)
	errs = checkRange(errs, "estresse", d.Stress, 1, 10)
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Event is a notable emotional event. Append-only.
type Event struct {
	ID          int64     `json:"id"`
	Kind        EventKind `json:"tipo"`
	Description string    `json:"descricao"`
	Impact      int       `json:"impacto"`
	Timestamp   Timestamp `json:"timestamp"`
}

// EventDraft is an event being composed.
type EventDraft struct {
	Kind        *EventKind `json:"tipo,omitempty"`
	Description *string    `json:"descricao,omitempty"`
	Impact      *int       `json:"impacto,omitempty"`
}

// NewEventDraft returns the defaults the event form starts with.
func NewEventDraft() EventDraft {
	return EventDraft{
		Kind:        Ptr(EventPositive),
		Description: Ptr(""),
		Impact:      Ptr(3),
	}
}

// Validate checks the kind, the description and the 1-5 impact.
func (d EventDraft) Validate() error {
	var errs []FieldError
	if d.Kind == nil {
		errs = append(errs, FieldError{Field: "tipo", Message: "required"})
	} else if !d.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "tipo", Message: "must be positivo, negativo or neutro"})
	}
	if d.Description == nil || *d.Description == "" {
		errs = append(errs, FieldError{Field: "descricao", Message: "required"})
	}
	errs = checkRange(errs, "impacto", d.Impact, 1, 5)
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func checkRange(errs []FieldError, field string, v *int, lo, hi int) []FieldError {
	if v == nil {
		return append(errs, FieldError{Field: field, Message: "required"})
	}
	if *v < lo || *v > hi {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be between %d and %d", lo, hi)})
	}
	return errs
}

// CheckInAverages holds the mean scores over a set of check-ins.
type CheckInAverages struct {
	Mood   float64
	Energy float64
	Stress float64
	Count  int
}

// AverageCheckIns computes all three means in one pass. Every mean is 0
// for an empty slice.
func AverageCheckIns(checkIns []CheckIn) CheckInAverages {
	if len(checkIns) == 0 {
		return CheckInAverages{}
	}
	var mood, energy, stress int
	for _, c := range checkIns {
		mood += c.Mood
		energy += c.Energy
		stress += c.Stress
	}
	n := float64(len(checkIns))
	return CheckInAverages{
		Mood:   float64(mood) / n,
		Energy: float64(energy) / n,
		Stress: float64(stress) / n,
		Count:  len(checkIns),
	}
}

// AverageMood is the mean mood, or 0 when there are no check-ins.
func AverageMood(checkIns []CheckIn) float64 { return AverageCheckIns(checkIns).Mood }

// AverageEnergy is the mean energy, or 0 when there are no check-ins.
func AverageEnergy(checkIns []CheckIn) float64 { return AverageCheckIns(checkIns).Energy }

// AverageStress is the mean stress, or 0 when there are no check-ins.
func AverageStress(checkIns []CheckIn) float64 { return AverageCheckIns(checkIns).Stress }

// Recent returns a copy of at most the first n elements of s.
func Recent[T any](s []T, n int) []T {
	n = max(n, 0)
	if len(s) <= n {
		return slices.Clone(s)
	}
	return slices.Clone(s[:n])
}

// RecentCheckIns returns the first n check-ins in list order.
func RecentCheckIns(checkIns []CheckIn, n int) []CheckIn { return Recent(checkIns, n) }

// RecentEvents returns the first n events in list order.
func RecentEvents(events []Event, n int) []Event { return Recent(events, n) }

// Analysis is the emotional analysis document computed by the server.
// Its shape is up to the server; fields are read with gjson paths.
type Analysis struct {
	raw json.RawMessage
}

// NewAnalysis wraps a raw JSON document.
func NewAnalysis(raw []byte) Analysis {
	return Analysis{raw: append(json.RawMessage(nil), raw...)}
}

// Get returns the value at a gjson path, e.g. "media_humor" or "tendencias.0".
func (a Analysis) Get(path string) gjson.Result {
	return gjson.GetBytes(a.raw, path)
}

// Raw returns the document as received.
func (a Analysis) Raw() json.RawMessage { return a.raw }

// IsEmpty reports whether the server returned no document.
func (a Analysis) IsEmpty() bool {
	return len(a.raw) == 0 || string(a.raw) == "null"
}

func (a Analysis) MarshalJSON() ([]byte, error) {
	if a.IsEmpty() {
		return []byte("null"), nil
	}
	return a.raw, nil
}

func (a *Analysis) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("analysis: invalid json")
	}
	a.raw = append(json.RawMessage(nil), data...)
	return nil
}
